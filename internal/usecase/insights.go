package usecase

import (
	"fmt"

	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
	"github.com/DevikaReddi/skill-sync-pro/internal/score"
)

const maxInsights = 4

// insights derives short observations from the finished analysis. Purely a
// function of the computed results, so identical inputs produce identical
// insight lists.
func (s AnalyzeService) insights(result score.MatchResult, analysis domain.SkillAnalysis, levels domain.ExperienceLevels) []string {
	out := make([]string, 0, maxInsights)

	if result.EmptyJobSet {
		out = append(out, "No recognizable skills were found in the job description, so the match percentage defaults to 0.")
		return out
	}

	switch {
	case result.Percentage >= 80:
		out = append(out, fmt.Sprintf("Strong alignment: %.1f%% of the weighted job requirements are covered by this resume.", result.Percentage))
	case result.Percentage >= 60:
		out = append(out, fmt.Sprintf("Good alignment at %.1f%%; closing the top gaps below would make this a strong match.", result.Percentage))
	case result.Percentage >= 40:
		out = append(out, fmt.Sprintf("Partial alignment at %.1f%%; several required skills are missing from the resume.", result.Percentage))
	default:
		out = append(out, fmt.Sprintf("Low alignment at %.1f%%; this role asks for a noticeably different skill set.", result.Percentage))
	}

	if n := highPriorityGaps(analysis.SkillGaps); n > 0 {
		out = append(out, fmt.Sprintf("%d high-priority skill gap(s) should be addressed first.", n))
	}

	if cat, n := dominantGapCategory(analysis.SkillGaps); n >= 2 {
		out = append(out, fmt.Sprintf("Most missing skills fall under %s.", cat))
	}

	if levels.Resume != "Not specified" && levels.Job != "Not specified" && len(out) < maxInsights {
		if levels.Resume == levels.Job {
			out = append(out, fmt.Sprintf("Experience level aligns: both read as %s.", levels.Job))
		} else {
			out = append(out, fmt.Sprintf("The role reads as %s while the resume reads as %s.", levels.Job, levels.Resume))
		}
	}

	if len(out) > maxInsights {
		out = out[:maxInsights]
	}
	return out
}

func highPriorityGaps(gaps []domain.Skill) int {
	n := 0
	for _, g := range gaps {
		if g.RelevanceScore != nil && *g.RelevanceScore >= score.HighPriorityMin {
			n++
		}
	}
	return n
}

// dominantGapCategory returns the most frequent category among the gaps and
// its count; ties resolve to the lexicographically smaller category name so
// the result stays deterministic.
func dominantGapCategory(gaps []domain.Skill) (domain.Category, int) {
	counts := make(map[domain.Category]int)
	for _, g := range gaps {
		counts[g.Category]++
	}
	var best domain.Category
	bestN := 0
	for cat, n := range counts {
		if n > bestN || (n == bestN && string(cat) < string(best)) {
			best, bestN = cat, n
		}
	}
	return best, bestN
}

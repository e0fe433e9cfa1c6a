// Package recommend turns prioritized skill gaps into ordered, human-readable
// suggestions.
package recommend

import (
	"fmt"
	"sort"

	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
	"github.com/DevikaReddi/skill-sync-pro/internal/score"
)

// DefaultCap bounds how many gap suggestions are produced.
const DefaultCap = 5

// categoryAdvice phrases one suggestion per gap, keyed by its category.
var categoryAdvice = map[domain.Category]string{
	domain.CategoryProgramming: "Learn %s through hands-on coding projects; it is a core language requirement for this role.",
	domain.CategoryFrontend:    "Strengthen your frontend work with %s; modern framework experience is expected here.",
	domain.CategoryBackend:     "Build a small service with %s to demonstrate the backend experience this role asks for.",
	domain.CategoryDatabase:    "Practice %s with schema design and query exercises to cover the data layer requirement.",
	domain.CategoryCloudDevOps: "Gain %s experience through a hands-on cloud or DevOps project; infrastructure skills are called out in this posting.",
	domain.CategorySoftSkills:  "Surface concrete examples of %s in your experience section; the posting emphasizes it.",
	domain.CategoryOther:       "Consider adding %s to your toolkit to close this gap.",
}

// Generator produces suggestions for the highest-relevance gaps.
type Generator struct {
	Cap int
}

// NewGenerator returns a Generator with the given cap; non-positive caps fall
// back to DefaultCap.
func NewGenerator(cap int) Generator {
	if cap <= 0 {
		cap = DefaultCap
	}
	return Generator{Cap: cap}
}

// Generate returns one suggestion per selected gap, ordered by relevance
// descending with name ascending as the tie-breaker. Empty gaps yield an
// empty list, never an error.
func (g Generator) Generate(gaps []domain.Skill) []string {
	if len(gaps) == 0 {
		return []string{}
	}

	sorted := make([]domain.Skill, len(gaps))
	copy(sorted, gaps)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := relevanceOf(sorted[i]), relevanceOf(sorted[j])
		if ri != rj {
			return ri > rj
		}
		return sorted[i].Name < sorted[j].Name
	})
	if len(sorted) > g.Cap {
		sorted = sorted[:g.Cap]
	}

	out := make([]string, 0, len(sorted))
	for _, s := range sorted {
		tpl, ok := categoryAdvice[s.Category]
		if !ok {
			tpl = categoryAdvice[domain.CategoryOther]
		}
		msg := fmt.Sprintf(tpl, s.Name)
		if relevanceOf(s) >= score.HighPriorityMin {
			msg = fmt.Sprintf("High priority: %s", msg)
		}
		out = append(out, msg)
	}
	return out
}

func relevanceOf(s domain.Skill) float64 {
	if s.RelevanceScore == nil {
		return 0
	}
	return *s.RelevanceScore
}

// Package score assigns job-side skills a relevance score from textual
// emphasis cues and folds coverage into the final match percentage.
package score

import (
	"regexp"

	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
)

// EmphasisRule maps a textual emphasis cue to a score adjustment. Rules live
// in a named table rather than inline string checks so they stay unit-testable
// and extensible.
type EmphasisRule struct {
	Name    string
	Pattern *regexp.Regexp
	Weight  float64
}

// DefaultEmphasisRules detects "hard requirement" versus "nice to have"
// phrasing near a skill mention.
var DefaultEmphasisRules = []EmphasisRule{
	{
		Name:    "required",
		Pattern: regexp.MustCompile(`(?i)\b(?:required|must[ -]have|mandatory|essential|proficien\w*|expert(?:ise)?|strong)\b`),
		Weight:  0.25,
	},
	{
		Name:    "nice-to-have",
		Pattern: regexp.MustCompile(`(?i)\b(?:nice[ -]to[ -]have|preferred|a plus|bonus|familiar(?:ity)?|desirable|optional)\b`),
		Weight:  -0.20,
	},
}

// Relevance score composition. base + freq + pos + required-cue reaches 1.0
// exactly; a plain single mention lands in the low-to-medium band.
const (
	baseRelevance  = 0.45
	freqWeight     = 0.15
	posWeight      = 0.15
	freqSaturation = 3
	emphasisWindow = 120 // bytes inspected on each side of a mention
)

// Priority buckets over the relevance score.
const (
	HighPriorityMin   = 0.8
	MediumPriorityMin = 0.6
)

// Priority labels a relevance score for display and sorting.
func Priority(relevance float64) string {
	switch {
	case relevance >= HighPriorityMin:
		return "high"
	case relevance >= MediumPriorityMin:
		return "medium"
	default:
		return "low"
	}
}

// Scorer computes deterministic 0-1 relevance scores for skills mentioned in
// a job description.
type Scorer struct {
	Rules []EmphasisRule
}

// NewScorer returns a Scorer with the default emphasis rule table.
func NewScorer() Scorer { return Scorer{Rules: DefaultEmphasisRules} }

// Score rates one skill from its mentions within text. Signals: normalized
// mention frequency, position of the first mention (earlier weighs more), and
// emphasis cues in a window around each mention. Result is clamped to [0,1]
// and depends only on the inputs.
func (s Scorer) Score(text string, mentions []domain.Mention) float64 {
	if len(mentions) == 0 || len(text) == 0 {
		return 0
	}

	freq := float64(len(mentions))
	if freq > freqSaturation {
		freq = freqSaturation
	}
	score := baseRelevance + (freq/freqSaturation)*freqWeight

	first := mentions[0].Start
	score += (1 - float64(first)/float64(len(text))) * posWeight

	for _, rule := range s.Rules {
		for _, m := range mentions {
			if rule.Pattern.MatchString(window(text, m)) {
				score += rule.Weight
				break
			}
		}
	}

	return clamp01(score)
}

func window(text string, m domain.Mention) string {
	start := m.Start - emphasisWindow
	if start < 0 {
		start = 0
	}
	end := m.End + emphasisWindow
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package score_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
	"github.com/DevikaReddi/skill-sync-pro/internal/score"
)

func mentionsOf(text, term string) []domain.Mention {
	var out []domain.Mention
	lower := strings.ToLower(text)
	term = strings.ToLower(term)
	from := 0
	for {
		idx := strings.Index(lower[from:], term)
		if idx < 0 {
			return out
		}
		start := from + idx
		out = append(out, domain.Mention{Raw: term, Start: start, End: start + len(term)})
		from = start + len(term)
	}
}

func TestScore_NoMentions(t *testing.T) {
	t.Parallel()
	s := score.NewScorer()
	assert.Zero(t, s.Score("some text", nil))
	assert.Zero(t, s.Score("", mentionsOf("x", "x")))
}

func TestScore_WithinUnitInterval(t *testing.T) {
	t.Parallel()
	s := score.NewScorer()
	text := "python required, python essential, python python python everywhere"
	got := s.Score(text, mentionsOf(text, "python"))
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}

func TestScore_RequiredCueRaises(t *testing.T) {
	t.Parallel()
	s := score.NewScorer()
	plain := "the stack includes python for data work and tooling"
	required := "python is required for this position and used daily here"
	assert.Greater(t,
		s.Score(required, mentionsOf(required, "python")),
		s.Score(plain, mentionsOf(plain, "python")))
}

func TestScore_NiceToHaveCueLowers(t *testing.T) {
	t.Parallel()
	s := score.NewScorer()
	plain := "the stack includes python for data work and tooling"
	optional := "familiarity with python is nice to have but not needed"
	assert.Less(t,
		s.Score(optional, mentionsOf(optional, "python")),
		s.Score(plain, mentionsOf(plain, "python")))
}

func TestScore_FrequencyRaises(t *testing.T) {
	t.Parallel()
	s := score.NewScorer()
	once := "python appears here just once in a long description of the role and its duties"
	thrice := "python appears here, then python again, and python a third time in the text"
	assert.Greater(t,
		s.Score(thrice, mentionsOf(thrice, "python")),
		s.Score(once, mentionsOf(once, "python")))
}

func TestScore_EarlierMentionRaises(t *testing.T) {
	t.Parallel()
	s := score.NewScorer()
	early := "python leads this description which then talks at length about the company culture and offices"
	late := "this description talks at length about the company culture and offices before naming python"
	assert.Greater(t,
		s.Score(early, mentionsOf(early, "python")),
		s.Score(late, mentionsOf(late, "python")))
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()
	s := score.NewScorer()
	text := "expertise in kubernetes is mandatory for the platform team"
	m := mentionsOf(text, "kubernetes")
	assert.Equal(t, s.Score(text, m), s.Score(text, m))
}

func TestPriority_Buckets(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "high", score.Priority(0.9))
	assert.Equal(t, "high", score.Priority(0.8))
	assert.Equal(t, "medium", score.Priority(0.7))
	assert.Equal(t, "medium", score.Priority(0.6))
	assert.Equal(t, "low", score.Priority(0.59))
	assert.Equal(t, "low", score.Priority(0))
}

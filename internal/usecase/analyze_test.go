package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
	"github.com/DevikaReddi/skill-sync-pro/internal/extract"
	"github.com/DevikaReddi/skill-sync-pro/internal/recommend"
	"github.com/DevikaReddi/skill-sync-pro/internal/score"
	"github.com/DevikaReddi/skill-sync-pro/internal/taxonomy"
	"github.com/DevikaReddi/skill-sync-pro/internal/usecase"
)

const (
	resumeText = "Senior engineer with 6 years of experience building products in Python and React, comfortable with Git workflows."
	jobText    = "We are hiring for a role where Python and React are required, plus Kubernetes experience with our platform team."
	bakeryText = "We are a friendly neighborhood bakery seeking motivated helpers for busy weekend mornings and afternoons."
)

// newService wires the pipeline with the deterministic keyword extractor.
func newService(t *testing.T, extractor, fallback domain.SkillExtractor) usecase.AnalyzeService {
	t.Helper()
	tax, err := taxonomy.New()
	require.NoError(t, err)
	if extractor == nil {
		extractor = extract.NewKeyword(tax)
	}
	return usecase.NewAnalyzeService(tax, extractor, fallback, score.NewScorer(), recommend.NewGenerator(5), 50, 10000)
}

func names(skills []domain.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}

type erroringExtractor struct{}

func (erroringExtractor) Extract(domain.Context, string) ([]domain.Mention, error) {
	return nil, errors.New("model blew up")
}
func (erroringExtractor) Name() string { return "erroring" }

type panickingExtractor struct{}

func (panickingExtractor) Extract(domain.Context, string) ([]domain.Mention, error) {
	panic("tokenizer index out of range")
}
func (panickingExtractor) Name() string { return "panicking" }

func TestAnalyze_PartialOverlap(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	resp, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)
	require.True(t, resp.Success)

	assert.Equal(t, []string{"Python", "React"}, names(resp.SkillAnalysis.MatchingSkills))
	assert.Equal(t, []string{"Kubernetes"}, names(resp.SkillAnalysis.SkillGaps))
	assert.Equal(t, []string{"Git"}, names(resp.SkillAnalysis.UniqueSkills))
	assert.InDelta(t, 66.7, resp.MatchPercentage, 5)
}

func TestAnalyze_SkillFields(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	resp, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)

	for _, s := range resp.SkillAnalysis.MatchingSkills {
		require.NotNil(t, s.RelevanceScore, "matching skill %q", s.Name)
		assert.GreaterOrEqual(t, *s.RelevanceScore, 0.0)
		assert.LessOrEqual(t, *s.RelevanceScore, 1.0)
	}
	for _, s := range resp.SkillAnalysis.SkillGaps {
		require.NotNil(t, s.RelevanceScore, "gap %q", s.Name)
	}
	for _, s := range resp.SkillAnalysis.UniqueSkills {
		assert.Nil(t, s.RelevanceScore, "unique skill %q", s.Name)
	}

	require.Len(t, resp.SkillAnalysis.SkillGaps, 1)
	assert.Equal(t, domain.CategoryCloudDevOps, resp.SkillAnalysis.SkillGaps[0].Category)
}

func TestAnalyze_BucketsDisjoint(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	resp, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, n := range names(resp.SkillAnalysis.MatchingSkills) {
		seen[n]++
	}
	for _, n := range names(resp.SkillAnalysis.SkillGaps) {
		seen[n]++
	}
	for _, n := range names(resp.SkillAnalysis.UniqueSkills) {
		seen[n]++
	}
	for n, c := range seen {
		assert.Equal(t, 1, c, "skill %q in more than one bucket", n)
	}
}

func TestAnalyze_Recommendations(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	resp, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)

	require.NotEmpty(t, resp.Recommendations)
	assert.LessOrEqual(t, len(resp.Recommendations), 5)
	assert.Contains(t, resp.Recommendations[0], "Kubernetes")
}

func TestAnalyze_Metadata(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	resp, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AnalysisTimestamp)
	require.NotNil(t, resp.ProcessingTimeMS)
	assert.GreaterOrEqual(t, *resp.ProcessingTimeMS, int64(0))
	require.NotNil(t, resp.ExperienceLevel)
	assert.Equal(t, "Senior", resp.ExperienceLevel.Resume)
	assert.NotEmpty(t, resp.KeyInsights)
}

func TestAnalyze_Deterministic(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	a, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)
	b, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)

	assert.Equal(t, a.MatchPercentage, b.MatchPercentage)
	assert.Equal(t, a.SkillAnalysis, b.SkillAnalysis)
	assert.Equal(t, a.Recommendations, b.Recommendations)
	assert.Equal(t, a.KeyInsights, b.KeyInsights)
}

func TestAnalyze_FullOverlapIs100(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	resp, err := svc.Analyze(context.Background(),
		"Engineer who ships with Python, React and Kubernetes across several production systems.",
		jobText)
	require.NoError(t, err)
	assert.InDelta(t, 100, resp.MatchPercentage, 0.001)
	assert.Empty(t, resp.SkillAnalysis.SkillGaps)
	assert.Empty(t, resp.Recommendations)
}

func TestAnalyze_NoOverlapIsZero(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	resp, err := svc.Analyze(context.Background(),
		"Seasoned writer comfortable producing long form reporting and interviews for print media.",
		jobText)
	require.NoError(t, err)
	assert.Zero(t, resp.MatchPercentage)
	assert.Empty(t, resp.SkillAnalysis.MatchingSkills)
	assert.Len(t, resp.SkillAnalysis.SkillGaps, 3)
}

func TestAnalyze_EmptyJobSkillSet(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	resp, err := svc.Analyze(context.Background(), resumeText, bakeryText)
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Zero(t, resp.MatchPercentage)
	assert.Empty(t, resp.SkillAnalysis.MatchingSkills)
	assert.Empty(t, resp.SkillAnalysis.SkillGaps)
	assert.NotEmpty(t, resp.SkillAnalysis.UniqueSkills)
	require.NotEmpty(t, resp.KeyInsights)
	assert.Contains(t, resp.KeyInsights[0], "No recognizable skills")
}

func TestAnalyze_ValidationErrors(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	cases := []struct {
		name   string
		resume string
		job    string
	}{
		{"blank resume", "   \n\t  ", jobText},
		{"blank job", resumeText, ""},
		{"resume too short", "Python developer", jobText},
		{"job too long", resumeText, strings.Repeat("a", 10001)},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Analyze(context.Background(), c.resume, c.job)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestAnalyze_LengthMeasuredInRunes(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)

	// 60 multi-byte runes exceed 50 even though no ASCII word reaches it
	resume := strings.Repeat("日", 60)
	resp, err := svc.Analyze(context.Background(), resume, jobText)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestAnalyze_ExtractorFailureReturnsFailureResponse(t *testing.T) {
	t.Parallel()
	svc := newService(t, erroringExtractor{}, nil)

	resp, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Zero(t, resp.MatchPercentage)
	assert.NotNil(t, resp.SkillAnalysis.MatchingSkills)
	assert.Empty(t, resp.SkillAnalysis.MatchingSkills)
	assert.NotNil(t, resp.Recommendations)
	assert.Empty(t, resp.Recommendations)
}

func TestAnalyze_FallbackRescuesFailingPrimary(t *testing.T) {
	t.Parallel()
	tax, err := taxonomy.New()
	require.NoError(t, err)
	svc := usecase.NewAnalyzeService(tax, erroringExtractor{}, extract.NewKeyword(tax), score.NewScorer(), recommend.NewGenerator(5), 50, 10000)

	resp, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"Python", "React"}, names(resp.SkillAnalysis.MatchingSkills))
}

func TestAnalyze_PanicRecoveredAsFailure(t *testing.T) {
	t.Parallel()
	svc := newService(t, panickingExtractor{}, nil)

	resp, err := svc.Analyze(context.Background(), resumeText, jobText)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestExtractorName(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)
	assert.Equal(t, "keyword", svc.ExtractorName())
}

func TestTaxonomySize(t *testing.T) {
	t.Parallel()
	svc := newService(t, nil, nil)
	assert.Greater(t, svc.TaxonomySize(), 0)
}

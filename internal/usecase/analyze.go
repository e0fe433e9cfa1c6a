// Package usecase contains application business logic services.
package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
	"github.com/DevikaReddi/skill-sync-pro/internal/extract"
	"github.com/DevikaReddi/skill-sync-pro/internal/match"
	"github.com/DevikaReddi/skill-sync-pro/internal/observability"
	"github.com/DevikaReddi/skill-sync-pro/internal/recommend"
	"github.com/DevikaReddi/skill-sync-pro/internal/score"
	"github.com/DevikaReddi/skill-sync-pro/internal/taxonomy"
	"github.com/DevikaReddi/skill-sync-pro/pkg/textx"
)

// Stage names the orchestrator's states. Failed is terminal and reachable
// from every non-terminal stage.
type Stage string

const (
	StageValidating   Stage = "validating"
	StageExtracting   Stage = "extracting"
	StageNormalizing  Stage = "normalizing"
	StageMatching     Stage = "matching"
	StageScoring      Stage = "scoring"
	StageRecommending Stage = "recommending"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)

// AnalyzeService runs the full analysis pipeline over one resume/job pair.
// It is a pure function of the two input strings plus the immutable taxonomy
// and the startup-selected extractor, so a single value serves any number of
// concurrent requests.
type AnalyzeService struct {
	tax       *taxonomy.Taxonomy
	extractor domain.SkillExtractor
	fallback  domain.SkillExtractor // nil when the primary is already keyword-only
	scorer    score.Scorer
	rec       recommend.Generator
	minLen    int
	maxLen    int
}

// NewAnalyzeService wires the pipeline. fallback may be nil.
func NewAnalyzeService(tax *taxonomy.Taxonomy, extractor, fallback domain.SkillExtractor, scorer score.Scorer, rec recommend.Generator, minLen, maxLen int) AnalyzeService {
	return AnalyzeService{
		tax:       tax,
		extractor: extractor,
		fallback:  fallback,
		scorer:    scorer,
		rec:       rec,
		minLen:    minLen,
		maxLen:    maxLen,
	}
}

// Analyze runs Validating → Extracting → Normalizing → Matching → Scoring →
// Recommending exactly once. Validation failures return ErrInvalidArgument;
// every later failure is converted into a uniform failure response with no
// partial fields, keeping the single-response contract.
func (s AnalyzeService) Analyze(ctx domain.Context, resumeText, jobText string) (resp domain.AnalysisResponse, err error) {
	start := time.Now()
	lg := observability.LoggerFromContext(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			lg.Error("analysis panic recovered",
				slog.Any("recover", rec),
				slog.String("stage", string(StageFailed)))
			resp, err = failureResponse(), nil
		}
	}()

	// Validating. The HTTP layer already enforces these bounds; the engine
	// re-asserts so library callers get the same guarantees.
	if err := s.validateText("resume_text", resumeText); err != nil {
		return domain.AnalysisResponse{}, err
	}
	if err := s.validateText("job_description", jobText); err != nil {
		return domain.AnalysisResponse{}, err
	}

	cleanResume := textx.CleanText(resumeText)
	cleanJob := textx.CleanText(jobText)

	// Extracting
	resumeMentions, rErr := s.extract(ctx, cleanResume)
	jobMentions, jErr := s.extract(ctx, cleanJob)
	if rErr != nil || jErr != nil {
		lg.Warn("extraction failed for request",
			slog.Any("resume_error", rErr),
			slog.Any("job_error", jErr),
			slog.String("stage", string(StageFailed)))
		return failureResponse(), nil
	}

	// Normalizing: de-alias mentions into canonical id sets; duplicates in
	// one text collapse into a single membership.
	resumeSet := s.normalize(resumeMentions)
	jobSet := s.normalize(jobMentions)
	jobByID := s.groupByCanonical(jobMentions)

	// Matching
	sets := match.Compute(resumeSet, jobSet)

	// Scoring: each job-side skill gets a relevance score from the cleaned
	// job text; the match percentage blends raw and weighted coverage.
	relevance := make(map[string]float64, len(jobSet))
	for id := range jobSet {
		relevance[id] = s.scorer.Score(cleanJob, jobByID[id])
	}
	result := score.MatchPercentage(sets.Matching, append(append([]string{}, sets.Matching...), sets.Gaps...), relevance)

	matching := s.skills(sets.Matching, relevance)
	gaps := s.skills(sets.Gaps, relevance)
	unique := s.skills(sets.Unique, nil)

	// Recommending
	recs := s.rec.Generate(gaps)

	levels := domain.ExperienceLevels{
		Resume: extract.ExperienceLevel(cleanResume),
		Job:    extract.ExperienceLevel(cleanJob),
	}
	analysis := domain.SkillAnalysis{
		MatchingSkills: matching,
		SkillGaps:      gaps,
		UniqueSkills:   unique,
	}

	elapsed := time.Since(start).Milliseconds()
	lg.Info("analysis completed",
		slog.String("stage", string(StageDone)),
		slog.Float64("match_percentage", result.Percentage),
		slog.Int("matching", len(matching)),
		slog.Int("gaps", len(gaps)),
		slog.Int("unique", len(unique)),
		slog.Bool("empty_job_set", result.EmptyJobSet),
		slog.Int64("elapsed_ms", elapsed))

	return domain.AnalysisResponse{
		Success:           true,
		MatchPercentage:   result.Percentage,
		SkillAnalysis:     analysis,
		Recommendations:   recs,
		AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
		ProcessingTimeMS:  &elapsed,
		ExperienceLevel:   &levels,
		KeyInsights:       s.insights(result, analysis, levels),
	}, nil
}

// ExtractorName reports the primary extraction strategy, for logs and status.
func (s AnalyzeService) ExtractorName() string {
	if s.extractor == nil {
		return ""
	}
	return s.extractor.Name()
}

// TaxonomySize reports the number of canonical skills loaded, for readiness probes.
func (s AnalyzeService) TaxonomySize() int {
	if s.tax == nil {
		return 0
	}
	return s.tax.Len()
}

func (s AnalyzeService) validateText(field, text string) error {
	if textx.IsBlank(text) {
		return fmt.Errorf("%w: %s must not be empty or whitespace", domain.ErrInvalidArgument, field)
	}
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	if n < s.minLen {
		return fmt.Errorf("%w: %s must be at least %d characters, got %d", domain.ErrInvalidArgument, field, s.minLen, n)
	}
	if n > s.maxLen {
		return fmt.Errorf("%w: %s exceeds maximum length %d", domain.ErrInvalidArgument, field, s.maxLen)
	}
	return nil
}

// extract runs the primary strategy, degrading to the keyword fallback when
// the NLP pipeline cannot handle the text.
func (s AnalyzeService) extract(ctx domain.Context, text string) ([]domain.Mention, error) {
	mentions, err := s.extractor.Extract(ctx, text)
	if err == nil {
		return mentions, nil
	}
	if s.fallback == nil {
		return nil, err
	}
	observability.LoggerFromContext(ctx).Warn("primary extractor failed, using fallback",
		slog.String("primary", s.extractor.Name()),
		slog.String("fallback", s.fallback.Name()),
		slog.Any("error", err))
	return s.fallback.Extract(ctx, text)
}

func (s AnalyzeService) normalize(mentions []domain.Mention) map[string]struct{} {
	set := make(map[string]struct{}, len(mentions))
	for _, m := range mentions {
		if id, _ := s.tax.Canonical(m.Raw); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

func (s AnalyzeService) groupByCanonical(mentions []domain.Mention) map[string][]domain.Mention {
	grouped := make(map[string][]domain.Mention)
	for _, m := range mentions {
		if id, _ := s.tax.Canonical(m.Raw); id != "" {
			grouped[id] = append(grouped[id], m)
		}
	}
	return grouped
}

// skills materializes canonical ids into display skills. relevance nil means
// the bucket carries no job-side relevance (resume-only skills).
func (s AnalyzeService) skills(ids []string, relevance map[string]float64) []domain.Skill {
	out := make([]domain.Skill, 0, len(ids))
	for _, id := range ids {
		sk := domain.Skill{Name: s.tax.Display(id), Category: s.tax.CategoryOf(id)}
		if relevance != nil {
			r := relevance[id]
			sk.RelevanceScore = &r
		}
		out = append(out, sk)
	}
	return out
}

func failureResponse() domain.AnalysisResponse {
	return domain.AnalysisResponse{
		Success: false,
		SkillAnalysis: domain.SkillAnalysis{
			MatchingSkills: []domain.Skill{},
			SkillGaps:      []domain.Skill{},
			UniqueSkills:   []domain.Skill{},
		},
		Recommendations:   []string{},
		AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

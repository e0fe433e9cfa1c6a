package domain

import (
	"context"
	"errors"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrExtraction      = errors.New("extraction failed")
	ErrInternal        = errors.New("internal error")
)

// Category enumerates the fixed skill taxonomy.
type Category string

const (
	CategoryProgramming Category = "Programming"
	CategoryFrontend    Category = "Frontend"
	CategoryBackend     Category = "Backend"
	CategoryDatabase    Category = "Database"
	CategoryCloudDevOps Category = "Cloud/DevOps"
	CategorySoftSkills  Category = "Soft Skills"
	CategoryOther       Category = "Other"
)

// Skill is one canonical skill with optional category and relevance.
// Identity is the canonical name, case-insensitive.
type Skill struct {
	Name           string   `json:"name"`
	Category       Category `json:"category,omitempty"`
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
}

// SkillAnalysis groups skills into the three comparison buckets.
// Invariant: no canonical skill appears in more than one bucket, and each
// bucket contains a canonical skill at most once.
type SkillAnalysis struct {
	MatchingSkills []Skill `json:"matching_skills"`
	SkillGaps      []Skill `json:"skill_gaps"`
	UniqueSkills   []Skill `json:"unique_skills"`
}

// ExperienceLevels carries the detected seniority per input text.
type ExperienceLevels struct {
	Resume string `json:"resume"`
	Job    string `json:"job"`
}

// AnalysisResponse is the single response object emitted per analysis.
type AnalysisResponse struct {
	Success           bool              `json:"success"`
	MatchPercentage   float64           `json:"match_percentage"`
	SkillAnalysis     SkillAnalysis     `json:"skill_analysis"`
	Recommendations   []string          `json:"recommendations"`
	AnalysisTimestamp string            `json:"analysis_timestamp"`
	ProcessingTimeMS  *int64            `json:"processing_time_ms"`
	ExperienceLevel   *ExperienceLevels `json:"experience_level"`
	KeyInsights       []string          `json:"key_insights"`
}

// Mention is one candidate skill occurrence located in the source text.
// Start/End are byte offsets into the analyzed text.
type Mention struct {
	Raw   string
	Start int
	End   int
}

// SkillExtractor (port)
// Extract returns candidate skill mentions ordered by Start offset. The
// sequence is finite and recomputed per call; implementations hold no
// per-request state and are safe for concurrent use.
type SkillExtractor interface {
	Extract(ctx Context, text string) ([]Mention, error)
	// Name identifies the strategy ("nlp", "keyword") for logs and metrics.
	Name() string
}

// Context is an alias to context.Context so the domain package stays free of
// adapter imports while usecases pass the std context through.
type Context = context.Context

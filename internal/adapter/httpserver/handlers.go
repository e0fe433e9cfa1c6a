package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	obs "github.com/DevikaReddi/skill-sync-pro/internal/adapter/observability"
	"github.com/DevikaReddi/skill-sync-pro/internal/config"
	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
	"github.com/DevikaReddi/skill-sync-pro/internal/usecase"
)

// Version reported by the status endpoint.
const Version = "1.0.0"

// Server aggregates handler dependencies.
type Server struct {
	Cfg     config.Config
	Analyze usecase.AnalyzeService
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, analyze usecase.AnalyzeService) *Server {
	return &Server{Cfg: cfg, Analyze: analyze}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// AnalysisRequest is the JSON payload accepted by the analyze endpoint.
type AnalysisRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// AnalyzeHandler runs the skill comparison pipeline for a resume and a job description.
func (s *Server) AnalyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Accept negotiation: only JSON responses supported
		if a := r.Header.Get("Accept"); a != "" && a != "*/*" && !strings.Contains(a, "application/json") {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusNotAcceptable)
			_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{"code": "INVALID_ARGUMENT", "message": "not acceptable", "details": map[string]any{"accept": a}}})
			return
		}
		// Cap body size to prevent abuse
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		var req AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument), nil)
			return
		}
		if err := getValidator().Struct(req); err != nil {
			verrs := map[string]string{}
			if ve, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range ve {
					verrs[strings.ToLower(fe.Field())] = fe.Tag()
				}
			}
			obs.RecordAnalysis(obs.OutcomeFailedValidation, 0, 0, 0)
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), verrs)
			return
		}
		if res := ValidateAnalysisRequest(req.ResumeText, req.JobDescription, s.Cfg.MinTextLen, s.Cfg.MaxTextLen); !res.Valid {
			obs.RecordAnalysis(obs.OutcomeFailedValidation, 0, 0, 0)
			writeError(w, r, fmt.Errorf("%w: validation failed", domain.ErrInvalidArgument), res.Errors)
			return
		}

		start := time.Now()
		resp, err := s.Analyze.Analyze(r.Context(), req.ResumeText, req.JobDescription)
		dur := time.Since(start)
		if err != nil {
			obs.RecordAnalysis(obs.OutcomeFailedValidation, dur, 0, 0)
			writeError(w, r, err, nil)
			return
		}
		if !resp.Success {
			obs.RecordAnalysis(obs.OutcomeFailed, dur, 0, 0)
			writeJSON(w, http.StatusOK, resp)
			return
		}
		obs.RecordAnalysis(obs.OutcomeCompleted, dur, resp.MatchPercentage, len(resp.SkillAnalysis.SkillGaps))
		writeJSON(w, http.StatusOK, resp)
	}
}

// StatusHandler reports service health for uptime probes.
func (s *Server) StatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":    "operational",
			"version":   Version,
			"extractor": s.Analyze.ExtractorName(),
		})
	}
}

// ReadyzHandler reports readiness of the analysis pipeline.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		checks := []check{
			{Name: "taxonomy", OK: s.Analyze.TaxonomySize() > 0},
			{Name: "extractor", OK: s.Analyze.ExtractorName() != "", Details: s.Analyze.ExtractorName()},
		}
		ok := true
		for _, c := range checks {
			if !c.OK {
				ok = false
				break
			}
		}
		st := http.StatusOK
		if !ok {
			st = http.StatusServiceUnavailable
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}

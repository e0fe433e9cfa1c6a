package observability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route", "method"},
	)

	AnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analyses_total",
			Help: "Total number of analyses by outcome",
		},
		[]string{"outcome"},
	)
	AnalysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "End-to-end analysis duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)

	// Analysis outcome distributions
	MatchPercentageHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_match_percentage",
			Help:    "Distribution of match_percentage ([0,100])",
			Buckets: []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		},
	)
	SkillGapsHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "analysis_skill_gaps",
			Help:    "Distribution of skill gap counts per analysis",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)
)

// Analysis outcome labels.
const (
	OutcomeCompleted        = "completed"
	OutcomeFailed           = "failed"
	OutcomeFailedValidation = "failed_validation"
)

// InitMetrics registers all metrics with the default Prometheus registry.
// Call once per process before serving traffic.
func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(AnalysesTotal)
	prometheus.MustRegister(AnalysisDuration)
	prometheus.MustRegister(MatchPercentageHistogram)
	prometheus.MustRegister(SkillGapsHistogram)
}

// RecordAnalysis records one analysis outcome with its duration and, for
// completed analyses, the score distributions.
func RecordAnalysis(outcome string, duration time.Duration, matchPercentage float64, gapCount int) {
	AnalysesTotal.WithLabelValues(outcome).Inc()
	AnalysisDuration.Observe(duration.Seconds())
	if outcome == OutcomeCompleted {
		MatchPercentageHistogram.Observe(matchPercentage)
		SkillGapsHistogram.Observe(float64(gapCount))
	}
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			route = r.URL.Path
		}
		HTTPRequestsTotal.WithLabelValues(route, r.Method, http.StatusText(ww.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(dur)
	})
}

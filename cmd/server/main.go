// Command server starts the SkillSync Pro analysis HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpserver "github.com/DevikaReddi/skill-sync-pro/internal/adapter/httpserver"
	"github.com/DevikaReddi/skill-sync-pro/internal/adapter/observability"
	"github.com/DevikaReddi/skill-sync-pro/internal/app"
	"github.com/DevikaReddi/skill-sync-pro/internal/config"
	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
	"github.com/DevikaReddi/skill-sync-pro/internal/extract"
	"github.com/DevikaReddi/skill-sync-pro/internal/recommend"
	"github.com/DevikaReddi/skill-sync-pro/internal/score"
	"github.com/DevikaReddi/skill-sync-pro/internal/taxonomy"
	"github.com/DevikaReddi/skill-sync-pro/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	// Register all Prometheus metrics once per process so that /metrics
	// exposes HTTP and analysis instrumentation.
	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	// Skill taxonomy is embedded in the binary; failing to parse it is fatal.
	tax, err := taxonomy.New()
	if err != nil {
		slog.Error("taxonomy load failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("taxonomy loaded", slog.Int("skills", tax.Len()))

	// Extraction strategy: NLP with keyword fallback. If the NLP engine cannot
	// initialize, degrade to keyword-only at startup rather than failing.
	keyword := extract.NewKeyword(tax)
	var extractor domain.SkillExtractor = keyword
	var fallback domain.SkillExtractor
	if cfg.ExtractorMode == config.ExtractorNLP {
		nlp, err := extract.NewNLP(tax)
		if err != nil {
			slog.Warn("nlp extractor unavailable, using keyword extraction only", slog.Any("error", err))
		} else {
			extractor = nlp
			fallback = keyword
		}
	}
	slog.Info("extractor selected", slog.String("extractor", extractor.Name()))

	analyzeSvc := usecase.NewAnalyzeService(
		tax,
		extractor,
		fallback,
		score.NewScorer(),
		recommend.NewGenerator(cfg.RecommendationCap),
		cfg.MinTextLen,
		cfg.MaxTextLen,
	)

	srv := httpserver.NewServer(cfg, analyzeSvc)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting", slog.Int("port", cfg.Port))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}

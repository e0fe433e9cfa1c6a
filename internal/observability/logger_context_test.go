package observability_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DevikaReddi/skill-sync-pro/internal/observability"
)

func TestLoggerRoundTrip(t *testing.T) {
	t.Parallel()
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := observability.ContextWithLogger(context.Background(), lg)
	assert.Same(t, lg, observability.LoggerFromContext(ctx))
}

func TestLoggerFromContext_Defaults(t *testing.T) {
	t.Parallel()
	assert.NotNil(t, observability.LoggerFromContext(context.Background()))
	assert.NotNil(t, observability.LoggerFromContext(nil)) //nolint:staticcheck // nil context tolerated on purpose
}

func TestRequestIDRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := observability.ContextWithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", observability.RequestIDFromContext(ctx))
	assert.Empty(t, observability.RequestIDFromContext(context.Background()))
}

func TestContextWithRequestID_EmptyIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	assert.Equal(t, ctx, observability.ContextWithRequestID(ctx, ""))
}

package telemetry_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/catalog-gateway/internal/config"
	"github.com/donaldgifford/catalog-gateway/internal/telemetry"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSetup_Disabled(t *testing.T) {
	t.Parallel()

	shutdown, err := telemetry.Setup(context.Background(), config.TelemetryConfig{}, "test", discard())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetup_EnabledShutsDownCleanly(t *testing.T) {
	// Installs global providers, so not parallel.
	cfg := config.TelemetryConfig{
		Enabled:     true,
		Endpoint:    "127.0.0.1:1",
		Insecure:    true,
		ServiceName: "catalog-gateway-test",
	}

	shutdown, err := telemetry.Setup(context.Background(), cfg, "test", discard())
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// The collector is unreachable; shutdown must still return within the deadline.
	done := make(chan struct{})
	go func() {
		_ = shutdown(ctx) //nolint:errcheck // export failure expected
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not return")
	}
}

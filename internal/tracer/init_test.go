package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"smartfinance-ai-be/internal/config"
)

func TestInitTracer_Disabled(t *testing.T) {
	shutdown := InitTracer(config.TelemetryConfig{OtelEnabled: false}, "test")
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_Enabled(t *testing.T) {
	// the exporter connects lazily, so no collector is needed here
	shutdown := InitTracer(config.TelemetryConfig{
		OtelEnabled:  true,
		OtelEndpoint: "localhost:4318",
		ServiceName:  "smartfinance-ai-be-test",
	}, "test")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}

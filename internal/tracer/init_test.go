package tracer

import (
	"context"
	"testing"
	"time"

	"mentoria-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

func TestInitDisabled(t *testing.T) {
	shutdown := Init(context.Background(), config.TracingConfig{Enabled: false})
	assert.NoError(t, shutdown(context.Background()))
}

func TestResourceNamesService(t *testing.T) {
	res := newResource(config.TracingConfig{ServiceName: "mentoria-be", Environment: "test"})

	name, ok := res.Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "mentoria-be", name.AsString())

	env, ok := res.Set().Value(semconv.DeploymentEnvironmentKey)
	require.True(t, ok)
	assert.Equal(t, "test", env.AsString())
}

func TestInitEnabledInstallsProvider(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	shutdown := Init(context.Background(), config.TracingConfig{
		Enabled:     true,
		ServiceName: "mentoria-be",
		Endpoint:    "localhost:4318",
		Insecure:    true,
		SampleRatio: 1,
	})
	assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, shutdown(ctx))
}

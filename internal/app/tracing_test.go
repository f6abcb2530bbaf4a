package app

import (
	"context"
	"testing"
	"time"

	"github.com/Misha2007/smart-city-event-map/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitTracing_EmptyAddrDisabled(t *testing.T) {
	before := otel.GetTracerProvider()

	tp, err := InitTracing(context.Background(), config.TracingConfig{ServiceName: "citymap"})

	require.NoError(t, err)
	assert.Nil(t, tp)
	assert.Equal(t, before, otel.GetTracerProvider())
}

func TestInitTracing_InstallsGlobalProvider(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	tp, err := InitTracing(context.Background(), config.TracingConfig{
		OTLPAddr:    "127.0.0.1:4317",
		ServiceName: "citymap",
	})
	require.NoError(t, err)
	require.NotNil(t, tp)

	assert.Same(t, tp, otel.GetTracerProvider())

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = tp.Shutdown(ctx)
}

package service

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/Misha2007/smart-city-event-map/internal/service")

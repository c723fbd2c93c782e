package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
	"go.uber.org/zap"
)

// ServiceName identifies the API in exported traces
const ServiceName = "zenith-task-api"

// ShutdownFunc flushes and stops tracing
type ShutdownFunc func(context.Context) error

// InitTracer initializes the OpenTelemetry tracer provider
func InitTracer(ctx context.Context, serviceName, endpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// Setup starts tracing when enabled and an endpoint is configured. It
// returns whether tracing is active and a shutdown func that is always
// safe to call. Exporter failures are logged and leave tracing off.
func Setup(ctx context.Context, enabled bool, endpoint string, logger *zap.Logger) (bool, ShutdownFunc) {
	noop := func(context.Context) error { return nil }
	if !enabled {
		return false, noop
	}
	if endpoint == "" {
		logger.Warn("otel_enabled_but_endpoint_not_configured")
		return false, noop
	}

	tp, err := InitTracer(ctx, ServiceName, endpoint)
	if err != nil {
		logger.Warn("failed_to_initialize_otel_tracer", zap.Error(err))
		return false, noop
	}

	logger.Info("otel_tracer_initialized", zap.String("endpoint", endpoint))
	return true, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return Shutdown(ctx, tp)
	}
}

// Shutdown gracefully shuts down the tracer provider
func Shutdown(ctx context.Context, tp *sdktrace.TracerProvider) error {
	if tp == nil {
		return nil
	}
	return tp.Shutdown(ctx)
}

// Package telemetry provides OpenTelemetry tracing for the game.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "roguelike"
	serviceVersion = "0.1.0"

	// Environment variables read by ConfigureEnv.
	EnvAPIKey   = "ROGUELIKE_OTLP_API_KEY"
	EnvDataset  = "ROGUELIKE_OTLP_DATASET"
	EnvEndpoint = "ROGUELIKE_OTLP_ENDPOINT"

	defaultEndpoint = "https://api.honeycomb.io"
)

// ConfigureEnv maps the game's own env vars onto the standard OTEL_* ones
// read by the exporter. Returns false if no API key is set, in which case
// tracing should stay disabled.
func ConfigureEnv() bool {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return false
	}

	endpoint := os.Getenv(EnvEndpoint)
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	dataset := os.Getenv(EnvDataset)
	if dataset == "" {
		dataset = serviceName
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter configured from
// the standard OTEL_* environment variables.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Own resource instead of merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
// Without Setup the global provider is a no-op, so spans cost nothing.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}

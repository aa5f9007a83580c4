// Package telemetry sets up OpenTelemetry tracing for a run.
//
// Tracing is off unless a trace file is requested, in which case every
// pipeline and step span is exported to it as JSON:
//
//	shutdown, err := telemetry.Init(ctx, "savi-bootstrap", "trace.json")
//	defer shutdown(ctx)
package telemetry

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/valassis-fcalle/savi-project-bootstrap/internal/version"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
)

// ShutdownFunc flushes pending spans and releases the trace file
type ShutdownFunc func(ctx context.Context) error

func noop(context.Context) error { return nil }

// Init registers a global tracer provider exporting to path. An empty path
// leaves the default no-op provider in place.
func Init(ctx context.Context, serviceName, path string) (ShutdownFunc, error) {
	if path == "" {
		return noop, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return noop, errors.Wrapf(err, errors.ErrFilesystem, "failed to create trace file %s", path)
	}

	tp, err := NewProvider(serviceName, f)
	if err != nil {
		_ = f.Close()
		return noop, err
	}
	otel.SetTracerProvider(tp)

	return func(ctx context.Context) error {
		shutdownErr := tp.Shutdown(ctx)
		closeErr := f.Close()
		if shutdownErr != nil {
			return errors.Wrap(shutdownErr, errors.ErrInternal, "failed to flush spans")
		}
		return closeErr
	}, nil
}

// NewProvider creates a tracer provider that writes spans synchronously to w
func NewProvider(serviceName string, w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create span exporter")
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version.Version),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create trace resource")
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithResource(res),
	), nil
}

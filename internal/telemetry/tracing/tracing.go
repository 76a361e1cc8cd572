package tracing

import (
	"context"

	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("leancoach-backend")

// Setup configures the OpenTelemetry SDK via the honeycomb otelconfig distro.
// The returned function shuts the trace pipeline down.
func Setup(enabled bool, serviceName string) (func(), error) {
	if !enabled {
		log.Debugln("tracing disabled, otel setup skipped")
		return func() {}, nil
	}

	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(serviceName),
	)
	if err != nil {
		return nil, err
	}

	return otelShutdown, nil
}

func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

// ContextWithNewSpan is a small helper for starting a span on the global tracer.
func ContextWithNewSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return GlobalTracer.Start(ctx, name)
}

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of application spans
const TracerName = "loja-backend"

// StartServiceSpan starts an internal span named "{service}.{method}", e.g.
// "sale.record". The caller ends it.
func StartServiceSpan(ctx context.Context, service, method string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(TracerName).Start(ctx, service+"."+method,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// RecordError marks span as failed. nil spans and errors are ignored.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// EndSpan records err, if any, and ends the span. Use it with a named
// return: defer func() { telemetry.EndSpan(span, err) }().
func EndSpan(span trace.Span, err error) {
	RecordError(span, err)
	span.End()
}

// AttrID builds a string attribute from an id such as a uuid.UUID
func AttrID(key string, id fmt.Stringer) attribute.KeyValue {
	return attribute.String(key, id.String())
}

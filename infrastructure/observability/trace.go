package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Span names.
const (
	SpanParse  = "patrol.parse"
	SpanTrack  = "patrol.track"
	SpanDetect = "patrol.detect"
)

// Attribute keys.
const (
	AttrRunID      = attribute.Key("patrol.run.id")
	AttrWidth      = attribute.Key("patrol.grid.width")
	AttrHeight     = attribute.Key("patrol.grid.height")
	AttrVisited    = attribute.Key("patrol.visited")
	AttrSteps      = attribute.Key("patrol.steps")
	AttrCandidates = attribute.Key("patrol.candidates")
	AttrLooped     = attribute.Key("patrol.looped")
	AttrWorkers    = attribute.Key("patrol.workers")
)

// StartSpan starts an internal span. A nil tracer starts a non-recording span.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err, sets the status, and ends span.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

package plinth

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope renders are traced under.
const tracerName = "impractical.co/plinth"

// startRenderSpan opens the span covering one render pass. The tracer comes
// from the globally registered tracer provider; when no provider is
// configured, the span is a no-op and costs nearly nothing.
func startRenderSpan(ctx context.Context, typeName string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "plinth.render",
		trace.WithAttributes(attribute.String("plinth.widget_type", typeName)))
}

// endRenderSpan records how the render went and closes its span: the error
// and an error status on failure, and either way a count of what each head
// slot emitted.
func endRenderSpan(span trace.Span, doc *document, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.SetAttributes(
		attribute.Int("plinth.external_styles", doc.externalStyles),
		attribute.Int("plinth.inline_styles", doc.inlineStyles),
		attribute.Int("plinth.external_scripts", doc.externalScripts),
		attribute.Int("plinth.inline_scripts", doc.inlineScripts),
		attribute.Int("plinth.ready_scripts", doc.readyScripts),
	)
	span.End()
}

package utils

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "app-myarea"

// TraceOperation starts a span with the given attributes. The returned
// cleanup records the duration and ends the span.
func TraceOperation(ctx context.Context, operationName string, attributes map[string]interface{}) (context.Context, trace.Span, func()) {
	start := time.Now()

	otelAttrs := make([]attribute.KeyValue, 0, len(attributes))
	for k, v := range attributes {
		otelAttrs = append(otelAttrs, toAttribute(k, v))
	}

	spanCtx, span := otel.Tracer(tracerName).Start(ctx, operationName, trace.WithAttributes(otelAttrs...))

	cleanup := func() {
		duration := time.Since(start)
		span.SetAttributes(
			attribute.Int64("duration_ms", duration.Milliseconds()),
			attribute.String("duration", duration.String()),
		)
		span.End()
	}

	return spanCtx, span, cleanup
}

// TraceDatabaseOperation traces a MongoDB operation
func TraceDatabaseOperation(ctx context.Context, operation, collection string) (context.Context, trace.Span, func()) {
	return TraceOperation(ctx, "db."+operation, map[string]interface{}{
		"db.operation":  operation,
		"db.collection": collection,
		"db.system":     "mongodb",
	})
}

// TraceExternalService traces a call to a collaborator outside the process
func TraceExternalService(ctx context.Context, serviceName, operation string) (context.Context, trace.Span, func()) {
	return TraceOperation(ctx, serviceName+"."+operation, map[string]interface{}{
		"service.name":      serviceName,
		"service.operation": operation,
	})
}

// TraceScreenAction traces a user action on a screen
func TraceScreenAction(ctx context.Context, screen, action string) (context.Context, trace.Span, func()) {
	return TraceOperation(ctx, "screen."+action, map[string]interface{}{
		"screen.name":   screen,
		"screen.action": action,
	})
}

// RecordErrorInSpan records err on span and marks it failed
func RecordErrorInSpan(span trace.Span, err error, context map[string]interface{}) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	for k, v := range context {
		span.SetAttributes(toAttribute(k, v))
	}
}

// AddSpanAttribute adds a single attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	span.SetAttributes(toAttribute(key, value))
}

func toAttribute(key string, value interface{}) attribute.KeyValue {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case bool:
		return attribute.Bool(key, val)
	case float64:
		return attribute.Float64(key, val)
	default:
		return attribute.String(key, "unknown_type")
	}
}

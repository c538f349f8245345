package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestTraceOperation(t *testing.T) {
	ctx, span, cleanup := TraceOperation(context.Background(), "test.op", map[string]interface{}{
		"string": "value",
		"int":    42,
		"int64":  int64(7),
		"bool":   true,
		"float":  1.5,
		"other":  []string{"x"},
	})
	defer cleanup()

	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
}

func TestTraceOperation_NilAttributes(t *testing.T) {
	_, span, cleanup := TraceOperation(context.Background(), "test.op", nil)
	defer cleanup()

	assert.NotNil(t, span)
}

func TestTraceHelpers(t *testing.T) {
	ctx := context.Background()

	_, span, cleanup := TraceDatabaseOperation(ctx, "upsert", "profiles")
	assert.NotNil(t, span)
	cleanup()

	_, span, cleanup = TraceExternalService(ctx, "auth_backend", "send_otp")
	assert.NotNil(t, span)
	cleanup()

	_, span, cleanup = TraceScreenAction(ctx, "login", "send_otp")
	RecordErrorInSpan(span, errors.New("boom"), map[string]interface{}{"attempt": 1})
	AddSpanAttribute(span, "done", true)
	cleanup()
}

func TestToAttribute(t *testing.T) {
	tests := []struct {
		value interface{}
		want  attribute.Value
	}{
		{"s", attribute.StringValue("s")},
		{3, attribute.IntValue(3)},
		{int64(4), attribute.Int64Value(4)},
		{true, attribute.BoolValue(true)},
		{2.5, attribute.Float64Value(2.5)},
		{struct{}{}, attribute.StringValue("unknown_type")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toAttribute("k", tt.value).Value)
	}
}

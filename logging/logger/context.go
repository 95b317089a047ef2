package logger

import (
	"context"

	"github.com/sangam0207/SpeakDo-Task-Tracker/utils"
)

// TraceIDKey is the context and log field key for trace IDs.
const TraceIDKey = "trace_id"

type traceIDCtxKey struct{}

// GetTraceID gets the trace ID from the context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDCtxKey{}).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets the trace ID on the context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDCtxKey{}, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := utils.NanoID()
	return SetTraceID(ctx, traceID), traceID
}

package ctxutil

import "context"

type traceDataKey struct{}

// TraceData carries per-request identifiers attached by the HTTP middleware.
type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	td, _ := ctx.Value(traceDataKey{}).(*TraceData)
	return td
}

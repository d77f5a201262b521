package logger

import "context"

type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// WithRequestID returns a context carrying id. Loggers attach it to every
// record written with that context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestIDFromContext returns the request id stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

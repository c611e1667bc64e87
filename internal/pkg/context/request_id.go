package context

import "context"

type ctxKey string

const ctxRequestID ctxKey = "request_id"

func WithRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, ctxRequestID, reqID)
}

func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxRequestID).(string)
	return v, ok && v != ""
}

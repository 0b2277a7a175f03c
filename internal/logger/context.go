package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// WithSessionID stores the customer/operator session id on the context so
// every log line for that session can be correlated.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func SessionIDFrom(ctx context.Context) string {
	if v := ctx.Value(sessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with session_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	sid := SessionIDFrom(ctx)
	if sid == "" {
		return L()
	}
	return L().With(zap.String("session_id", sid))
}

package middleware

import (
	"context"
	"net/http"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyRequestID ctxKey = "req_id"
	ctxKeyIsHTMX    ctxKey = "is_htmx"
	ctxKeySession   ctxKey = "session"
)

// WithRequestID stores the request id in context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets the request id from context.
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithHTMX marks the request as originating from htmx.
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request.
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithSession attaches shopper session data to the context.
func WithSession(ctx context.Context, sd *SessionData) context.Context {
	return context.WithValue(ctx, ctxKeySession, sd)
}

// SessionID is a convenience accessor for the shopper session identifier.
func SessionID(r *http.Request) string {
	return GetSession(r).ID
}

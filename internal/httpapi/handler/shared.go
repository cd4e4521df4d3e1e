package handler

import (
	"context"
	"net/http"
)

// contextKey type for request context keys (avoids collisions with other packages).
type contextKey string

// RequestIDContextKey is the context key for the per-request ID set by the request ID middleware.
const RequestIDContextKey contextKey = "request_id"

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, id)
}

// RequestIDFromRequest returns the request ID from the request context, or empty if none was set.
func RequestIDFromRequest(r *http.Request) string {
	if id, ok := r.Context().Value(RequestIDContextKey).(string); ok {
		return id
	}
	return ""
}

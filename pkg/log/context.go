package log

import "context"

// RequestIDKey is the context key under which the HTTP middleware stores the request id.
type RequestIDKey struct{}

// WithRequestID returns a copy of ctx carrying id; loggers attach it to every entry.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, id)
}

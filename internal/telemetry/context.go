package telemetry

import "context"

// cycleIDKey is the context key type used to store a cycle ID.
type cycleIDKey struct{}

// WithCycleID returns a child context that carries the provided cycle ID.
// If ctx is nil, context.Background() is used.
func WithCycleID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, cycleIDKey{}, id)
}

// CycleIDFromContext returns the cycle ID from ctx, if present.
// Returns "", false if the value is missing or not a non-empty string.
func CycleIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v := ctx.Value(cycleIDKey{})
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

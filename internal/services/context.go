package services

import "context"

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	directoryKey contextKey = "directory"
)

// WithRunID annotates context with the identifier of the current CLI run.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithDirectory annotates context with the directory being sequenced.
func WithDirectory(ctx context.Context, dir string) context.Context {
	if dir == "" {
		return ctx
	}
	return context.WithValue(ctx, directoryKey, dir)
}

// DirectoryFromContext returns the directory if present.
func DirectoryFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(directoryKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

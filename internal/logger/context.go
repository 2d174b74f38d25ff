// Package logger provides structured logging utilities for taskapp.
// It includes context-aware logging and log level management.
package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskapp/taskapp/internal/constants"
)

type contextKey string

const (
	requestIDContextKey contextKey = "requestID"
)

// ContextExtractor pulls a request ID out of provider specific contexts
// (for example the AWS Lambda context).
type ContextExtractor interface {
	ExtractRequestID(ctx context.Context) (string, bool)
}

var contextExtractors []ContextExtractor

// RegisterContextExtractor appends an extractor consulted by DeriveRequestLogger.
// Extractors are tried in registration order.
func RegisterContextExtractor(extractor ContextExtractor) {
	contextExtractors = append(contextExtractors, extractor)
}

// ClearContextExtractors removes every registered extractor.
func ClearContextExtractors() {
	contextExtractors = nil
}

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// GetRequestID extracts the request ID from the context.
// The request ID is set by server middleware when available.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDContextKey).(string); ok {
		return requestID
	}

	return ""
}

// ExtractRequestIDFromContext returns the request ID stored with WithRequestID,
// falling back to the registered extractors.
func ExtractRequestIDFromContext(ctx context.Context) string {
	if requestID := GetRequestID(ctx); requestID != "" {
		return requestID
	}

	for _, extractor := range contextExtractors {
		if requestID, ok := extractor.ExtractRequestID(ctx); ok && requestID != "" {
			return requestID
		}
	}

	return ""
}

// DeriveRequestLogger returns a logger enriched with request-scoped fields
// available in the provided context.
func DeriveRequestLogger(ctx context.Context, base *slog.Logger) *slog.Logger {
	if base == nil {
		return slog.Default()
	}

	if requestID := ExtractRequestIDFromContext(ctx); requestID != "" {
		return base.With(constants.RequestIDLogField, requestID)
	}

	return base
}

// GetDeadlineInfo returns logging attributes for context deadline information.
// Returns the absolute deadline time and remaining duration if set, or "none" if no deadline.
func GetDeadlineInfo(ctx context.Context) []any {
	deadline, ok := ctx.Deadline()
	if !ok {
		return []any{"deadline", "none", "deadline_remaining", "none"}
	}

	remaining := time.Until(deadline)
	return []any{
		"deadline", deadline.Format(time.RFC3339),
		"deadline_remaining", remaining.String(),
	}
}

// SliceToMap converts a slice of alternating key-value pairs to a map[string]any.
// Non-string keys are skipped.
func SliceToMap(args []any) map[string]any {
	argsMap := make(map[string]any)
	for i := 0; i < len(args); i += 2 {
		if i+1 < len(args) {
			if key, ok := args[i].(string); ok {
				argsMap[key] = args[i+1]
			}
		}
	}
	return argsMap
}

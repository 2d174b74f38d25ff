// Package events defines the event publishing port and the best-effort
// publishing boundary used by the application services.
package events

import (
	"context"
	"log/slog"

	"github.com/taskapp/taskapp/internal/logger"
)

// Publisher delivers a domain event to the event bus.
type Publisher interface {
	PublishEvent(ctx context.Context, source, detailType string, detail any) error
}

// PublishBestEffort publishes a single event and swallows any failure.
// Failures are logged and reported to the observer (when set); they never
// reach the caller. A nil publisher is a no-op.
func PublishBestEffort(
	ctx context.Context,
	publisher Publisher,
	log *slog.Logger,
	observer FailureObserver,
	source, detailType string,
	detail any,
) {
	if publisher == nil {
		return
	}

	reqLogger := logger.DeriveRequestLogger(ctx, log)

	if err := publisher.PublishEvent(ctx, source, detailType, detail); err != nil {
		reqLogger.Error("failed to publish event", "context", map[string]string{
			"source":      source,
			"detail_type": detailType,
		}, "error", err)

		if observer != nil {
			observer.ObservePublishFailure(ctx, source, detailType, err)
		}
		return
	}

	reqLogger.Debug("event published", "source", source, "detail_type", detailType)
}

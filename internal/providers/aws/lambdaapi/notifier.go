package lambdaapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	awsevents "github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/logger"
)

// EventHandler consumes domain events.
type EventHandler interface {
	HandleEvent(ctx context.Context, source, detailType string, detail json.RawMessage) error
}

// NewNotifierHandler creates the EventBridge consumer handler.
func NewNotifierHandler(handler EventHandler, log *slog.Logger) lambda.Handler {
	return lambda.NewHandler(EventBridgeNotifier(handler, log))
}

// EventBridgeNotifier returns a handler feeding EventBridge events to handler.
// Client errors (malformed events) are logged and dropped; server errors are
// returned so EventBridge retries the delivery.
func EventBridgeNotifier(handler EventHandler, log *slog.Logger) func(context.Context, awsevents.CloudWatchEvent) error {
	return func(ctx context.Context, event awsevents.CloudWatchEvent) error {
		reqLogger := logger.DeriveRequestLogger(ctx, log)
		reqLogger.Debug("received event", "context", map[string]any{
			"event_id":    event.ID,
			"source":      event.Source,
			"detail_type": event.DetailType,
		})

		err := handler.HandleEvent(ctx, event.Source, event.DetailType, event.Detail)
		if err == nil {
			return nil
		}

		if apperrors.GetStatusCode(err) < http.StatusInternalServerError {
			reqLogger.Warn("dropping event", "error", err, "event_id", event.ID)
			return nil
		}

		reqLogger.Error("failed to handle event", "error", err, "event_id", event.ID)
		return err
	}
}

// Package eventbridge publishes taskapp domain events to Amazon EventBridge.
package eventbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/aws/smithy-go"

	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/logger"
)

// Client defines the EventBridge operations used by the Publisher.
type Client interface {
	PutEvents(
		ctx context.Context,
		params *eventbridge.PutEventsInput,
		optFns ...func(*eventbridge.Options),
	) (*eventbridge.PutEventsOutput, error)
}

// Publisher implements events.Publisher on a single event bus.
type Publisher struct {
	client  Client
	busName string
	logger  *slog.Logger
	now     func() time.Time
}

// NewPublisher creates a Publisher for busName.
func NewPublisher(client Client, busName string, log *slog.Logger) *Publisher {
	return &Publisher{
		client:  client,
		busName: busName,
		logger:  log,
		now:     time.Now,
	}
}

// PublishEvent sends one event. Any failure, including a rejected entry,
// is returned as an EVENT_PUBLISH_ERROR.
func (p *Publisher) PublishEvent(ctx context.Context, source, detailType string, detail any) error {
	reqLogger := logger.DeriveRequestLogger(ctx, p.logger)

	payload, err := json.Marshal(detail)
	if err != nil {
		return apperrors.ErrEventPublish("failed to marshal event detail", err)
	}

	logArgs := []any{
		"operation", "EventBridge.PutEvents",
		"event_bus", p.busName,
		"source", source,
		"detail_type", detailType,
	}
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	reqLogger.Debug("calling external service", "context", logger.SliceToMap(logArgs))

	out, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{
			{
				EventBusName: aws.String(p.busName),
				Source:       aws.String(source),
				DetailType:   aws.String(detailType),
				Detail:       aws.String(string(payload)),
				Time:         aws.Time(p.now().UTC()),
			},
		},
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			reqLogger.Debug("EventBridge rejected request", "error_code", apiErr.ErrorCode())
		}
		return apperrors.ErrEventPublish("failed to publish event", err)
	}

	if out.FailedEntryCount > 0 {
		code, msg := "unknown", "entry rejected"
		if len(out.Entries) > 0 {
			code = aws.ToString(out.Entries[0].ErrorCode)
			msg = aws.ToString(out.Entries[0].ErrorMessage)
		}
		return apperrors.ErrEventPublish(
			fmt.Sprintf("event bus rejected %d entries", out.FailedEntryCount),
			fmt.Errorf("%s: %s", code, msg),
		)
	}

	return nil
}

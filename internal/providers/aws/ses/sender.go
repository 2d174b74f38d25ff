// Package ses delivers email through Amazon SES (v2 API).
package ses

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/taskapp/taskapp/internal/backend/contract"
	apperrors "github.com/taskapp/taskapp/internal/errors"
	"github.com/taskapp/taskapp/internal/logger"
)

const charsetUTF8 = "UTF-8"

// Client defines the SES operations used by the Sender.
type Client interface {
	SendEmail(
		ctx context.Context,
		params *sesv2.SendEmailInput,
		optFns ...func(*sesv2.Options),
	) (*sesv2.SendEmailOutput, error)
}

// Sender implements contract.EmailSender.
type Sender struct {
	client           Client
	fromAddress      string
	configurationSet string
	logger           *slog.Logger
}

// NewSender creates a Sender. configurationSet may be empty.
func NewSender(client Client, fromAddress, configurationSet string, log *slog.Logger) *Sender {
	return &Sender{
		client:           client,
		fromAddress:      fromAddress,
		configurationSet: configurationSet,
		logger:           log,
	}
}

// SendEmail delivers a simple (non-templated) message.
func (s *Sender) SendEmail(ctx context.Context, email contract.Email) error {
	reqLogger := logger.DeriveRequestLogger(ctx, s.logger)

	body := &types.Body{}
	if email.TextBody != "" {
		body.Text = &types.Content{Data: aws.String(email.TextBody), Charset: aws.String(charsetUTF8)}
	}
	if email.HTMLBody != "" {
		body.Html = &types.Content{Data: aws.String(email.HTMLBody), Charset: aws.String(charsetUTF8)}
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromAddress),
		Destination:      &types.Destination{ToAddresses: email.To},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(email.Subject), Charset: aws.String(charsetUTF8)},
				Body:    body,
			},
		},
	}
	if s.configurationSet != "" {
		input.ConfigurationSetName = aws.String(s.configurationSet)
	}

	logArgs := []any{
		"operation", "SESv2.SendEmail",
		"recipients", len(email.To),
	}
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	reqLogger.Debug("calling external service", "context", logger.SliceToMap(logArgs))

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return apperrors.ErrEmailDelivery("failed to send email", err)
	}

	reqLogger.Debug("email sent", "message_id", aws.ToString(out.MessageId))
	return nil
}

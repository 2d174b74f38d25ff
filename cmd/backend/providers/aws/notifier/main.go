// Package main implements the EventBridge notifier for taskapp.
// It turns task and user events into emails sent through SES.
package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/taskapp/taskapp/internal/app"
	"github.com/taskapp/taskapp/internal/config"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/logger"
	awsApp "github.com/taskapp/taskapp/internal/providers/aws/app"
	"github.com/taskapp/taskapp/internal/providers/aws/lambdaapi"
)

func main() {
	cfg := config.MustLoadNotifier()
	log := logger.Initialize(constants.Production, cfg.GetLogLevel())
	logger.RegisterContextExtractor(awsApp.NewRequestIDExtractor())

	svc, err := app.Initialize(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to initialize notifier", "error", err)
		os.Exit(1)
	}
	if svc.Notifications == nil {
		log.Error("notifier requires an SES sender address")
		os.Exit(1)
	}

	log.With("version", *constants.GetVersion()).Debug("starting notifier Lambda handler")
	lambda.Start(lambdaapi.NewNotifierHandler(svc.Notifications, log))
}

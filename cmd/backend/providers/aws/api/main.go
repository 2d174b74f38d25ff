// Package main implements the AWS Lambda API handler for taskapp.
// It serves the task, user and auth HTTP routes behind API Gateway.
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
	cfg := config.MustLoadAPI()
	log := logger.Initialize(constants.Production, cfg.GetLogLevel())
	logger.RegisterContextExtractor(awsApp.NewRequestIDExtractor())

	svc, err := app.Initialize(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to initialize api", "error", err)
		os.Exit(1)
	}

	log.With("version", *constants.GetVersion()).Debug("starting api Lambda handler")
	lambda.Start(lambdaapi.NewHandler(svc, cfg.RequestTimeout, cfg.CORSAllowedOrigins))
}

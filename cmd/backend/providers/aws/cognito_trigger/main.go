// Package main implements the Cognito post-confirmation trigger for taskapp.
// It creates the user profile once a sign-up is confirmed.
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
	cfg := config.MustLoadCognitoTrigger()
	log := logger.Initialize(constants.Production, cfg.GetLogLevel())
	logger.RegisterContextExtractor(awsApp.NewRequestIDExtractor())

	svc, err := app.Initialize(context.Background(), cfg, log)
	if err != nil {
		log.Error("failed to initialize cognito trigger", "error", err)
		os.Exit(1)
	}

	log.With("version", *constants.GetVersion()).Debug("starting cognito trigger Lambda handler")
	lambda.Start(lambdaapi.NewCognitoTriggerHandler(svc.Users, log))
}

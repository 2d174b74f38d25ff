// Package lambdaapi provides the AWS Lambda entry point handlers: the HTTP API
// behind API Gateway, the Cognito post-confirmation trigger and the
// EventBridge notification consumer.
package lambdaapi

import (
	"time"

	"github.com/akrylysov/algnhsa"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/taskapp/taskapp/internal/app"
	"github.com/taskapp/taskapp/internal/server"
)

// NewHandler creates the Lambda handler for the HTTP API.
// It uses algnhsa to adapt the chi router to API Gateway HTTP API (payload v2) events,
// which also carry the JWT authorizer claims read by the router.
func NewHandler(svc *app.Service, requestTimeout time.Duration, allowedOrigins []string) lambda.Handler {
	router := server.NewRouter(svc, requestTimeout, allowedOrigins)
	return algnhsa.New(router.Handler(), &algnhsa.Options{
		RequestType: algnhsa.RequestTypeAPIGatewayV2,
	})
}

package aws

import (
	"context"

	"github.com/akrylysov/algnhsa"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// RequestIDExtractor extracts request IDs from Lambda invocation contexts.
// The API Gateway request ID wins over the Lambda invocation ID so log lines
// correlate with API Gateway access logs.
type RequestIDExtractor struct{}

// NewRequestIDExtractor creates a new request ID extractor.
func NewRequestIDExtractor() *RequestIDExtractor {
	return &RequestIDExtractor{}
}

// ExtractRequestID implements logger.ContextExtractor.
func (e *RequestIDExtractor) ExtractRequestID(ctx context.Context) (string, bool) {
	if req, ok := algnhsa.APIGatewayV2RequestFromContext(ctx); ok && req.RequestContext.RequestID != "" {
		return req.RequestContext.RequestID, true
	}

	lc, ok := lambdacontext.FromContext(ctx)
	if !ok || lc.AwsRequestID == "" {
		return "", false
	}

	return lc.AwsRequestID, true
}

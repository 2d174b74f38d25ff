// Package client provides HTTP client functionality for the taskapp API.
// It handles authentication, request/response serialization, and error handling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/config"
	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/logger"
)

// Client provides a generic HTTP client for API operations
type Client struct {
	config     *config.Config
	logger     *slog.Logger
	httpClient *http.Client
}

// New creates a new API client
func New(cfg *config.Config, log *slog.Logger) *Client {
	return &Client{
		config:     cfg,
		logger:     log,
		httpClient: &http.Client{},
	}
}

// Request represents an API request
type Request struct {
	Method string
	Path   string
	Body   any
}

// Response represents an API response
type Response struct {
	StatusCode int
	Body       []byte
}

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" && e.Details != e.Message {
		return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 API error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Do makes an HTTP request to the API
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	var bodyReader io.Reader
	bodySize := 0
	if req.Body != nil {
		jsonData, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodySize = len(jsonData)
		bodyReader = bytes.NewReader(jsonData)
	}

	apiURL, err := url.JoinPath(c.config.APIEndpoint, req.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid API endpoint: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, apiURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set(constants.ContentTypeHeader, "application/json")
	if c.config.IDToken != "" {
		httpReq.Header.Set(constants.AuthorizationHeader, "Bearer "+c.config.IDToken)
	}

	logArgs := []any{
		"operation", "HTTP.Request",
		"method", req.Method,
		"url", apiURL,
		"bodySize", bodySize,
	}
	logArgs = append(logArgs, logger.GetDeadlineInfo(ctx)...)
	c.logger.Debug("calling external service", "context", logger.SliceToMap(logArgs))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("received HTTP response",
		"status", resp.StatusCode,
		"bodySize", len(body),
		"method", req.Method,
		"url", apiURL)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// DoJSON makes a request and unmarshals the response into result.
// Responses with status >= 400 are returned as *APIError.
func (c *Client) DoJSON(ctx context.Context, req Request, result any) error {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode >= constants.HTTPStatusBadRequest {
		return decodeAPIError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || result == nil {
		return nil
	}

	if err = json.Unmarshal(resp.Body, result); err != nil {
		c.logger.Debug("response body", "body", string(resp.Body))
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

func decodeAPIError(resp *Response) error {
	var errorResp api.ErrorResponse
	if err := json.Unmarshal(resp.Body, &errorResp); err != nil || errorResp.Error == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode), Details: string(resp.Body)}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       errorResp.Code,
		Message:    errorResp.Error,
		Details:    errorResp.Details,
	}
}

// GetHealth returns the API health report. A degraded deployment answers
// 503 with a report body, which is returned without error.
func (c *Client) GetHealth(ctx context.Context) (*api.HealthResponse, error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/v1/health"})
	if err != nil {
		return nil, err
	}

	var health api.HealthResponse
	if jsonErr := json.Unmarshal(resp.Body, &health); jsonErr == nil && health.Status != "" {
		return &health, nil
	}
	if resp.StatusCode >= constants.HTTPStatusBadRequest {
		return nil, decodeAPIError(resp)
	}
	return nil, fmt.Errorf("failed to parse health response")
}

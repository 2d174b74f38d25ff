package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/domain"
	apperrors "github.com/taskapp/taskapp/internal/errors"
)

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, message, details string) {
	writeErrorResponseWithCode(w, statusCode, "", message, details)
}

func writeErrorResponseWithCode(w http.ResponseWriter, statusCode int, code, message, details string) {
	writeJSON(w, statusCode, api.ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// extractErrorInfo extracts statusCode, errorCode, and errorDetails from an error.
func extractErrorInfo(err error) (statusCode int, errorCode, errorDetails string) {
	return apperrors.GetStatusCode(err),
		apperrors.GetErrorCode(err),
		apperrors.GetErrorDetails(err)
}

// decodeRequestBody decodes and validates the JSON request body.
// On failure it writes a 400 response and returns the error.
func (r *Router) decodeRequestBody(w http.ResponseWriter, req *http.Request, v any) error {
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		writeErrorResponseWithCode(w, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"invalid request body", err.Error())
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	if err := r.validate.Struct(v); err != nil {
		writeErrorResponseWithCode(w, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"invalid request body", validationDetails(err))
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func validationDetails(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// requireActor returns the authenticated caller or writes a 401 response.
func requireActor(w http.ResponseWriter, req *http.Request) (domain.Actor, bool) {
	actor, ok := actorFromContext(req.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "user not found in context")
		return domain.Actor{}, false
	}
	return actor, true
}

// getRequiredURLParam extracts and validates a required URL parameter.
func getRequiredURLParam(w http.ResponseWriter, req *http.Request, name string) (string, bool) {
	param := strings.TrimSpace(chi.URLParam(req, name))
	if param == "" {
		writeErrorResponse(w, http.StatusBadRequest, "invalid "+name, name+" is required")
		return "", false
	}
	return param, true
}

// handleAndLogError logs an error and writes a standardized error response.
// Client errors are logged at debug level, server errors at error level.
func (r *Router) handleAndLogError(w http.ResponseWriter, req *http.Request, err error, operationName string) {
	logger := r.GetLoggerFromContext(req.Context())
	statusCode, errorCode, errorDetails := extractErrorInfo(err)

	logFn := logger.Error
	if statusCode < http.StatusInternalServerError {
		logFn = logger.Debug
	}
	logFn("operation failed",
		"operation", operationName,
		"error", err,
		"status_code", statusCode,
		"error_code", errorCode,
	)

	writeErrorResponseWithCode(w, statusCode, errorCode, "failed to "+operationName, errorDetails)
}

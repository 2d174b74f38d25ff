package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/taskapp/taskapp/internal/errors"
)

// AssertAppErrorCode fails the test unless err carries the application error code.
func AssertAppErrorCode(t *testing.T, err error, code string) bool {
	t.Helper()
	if !assert.Error(t, err) {
		return false
	}
	return assert.Equal(t, code, apperrors.GetErrorCode(err), "error: %v", err)
}

// AssertAppErrorStatus fails the test unless err maps to the HTTP status.
func AssertAppErrorStatus(t *testing.T, err error, status int) bool {
	t.Helper()
	if !assert.Error(t, err) {
		return false
	}
	return assert.Equal(t, status, apperrors.GetStatusCode(err), "error: %v", err)
}

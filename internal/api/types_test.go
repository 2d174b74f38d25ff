package api

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponseOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(ErrorResponse{Error: "test error"})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "code")
	assert.NotContains(t, string(data), "details")
}

func TestUpdateTaskRequestDistinguishesOmittedFields(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":""}`), &req))

	assert.Nil(t, req.Title)
	require.NotNil(t, req.Description)
	assert.Empty(t, *req.Description)
}

func TestUpdatePreferencesRequestPartial(t *testing.T) {
	var req UpdatePreferencesRequest
	require.NoError(t, json.Unmarshal([]byte(`{"notifications":false}`), &req))

	require.NotNil(t, req.Notifications)
	assert.False(t, *req.Notifications)
	assert.Nil(t, req.Theme)
}

func TestPhoneNumberRequiresE164Prefix(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		phone   string
		wantErr bool
	}{
		{phone: "", wantErr: false},
		{phone: "+15550100", wantErr: false},
		{phone: "12345", wantErr: true},
		{phone: "15550100", wantErr: true},
		{phone: "+0123", wantErr: true},
		{phone: "+1 555 0100", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			signUp := SignUpRequest{Email: "a@example.com", Password: "longenough", PhoneNumber: tt.phone}
			profile := CreateUserProfileRequest{PhoneNumber: tt.phone}

			if tt.wantErr {
				assert.Error(t, validate.Struct(signUp))
				assert.Error(t, validate.Struct(profile))
				return
			}
			assert.NoError(t, validate.Struct(signUp))
			assert.NoError(t, validate.Struct(profile))
		})
	}
}

package api

import "github.com/taskapp/taskapp/internal/domain"

// CreateUserProfileRequest is the body of POST /api/v1/users/me.
// The user ID always comes from the authenticated identity.
type CreateUserProfileRequest struct {
	Email       string                    `json:"email" validate:"omitempty,email"`
	PhoneNumber string                    `json:"phoneNumber,omitempty" validate:"omitempty,startswith=+,e164"`
	Preferences *UpdatePreferencesRequest `json:"preferences,omitempty"`
}

// UpdatePreferencesRequest is the body of PATCH /api/v1/users/me/preferences.
type UpdatePreferencesRequest struct {
	Notifications *bool   `json:"notifications,omitempty"`
	Theme         *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
}

// UserResponse wraps a single user profile.
type UserResponse struct {
	User domain.UserRecord `json:"user" yaml:"user"`
}

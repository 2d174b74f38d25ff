package server

import (
	"net/http"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/backend/users"
	"github.com/taskapp/taskapp/internal/domain"
	apperrors "github.com/taskapp/taskapp/internal/errors"
)

// preferencesPatch converts the request body into a domain patch.
func preferencesPatch(req *api.UpdatePreferencesRequest) (domain.PreferencesPatch, error) {
	var patch domain.PreferencesPatch
	if req == nil {
		return patch, nil
	}

	patch.Notifications = req.Notifications
	if req.Theme != nil {
		theme, err := domain.ParseTheme(*req.Theme)
		if err != nil {
			return patch, apperrors.ErrBadRequest("invalid theme", err)
		}
		patch.Theme = &theme
	}
	return patch, nil
}

// handleGetCurrentUser handles GET /api/v1/users/me.
func (r *Router) handleGetCurrentUser(w http.ResponseWriter, req *http.Request) {
	actor, ok := requireActor(w, req)
	if !ok {
		return
	}

	user, err := r.svc.Users.GetUserByID(req.Context(), actor.UserID)
	if err != nil {
		r.handleAndLogError(w, req, err, "get user")
		return
	}
	if user == nil {
		writeErrorResponseWithCode(w, http.StatusNotFound, apperrors.ErrCodeNotFound,
			"user not found", "no profile for the authenticated user")
		return
	}

	writeJSON(w, http.StatusOK, api.UserResponse{User: user.Record()})
}

// handleCreateCurrentUser handles POST /api/v1/users/me.
// The email defaults to the one in the caller's token.
func (r *Router) handleCreateCurrentUser(w http.ResponseWriter, req *http.Request) {
	actor, ok := requireActor(w, req)
	if !ok {
		return
	}

	var createReq api.CreateUserProfileRequest
	if err := r.decodeRequestBody(w, req, &createReq); err != nil {
		return
	}

	patch, err := preferencesPatch(createReq.Preferences)
	if err != nil {
		r.handleAndLogError(w, req, err, "create user")
		return
	}

	email := createReq.Email
	if email == "" {
		email = actor.UserEmail
	}

	user, err := r.svc.Users.CreateUserProfile(req.Context(), users.CreateProfileInput{
		UserID:      actor.UserID,
		Email:       email,
		PhoneNumber: createReq.PhoneNumber,
		Preferences: patch,
	})
	if err != nil {
		r.handleAndLogError(w, req, err, "create user")
		return
	}

	writeJSON(w, http.StatusCreated, api.UserResponse{User: user.Record()})
}

// handleUpdatePreferences handles PATCH /api/v1/users/me/preferences.
func (r *Router) handleUpdatePreferences(w http.ResponseWriter, req *http.Request) {
	actor, ok := requireActor(w, req)
	if !ok {
		return
	}

	var prefsReq api.UpdatePreferencesRequest
	if err := r.decodeRequestBody(w, req, &prefsReq); err != nil {
		return
	}

	patch, err := preferencesPatch(&prefsReq)
	if err != nil {
		r.handleAndLogError(w, req, err, "update preferences")
		return
	}
	if patch.IsEmpty() {
		writeErrorResponseWithCode(w, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"invalid request body", "at least one preference is required")
		return
	}

	user, err := r.svc.Users.UpdateUserPreferences(req.Context(), actor.UserID, patch)
	if err != nil {
		r.handleAndLogError(w, req, err, "update preferences")
		return
	}

	writeJSON(w, http.StatusOK, api.UserResponse{User: user.Record()})
}

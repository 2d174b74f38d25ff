package server

import (
	"net/http"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/backend/contract"
	apperrors "github.com/taskapp/taskapp/internal/errors"
)

func (r *Router) requireAuthService(w http.ResponseWriter, req *http.Request, operationName string) bool {
	if r.svc.Auth == nil {
		r.handleAndLogError(w, req,
			apperrors.ErrServiceUnavailable("authentication is not configured", nil), operationName)
		return false
	}
	return true
}

// handleSignUp handles POST /api/v1/auth/signup.
func (r *Router) handleSignUp(w http.ResponseWriter, req *http.Request) {
	if !r.requireAuthService(w, req, "sign up") {
		return
	}

	var signUpReq api.SignUpRequest
	if err := r.decodeRequestBody(w, req, &signUpReq); err != nil {
		return
	}

	result, err := r.svc.Auth.SignUp(req.Context(), contract.SignUpInput{
		Email:       signUpReq.Email,
		Password:    signUpReq.Password,
		PhoneNumber: signUpReq.PhoneNumber,
	})
	if err != nil {
		r.handleAndLogError(w, req, err, "sign up")
		return
	}

	message := "check your email for the confirmation code"
	if result.UserConfirmed {
		message = "user created and confirmed"
	}
	writeJSON(w, http.StatusCreated, api.SignUpResponse{
		UserID:        result.UserID,
		UserConfirmed: result.UserConfirmed,
		Message:       message,
	})
}

// handleConfirmSignUp handles POST /api/v1/auth/confirm.
func (r *Router) handleConfirmSignUp(w http.ResponseWriter, req *http.Request) {
	if !r.requireAuthService(w, req, "confirm sign up") {
		return
	}

	var confirmReq api.ConfirmSignUpRequest
	if err := r.decodeRequestBody(w, req, &confirmReq); err != nil {
		return
	}

	if err := r.svc.Auth.ConfirmSignUp(req.Context(), confirmReq.Email, confirmReq.Code); err != nil {
		r.handleAndLogError(w, req, err, "confirm sign up")
		return
	}

	writeJSON(w, http.StatusOK, api.ConfirmSignUpResponse{Message: "user confirmed"})
}

// handleSignIn handles POST /api/v1/auth/login.
func (r *Router) handleSignIn(w http.ResponseWriter, req *http.Request) {
	if !r.requireAuthService(w, req, "sign in") {
		return
	}

	var signInReq api.SignInRequest
	if err := r.decodeRequestBody(w, req, &signInReq); err != nil {
		return
	}

	tokens, err := r.svc.Auth.SignIn(req.Context(), signInReq.Email, signInReq.Password)
	if err != nil {
		r.handleAndLogError(w, req, err, "sign in")
		return
	}

	writeJSON(w, http.StatusOK, api.SignInResponse{
		IDToken:      tokens.IDToken,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
		TokenType:    tokens.TokenType,
	})
}

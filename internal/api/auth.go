package api

// SignUpRequest is the body of POST /api/v1/auth/signup.
type SignUpRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phoneNumber,omitempty" validate:"omitempty,startswith=+,e164"`
}

// SignUpResponse is returned after a successful sign-up.
type SignUpResponse struct {
	UserID        string `json:"user_id" yaml:"user_id"`
	UserConfirmed bool   `json:"user_confirmed" yaml:"user_confirmed"`
	Message       string `json:"message" yaml:"message"`
}

// ConfirmSignUpRequest is the body of POST /api/v1/auth/confirm.
type ConfirmSignUpRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// ConfirmSignUpResponse is returned after confirming a sign-up.
type ConfirmSignUpResponse struct {
	Message string `json:"message" yaml:"message"`
}

// SignInRequest is the body of POST /api/v1/auth/login.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse carries the tokens issued by the identity provider.
type SignInResponse struct {
	IDToken      string `json:"id_token"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int32  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

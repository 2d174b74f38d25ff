package server

import (
	"net/http"
	"strings"

	"github.com/akrylysov/algnhsa"

	"github.com/taskapp/taskapp/internal/constants"
	"github.com/taskapp/taskapp/internal/domain"
)

// IdentityResolver returns the authenticated caller of a request.
type IdentityResolver interface {
	Resolve(req *http.Request) (domain.Actor, bool)
}

// JWTClaimsIdentity reads the caller from the claims validated by the
// API Gateway JWT authorizer (Cognito user pool).
type JWTClaimsIdentity struct{}

// Resolve implements IdentityResolver.
func (JWTClaimsIdentity) Resolve(req *http.Request) (domain.Actor, bool) {
	proxyReq, ok := algnhsa.APIGatewayV2RequestFromContext(req.Context())
	if !ok || proxyReq.RequestContext.Authorizer == nil || proxyReq.RequestContext.Authorizer.JWT == nil {
		return domain.Actor{}, false
	}

	claims := proxyReq.RequestContext.Authorizer.JWT.Claims
	sub := strings.TrimSpace(claims["sub"])
	if sub == "" {
		return domain.Actor{}, false
	}

	return domain.Actor{UserID: sub, UserEmail: claims["email"]}, true
}

// TrustedHeaderIdentity reads the caller from the X-User-Id and
// X-User-Email headers. Only the local dev server uses it.
type TrustedHeaderIdentity struct{}

// Resolve implements IdentityResolver.
func (TrustedHeaderIdentity) Resolve(req *http.Request) (domain.Actor, bool) {
	userID := strings.TrimSpace(req.Header.Get(constants.UserIDHeader))
	if userID == "" {
		return domain.Actor{}, false
	}
	return domain.Actor{
		UserID:    userID,
		UserEmail: strings.TrimSpace(req.Header.Get(constants.UserEmailHeader)),
	}, true
}

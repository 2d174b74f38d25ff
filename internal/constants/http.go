package constants

// ContentTypeHeader is the HTTP Content-Type header name.
const ContentTypeHeader = "Content-Type"

// AuthorizationHeader carries the Cognito ID token on CLI requests.
const AuthorizationHeader = "Authorization"

// Trusted identity headers accepted by the local development server only.
const (
	UserIDHeader    = "X-User-Id"
	UserEmailHeader = "X-User-Email"
)

// HTTPStatusBadRequest is the HTTP status code for bad requests (400)
const HTTPStatusBadRequest = 400

// HTTPStatusServerError is the HTTP status code for server errors (500)
const HTTPStatusServerError = 500

// RequestIDByteSize is the number of random bytes used to generate request IDs
const RequestIDByteSize = 16

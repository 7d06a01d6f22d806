package common

// Backend endpoints, relative to the configured base URL.
const (
	PathAuthUser  = "/auth-user/"
	PathGetUser   = "/get-user/"
	PathLoadPosts = "/load-posts/"
)

// AuthorizationHeaderName carries the session token on authenticated requests
// as "<AuthorizationScheme> <token>".
const (
	AuthorizationHeaderName = "Authorization"
	AuthorizationScheme     = "Token"
)

// RequestIDHeaderName correlates client log lines with backend requests.
const RequestIDHeaderName = "X-Request-ID"

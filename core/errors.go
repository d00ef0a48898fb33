package core

import "errors"

// Registration errors
var (
	ErrDuplicateUsername = errors.New("a user with that username already exists") // 409 Conflict
	ErrDuplicateEmail    = errors.New("email already registered")                 // 409 Conflict
	ErrUserNotFound      = errors.New("user not found")                           // 404 Not Found
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password") // 401 Unauthorized
	ErrUnauthenticated    = errors.New("authentication required")      // 401 Unauthorized
)

// Session errors
var (
	ErrMissingAuthHeader = errors.New("missing authorization header") // 401
	ErrInvalidToken      = errors.New("invalid session token")        // 401
	ErrSessionNotFound   = errors.New("session not found")            // 401
	ErrSessionExpired    = errors.New("session expired")              // 401
	ErrCacheNotFound     = errors.New("session not found in cache")
)

// Password reset errors
var (
	ErrInvalidOrExpiredToken = errors.New("password reset token is invalid or has expired") // 401
	ErrPasswordMismatch      = errors.New("passwords do not match")                         // 400
)

// Validation errors (client input)
var (
	ErrInvalidAuthHeader = errors.New("invalid authorization format, expected 'Bearer <token>'") // 401
	ErrUsernameRequired  = errors.New("username is required")                                    // 400
	ErrEmailRequired     = errors.New("email is required")                                       // 400
	ErrPasswordRequired  = errors.New("password is required")                                    // 400
	ErrRoleRequired      = errors.New("role is required")                                        // 400
	ErrGenderRequired    = errors.New("gender is required")                                      // 400
	ErrInvalidEmail      = errors.New("invalid email format")                                    // 400
	ErrInvalidRole       = errors.New("invalid role")                                           // 400
)

// Infrastructure errors
var (
	// ErrDependencyUnavailable marks transient store or mail failures.
	// The core never retries; callers decide.
	ErrDependencyUnavailable = errors.New("dependency unavailable") // 503
)

// Config errors (server-side configuration)
var (
	ErrStoreRequired       = errors.New("storage adapter is required") // 500
	ErrMailSenderRequired  = errors.New("mail sender is required")     // 500
	ErrHTTPAdapterRequired = errors.New("http adapter is required")    // 500
)

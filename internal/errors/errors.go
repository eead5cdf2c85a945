// Package errors defines the caller-facing error taxonomy of the service.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindRateLimited
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// HTTPStatus maps the kind to a transport status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// APIError is an error that is safe to show to the caller.
type APIError struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *APIError) Unwrap() error {
	return e.cause
}

// KindOf returns the kind of the first APIError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindInternal
}

// As extracts the APIError from err's chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeCannotFollowSelf   = "CANNOT_FOLLOW_SELF"
	CodeInvalidPagination  = "INVALID_PAGINATION"
	CodeInvalidContent     = "INVALID_CONTENT"
	CodeInvalidMediaURL    = "INVALID_MEDIA_URL"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeNotFollowing       = "NOT_FOLLOWING"
	CodeRouteNotFound      = "ROUTE_NOT_FOUND"
	CodeAlreadyFollowing   = "ALREADY_FOLLOWING"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeRateLimited        = "RATE_LIMITED"
	CodeInternal           = "INTERNAL_ERROR"
)

// NewErrValidation reports caller data that violates an invariant.
func NewErrValidation(message string) *APIError {
	return &APIError{Kind: KindValidation, Code: CodeValidation, Message: message}
}

func NewErrCannotFollowSelf() *APIError {
	return &APIError{Kind: KindValidation, Code: CodeCannotFollowSelf, Message: "Cannot follow yourself"}
}

func NewErrInvalidPage() *APIError {
	return &APIError{Kind: KindValidation, Code: CodeInvalidPagination, Message: "Page must be greater than 0"}
}

func NewErrInvalidLimit(max int) *APIError {
	return &APIError{Kind: KindValidation, Code: CodeInvalidPagination, Message: fmt.Sprintf("Limit must be between 1 and %d", max)}
}

func NewErrEmptyContent() *APIError {
	return &APIError{Kind: KindValidation, Code: CodeInvalidContent, Message: "Post content cannot be empty"}
}

func NewErrContentTooLong(max int) *APIError {
	return &APIError{Kind: KindValidation, Code: CodeInvalidContent, Message: fmt.Sprintf("Post content cannot exceed %d characters", max)}
}

func NewErrInvalidMediaURL() *APIError {
	return &APIError{Kind: KindValidation, Code: CodeInvalidMediaURL, Message: "Invalid media URL format"}
}

func NewErrWeakPassword(min int) *APIError {
	return &APIError{Kind: KindValidation, Code: CodeWeakPassword, Message: fmt.Sprintf("Password must be at least %d characters long", min)}
}

func NewErrUserNotFound(ref string) *APIError {
	return &APIError{Kind: KindNotFound, Code: CodeUserNotFound, Message: "User not found: " + ref}
}

func NewErrNotFollowing() *APIError {
	return &APIError{Kind: KindNotFound, Code: CodeNotFollowing, Message: "You are not following this user"}
}

func NewErrRouteNotFound() *APIError {
	return &APIError{Kind: KindNotFound, Code: CodeRouteNotFound, Message: "Route not found"}
}

func NewErrAlreadyFollowing() *APIError {
	return &APIError{Kind: KindConflict, Code: CodeAlreadyFollowing, Message: "Already following this user"}
}

func NewErrEmailIsTaken(email string) *APIError {
	return &APIError{Kind: KindConflict, Code: CodeEmailTaken, Message: "Email already registered: " + email}
}

func NewErrUsernameIsTaken(username string) *APIError {
	return &APIError{Kind: KindConflict, Code: CodeUsernameTaken, Message: "Username already taken: " + username}
}

func NewErrInvalidCredentials() *APIError {
	return &APIError{Kind: KindUnauthorized, Code: CodeInvalidCredentials, Message: "Invalid email or password"}
}

func NewErrMissingAuthorizationToken() *APIError {
	return &APIError{Kind: KindUnauthorized, Code: CodeMissingToken, Message: "No token provided"}
}

func NewErrInvalidAuthorizationToken() *APIError {
	return &APIError{Kind: KindUnauthorized, Code: CodeInvalidToken, Message: "Invalid or expired token"}
}

func NewErrTooManyRequests() *APIError {
	return &APIError{Kind: KindRateLimited, Code: CodeRateLimited, Message: "Too many requests, please try again later"}
}

// NewErrInternalServerError wraps an unexpected failure. The cause stays
// reachable through Unwrap but is never part of Message.
func NewErrInternalServerError(cause error) *APIError {
	return &APIError{Kind: KindInternal, Code: CodeInternal, Message: "Internal server error", cause: cause}
}

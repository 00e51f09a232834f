package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidToken is the parent of every token verification failure.
var ErrInvalidToken = errors.New("invalid token")

// Token verification failures. All of them wrap ErrInvalidToken so callers that
// do not care about the reason can match on the parent.
var (
	ErrTokenMalformed   = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenExpired     = fmt.Errorf("%w: expired", ErrInvalidToken)
	ErrTokenNotValidYet = fmt.Errorf("%w: not valid yet", ErrInvalidToken)
	ErrTokenSignature   = fmt.Errorf("%w: bad signature or claims", ErrInvalidToken)
)

// ErrRefreshTokenMismatch indicates that a presented refresh token is not the one
// currently stored for the user (rotated out, logged out or never issued).
var ErrRefreshTokenMismatch = errors.New("refresh token does not match stored value")

// ErrUpload indicates that an asset could not be pushed to object storage.
var ErrUpload = errors.New("upload failed")

// AppError is the single error kind rendered at the HTTP boundary.
// Failures are distinguished by StatusCode only.
type AppError struct {
	StatusCode int
	Message    string
	Errors     []string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of the error carrying the given sub-errors.
func (e *AppError) WithDetails(details ...string) *AppError {
	cp := *e
	cp.Errors = append(append([]string{}, e.Errors...), details...)
	return &cp
}

// NewAppError creates an AppError with the given status, message and cause.
func NewAppError(statusCode int, message string, err error) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

func BadRequest(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

func Unauthorized(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, message, err)
}

func NotFound(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

func Conflict(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

// Internal hides the cause from the caller; it is only kept for logging.
func Internal(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// AsAppError converts any error into an AppError. Errors that are not already
// an AppError become a generic 500 so internal details never leak.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal server error", err)
}

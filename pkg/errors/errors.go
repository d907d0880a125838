package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Details interface{}
	Err     error
}

// WithDetails attaches a payload that the response layer includes in the
// error body, for conflicts that must surface the existing aggregate.
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

func TooManyRequests(message string) *AppError {
	return &AppError{
		Code:    "TOO_MANY_REQUESTS",
		Message: message,
		Status:  http.StatusTooManyRequests,
		Err:     nil,
	}
}

// SelfAction is returned when a user targets their own advert or listing.
func SelfAction(message string) *AppError {
	return &AppError{
		Code:    "SELF_ACTION",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     nil,
	}
}

// InvalidStatus is returned when a transition is attempted on an aggregate
// that is no longer pending.
func InvalidStatus(message string) *AppError {
	return &AppError{
		Code:    "INVALID_STATUS",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     nil,
	}
}

// AlreadyInteracted is returned when a user swipes on an advert they already
// interacted with. The first interaction is final.
func AlreadyInteracted(message string) *AppError {
	return &AppError{
		Code:    "ALREADY_INTERACTED",
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

// DuplicatePending is returned when a pending application already exists for
// the same applicant and listing.
func DuplicatePending(message string) *AppError {
	return &AppError{
		Code:    "DUPLICATE_PENDING",
		Message: message,
		Status:  http.StatusConflict,
		Err:     nil,
	}
}

func IncompatibleAdvert(message string) *AppError {
	return &AppError{
		Code:    "INCOMPATIBLE_ADVERT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     nil,
	}
}

func NoQualifyingAdvert(message string) *AppError {
	return &AppError{
		Code:    "NO_QUALIFYING_ADVERT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     nil,
	}
}

func InvalidAdvertType(message string) *AppError {
	return &AppError{
		Code:    "INVALID_ADVERT_TYPE",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     nil,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

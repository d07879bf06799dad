package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when signing up with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrOrderNotFound is returned when no order matches a well-formed id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidOrderID is returned when an order id is not a well-formed identifier.
	ErrInvalidOrderID = errors.New("invalid order id")
	// ErrNegativeAmount is returned when a monetary field is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrOrderNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ORDER_NOT_FOUND")
	case ErrInvalidOrderID:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ORDER_ID")
	case ErrNegativeAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NEGATIVE_AMOUNT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies the category of an application error.
type ErrorCode string

const (
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeDuplicatedData    ErrorCode = "DUPLICATED_DATA"
	ErrCodeConditionsNotMet  ErrorCode = "CONDITIONS_NOT_MET"
	ErrCodeParameterNotValid ErrorCode = "PARAMETER_NOT_VALID"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// GenericInternalMessage is what clients see for any unexpected failure.
const GenericInternalMessage = "an unexpected error occurred"

// AppError is a typed application error carried from services to the HTTP layer.
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a key/value pair to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsInternal reports whether the error must be hidden from clients.
func (e *AppError) IsInternal() bool {
	return e.Code == ErrCodeInternal
}

// PublicMessage is the message safe to send to a client.
func (e *AppError) PublicMessage() string {
	if e.IsInternal() {
		return GenericInternalMessage
	}
	return e.Message
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// NewNotFound reports that a referenced entity does not exist.
func NewNotFound(resource string, id interface{}) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s with id = %v not found", resource, id)).
		WithDetail("resource", resource).
		WithDetail("id", id)
}

// NewDuplicatedData reports a uniqueness violation.
func NewDuplicatedData(message string) *AppError {
	return New(ErrCodeDuplicatedData, message)
}

// NewConditionsNotMet reports a missing required field or a failed business precondition.
func NewConditionsNotMet(message string) *AppError {
	return New(ErrCodeConditionsNotMet, message)
}

// NewParameterNotValid reports a malformed request parameter.
func NewParameterNotValid(parameter, reason string) *AppError {
	return New(ErrCodeParameterNotValid, fmt.Sprintf("invalid value of parameter %s: %s", parameter, reason)).
		WithDetail("parameter", parameter).
		WithDetail("reason", reason)
}

// NewInternal wraps an unexpected failure.
func NewInternal(operation string, err error) *AppError {
	return Wrap(err, ErrCodeInternal, fmt.Sprintf("operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// As extracts an *AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of err, or ErrCodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// HTTPStatus maps an error code to a response status.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeDuplicatedData:
		return http.StatusConflict
	case ErrCodeConditionsNotMet:
		return http.StatusUnprocessableEntity
	case ErrCodeParameterNotValid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Description returns the human-readable category label for a code.
func Description(code ErrorCode) string {
	switch code {
	case ErrCodeNotFound:
		return "requested resource not found"
	case ErrCodeDuplicatedData:
		return "data conflict"
	case ErrCodeConditionsNotMet:
		return "conditions not met"
	case ErrCodeParameterNotValid:
		return "invalid request parameters"
	default:
		return "internal server error"
	}
}

// Package apperr carries the error taxonomy shared by usecases and adapters.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeConflict        = "CONFLICT"
	CodeUnavailable     = "UNAVAILABLE"
	CodeInternal        = "INTERNAL"
)

var httpStatus = map[string]int{
	CodeInvalidArgument: http.StatusUnprocessableEntity,
	CodeNotFound:        http.StatusNotFound,
	CodeUnauthenticated: http.StatusUnauthorized,
	CodeForbidden:       http.StatusForbidden,
	CodeConflict:        http.StatusConflict,
	CodeUnavailable:     http.StatusServiceUnavailable,
	CodeInternal:        http.StatusInternalServerError,
}

// AppError is an error tagged with one of the codes above.
type AppError struct {
	code    string
	message string
	err     error
}

func New(code, message string, err error) *AppError {
	return &AppError{code: code, message: message, err: err}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string    { return e.code }
func (e *AppError) Message() string { return e.message }
func (e *AppError) Unwrap() error   { return e.err }

func Validation(message string) *AppError   { return New(CodeInvalidArgument, message, nil) }
func NotFound(message string) *AppError     { return New(CodeNotFound, message, nil) }
func Unauthorized(message string) *AppError { return New(CodeUnauthenticated, message, nil) }
func Forbidden(message string) *AppError    { return New(CodeForbidden, message, nil) }
func Conflict(message string) *AppError     { return New(CodeConflict, message, nil) }

// Unavailable marks a dependency outage the client may retry.
func Unavailable(message string, err error) *AppError { return New(CodeUnavailable, message, err) }

// Persistence wraps a store failure. The wrapped cause stays reachable via errors.Is/As.
func Persistence(message string, err error) *AppError { return New(CodeInternal, message, err) }

// CodeOf returns the code of the outermost AppError in err's chain, or CodeInternal.
func CodeOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.code
	}
	return CodeInternal
}

// HTTPStatus maps a code to its response status; unknown codes are 500.
func HTTPStatus(code string) int {
	if s, ok := httpStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Wrap keeps known AppErrors as they are and turns anything else into a persistence error.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return err
	}
	return Persistence(message, err)
}

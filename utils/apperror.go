package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind is the machine-readable class of a client-visible failure.
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindNotFound    ErrorKind = "not_found"
	KindForbidden   ErrorKind = "forbidden"
	KindConflict    ErrorKind = "conflict"
	KindUnavailable ErrorKind = "unavailable"
)

// AppError pairs an error kind with a human-readable message. Services
// return these; controllers map them onto HTTP statuses.
type AppError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.cause }

func Validation(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func Forbidden(msg string) *AppError {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func Conflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

// Unavailable wraps a storage failure. The original error stays reachable
// through Unwrap for logging, but the message shown to clients is opaque.
func Unavailable(err error) *AppError {
	return &AppError{Kind: KindUnavailable, Message: "service unavailable, try again later", cause: err}
}

// KindOf returns the error's kind, or KindUnavailable for anything that is
// not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnavailable
}

// HTTPStatus maps an error to the response status the controllers use.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"github.com/javajoker/hireswipe-backend/internal/repository"
)

type ErrorKind string

const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindForbidden       ErrorKind = "FORBIDDEN"
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindConflict        ErrorKind = "CONFLICT"
	KindUnauthorized    ErrorKind = "UNAUTHORIZED"
	KindInternal        ErrorKind = "INTERNAL"
)

// ServiceError is the only error type services return to handlers.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Details interface{}
	Err     error
}

// Sentinels for errors.Is; they match any ServiceError of the same kind.
var (
	ErrNotFound        = &ServiceError{Kind: KindNotFound}
	ErrForbidden       = &ServiceError{Kind: KindForbidden}
	ErrInvalidArgument = &ServiceError{Kind: KindInvalidArgument}
	ErrConflict        = &ServiceError{Kind: KindConflict}
	ErrUnauthorized    = &ServiceError{Kind: KindUnauthorized}
	ErrInternal        = &ServiceError{Kind: KindInternal}
)

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func newError(kind ErrorKind, message string) *ServiceError {
	return &ServiceError{Kind: kind, Message: message}
}

func notFound(resource string) *ServiceError {
	return newError(KindNotFound, resource+" not found")
}

func forbidden(message string) *ServiceError {
	return newError(KindForbidden, message)
}

func invalidArgument(message string, details interface{}) *ServiceError {
	return &ServiceError{Kind: KindInvalidArgument, Message: message, Details: details}
}

func conflict(message string) *ServiceError {
	return newError(KindConflict, message)
}

func internal(err error) *ServiceError {
	return &ServiceError{Kind: KindInternal, Message: "internal error", Err: err}
}

// fromStore maps repository errors; ErrNotFound becomes a not-found for resource.
func fromStore(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound(resource)
	case errors.Is(err, repository.ErrDuplicate):
		return conflict(resource + " already exists")
	default:
		return internal(err)
	}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

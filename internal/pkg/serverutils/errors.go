package serverutils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an application error for transport mapping.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindNothingRemoved
	KindUnauthorized
	KindCacheUnavailable
)

type AppError struct {
	Kind    Kind
	Message string
	Errors  interface{} // field errors or invalid ID lists, surfaced in the envelope
	Err     error
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

func NewValidationError(message string, errs interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Errors: errs}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewNothingRemovedError(message string) *AppError {
	return &AppError{Kind: KindNothingRemoved, Message: message}
}

func NewCacheError(err error) *AppError {
	return &AppError{Kind: KindCacheUnavailable, Message: "cache operation failed", Err: err}
}

// IsCacheUnavailable reports whether err is a cache failure.
// Callers must treat these as a cache miss, never as fatal.
func IsCacheUnavailable(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == KindCacheUnavailable
}

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindNothingRemoved:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

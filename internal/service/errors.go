package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of them via errors.Is.
var (
	ErrInvalidRequest        = errors.New("invalid request")        // 400
	ErrNotFound              = errors.New("not found")              // 404
	ErrConflict              = errors.New("conflict")               // 400
	ErrInsufficientInventory = errors.New("insufficient inventory") // 400
	ErrInternal              = errors.New("internal")               // 500
)

// Error carries the caller-facing message for one failure. Fields holds per-field
// violations for ErrInvalidRequest; Err is the underlying cause, if any.
type Error struct {
	Kind    error
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Kind == ErrInternal {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalid(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

func invalidFields(fields map[string]string) *Error {
	return &Error{Kind: ErrInvalidRequest, Message: "validation failed", Fields: fields}
}

func notFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) *Error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func insufficient(format string, args ...any) *Error {
	return &Error{Kind: ErrInsufficientInventory, Message: fmt.Sprintf(format, args...)}
}

func internal(msg string, err error) *Error {
	return &Error{Kind: ErrInternal, Message: msg, Err: err}
}

// Message is the text safe to show a caller. Internal failures never leak their cause.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != ErrInternal {
		return e.Message
	}
	return "internal server error"
}

// Fields returns the per-field violations carried by err, or nil.
func Fields(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search engine. The contract recognizes exactly
// these two kinds; anything else is an implementation fault, not part of
// the API.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// Error wraps a sentinel Kind with the operation that produced it and,
// optionally, a human-readable message or an underlying cause.
type Error struct {
	Op      string // Operation that failed, e.g. "engine.AddDocument"
	Kind    error  // ErrInvalidInput or ErrNotFound
	Err     error  // Underlying error, if any
	Message string // Human-readable detail
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Errorf builds an *Error carrying a formatted diagnostic message.
func Errorf(op string, kind error, format string, args ...any) error {
	return &Error{
		Op:      op,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError builds an *Error around an underlying cause.
func WrapError(op string, kind error, err error) error {
	return &Error{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}

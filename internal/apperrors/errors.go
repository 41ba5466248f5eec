// Package apperrors classifies failures so handlers can map them to
// responses without string-matching messages.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind uint

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindComputation
	KindExternal
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindComputation:
		return "computation"
	case KindExternal:
		return "external"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a kind-tagged error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind, so errors.Is works against a bare &Error{Kind: ...}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error {
	return New(KindValidation, message, nil)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message, nil)
}

func Computation(message string) *Error {
	return New(KindComputation, message, nil)
}

func External(message string, err error) *Error {
	return New(KindExternal, message, err)
}

func Conflict(message string) *Error {
	return New(KindConflict, message, nil)
}

// KindOf returns the kind of err, or KindUnknown for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

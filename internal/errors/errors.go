package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// PickError is a picker failure with an optional cause and hint.
type PickError struct {
	Type    ErrorType
	Message string
	Path    string
	Cause   error
	Hint    string // Shown after the message, e.g. how to fix settings.json
}

type ErrorType int

const (
	ErrNoCandidates ErrorType = iota
	ErrEmptyRange
	ErrSettings
	ErrLaunch
	ErrHistory
	ErrTerminal
)

func (e *PickError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Type.String(), e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "\nHint: %s", e.Hint)
	}
	return b.String()
}

func (e *PickError) Unwrap() error {
	return e.Cause
}

// IsType reports whether err wraps a *PickError of type t.
func IsType(err error, t ErrorType) bool {
	var pe *PickError
	return stderrors.As(err, &pe) && pe.Type == t
}

func (t ErrorType) String() string {
	switch t {
	case ErrNoCandidates:
		return "no candidates"
	case ErrEmptyRange:
		return "empty range"
	case ErrSettings:
		return "settings"
	case ErrLaunch:
		return "launch"
	case ErrHistory:
		return "history"
	case ErrTerminal:
		return "terminal"
	default:
		return "pick error"
	}
}

// New returns a *PickError of the given type.
func New(t ErrorType, msg string) *PickError {
	return &PickError{Type: t, Message: msg}
}

// Wrap returns a *PickError of the given type wrapping cause.
func Wrap(t ErrorType, msg string, cause error) *PickError {
	return &PickError{Type: t, Message: msg, Cause: cause}
}

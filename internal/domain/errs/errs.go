// Package errs defines the four failure kinds a ticker call can end with.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a ticker call failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindExecutionContext: the per-call scope could not be allocated; no fetch was attempted.
	KindExecutionContext
	// KindFetch: the market data client failed. Only its message text is kept.
	KindFetch
	// KindInputFormat: a caller supplied value failed strict parsing before any fetch.
	KindInputFormat
	// KindTableConstruction: building the output table failed.
	KindTableConstruction
)

func (k Kind) String() string {
	switch k {
	case KindExecutionContext:
		return "execution_context"
	case KindFetch:
		return "fetch"
	case KindInputFormat:
		return "input_format"
	case KindTableConstruction:
		return "table_construction"
	default:
		return "unknown"
	}
}

// Error is the single error value returned by a failed ticker call.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels below, so errors.Is(err, ErrFetch) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Msg == "" && t.Kind == e.Kind
}

var (
	ErrExecutionContext  = &Error{Kind: KindExecutionContext}
	ErrFetch             = &Error{Kind: KindFetch}
	ErrInputFormat       = &Error{Kind: KindInputFormat}
	ErrTableConstruction = &Error{Kind: KindTableConstruction}
)

// ExecutionContext wraps a scope allocation failure.
func ExecutionContext(op string, err error) *Error {
	return &Error{Kind: KindExecutionContext, Op: op, Msg: err.Error(), Err: err}
}

// Fetch flattens a client failure to its message. The cause is deliberately
// not kept so callers cannot branch on client-specific error types.
func Fetch(op string, err error) *Error {
	return &Error{Kind: KindFetch, Op: op, Msg: err.Error()}
}

// InputFormat wraps a caller input parse failure.
func InputFormat(op string, err error) *Error {
	return &Error{Kind: KindInputFormat, Op: op, Msg: err.Error(), Err: err}
}

// TableConstruction wraps a table build failure.
func TableConstruction(op string, err error) *Error {
	return &Error{Kind: KindTableConstruction, Op: op, Msg: err.Error(), Err: err}
}

// KindOf returns the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

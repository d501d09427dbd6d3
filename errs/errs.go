// Package errs defines the error taxonomy shared by every ttconv package.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies the error taxonomy every ttconv package raises against.
// It is not a type per se - every ttconv error is an *Error carrying one
// of these.
type Kind int

const (
	// KindParse: input bytes do not match the grammar of their format.
	KindParse Kind = iota
	// KindStructure: a CDM mutation would violate the grammar or an invariant.
	KindStructure
	// KindDomain: a style value is outside its declared domain, or a time is negative.
	KindDomain
	// KindMissingRegion: a region reference does not resolve in the document.
	KindMissingRegion
	// KindDuplicateID: a region id collides with one already registered.
	KindDuplicateID
	// KindUnsupportedFeature: an input construct is outside the supported subset.
	KindUnsupportedFeature
	// KindFilterError: a filter produced output that violates CDM/ISD invariants.
	KindFilterError
	// KindIO: an input or output stream failed.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindStructure:
		return "structure"
	case KindDomain:
		return "domain"
	case KindMissingRegion:
		return "missing-region"
	case KindDuplicateID:
		return "duplicate-id"
	case KindUnsupportedFeature:
		return "unsupported-feature"
	case KindFilterError:
		return "filter-error"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is the single error type produced by every ttconv package. It
// carries enough context (kind, the component that raised it, and what it
// was doing) to be both logged usefully and programmatically inspected with
// errors.Is/As.
type Error struct {
	Kind Kind
	// Op names the component/operation, e.g. "scc.reader", "isd.resolve".
	Op string
	// Detail is a short human-readable description specific to this error.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// New constructs an *Error. cause may be nil.
func New(kind Kind, op, detail string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail, Err: cause}
}

// Newf constructs an *Error with a formatted detail message.
func Newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Detail: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

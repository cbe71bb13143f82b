package pkgerror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shandysiswandi/wsgate/internal/pkg/pkguid"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict indicates that the resource already exists.
	ErrConflict = errors.New("resource already exists")
)

//nolint:gochecknoglobals // uuid generation is safe for concurrent use
var references pkguid.StringID = pkguid.NewRandomUUID()

// Class groups errors by the constructor that produced them.
type Class int

const (
	ClassCatalogued Class = iota // Pre-registered condition (NewCatalogued).
	ClassInternal                // Unexpected failure with a reference (NewInternal).
	ClassBusiness                // Ad-hoc business rule violation (NewBusinessError).
)

func (c Class) String() string {
	switch c {
	case ClassCatalogued:
		return "ERROR_CLASS_CATALOGUED"
	case ClassInternal:
		return "ERROR_CLASS_INTERNAL"
	case ClassBusiness:
		return "ERROR_CLASS_BUSINESS"
	default:
		return "ERROR_CLASS_UNKNOWN"
	}
}

// Error is the service error surfaced to callers.
//
// Status and message go to the HTTP response. The reference, when present,
// must also be logged server-side next to the cause.
type Error struct {
	err    error
	msg    string
	ref    string
	kind   Kind
	class  Class
	status int
}

// Error implements the error interface. It only returns the caller-visible
// message; the cause is available through Unwrap.
func (e *Error) Error() string {
	return e.msg
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Class: %s, Kind: %s, Status: %d, Message: %s, Reference: %s, Underlying Error: %v",
		e.class.String(),
		e.kind.String(),
		e.status,
		e.msg,
		e.ref,
		e.err,
	)
}

// Msg returns the formatted message, including the "(Ekk)" prefix.
func (e *Error) Msg() string {
	return e.msg
}

// Reference returns the correlation reference of internal errors, or "".
func (e *Error) Reference() string {
	return e.ref
}

// Kind returns the error kind. Business errors report their raw code as Kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the numeric code shown in the message prefix.
func (e *Error) Code() int {
	return e.kind.Code()
}

// Class returns which constructor built the error.
func (e *Error) Class() Class {
	return e.class
}

// StatusCode returns the HTTP status code of the error.
func (e *Error) StatusCode() int {
	return e.status
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.err
}

// NewCatalogued creates an error for a registered kind, rendering args into its
// template. It panics if kind is not registered or args do not fit the template.
func NewCatalogued(kind Kind, args ...any) *Error {
	entry := Lookup(kind)

	msg, err := FormatMessage(kind, args...)
	if err != nil {
		panic(err)
	}

	return &Error{msg: msg, kind: kind, class: ClassCatalogued, status: entry.Status}
}

// NewInternal creates a 500 error whose message only exposes a fresh random
// reference, e.g. "(E90) Internal error. Ref=<uuid>".
func NewInternal(kind Kind) *Error {
	return WrapInternal(kind, nil)
}

// WrapInternal is NewInternal keeping cause for server-side logging. The
// cause never reaches Msg or Error.
func WrapInternal(kind Kind, cause error) *Error {
	ref := references.Generate()

	msg, err := FormatMessage(kind, ref)
	if err != nil {
		panic(err)
	}

	return &Error{
		err:    cause,
		msg:    msg,
		ref:    ref,
		kind:   kind,
		class:  ClassInternal,
		status: http.StatusInternalServerError,
	}
}

// NewBusinessError creates a 422 error from a template that is not part of the
// catalogue. code only feeds the "(Ekk)" prefix and does not need an entry.
// It panics if args do not fit template.
func NewBusinessError(code int, template string, args ...any) *Error {
	text, err := substitute(template, args)
	if err != nil {
		panic(fmt.Errorf("format business error E%02d: %w", code, err))
	}

	return &Error{
		msg:    prefix(code) + text,
		kind:   Kind(code),
		class:  ClassBusiness,
		status: http.StatusUnprocessableEntity,
	}
}

// As extracts the *Error from err's chain.
func As(err error) (*Error, bool) {
	var serr *Error
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}

// StatusCode returns the HTTP status of err, 500 when it is not an *Error.
func StatusCode(err error) int {
	if serr, ok := As(err); ok {
		return serr.StatusCode()
	}
	return http.StatusInternalServerError
}

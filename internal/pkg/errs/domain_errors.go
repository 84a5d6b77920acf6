package errs

import (
	"errors"
	"fmt"
)

// Kind is the category an error is reported under at the boundary.
type Kind string

const (
	KindNotFound   Kind = "NOT_FOUND"
	KindValidation Kind = "VALIDATION"
	KindConflict   Kind = "CONFLICT"
	KindUnexpected Kind = "UNEXPECTED"
)

// Kinded is implemented by errors that carry their own category.
type Kinded interface {
	error
	ErrorKind() Kind
}

type kindError struct {
	kind Kind
	msg  string
}

func (e *kindError) Error() string   { return e.msg }
func (e *kindError) ErrorKind() Kind { return e.kind }

func NotFound(msg string) error {
	return &kindError{kind: KindNotFound, msg: msg}
}

func Validation(msg string) error {
	return &kindError{kind: KindValidation, msg: msg}
}

func Validationf(format string, args ...any) error {
	return &kindError{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

func Conflict(msg string) error {
	return &kindError{kind: KindConflict, msg: msg}
}

// KindOf reports the outermost category found in the chain; anything
// uncategorized is unexpected.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var k Kinded
	if errors.As(err, &k) {
		return k.ErrorKind()
	}
	return KindUnexpected
}

// Message returns the text of the categorized error in the chain, without
// the wrapping context added on the way up.
func Message(err error) string {
	var k Kinded
	if errors.As(err, &k) {
		return k.Error()
	}
	return "Internal error"
}

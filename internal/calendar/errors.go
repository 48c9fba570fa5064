package calendar

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures raised by the calendar core.
type ErrorKind int

const (
	InvalidArgument ErrorKind = iota + 1
	MalformedDate
	MalformedRange
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case MalformedDate:
		return "malformed date"
	case MalformedRange:
		return "malformed range"
	default:
		return "unknown"
	}
}

// sentinels for errors.Is
var (
	ErrInvalidArgument = &Error{Kind: InvalidArgument}
	ErrMalformedDate   = &Error{Kind: MalformedDate}
	ErrMalformedRange  = &Error{Kind: MalformedRange}
)

type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches on Kind only, so any *Error compares equal to the sentinel of its kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the ErrorKind carried by err, or 0 when err is not a calendar error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func errorf(kind ErrorKind, cause error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

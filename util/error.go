package util

import (
	"errors"
	"strings"
)

// -----------------------------------------------------------------------------

type extendedError struct {
	kind    error
	message string
	err     error
}

// -----------------------------------------------------------------------------

// NewExtendedError creates a new error of the given kind that wraps an error and includes the given
// message. Both kind and err can be nil.
//
// errors.Is reports true for the kind as well as for anything in the wrapped chain.
func NewExtendedError(kind error, err error, message string) error {
	return &extendedError{
		kind:    kind,
		message: message,
		err:     err,
	}
}

// Error returns a string representation of the error.
func (w *extendedError) Error() string {
	sb := strings.Builder{}
	if w.kind != nil {
		_, _ = sb.WriteString(w.kind.Error())
		_, _ = sb.WriteString(": ")
	}
	_, _ = sb.WriteString(w.message)
	for err := w.err; err != nil; {
		var childW *extendedError

		_, _ = sb.WriteString(" [err=")
		if errors.As(err, &childW) {
			_, _ = sb.WriteString(childW.message)
			err = childW.err
		} else {
			_, _ = sb.WriteString(err.Error())
			err = errors.Unwrap(err)
		}
		_, _ = sb.WriteString("]")
	}
	return sb.String()
}

// Is reports whether target is the kind of this error.
func (w *extendedError) Is(target error) bool {
	return w.kind != nil && w.kind == target
}

// Unwrap returns the underlying error.
func (w *extendedError) Unwrap() error {
	return w.err
}

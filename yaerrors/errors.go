package yaerrors

import "errors"

// ErrTeapot is a custom error to report that the backend developer is a teapot, because
// they are dereferencing a nil error.
// It is used as a safety net to keep nil Error values from panicking.
var ErrTeapot = errors.New("backend developer is a teapot")

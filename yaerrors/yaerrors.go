// Package yaerrors provides the error model shared by YaCodeDev Go modules:
// every failure is an Error value carrying a numeric code and a traceback
// string that grows as the error travels up the call stack.
//
// Example usage:
//
//	if payload == "" {
//		return yaerrors.FromString(http.StatusBadRequest, "payload is empty")
//	}
package yaerrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/YaCodeDev/GoYaTgHelpers/yalogger"
)

// Error is the custom error type used across the module. It implements the
// standard error interface and adds an error code, wrapping with context,
// and retrieval of the most recent wrap message.
type Error interface {
	error
	Wrap(msg string) Error
	WrapWithLog(msg string, log yalogger.Logger) Error
	Code() int
	Unwrap() error
	UnwrapLastError() string
}

const (
	codeSeparate  = " | "
	errorSeparate = " -> "
)

// Minimal error implementation for Error interface.
type yaError struct {
	code      int
	cause     error
	traceback string
}

// FromError creates a new Error from an existing error with a custom code,
// wrapping the original error with additional context.
func FromError(code int, cause error, wrap string) Error {
	return &yaError{
		code:      code,
		cause:     cause,
		traceback: fmt.Sprintf("%s: %v", wrap, cause),
	}
}

// FromErrorWithLog behaves like FromError and additionally logs the message
// using the provided logger.
func FromErrorWithLog(code int, cause error, wrap string, log yalogger.Logger) Error {
	msg := fmt.Sprintf("%s: %v", wrap, cause)
	log.Error(msg)

	return &yaError{
		code:      code,
		cause:     cause,
		traceback: msg,
	}
}

// FromString creates a new Error from a plain message with a custom code.
func FromString(code int, msg string) Error {
	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// FromStringWithLog behaves like FromString and additionally logs the message
// using the provided logger.
func FromStringWithLog(code int, msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return &yaError{
		code:      code,
		cause:     errors.New(msg), //nolint:err113
		traceback: msg,
	}
}

// Error returns the error code and traceback message as a string.
func (e *yaError) Error() string {
	return fmt.Sprintf("%d%s%s", e.orTeapot().code, codeSeparate, e.orTeapot().traceback)
}

// Unwrap returns the original error that caused this error.
func (e *yaError) Unwrap() error {
	return e.orTeapot().cause
}

// UnwrapLastError returns the most recent wrap message from the traceback.
func (e *yaError) UnwrapLastError() string {
	traceback := e.orTeapot().traceback

	if end := strings.Index(traceback, errorSeparate); end != -1 {
		return traceback[:end]
	}

	return traceback
}

// Wrap adds a message to the error traceback, providing additional context.
// It is highly recommended to use this method each time you return the error
// to a higher level in the call stack.
func (e *yaError) Wrap(msg string) Error {
	err := e.orTeapot()
	err.traceback = fmt.Sprintf("%s%s%s", msg, errorSeparate, err.traceback)

	return err
}

// WrapWithLog behaves like Wrap and additionally logs the message using the
// provided logger.
func (e *yaError) WrapWithLog(msg string, log yalogger.Logger) Error {
	log.Error(msg)

	return e.Wrap(msg)
}

// Code returns the error code associated with this error.
func (e *yaError) Code() int {
	return e.orTeapot().code
}

// orTeapot guards against nil receivers. Dereferencing a nil Error yields a
// default "developer is a teapot" error instead of a panic.
func (e *yaError) orTeapot() *yaError {
	if e == nil {
		return &yaError{
			code:      http.StatusTeapot,
			cause:     ErrTeapot,
			traceback: ErrTeapot.Error(),
		}
	}

	return e
}

package yaerrors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/YaCodeDev/GoYaTgHelpers/yaerrors"
)

func TestYaErrorFromString_Code(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(http.StatusNotFound, "not found")
	if err.Code() != http.StatusNotFound {
		t.Fatalf("error code is not %d, got: %v", http.StatusNotFound, err.Code())
	}
}

func TestYaErrorFromString_Error(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(http.StatusNotFound, "not found")
	if err.Error() != "404 | not found" {
		t.Fatalf("error message is not '404 | not found', got: %v", err.Error())
	}
}

func TestYaErrorFromError_Error(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromError(http.StatusNotFound, yaerrors.ErrTeapot, "not found")
	if err.Error() != "404 | not found: backend developer is a teapot" {
		t.Fatalf(
			"error message is not '404 | not found: backend developer is a teapot', got: %v",
			err.Error(),
		)
	}
}

func TestYaError_Wrap(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(http.StatusNotFound, "inner").Wrap("outer")
	if err.Error() != "404 | outer -> inner" {
		t.Fatalf("wrapped error message is not '404 | outer -> inner', got: %v", err.Error())
	}
}

func TestYaErrorUnwrap_Works(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromError(http.StatusNotFound, yaerrors.ErrTeapot, "not found")
	if !errors.Is(err, yaerrors.ErrTeapot) {
		t.Fatalf("error didn't unwrap as %v, got: %v", yaerrors.ErrTeapot, err)
	}
}

func TestYaErrorUnwrapLastError_Works(t *testing.T) {
	t.Parallel()

	expected := "wrapped error"

	err := yaerrors.FromError(http.StatusNotFound, yaerrors.ErrTeapot, "not found").Wrap(expected)
	if got := err.UnwrapLastError(); got != expected {
		t.Fatalf("error didn't unwrap correctly:\n got: %v\n want: %v", got, expected)
	}
}

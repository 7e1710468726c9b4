package testlib

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Equal(t *testing.T, strict bool, expected interface{}, actual interface{}) {
	t.Helper()
	if cmp.Equal(expected, actual) {
		return
	}
	report(t, strict)("Mismatched values.\n\nDIFF:\n%s", cmp.Diff(expected, actual))
}

func NotEqual(t *testing.T, strict bool, expected interface{}, actual interface{}) {
	t.Helper()
	if !cmp.Equal(expected, actual) {
		return
	}
	report(t, strict)("Unexpected value %v.", expected)
}

func Error(t *testing.T, strict bool, actual error) {
	t.Helper()
	if actual != nil {
		return
	}
	report(t, strict)("Expected an error but got none.")
}

func NoError(t *testing.T, strict bool, actual error) {
	t.Helper()
	if actual == nil {
		return
	}
	report(t, strict)("Expected no error.\n\nError: %s", actual.Error())
}

func True(t *testing.T, strict bool, actual bool) {
	t.Helper()
	if actual {
		return
	}
	report(t, strict)("Expected condition to be true.")
}

func False(t *testing.T, strict bool, actual bool) {
	t.Helper()
	if !actual {
		return
	}
	report(t, strict)("Expected condition to be false.")
}

func report(t *testing.T, strict bool) func(format string, args ...interface{}) {
	if strict {
		return t.Fatalf
	}
	return t.Errorf
}

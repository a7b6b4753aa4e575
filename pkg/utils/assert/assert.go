// Package assert is a small set of test helpers. Failures are reported
// with a go-cmp diff of the two values.
package assert

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ObjectsAreEqual reports whether expected and actual are deeply equal.
// []byte values are compared by content.
func ObjectsAreEqual(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}

	exp, ok := expected.([]byte)
	if !ok {
		return cmp.Equal(expected, actual)
	}

	act, ok := actual.([]byte)
	if !ok {
		return false
	}
	return string(exp) == string(act)
}

func Equal(t testing.TB, expected, actual any, msgAndArgs ...any) bool {
	t.Helper()
	if ObjectsAreEqual(expected, actual) {
		return true
	}

	t.Errorf("not equal (-expected +actual):\n%s%s", cmp.Diff(expected, actual), message(msgAndArgs))
	return false
}

func MustEqual(t testing.TB, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if !Equal(t, expected, actual, msgAndArgs...) {
		t.FailNow()
	}
}

func True(t testing.TB, value bool, msgAndArgs ...any) bool {
	t.Helper()
	if !value {
		t.Errorf("should be true%s", message(msgAndArgs))
	}
	return value
}

func False(t testing.TB, value bool, msgAndArgs ...any) bool {
	t.Helper()
	if value {
		t.Errorf("should be false%s", message(msgAndArgs))
	}
	return !value
}

func NoError(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v%s", err, message(msgAndArgs))
	}
}

func Error(t testing.TB, err error, msgAndArgs ...any) bool {
	t.Helper()
	if err == nil {
		t.Errorf("expected an error%s", message(msgAndArgs))
		return false
	}
	return true
}

// ErrorIs asserts that errors.Is(err, target).
func ErrorIs(t testing.TB, err, target error, msgAndArgs ...any) bool {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error %v is not %v%s", err, target, message(msgAndArgs))
		return false
	}
	return true
}

func message(msgAndArgs []any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(": %v", msgAndArgs[0])
	default:
		format, ok := msgAndArgs[0].(string)
		if !ok {
			return fmt.Sprint(append([]any{": "}, msgAndArgs...)...)
		}
		return ": " + fmt.Sprintf(format, msgAndArgs[1:]...)
	}
}

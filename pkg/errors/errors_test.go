// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/passbundle/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "style_invalid_error",
			code:    errors.ErrStyleInvalid,
			message: "not a registered style",
			wantStr: "[STYLE_INVALID] not a registered style",
		},
		{
			name:    "color_format_error",
			code:    errors.ErrColorFormat,
			message: "malformed color value",
			wantStr: "[COLOR_FORMAT] malformed color value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("wraps_and_unwraps", func(t *testing.T) {
		inner := stderrors.New("read failed")
		err := errors.Wrap(inner, errors.ErrFileAccess, "cannot read definition")

		if !stderrors.Is(err, inner) {
			t.Error("wrapped error should match errors.Is on the inner error")
		}

		want := "[FILE_ACCESS] cannot read definition: read failed"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("nil_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrFileAccess, "ignored"); err != nil {
			t.Errorf("Wrap(nil) = %v, want nil", err)
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrURLFormat, "scheme %q is not https", "http")

	if !errors.IsErrorCode(err, errors.ErrURLFormat) {
		t.Error("IsErrorCode should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrColorFormat) {
		t.Error("IsErrorCode should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrURLFormat) {
		t.Error("IsErrorCode should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrBundleNotFound, "no such bundle")

	if got := errors.GetErrorCode(err); got != errors.ErrBundleNotFound {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrBundleNotFound)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrBundleInvalid, "not a directory").
		WithDetail("path", "/tmp/bundle")

	details := errors.GetErrorDetails(err)
	if details == nil {
		t.Fatal("expected details map")
	}

	if details["path"] != "/tmp/bundle" {
		t.Errorf("details[path] = %v, want /tmp/bundle", details["path"])
	}
}

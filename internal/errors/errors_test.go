package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewError(t *testing.T) {
	cause := errors.New("permission denied")

	err := NewError(FileUnreadable, "failed to read src/app/app.module.ts", cause)

	if err.Code != FileUnreadable {
		t.Errorf("Code = %v, want %v", err.Code, FileUnreadable)
	}
	if err.Message != "failed to read src/app/app.module.ts" {
		t.Errorf("Message = %q", err.Message)
	}
	if err.SuggestedFixes != nil {
		t.Errorf("FileUnreadable should carry no default fixes, got %v", err.SuggestedFixes)
	}

	withFixes := NewError(UnsupportedFormat, "unknown format xml", nil)
	if len(withFixes.SuggestedFixes) != 1 {
		t.Errorf("len(SuggestedFixes) = %d, want 1", len(withFixes.SuggestedFixes))
	}
}

func TestNgmapError_Error(t *testing.T) {
	tests := []struct {
		name      string
		code      ErrorCode
		message   string
		cause     error
		wantParts []string
	}{
		{
			name:      "with cause",
			code:      FileUnreadable,
			message:   "failed to read a.ts",
			cause:     errors.New("is a directory"),
			wantParts: []string{"FILE_UNREADABLE", "failed to read a.ts", "is a directory"},
		},
		{
			name:      "without cause",
			code:      PathNotFound,
			message:   "path does not exist: ./nope",
			cause:     nil,
			wantParts: []string{"PATH_NOT_FOUND", "./nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewError(tt.code, tt.message, tt.cause).Error()

			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Error() = %q, want to contain %q", got, part)
				}
			}
		})
	}
}

func TestNgmapError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewError(InternalError, "something went wrong", cause)

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see the cause")
	}

	errNoCause := NewError(OutputFailed, "write failed", nil)
	if errNoCause.Unwrap() != nil {
		t.Errorf("Unwrap() on error without cause should return nil")
	}
}

func TestNgmapError_WithDetails(t *testing.T) {
	err := NewError(FileUnreadable, "failed to read", nil)
	details := map[string]string{"path": "src/main.ts"}

	result := err.WithDetails(details)

	if result != err {
		t.Error("WithDetails should return the same error for chaining")
	}
	if err.Details == nil {
		t.Error("Details should be set")
	}
}

func TestIs(t *testing.T) {
	base := NewError(FileUnreadable, "failed to read", nil)
	wrapped := fmt.Errorf("analyze components: %w", base)

	if !Is(wrapped, FileUnreadable) {
		t.Error("Is should find the code through wrapping")
	}
	if Is(wrapped, PathNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), FileUnreadable) {
		t.Error("Is should not match a plain error")
	}
	if Is(nil, FileUnreadable) {
		t.Error("Is(nil) should be false")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		PathNotFound,
		FileUnreadable,
		ConfigInvalid,
		UnsupportedFormat,
		OutputFailed,
		InternalError,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %v", code)
		}
		seen[code] = true

		if string(code) == "" {
			t.Error("Error code should not be empty")
		}
	}
}

func TestErrorActionsMap(t *testing.T) {
	for _, code := range []ErrorCode{PathNotFound, ConfigInvalid, UnsupportedFormat} {
		if _, ok := ErrorActions[code]; !ok {
			t.Errorf("ErrorActions missing entry for %v", code)
		}
	}

	for code, fixes := range ErrorActions {
		if len(fixes) == 0 {
			t.Errorf("ErrorActions[%v] has no fix actions", code)
		}
		for i, fix := range fixes {
			if fix.Type == "" {
				t.Errorf("ErrorActions[%v][%d].Type is empty", code, i)
			}
		}
	}
}

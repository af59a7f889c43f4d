package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// PathNotFound indicates the project root does not exist
	PathNotFound ErrorCode = "PATH_NOT_FOUND"
	// FileUnreadable indicates a source file could not be read; it aborts the run
	FileUnreadable ErrorCode = "FILE_UNREADABLE"
	// ConfigInvalid indicates the configuration failed to load or validate
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// UnsupportedFormat indicates an unknown output format was requested
	UnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// OutputFailed indicates the report could not be written
	OutputFailed ErrorCode = "OUTPUT_FAILED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// OpenDocs suggests opening documentation
	OpenDocs FixActionType = "open-docs"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Safe        bool          `json:"safe,omitempty"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty"`
}

// NgmapError represents an ngmap error with code, message, and suggestions
type NgmapError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// NewError creates a new NgmapError with the default fixes for its code
func NewError(code ErrorCode, message string, cause error) *NgmapError {
	return &NgmapError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Error implements the error interface
func (e *NgmapError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *NgmapError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *NgmapError) WithDetails(details interface{}) *NgmapError {
	e.Details = details
	return e
}

// Is reports whether any error in err's chain is an NgmapError with the given code
func Is(err error, code ErrorCode) bool {
	var ne *NgmapError
	if stderrors.As(err, &ne) {
		return ne.Code == code
	}
	return false
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	PathNotFound: {
		{
			Type:        RunCommand,
			Command:     "ngmap <path-to-project>",
			Safe:        true,
			Description: "Pass the project root explicitly",
		},
	},
	ConfigInvalid: {
		{
			Type:        RunCommand,
			Command:     "rm .ngmap/config.json",
			Description: "Remove the project config to fall back to defaults",
		},
	},
	UnsupportedFormat: {
		{
			Type:        RunCommand,
			Command:     "ngmap --format=json",
			Safe:        true,
			Description: "Use one of text, json, yaml or toml",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}

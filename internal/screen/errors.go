package screen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeIO indicates the document file could not be read or written
	ErrTypeIO ErrorType = iota
	// ErrTypeParse indicates malformed YAML
	ErrTypeParse
	// ErrTypeValidation indicates a well-formed document with invalid settings
	ErrTypeValidation
	// ErrTypeRange indicates a row index outside the visible rows
	ErrTypeRange
	// ErrTypePath indicates a field path that does not fit the document's rows
	ErrTypePath
	// ErrTypeUnknown indicates an unknown or unexpected error
	ErrTypeUnknown
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeIO:
		return "I/O Error"
	case ErrTypeParse:
		return "Parse Error"
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeRange:
		return "Range Error"
	case ErrTypePath:
		return "Path Error"
	case ErrTypeUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DocumentError represents an error that occurred while handling a screen document
type DocumentError struct {
	Type    ErrorType // Category of error
	Message string    // Human-readable error message
	File    string    // Document path (if known)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *DocumentError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.File)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (caused by: %v)", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain inspection
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewIOError creates a file access error
func NewIOError(file, message string, err error) *DocumentError {
	return &DocumentError{
		Type:    ErrTypeIO,
		Message: message,
		File:    file,
		Err:     err,
	}
}

// NewParseError creates a parsing error
func NewParseError(file, message string, err error) *DocumentError {
	return &DocumentError{
		Type:    ErrTypeParse,
		Message: message,
		File:    file,
		Err:     err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *DocumentError {
	return &DocumentError{
		Type:    ErrTypeValidation,
		Message: message,
	}
}

// NewRangeError creates a row index error
func NewRangeError(index, rows int) *DocumentError {
	return &DocumentError{
		Type:    ErrTypeRange,
		Message: fmt.Sprintf("row %d is outside the %d visible rows", index, rows),
	}
}

// NewPathError creates a field path error
func NewPathError(p, message string) *DocumentError {
	return &DocumentError{
		Type:    ErrTypePath,
		Message: fmt.Sprintf("%s: %s", p, message),
	}
}

func errorType(err error) (ErrorType, bool) {
	var docErr *DocumentError
	if errors.As(err, &docErr) {
		return docErr.Type, true
	}
	return ErrTypeUnknown, false
}

// IsIOError checks if an error is a file access error
func IsIOError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeIO
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeParse
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeValidation
}

// IsRangeError checks if an error is a row index error
func IsRangeError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypeRange
}

// IsPathError checks if an error is a field path error
func IsPathError(err error) bool {
	t, ok := errorType(err)
	return ok && t == ErrTypePath
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) []string {
	t, ok := errorType(err)
	if !ok {
		return nil
	}

	switch t {
	case ErrTypeIO:
		return []string{
			"Check that the file exists and is readable",
			"Writes go through a temporary file next to the document; the directory must be writable",
		}
	case ErrTypeParse:
		return []string{
			"Status codes such as * and > must be quoted in YAML: status: \"*\"",
			"outer and inner must be YAML sequences",
		}
	case ErrTypeValidation:
		return []string{
			"version must be 1",
			"status_path is required, e.g. inner.status",
			"capacity must not be negative",
		}
	case ErrTypeRange:
		return []string{
			"Indexes count visible rows only, starting at 0",
			"Rows after the first hidden row are not visible in in-place mode",
			"Run 'listbind show <file>' to see the visible rows",
		}
	case ErrTypePath:
		return []string{
			"Paths start at outer or inner, e.g. outer.0.name",
			"Numeric fragments index sequences; other fragments are mapping keys",
		}
	default:
		return nil
	}
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		return err.Error()
	}

	switch docErr.Type {
	case ErrTypeIO:
		return "Cannot access screen document"
	case ErrTypeParse:
		return "Screen document is not valid YAML"
	case ErrTypeValidation:
		return strings.TrimSpace(docErr.Message)
	case ErrTypeRange, ErrTypePath:
		return docErr.Message
	default:
		return docErr.Message
	}
}

// Package errors provides code-tagged errors shared across the engine.
package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error for callers that branch on failure class.
type Code string

const (
	// CodeUnknown indicates an uncategorized error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller passed a bad argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested record was not found
	CodeNotFound Code = "not_found"

	// CodeDuplicateID indicates two content records share an id within a category
	CodeDuplicateID Code = "duplicate_id"

	// CodeUnresolvedReference indicates a content record references an id
	// that does not exist in the target category
	CodeUnresolvedReference Code = "unresolved_reference"

	// CodeSchemaViolation indicates a content record is missing a required
	// field or carries an out-of-range value
	CodeSchemaViolation Code = "schema_violation"

	// CodeMissingFallbackLine indicates an archetype has no usable offline
	// dialogue line
	CodeMissingFallbackLine Code = "missing_fallback_line"

	// CodeCredential indicates an unexpected I/O failure while reading an
	// existing credential source
	CodeCredential Code = "credential"

	// CodeRemoteDialogue indicates the remote dialogue channel failed
	CodeRemoteDialogue Code = "remote_dialogue"

	// CodeInternal indicates an internal engine error
	CodeInternal Code = "internal"
)

// Error is the engine's error type: a code, a message, an optional cause,
// and free-form metadata for diagnostics (category, id, file).
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a diagnostic key/value to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error, preserving the code of an inner *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var engErr *Error
	if errors.As(err, &engErr) {
		return &Error{
			Code:    engErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(engErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Constructors for common codes

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// DuplicateIDf creates a formatted duplicate id error
func DuplicateIDf(format string, args ...any) *Error {
	return Newf(CodeDuplicateID, format, args...)
}

// UnresolvedReferencef creates a formatted unresolved reference error
func UnresolvedReferencef(format string, args ...any) *Error {
	return Newf(CodeUnresolvedReference, format, args...)
}

// SchemaViolationf creates a formatted schema violation error
func SchemaViolationf(format string, args ...any) *Error {
	return Newf(CodeSchemaViolation, format, args...)
}

// MissingFallbackLinef creates a formatted missing fallback line error
func MissingFallbackLinef(format string, args ...any) *Error {
	return Newf(CodeMissingFallbackLine, format, args...)
}

// Credentialf creates a formatted credential error
func Credentialf(format string, args ...any) *Error {
	return Newf(CodeCredential, format, args...)
}

// RemoteDialoguef creates a formatted remote dialogue error
func RemoteDialoguef(format string, args ...any) *Error {
	return Newf(CodeRemoteDialogue, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Is checks whether err carries the given code
func Is(err error, code Code) bool {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsDuplicateID checks if the error is a duplicate id error
func IsDuplicateID(err error) bool {
	return Is(err, CodeDuplicateID)
}

// IsUnresolvedReference checks if the error is an unresolved reference error
func IsUnresolvedReference(err error) bool {
	return Is(err, CodeUnresolvedReference)
}

// IsSchemaViolation checks if the error is a schema violation error
func IsSchemaViolation(err error) bool {
	return Is(err, CodeSchemaViolation)
}

// IsMissingFallbackLine checks if the error is a missing fallback line error
func IsMissingFallbackLine(err error) bool {
	return Is(err, CodeMissingFallbackLine)
}

// IsLoadError reports whether the error belongs to the fatal-at-startup
// content load class.
func IsLoadError(err error) bool {
	switch GetCode(err) {
	case CodeDuplicateID, CodeUnresolvedReference, CodeSchemaViolation, CodeMissingFallbackLine:
		return true
	}
	return false
}

// GetCode returns the code carried by err, or CodeUnknown
func GetCode(err error) Code {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata carried by err, if any
func GetMeta(err error) map[string]any {
	var engErr *Error
	if errors.As(err, &engErr) {
		return engErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}

// Package errors provides standardized error handling for the explorer
// application. It defines common error kinds and helper functions for
// consistent error creation, wrapping, and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Path error kinds
	InvalidSeparator
	InvalidPath
	RenameFailed
	FileOperationFailed
	// Pattern error kinds
	InvalidPattern
	// Settings error kinds
	InvalidSettings
	SettingsNotFound
	// Template error kinds
	TemplateFieldMissing
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// PathError represents errors related to path handling and file operations
type PathError struct {
	ApplicationError
	path string
}

// NewPathError creates a new path error
func NewPathError(msg string, path string, kind ErrorKind, err error) *PathError {
	return &PathError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the path error message
func (e *PathError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the path associated with the error
func (e *PathError) Path() string {
	return e.path
}

// PatternError represents errors related to regex pattern compilation
type PatternError struct {
	ApplicationError
	pattern string
}

// NewPatternError creates a new pattern error
func NewPatternError(msg string, pattern string, err error) *PatternError {
	return &PatternError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidPattern,
		},
		pattern: pattern,
	}
}

// Error returns the pattern error message
func (e *PatternError) Error() string {
	if e.pattern != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.pattern, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.pattern)
	}
	return e.ApplicationError.Error()
}

// Pattern returns the pattern associated with the error
func (e *PatternError) Pattern() string {
	return e.pattern
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// NewKind creates a new error with a message and an explicit kind
func NewKind(msg string, kind ErrorKind) error {
	return &ApplicationError{
		msg:  msg,
		kind: kind,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// kindOf extracts the kind from any application error in the chain
func kindOf(err error) ErrorKind {
	type kinder interface {
		Kind() ErrorKind
	}
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}

// IsInvalidSeparator checks if the error reports a bad path separator
func IsInvalidSeparator(err error) bool {
	return kindOf(err) == InvalidSeparator
}

// IsInvalidPattern checks if the error reports a malformed regex pattern
func IsInvalidPattern(err error) bool {
	return kindOf(err) == InvalidPattern
}

// IsInvalidSettings checks if the error reports unparsable settings
func IsInvalidSettings(err error) bool {
	return kindOf(err) == InvalidSettings
}

// IsTemplateFieldMissing checks if the error reports an unsupported
// template field
func IsTemplateFieldMissing(err error) bool {
	return kindOf(err) == TemplateFieldMissing
}

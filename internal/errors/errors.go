// Package errors provides typed errors for dashboard workflows.
// This enables callers to use errors.Is() and errors.As() for specific error handling.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
// Use errors.Is(err, errors.ErrBusy) to check for specific errors.
var (
	// Submission errors
	ErrNoFiles    = errors.New("no files selected")
	ErrNoPassword = errors.New("password is required")
	ErrSingleFile = errors.New("exactly one package file is required")
	ErrBusy       = errors.New("a request is already in flight")

	// File errors
	ErrIsDirectory = errors.New("is a directory")

	// Result errors
	ErrArtifactReleased = errors.New("download link has expired")
	ErrSessionMissing   = errors.New("server response has no session id")
	ErrEmptySettings    = errors.New("server returned no settings")
)

// ServerError is a non-success HTTP response from the encryption service.
// Message holds the "error" field of the JSON body, or a generic message
// naming the status code when the body could not be parsed.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return StatusMessage(e.Status)
}

// NewServerError creates a new ServerError.
func NewServerError(status int, message string) *ServerError {
	return &ServerError{Status: status, Message: message}
}

// StatusMessage is the generic text used when a failed response carries no
// usable error body.
func StatusMessage(status int) string {
	return fmt.Sprintf("request failed with status %d", status)
}

// TransportError represents a request that never produced a response.
type TransportError struct {
	Op  string // Operation: "settings", "encrypt", "compare", "decrypt", "download"
	URL string // Request URL
	Err error  // Underlying error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.URL)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a new TransportError.
func NewTransportError(op, url string, err error) *TransportError {
	return &TransportError{Op: op, URL: url, Err: err}
}

// FileError represents an error while reading a selected file.
type FileError struct {
	Op   string // Operation: "open", "read", "stat"
	Path string // File name or path
	Err  error  // Underlying error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // Human-readable error message
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is checks if target matches any of our sentinel errors.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsServer reports whether err carries a ServerError.
func IsServer(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

// IsTransport reports whether err carries a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsBusy checks if the error indicates a duplicate submission.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}

// Package errors carries the tool's error taxonomy: the only fatal condition
// is an archive that cannot be opened; everything else degrades to defaults
// at the component that observed it.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a domain error with an HTTP status for the service layer.
type Error struct {
	Code    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// New wraps an unexpected failure as a plain internal error.
func New(message string, cause error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message, Cause: cause}
}

// ErrArchiveNotFound marks the single fatal condition of the pipeline.
var ErrArchiveNotFound = errors.New("archive not found")

// ArchiveNotFound wraps a failure to open the data package at all.
func ArchiveNotFound(path string, cause error) error {
	return &Error{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("cannot open data package %q", path),
		Cause:   fmt.Errorf("%w: %w", ErrArchiveNotFound, cause),
	}
}

// ReportNotReady signals the HTTP layer that no stats have been computed yet.
func ReportNotReady() error {
	return &Error{Code: http.StatusServiceUnavailable, Message: "report not computed yet"}
}

// StatusCode extracts the HTTP status of an error, defaulting to 500.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}

package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when a catalog call needing a session is issued before LogIn succeeded.
var ErrNotAuthenticated = errors.New("catalog session is not authenticated")

// ErrFileTooSmall is returned when a file is shorter than one fingerprint chunk.
type ErrFileTooSmall struct {
	Path string
	Size int64
	Min  int64
}

// Error implements the error interface.
func (e *ErrFileTooSmall) Error() string {
	return fmt.Sprintf("file %s is too small to fingerprint (%d bytes, need at least %d)", e.Path, e.Size, e.Min)
}

// Is allows for error checking with errors.Is().
func (e *ErrFileTooSmall) Is(target error) bool {
	_, ok := target.(*ErrFileTooSmall)
	return ok
}

// ErrUnreadable is returned when a file cannot be opened or read.
type ErrUnreadable struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ErrUnreadable) Error() string {
	return fmt.Sprintf("unable to read %s: %v", e.Path, e.Err)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnreadable) Is(target error) bool {
	_, ok := target.(*ErrUnreadable)
	return ok
}

func (e *ErrUnreadable) Unwrap() error { return e.Err }

// ErrMalformedStatus is returned when a response status does not start with a numeric code.
type ErrMalformedStatus struct {
	Status string
}

// Error implements the error interface.
func (e *ErrMalformedStatus) Error() string {
	return fmt.Sprintf("malformed status %q", e.Status)
}

// Is allows for error checking with errors.Is().
func (e *ErrMalformedStatus) Is(target error) bool {
	_, ok := target.(*ErrMalformedStatus)
	return ok
}

// ErrMissingField is returned when a response record lacks a required field or carries it with the wrong type.
type ErrMissingField struct {
	Method string
	Field  string
	Record int // index of the data record, -1 for the envelope
}

// Error implements the error interface.
func (e *ErrMissingField) Error() string {
	if e.Record >= 0 {
		return fmt.Sprintf("%s response: record %d: missing field %q", e.Method, e.Record, e.Field)
	}
	return fmt.Sprintf("%s response: missing field %q", e.Method, e.Field)
}

// Is allows for error checking with errors.Is().
func (e *ErrMissingField) Is(target error) bool {
	_, ok := target.(*ErrMissingField)
	return ok
}

// ErrStatus is returned when the catalog explicitly rejected a call.
type ErrStatus struct {
	Message string
}

// Error implements the error interface.
func (e *ErrStatus) Error() string {
	return fmt.Sprintf("catalog rejected the call: %s", e.Message)
}

// Is allows for error checking with errors.Is().
func (e *ErrStatus) Is(target error) bool {
	_, ok := target.(*ErrStatus)
	return ok
}

// ErrTransport wraps a network-level failure talking to the catalog.
type ErrTransport struct {
	Err error
}

// Error implements the error interface.
func (e *ErrTransport) Error() string {
	return fmt.Sprintf("catalog transport error: %v", e.Err)
}

// Is allows for error checking with errors.Is().
func (e *ErrTransport) Is(target error) bool {
	_, ok := target.(*ErrTransport)
	return ok
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrNoMatch is returned when no candidate carries the requested language.
type ErrNoMatch struct {
	Language string
}

// Error implements the error interface.
func (e *ErrNoMatch) Error() string {
	return fmt.Sprintf("no subtitle candidate for language %q", e.Language)
}

// Is allows for error checking with errors.Is().
func (e *ErrNoMatch) Is(target error) bool {
	_, ok := target.(*ErrNoMatch)
	return ok
}

// ErrClient wraps any error that originated in the catalog client.
type ErrClient struct {
	Err error
}

// Error implements the error interface.
func (e *ErrClient) Error() string {
	return fmt.Sprintf("catalog client: %v", e.Err)
}

// Is allows for error checking with errors.Is().
func (e *ErrClient) Is(target error) bool {
	_, ok := target.(*ErrClient)
	return ok
}

func (e *ErrClient) Unwrap() error { return e.Err }

// ErrUnableToFingerprint is returned when the media file could not be hashed.
type ErrUnableToFingerprint struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ErrUnableToFingerprint) Error() string {
	return fmt.Sprintf("unable to fingerprint %s: %v", e.Path, e.Err)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnableToFingerprint) Is(target error) bool {
	_, ok := target.(*ErrUnableToFingerprint)
	return ok
}

func (e *ErrUnableToFingerprint) Unwrap() error { return e.Err }

// ErrEmptyResult is returned when the catalog had no usable subtitle, either
// because the search returned nothing or because no candidate matched the language.
type ErrEmptyResult struct {
	Language string
}

// Error implements the error interface.
func (e *ErrEmptyResult) Error() string {
	return fmt.Sprintf("no subtitles found for language %q", e.Language)
}

// Is allows for error checking with errors.Is().
func (e *ErrEmptyResult) Is(target error) bool {
	_, ok := target.(*ErrEmptyResult)
	return ok
}

// ErrDownload wraps a failure fetching the subtitle payload.
type ErrDownload struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *ErrDownload) Error() string {
	return fmt.Sprintf("unable to download %s: %v", e.URL, e.Err)
}

// Is allows for error checking with errors.Is().
func (e *ErrDownload) Is(target error) bool {
	_, ok := target.(*ErrDownload)
	return ok
}

func (e *ErrDownload) Unwrap() error { return e.Err }

// ErrUnzip is returned when the payload is not a valid gzip stream.
type ErrUnzip struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ErrUnzip) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to decompress subtitle: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unable to decompress subtitle: %s", e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnzip) Is(target error) bool {
	_, ok := target.(*ErrUnzip)
	return ok
}

func (e *ErrUnzip) Unwrap() error { return e.Err }

// ErrUnableToWrite is returned when the subtitle file could not be written.
type ErrUnableToWrite struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ErrUnableToWrite) Error() string {
	return fmt.Sprintf("unable to write %s: %v", e.Path, e.Err)
}

// Is allows for error checking with errors.Is().
func (e *ErrUnableToWrite) Is(target error) bool {
	_, ok := target.(*ErrUnableToWrite)
	return ok
}

func (e *ErrUnableToWrite) Unwrap() error { return e.Err }

// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrConfig indicates missing or invalid service configuration,
	// most commonly the storage credentials.
	ErrConfig = errors.New("configuration error")

	// ErrRecordNotFound indicates the requested database row does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrObjectNotFound indicates the requested bucket object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidType indicates a content type outside the allow-list.
	ErrInvalidType = errors.New("invalid file type")

	// ErrTooLarge indicates a payload over the configured size limit.
	ErrTooLarge = errors.New("file too large")

	// ErrInvalidName indicates a malformed object name.
	ErrInvalidName = errors.New("invalid filename format")

	// ErrInvalidArgument indicates a caller-supplied parameter out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAnnotateTimeout indicates the remote annotation did not finish in time.
	ErrAnnotateTimeout = errors.New("video annotation timed out")

	// ErrAnnotation indicates any other remote annotation failure.
	ErrAnnotation = errors.New("video annotation failed")
)

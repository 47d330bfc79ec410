package cusbc

import "errors"

// Predefined error types for robust error handling
var (
	ErrNoHubFound      = errors.New("no USB hub found")
	ErrInvalidMode     = errors.New("invalid port state format")
	ErrMissingPassword = errors.New("password required for this operation")
	ErrInvalidFormat   = errors.New("malformed hub response")
	ErrInvalidConfig   = errors.New("invalid hub configuration")

	// Process invocation errors
	ErrProcessFailure     = errors.New("hub control process failed")
	ErrExecutableNotFound = errors.New("hub control executable not found")
)

package errors

// PlatformError extends error with a code, a retry classification and
// attached context. It stays compatible with errors.Is, errors.As and
// errors.Unwrap through Unwrap.
type PlatformError interface {
	error

	// Code returns the error code identifying the failure.
	Code() ErrorCode

	// Classification reports whether retrying could succeed.
	Classification() ErrorClassification

	// Message returns the human-readable message without the cause.
	Message() string

	// Context returns a copy of the attached metadata, or nil.
	Context() map[string]interface{}

	// Unwrap returns the wrapped cause, or nil.
	Unwrap() error
}

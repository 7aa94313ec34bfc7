package errors

import (
	"errors"
	"fmt"
)

// Wrap attaches a code and message to err while keeping err reachable through
// Unwrap. A classification already present in err's chain is preserved.
// Returns nil if err is nil.
//
// Example:
//
//	if err := b.Move(from, to); err != nil {
//	    return errors.Wrap(err, errors.CodeMoveFailed, "failed to move folder")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf is Wrap with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches a copy of ctx in one step.
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeCopyFailed, "copy failed", map[string]interface{}{
//	    "from": src,
//	    "to":   dst,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	classification := DefaultClassification(code)
	var platformErr PlatformError
	if errors.As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		context:        copyContext(ctx),
		cause:          err,
	}
}

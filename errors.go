package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"syscall"

	platformerrors "github.com/peterkovacs/files/errors"
)

// Reason identifies why an operation failed.
type Reason string

const (
	// ReasonMissing means no entry of the expected kind exists at the path.
	ReasonMissing Reason = "missing"
	// ReasonKindMismatch means the entry at the path is a file where a folder
	// was expected, or the other way around.
	ReasonKindMismatch Reason = "kindMismatch"
	// ReasonAlreadyExists means a create, rename, move or copy would have
	// replaced an existing entry.
	ReasonAlreadyExists Reason = "alreadyExists"
	// ReasonCreateFailed means the backend refused to create the entry.
	ReasonCreateFailed Reason = "failedToCreate"
	// ReasonMoveFailed means the backend refused a rename or move.
	ReasonMoveFailed Reason = "failedToMove"
	// ReasonCopyFailed means the backend refused a copy.
	ReasonCopyFailed Reason = "failedToCopy"
	// ReasonDeleteFailed means the backend refused a removal.
	ReasonDeleteFailed Reason = "failedToDelete"
	// ReasonReadFailed means the contents could not be read.
	ReasonReadFailed Reason = "readFailed"
	// ReasonWriteFailed means the contents could not be written.
	ReasonWriteFailed Reason = "writeFailed"
	// ReasonDecodingFailed means the contents are not valid in the requested
	// text encoding.
	ReasonDecodingFailed Reason = "stringDecodingFailed"
	// ReasonEncodingFailed means a string cannot be represented in the
	// requested text encoding.
	ReasonEncodingFailed Reason = "stringEncodingFailed"
	// ReasonNotANumber means the contents do not parse as a number.
	ReasonNotANumber Reason = "notANumber"
)

var reasonCodes = map[Reason]platformerrors.ErrorCode{
	ReasonMissing:        platformerrors.CodeNotFound,
	ReasonKindMismatch:   platformerrors.CodeKindMismatch,
	ReasonAlreadyExists:  platformerrors.CodeAlreadyExists,
	ReasonCreateFailed:   platformerrors.CodeCreateFailed,
	ReasonMoveFailed:     platformerrors.CodeMoveFailed,
	ReasonCopyFailed:     platformerrors.CodeCopyFailed,
	ReasonDeleteFailed:   platformerrors.CodeDeleteFailed,
	ReasonReadFailed:     platformerrors.CodeReadFailed,
	ReasonWriteFailed:    platformerrors.CodeWriteFailed,
	ReasonDecodingFailed: platformerrors.CodeDecodingFailed,
	ReasonEncodingFailed: platformerrors.CodeEncodingFailed,
	ReasonNotANumber:     platformerrors.CodeInvalidContent,
}

var reasonMessages = map[Reason]string{
	ReasonMissing:        "no entry of the expected kind at",
	ReasonKindMismatch:   "entry has the wrong kind at",
	ReasonAlreadyExists:  "an entry already exists at",
	ReasonCreateFailed:   "failed to create",
	ReasonMoveFailed:     "failed to move",
	ReasonCopyFailed:     "failed to copy",
	ReasonDeleteFailed:   "failed to delete",
	ReasonReadFailed:     "failed to read",
	ReasonWriteFailed:    "failed to write",
	ReasonDecodingFailed: "failed to decode the contents of",
	ReasonEncodingFailed: "failed to encode a string for",
	ReasonNotANumber:     "contents are not a number in",
}

// Code returns the error code for r.
func (r Reason) Code() platformerrors.ErrorCode {
	if code, ok := reasonCodes[r]; ok {
		return code
	}
	return platformerrors.CodeUnknown
}

// pathError holds what the three public error types share.
type pathError struct {
	// Path is the canonical path of the entry the operation acted on, or the
	// raw input when resolution itself failed.
	Path string
	// Reason tells why the operation failed.
	Reason Reason
	// Err is the underlying backend or codec error, if any.
	Err error
}

func (e *pathError) format(kind string) string {
	msg, ok := reasonMessages[e.Reason]
	if !ok {
		msg = string(e.Reason)
	}
	s := fmt.Sprintf("[%s] %s: %s %s", e.Code(), kind, msg, e.Path)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Code reports the backend failure behind the error when it has a code of
// its own, such as a denied permission, and the reason's code otherwise.
func (e *pathError) Code() platformerrors.ErrorCode {
	if code, ok := backendCode(e.Err); ok {
		return code
	}
	return e.Reason.Code()
}

// Classification is the cause's classification when the cause is a
// PlatformError, and the default for Code otherwise.
func (e *pathError) Classification() platformerrors.ErrorClassification {
	var pe platformerrors.PlatformError
	if errors.As(e.Err, &pe) {
		return pe.Classification()
	}
	return platformerrors.DefaultClassification(e.Code())
}

// backendCode classifies err by the backend fault it wraps.
func backendCode(err error) (platformerrors.ErrorCode, bool) {
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, fs.ErrPermission):
		return platformerrors.CodePermission, true
	case errors.Is(err, syscall.EBUSY), errors.Is(err, syscall.EAGAIN):
		return platformerrors.CodeBusy, true
	case errors.Is(err, syscall.EIO), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.ErrShortWrite):
		return platformerrors.CodeIO, true
	default:
		return "", false
	}
}

// Context returns the path and reason.
func (e *pathError) Context() map[string]interface{} {
	return map[string]interface{}{
		"path":   e.Path,
		"reason": string(e.Reason),
	}
}

func (e *pathError) Unwrap() error { return e.Err }

func (e *pathError) reason() Reason { return e.Reason }

// LocationError reports that an entry could not be found, had the wrong kind
// or could not be deleted.
type LocationError struct {
	pathError
}

func (e *LocationError) Error() string { return e.format("location") }

// Message returns the description without the code and cause.
func (e *LocationError) Message() string {
	return fmt.Sprintf("location %s: %s", e.Reason, e.Path)
}

// ReadError reports that file contents could not be read or interpreted.
type ReadError struct {
	pathError
}

func (e *ReadError) Error() string { return e.format("read") }

// Message returns the description without the code and cause.
func (e *ReadError) Message() string {
	return fmt.Sprintf("read %s: %s", e.Reason, e.Path)
}

// WriteError reports that contents could not be written or that a create,
// rename, move or copy failed.
type WriteError struct {
	pathError
}

func (e *WriteError) Error() string { return e.format("write") }

// Message returns the description without the code and cause.
func (e *WriteError) Message() string {
	return fmt.Sprintf("write %s: %s", e.Reason, e.Path)
}

func locationError(p string, reason Reason, err error) *LocationError {
	return &LocationError{pathError{Path: p, Reason: reason, Err: err}}
}

func readError(p string, reason Reason, err error) *ReadError {
	return &ReadError{pathError{Path: p, Reason: reason, Err: err}}
}

func writeError(p string, reason Reason, err error) *WriteError {
	return &WriteError{pathError{Path: p, Reason: reason, Err: err}}
}

// ReasonOf returns the reason of the first LocationError, ReadError or
// WriteError in err's chain, or "" when there is none.
func ReasonOf(err error) Reason {
	var r interface{ reason() Reason }
	if errors.As(err, &r) {
		return r.reason()
	}
	return ""
}

// IsMissing reports whether err means an entry does not exist.
func IsMissing(err error) bool {
	return ReasonOf(err) == ReasonMissing
}

var (
	_ platformerrors.PlatformError = (*LocationError)(nil)
	_ platformerrors.PlatformError = (*ReadError)(nil)
	_ platformerrors.PlatformError = (*WriteError)(nil)
)

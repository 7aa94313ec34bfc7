package errors

// ErrorCode represents a specific error condition.
// Codes are strings so they read well in logs and JSON.
type ErrorCode string

const (
	// Lookup errors.

	// CodeNotFound indicates an expected file or folder does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeKindMismatch indicates an entry exists but is a file where a folder
	// was expected, or the other way around.
	CodeKindMismatch ErrorCode = "KIND_MISMATCH"

	// CodeAlreadyExists indicates a strict create or a move collided with an
	// existing entry.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Mutation errors.

	// CodeCreateFailed indicates the backend refused to create an entry.
	CodeCreateFailed ErrorCode = "CREATE_FAILED"

	// CodeMoveFailed indicates the backend refused a move or rename.
	CodeMoveFailed ErrorCode = "MOVE_FAILED"

	// CodeCopyFailed indicates the backend refused a copy.
	CodeCopyFailed ErrorCode = "COPY_FAILED"

	// CodeDeleteFailed indicates the backend refused a removal.
	CodeDeleteFailed ErrorCode = "DELETE_FAILED"

	// Content errors.

	// CodeReadFailed indicates file contents could not be read.
	CodeReadFailed ErrorCode = "READ_FAILED"

	// CodeWriteFailed indicates file contents could not be written.
	CodeWriteFailed ErrorCode = "WRITE_FAILED"

	// CodeDecodingFailed indicates bytes could not be decoded as text.
	CodeDecodingFailed ErrorCode = "DECODING_FAILED"

	// CodeEncodingFailed indicates text could not be encoded as bytes.
	CodeEncodingFailed ErrorCode = "ENCODING_FAILED"

	// CodeInvalidContent indicates file contents did not parse as the
	// requested value.
	CodeInvalidContent ErrorCode = "INVALID_CONTENT"

	// Backend errors.

	// CodePermission indicates the backend denied access.
	CodePermission ErrorCode = "PERMISSION_DENIED"

	// CodeIO indicates a transient I/O fault in the backend.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeBusy indicates the entry is temporarily locked by someone else.
	CodeBusy ErrorCode = "BUSY"

	// CodeInvalidInput indicates a malformed argument such as an empty name.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeNotImplemented indicates the backend does not support an operation.
	CodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// CodeInternal indicates a bug or broken invariant.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)

package errors

// ErrorClassification indicates whether an error should trigger a retry.
type ErrorClassification string

const (
	// ClassificationRetryable marks failures that may succeed when repeated,
	// such as an interrupted read or a busy file.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that repeat until the tree or
	// the arguments change, such as a missing entry or a name collision.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIO:   ClassificationRetryable,
	CodeBusy: ClassificationRetryable,

	CodeNotFound:       ClassificationPermanent,
	CodeKindMismatch:   ClassificationPermanent,
	CodeAlreadyExists:  ClassificationPermanent,
	CodeCreateFailed:   ClassificationPermanent,
	CodeMoveFailed:     ClassificationPermanent,
	CodeCopyFailed:     ClassificationPermanent,
	CodeDeleteFailed:   ClassificationPermanent,
	CodeReadFailed:     ClassificationPermanent,
	CodeWriteFailed:    ClassificationPermanent,
	CodeDecodingFailed: ClassificationPermanent,
	CodeEncodingFailed: ClassificationPermanent,
	CodeInvalidContent: ClassificationPermanent,
	CodePermission:     ClassificationPermanent,
	CodeInvalidInput:   ClassificationPermanent,
	CodeInvalidConfig:  ClassificationPermanent,
	CodeNotImplemented: ClassificationPermanent,
	CodeInternal:       ClassificationPermanent,
	CodeUnknown:        ClassificationPermanent,
}

// DefaultClassification returns the classification used for code when none
// is given explicitly. Unknown codes are permanent.
func DefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}

// Package errors provides structured errors for filesystem handle operations.
//
// Every error produced by the files module carries an error code describing
// what went wrong (a missing entry, a name collision, a failed read), a
// classification telling callers whether a retry could help, and optional
// context metadata such as the offending path. The package stays compatible
// with the standard library (errors.Is, errors.As, errors.Unwrap).
//
// # Creating errors
//
//	err := errors.New(errors.CodeNotFound, "file not found")
//	err := errors.Newf(errors.CodeKindMismatch, "%s is a directory", path)
//
// # Wrapping backend failures
//
//	data, err := b.ReadBytes(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeReadFailed, "failed to read file")
//	}
//
// # Context
//
//	err = errors.WithContext(err, "path", "/tmp/report.txt")
//
// # Classification
//
// Codes describing transient I/O faults (CodeIO, CodeBusy) are retryable;
// everything else is permanent. Use IsRetryable to decide:
//
//	if errors.IsRetryable(err) {
//	    // try again
//	}
//
// # Serialization
//
// ToJSON flattens any error into an ErrorResponse without exposing the
// wrapped chain.
package errors

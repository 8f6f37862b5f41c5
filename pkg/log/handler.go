package log

import (
	"github.com/cockroachdb/errors"
)

// extractStacktrace returns the first safe detail recorded by cockroachdb/errors,
// which holds the stack captured by errors.WithStack.
func extractStacktrace(err error) string {
	if err == nil {
		return ""
	}
	safeDetails := errors.GetSafeDetails(err).SafeDetails
	if len(safeDetails) > 0 {
		return safeDetails[0]
	}
	// WithStack wraps the original error; the stack lives on the wrapper layers.
	for cause := errors.UnwrapOnce(err); cause != nil; cause = errors.UnwrapOnce(cause) {
		if details := errors.GetSafeDetails(cause).SafeDetails; len(details) > 0 {
			return details[0]
		}
	}
	return ""
}

// splitError separates a leading error value from the remaining key/value fields.
func splitError(fields []any) (error, []any) {
	if len(fields) == 0 {
		return nil, fields
	}
	if err, ok := fields[0].(error); ok {
		return err, fields[1:]
	}
	return nil, fields
}

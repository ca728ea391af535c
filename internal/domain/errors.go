package domain

import "errors"

// ErrCampaignNotFound is returned by lookups for an unknown campaign id.
var ErrCampaignNotFound = errors.New("campaign not found")

// ValidationError reports an unmet campaign-creation precondition. It is
// surfaced synchronously to the caller and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed on " + e.Field + ": " + e.Reason
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

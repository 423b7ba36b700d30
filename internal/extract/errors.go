package extract

import "errors"

var (
	// ErrInvalidPayload means the payload is not a JSON object or lacks
	// the required top-level array. Malformed individual items never
	// trigger it; they are dropped silently.
	ErrInvalidPayload = errors.New("invalid extraction payload")
)

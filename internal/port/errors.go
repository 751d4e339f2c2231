package port

import "errors"

var (
	// ErrNotFound reports a lookup miss by food ID or email.
	ErrNotFound = errors.New("record not found")

	// ErrMalformedRecord reports a row with the wrong field count.
	// Fatal for write paths, skippable for read-only listing.
	ErrMalformedRecord = errors.New("malformed record")
)

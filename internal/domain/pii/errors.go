package pii

import "errors"

var (
	// ErrInvalidFormat indicates the raw value cannot be canonicalized.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidChecksum indicates a well-formed value failing checksum validation.
	ErrInvalidChecksum = errors.New("invalid checksum")
)

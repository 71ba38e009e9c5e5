package models

import (
	"errors"
)

// -----------------------------------------------------------------------------

var (
	// ErrInvalidArgument is returned when a caller-supplied value is out of range, like a negative
	// key length or an unknown output encoding.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidKeyLength is returned when the key bytes are not 16, 24 or 32 bytes long.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrDecryption is returned when the ciphertext is malformed, the key does not match or the
	// padding check fails.
	ErrDecryption = errors.New("decryption failed")
)

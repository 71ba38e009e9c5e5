package aesutil

import (
	"github.com/mxmauro/aesutil/crypto/ciphers"
	"github.com/mxmauro/aesutil/models"
)

// -----------------------------------------------------------------------------

var (
	// ErrInvalidArgument is returned by `GenerateKey` when the length is negative and by `NewCodec`
	// when the encoding is unknown.
	ErrInvalidArgument = models.ErrInvalidArgument

	// ErrInvalidKeyLength is returned by `Encrypt` and `Decrypt` when the key string is not 16, 24
	// or 32 bytes long once encoded as UTF-8.
	ErrInvalidKeyLength = models.ErrInvalidKeyLength

	// ErrDecryption is returned by `Decrypt` when the ciphertext is malformed, the key does not match,
	// the padding check fails or the result is not valid UTF-8.
	ErrDecryption = models.ErrDecryption

	ErrEngineNotSupported = ciphers.ErrEngineNotSupported
)

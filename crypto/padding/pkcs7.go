package padding

import (
	"crypto/subtle"
	"errors"
)

// -----------------------------------------------------------------------------

// ErrInvalidPadding is returned when the trailing bytes of a buffer are not a valid PKCS#7 pad.
var ErrInvalidPadding = errors.New("invalid pkcs#7 padding")

// -----------------------------------------------------------------------------

// PKCS7Pad returns a copy of data extended to a multiple of blockSize. Between 1 and blockSize
// bytes are always added, each one holding the pad length.
func PKCS7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)

	output := make([]byte, len(data)+padLen)
	copy(output, data)
	for idx := len(data); idx < len(output); idx++ {
		output[idx] = byte(padLen)
	}

	// Done.
	return output
}

// PKCS7Unpad validates and strips the PKCS#7 pad from data. The returned slice shares the
// underlying array with data.
func PKCS7Unpad(data []byte, blockSize int) ([]byte, error) {
	dataLen := len(data)
	if dataLen == 0 || dataLen%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	padLen := int(data[dataLen-1])
	if padLen == 0 || padLen > blockSize {
		return nil, ErrInvalidPadding
	}

	// Every pad byte must hold the pad length.
	mismatch := 0
	for _, b := range data[dataLen-padLen:] {
		mismatch |= subtle.ConstantTimeByteEq(b, byte(padLen)) ^ 1
	}
	if mismatch != 0 {
		return nil, ErrInvalidPadding
	}

	// Done.
	return data[:dataLen-padLen], nil
}

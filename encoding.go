package aesutil

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"
)

// -----------------------------------------------------------------------------

// Encoding selects the textual representation of ciphertexts.
type Encoding int

const (
	// EncodingBase64 is standard, padded Base64. This is the default and matches the output of
	// browser-side AES helpers.
	EncodingBase64 Encoding = iota

	// EncodingHex is lowercase hexadecimal.
	EncodingHex
)

// -----------------------------------------------------------------------------

// String returns the name of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingBase64:
		return "base64"
	case EncodingHex:
		return "hex"
	}
	return "encoding(" + strconv.Itoa(int(e)) + ")"
}

func (e Encoding) isValid() bool {
	return e == EncodingBase64 || e == EncodingHex
}

func (e Encoding) encode(buf []byte) string {
	if e == EncodingHex {
		return hex.EncodeToString(buf)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func (e Encoding) decode(s string) ([]byte, error) {
	if e == EncodingHex {
		return hex.DecodeString(s)
	}
	return base64.StdEncoding.DecodeString(s)
}

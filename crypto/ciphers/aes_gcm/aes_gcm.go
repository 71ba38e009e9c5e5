package aes_gcm

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/mxmauro/aesutil/models"
	"github.com/mxmauro/aesutil/util"
)

// -----------------------------------------------------------------------------

const (
	nonceSizeLen = 2
)

// -----------------------------------------------------------------------------

type aesGcmCipher struct {
	r      io.Reader
	aead   cipher.AEAD
	keyLen int
}

// -----------------------------------------------------------------------------

// NewFromKey creates a new AES-GCM cipher object from the given key. Nonces are read from r, or
// from crypto/rand when r is nil.
func NewFromKey(key []byte, r io.Reader) (models.Cipher, error) {
	var aead cipher.AEAD

	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, util.NewExtendedError(models.ErrInvalidKeyLength, nil, "key must be 16, 24 or 32 bytes long")
	}
	if r == nil {
		r = rand.Reader
	}

	// Create the AES cipher.
	_cipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, util.NewExtendedError(models.ErrInvalidKeyLength, err, "failed to create cipher")
	}

	// Create the GCM in AEAD mode.
	aead, err = cipher.NewGCM(_cipher)
	if err != nil {
		return nil, util.NewExtendedError(nil, err, "failed to create cipher")
	}

	// Done.
	return &aesGcmCipher{
		r:      r,
		aead:   aead,
		keyLen: len(key),
	}, nil
}

// KeyLen returns the length of the key used by the AES-GCM cipher.
func (c *aesGcmCipher) KeyLen() int {
	return c.keyLen
}

// Encrypt encrypts the given plaintext using the AES-GCM cipher.
func (c *aesGcmCipher) Encrypt(plaintext []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()

	// Build the output header with a random nonce.
	output := make([]byte, nonceSizeLen+nonceSize, nonceSizeLen+nonceSize+len(plaintext)+c.aead.Overhead())
	binary.LittleEndian.PutUint16(output[:nonceSizeLen], uint16(uint(nonceSize)))
	nonce := output[nonceSizeLen:]
	if _, err := io.ReadFull(c.r, nonce); err != nil {
		return nil, util.NewExtendedError(nil, err, "unable to generate aead nonce")
	}

	// Encrypt the plain text.
	output = c.aead.Seal(output, nonce, plaintext, nil)

	// Done.
	return output, nil
}

// Decrypt decrypts the given ciphertext using the AES-GCM cipher.
func (c *aesGcmCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < nonceSizeLen {
		return nil, util.NewExtendedError(models.ErrDecryption, nil, "empty or invalid ciphertext")
	}

	// Get the nonce size.
	nonceSize := int(uint(binary.LittleEndian.Uint16(ciphertext[:nonceSizeLen])))
	if nonceSize != c.aead.NonceSize() || len(ciphertext) < nonceSizeLen+nonceSize+c.aead.Overhead() {
		return nil, util.NewExtendedError(models.ErrDecryption, nil, "empty or invalid ciphertext")
	}

	// Split nonce and sealed data.
	nonce := ciphertext[nonceSizeLen : nonceSizeLen+nonceSize]
	ciphertext = ciphertext[nonceSizeLen+nonceSize:]

	// Attempt to open (decrypt).
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, util.NewExtendedError(models.ErrDecryption, err, "authentication failed")
	}

	// Done.
	return plaintext, nil
}

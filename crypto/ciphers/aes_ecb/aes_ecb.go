package aes_ecb

import (
	"crypto/aes"
	"crypto/cipher"
	"io"

	"github.com/mxmauro/aesutil/crypto/padding"
	"github.com/mxmauro/aesutil/models"
	"github.com/mxmauro/aesutil/util"
)

// -----------------------------------------------------------------------------

type aesEcbCipher struct {
	block  cipher.Block
	keyLen int
}

// -----------------------------------------------------------------------------

// NewFromKey creates a new AES-ECB cipher object from the given key. The key size selects
// AES-128, AES-192 or AES-256. The reader is not used because ECB needs no nonce.
func NewFromKey(key []byte, _ io.Reader) (models.Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, util.NewExtendedError(models.ErrInvalidKeyLength, nil, "key must be 16, 24 or 32 bytes long")
	}

	// Create the AES cipher.
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, util.NewExtendedError(models.ErrInvalidKeyLength, err, "failed to create cipher")
	}

	// Done.
	return &aesEcbCipher{
		block:  block,
		keyLen: len(key),
	}, nil
}

// KeyLen returns the length of the key used by the AES-ECB cipher.
func (c *aesEcbCipher) KeyLen() int {
	return c.keyLen
}

// Encrypt pads the given plaintext with PKCS#7 and encrypts every block independently.
// Identical plaintext blocks always produce identical ciphertext blocks.
func (c *aesEcbCipher) Encrypt(plaintext []byte) ([]byte, error) {
	output := padding.PKCS7Pad(plaintext, aes.BlockSize)
	for ofs := 0; ofs < len(output); ofs += aes.BlockSize {
		c.block.Encrypt(output[ofs:ofs+aes.BlockSize], output[ofs:ofs+aes.BlockSize])
	}

	// Done.
	return output, nil
}

// Decrypt decrypts every block of the given ciphertext and removes the PKCS#7 padding.
func (c *aesEcbCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, util.NewExtendedError(models.ErrDecryption, nil, "ciphertext is not a whole number of blocks")
	}

	output := make([]byte, len(ciphertext))
	for ofs := 0; ofs < len(ciphertext); ofs += aes.BlockSize {
		c.block.Decrypt(output[ofs:ofs+aes.BlockSize], ciphertext[ofs:ofs+aes.BlockSize])
	}

	// Strip the padding.
	plaintext, err := padding.PKCS7Unpad(output, aes.BlockSize)
	if err != nil {
		util.SafeZeroMem(output)
		return nil, util.NewExtendedError(models.ErrDecryption, err, "bad padding")
	}

	// Done.
	return plaintext, nil
}

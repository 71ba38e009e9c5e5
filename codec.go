package aesutil

import (
	"io"
	"unicode/utf8"

	"github.com/mxmauro/aesutil/crypto/ciphers"
	"github.com/mxmauro/aesutil/models"
	"github.com/mxmauro/aesutil/util"
	"go.uber.org/zap"
)

// -----------------------------------------------------------------------------

// Codec encrypts and decrypts text with a key string. It is immutable once created and safe for
// concurrent use.
type Codec struct {
	engine   string
	encoding Encoding
	rg       io.Reader
	logger   *zap.Logger
}

// Options configure a Codec. The zero value selects AES-ECB with Base64 output.
type Options struct {
	// Encryption engine name. Defaults to "aes-ecb".
	Engine string

	// Textual encoding of ciphertexts. Defaults to Base64.
	Encoding Encoding

	// An optional random number generator reader used by engines that need nonces. If nil,
	// crypto/rand.Reader is used.
	RandomGeneratorReader io.Reader

	// An optional logger. Failed operations are reported at debug level without key or data bytes.
	Logger *zap.Logger
}

// -----------------------------------------------------------------------------

var defaultCodec = &Codec{
	engine:   ciphers.EngineAesEcb,
	encoding: EncodingBase64,
	logger:   zap.NewNop(),
}

// -----------------------------------------------------------------------------

// NewCodec creates a new codec with the given options.
func NewCodec(opts Options) (*Codec, error) {
	engine := opts.Engine
	if len(engine) == 0 {
		engine = ciphers.EngineAesEcb
	}
	if !ciphers.IsEngineSupported(engine) {
		return nil, ErrEngineNotSupported
	}
	if !opts.Encoding.isValid() {
		return nil, util.NewExtendedError(ErrInvalidArgument, nil, "unsupported encoding "+opts.Encoding.String())
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Done
	return &Codec{
		engine:   engine,
		encoding: opts.Encoding,
		rg:       opts.RandomGeneratorReader,
		logger:   logger.With(zap.String("engine", engine), zap.Stringer("encoding", opts.Encoding)),
	}, nil
}

// Encrypt encrypts the UTF-8 bytes of plaintext with AES-ECB and PKCS#7 padding, using the raw
// UTF-8 bytes of keyString as the key, and returns the Base64-encoded ciphertext.
//
// ECB leaks equal plaintext blocks. Use it only where compatibility requires it.
func Encrypt(plaintext string, keyString string) (string, error) {
	return defaultCodec.Encrypt(plaintext, keyString)
}

// Decrypt reverses Encrypt.
func Decrypt(ciphertext string, keyString string) (string, error) {
	return defaultCodec.Decrypt(ciphertext, keyString)
}

// Engine returns the name of the encryption engine used by the codec.
func (c *Codec) Engine() string {
	return c.engine
}

// Encoding returns the ciphertext encoding used by the codec.
func (c *Codec) Encoding() Encoding {
	return c.encoding
}

// Encrypt encrypts the given plaintext and returns the encoded ciphertext.
func (c *Codec) Encrypt(plaintext string, keyString string) (string, error) {
	return c.EncryptBytes([]byte(plaintext), keyString)
}

// Decrypt decodes and decrypts the given ciphertext. The result must be valid UTF-8.
func (c *Codec) Decrypt(ciphertext string, keyString string) (string, error) {
	plaintext, err := c.DecryptBytes(ciphertext, keyString)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		util.SafeZeroMem(plaintext)
		err = util.NewExtendedError(ErrDecryption, nil, "plaintext is not valid utf-8")
		c.logFailure("decrypt", keyString, err)
		return "", err
	}

	// Done
	return string(plaintext), nil
}

// EncryptBytes encrypts the given raw plaintext and returns the encoded ciphertext.
func (c *Codec) EncryptBytes(plaintext []byte, keyString string) (string, error) {
	cipher, err := c.newCipher(keyString)
	if err != nil {
		c.logFailure("encrypt", keyString, err)
		return "", err
	}

	ciphertext, err := cipher.Encrypt(plaintext)
	if err != nil {
		c.logFailure("encrypt", keyString, err)
		return "", err
	}

	// Done
	return c.encoding.encode(ciphertext), nil
}

// DecryptBytes decodes and decrypts the given ciphertext and returns the raw plaintext.
func (c *Codec) DecryptBytes(ciphertext string, keyString string) ([]byte, error) {
	cipher, err := c.newCipher(keyString)
	if err != nil {
		c.logFailure("decrypt", keyString, err)
		return nil, err
	}

	// Decode the text form.
	raw, err := c.encoding.decode(ciphertext)
	if err != nil {
		err = util.NewExtendedError(ErrDecryption, err, "malformed "+c.encoding.String()+" ciphertext")
		c.logFailure("decrypt", keyString, err)
		return nil, err
	}

	plaintext, err := cipher.Decrypt(raw)
	if err != nil {
		c.logFailure("decrypt", keyString, err)
		return nil, err
	}

	// Done
	return plaintext, nil
}

func (c *Codec) newCipher(keyString string) (models.Cipher, error) {
	// The key is the UTF-8 encoding of the string, never hex-decoded.
	key := []byte(keyString)
	defer util.SafeZeroMem(key)

	return ciphers.NewFromKey(c.engine, key, c.rg)
}

func (c *Codec) logFailure(op string, keyString string, err error) {
	c.logger.Debug(op+" failed", zap.Int("key_len", len(keyString)), zap.Error(err))
}

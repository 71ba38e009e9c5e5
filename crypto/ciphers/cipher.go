package ciphers

import (
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/mxmauro/aesutil/crypto/ciphers/aes_ecb"
	"github.com/mxmauro/aesutil/crypto/ciphers/aes_gcm"
	"github.com/mxmauro/aesutil/models"
)

// -----------------------------------------------------------------------------

const (
	// EngineAesEcb is AES in electronic-codebook mode with PKCS#7 padding.
	EngineAesEcb = "aes-ecb"

	// EngineAesGcm is AES in Galois/counter mode with a random nonce prepended to the output.
	EngineAesGcm = "aes-gcm"
)

// -----------------------------------------------------------------------------

type NewFromKeyFunc func([]byte, io.Reader) (models.Cipher, error)

// -----------------------------------------------------------------------------

var (
	enginesMtx  = sync.RWMutex{}
	enginesList = map[string]NewFromKeyFunc{
		EngineAesEcb: aes_ecb.NewFromKey,
		EngineAesGcm: aes_gcm.NewFromKey,
	}
)

var ErrEngineNotSupported = errors.New("engine not supported")

// -----------------------------------------------------------------------------

// SupportedEngines returns a sorted list of supported encryption engines.
func SupportedEngines() []string {
	enginesMtx.RLock()
	defer enginesMtx.RUnlock()

	list := make([]string, 0, len(enginesList))
	for name := range enginesList {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

// IsEngineSupported returns true if the given encryption engine is supported.
func IsEngineSupported(engine string) bool {
	enginesMtx.RLock()
	defer enginesMtx.RUnlock()

	_, ok := enginesList[engine]
	return ok
}

// RegisterEngine registers a custom encryption engine.
func RegisterEngine(engine string, newFromKey NewFromKeyFunc) error {
	if len(engine) == 0 {
		return errors.New("engine name cannot be empty")
	}
	if newFromKey == nil {
		return errors.New("newFromKey cannot be nil")
	}

	enginesMtx.Lock()
	defer enginesMtx.Unlock()

	// Check if the engine is already registered
	if _, ok := enginesList[engine]; ok {
		return errors.New("engine already exists")
	}

	// Add the engine to the list.
	enginesList[engine] = newFromKey

	// Done
	return nil
}

// NewFromKey creates a new cipher object from the given key and encryption engine.
func NewFromKey(engine string, key []byte, r io.Reader) (models.Cipher, error) {
	enginesMtx.RLock()
	newFromKey, ok := enginesList[engine]
	enginesMtx.RUnlock()

	if !ok {
		return nil, ErrEngineNotSupported
	}
	return newFromKey(key, r)
}

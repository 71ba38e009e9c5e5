package aesutil

import (
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/mxmauro/aesutil/util"
)

// -----------------------------------------------------------------------------

const (
	keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// -----------------------------------------------------------------------------

// RandomSource picks pseudo-random indexes. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// KeyGenerator builds random alphanumeric key strings.
//
// The output is NOT suitable as a secret: the source is a non-cryptographic generator unless the
// caller injects something stronger.
type KeyGenerator struct {
	mtx sync.Mutex
	src RandomSource
}

type globalSource struct{}

// -----------------------------------------------------------------------------

var defaultKeyGenerator = NewKeyGenerator(nil)

// -----------------------------------------------------------------------------

// NewKeyGenerator creates a key generator that draws from src. If src is nil, the math/rand/v2
// top-level generator is used.
func NewKeyGenerator(src RandomSource) *KeyGenerator {
	if src == nil {
		src = globalSource{}
	}
	return &KeyGenerator{
		src: src,
	}
}

// GenerateKey returns a string of length characters drawn from A-Z, a-z and 0-9 using the
// default generator.
func GenerateKey(length int) (string, error) {
	return defaultKeyGenerator.Generate(length)
}

// Generate returns a string of length characters drawn from A-Z, a-z and 0-9.
func (g *KeyGenerator) Generate(length int) (string, error) {
	if length < 0 {
		return "", util.NewExtendedError(ErrInvalidArgument, nil, "key length cannot be negative")
	}

	sb := strings.Builder{}
	sb.Grow(length)

	g.mtx.Lock()
	defer g.mtx.Unlock()

	for idx := 0; idx < length; idx++ {
		_ = sb.WriteByte(keyAlphabet[g.src.IntN(len(keyAlphabet))])
	}

	// Done
	return sb.String(), nil
}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

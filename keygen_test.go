package aesutil_test

import (
	"math/rand/v2"
	"regexp"
	"sync"
	"testing"

	"github.com/mxmauro/aesutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

var (
	alphanumericRE = regexp.MustCompile(`^[A-Za-z0-9]*$`)
)

// -----------------------------------------------------------------------------

type sequenceSource struct {
	next int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.next % n
	s.next++
	return v
}

// -----------------------------------------------------------------------------

func TestGenerateKey(t *testing.T) {
	key, err := aesutil.GenerateKey(16)
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Za-z0-9]{16}$`, key)
}

func TestGenerateKeyLengths(t *testing.T) {
	for _, length := range []int{0, 1, 15, 16, 24, 32, 61, 62, 63, 500} {
		key, err := aesutil.GenerateKey(length)
		require.NoError(t, err)
		assert.Len(t, key, length)
		assert.True(t, alphanumericRE.MatchString(key), "unexpected characters in %q", key)
	}
}

func TestGenerateKeyNegativeLength(t *testing.T) {
	_, err := aesutil.GenerateKey(-1)
	assert.ErrorIs(t, err, aesutil.ErrInvalidArgument)

	_, err = aesutil.NewKeyGenerator(nil).Generate(-16)
	assert.ErrorIs(t, err, aesutil.ErrInvalidArgument)
}

func TestKeyGeneratorCoversAlphabet(t *testing.T) {
	g := aesutil.NewKeyGenerator(&sequenceSource{})

	key, err := g.Generate(62)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", key)

	t.Log("Continuing the sequence wraps around the alphabet...")
	key, err = g.Generate(3)
	require.NoError(t, err)
	assert.Equal(t, "ABC", key)
}

func TestKeyGeneratorSeeded(t *testing.T) {
	first := aesutil.NewKeyGenerator(rand.New(rand.NewPCG(1, 2)))
	second := aesutil.NewKeyGenerator(rand.New(rand.NewPCG(1, 2)))
	other := aesutil.NewKeyGenerator(rand.New(rand.NewPCG(3, 4)))

	a, err := first.Generate(32)
	require.NoError(t, err)
	b, err := second.Generate(32)
	require.NoError(t, err)
	c, err := other.Generate(32)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestKeyGeneratorConcurrent(t *testing.T) {
	g := aesutil.NewKeyGenerator(rand.New(rand.NewPCG(7, 7)))

	wg := sync.WaitGroup{}
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := 0; idx < 100; idx++ {
				key, err := g.Generate(16)
				if !assert.NoError(t, err) {
					return
				}
				assert.Len(t, key, 16)
			}
		}()
	}
	wg.Wait()
}

package entropy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashChainIsReproducible(t *testing.T) {
	a := NewHashChain([]byte("fixed"))
	b := NewHashChain([]byte("fixed"))

	for i := 0; i < 3; i++ {
		sa, err := a.NextSeed(context.Background())
		require.NoError(t, err)
		sb, err := b.NextSeed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sa, sb)
	}
}

func TestHashChainAdvances(t *testing.T) {
	h := NewHashChain([]byte("fixed"))

	first, err := h.NextSeed(context.Background())
	require.NoError(t, err)
	second, err := h.NextSeed(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, SeedLen)
}

func TestCryptoSource(t *testing.T) {
	s := NewCryptoSource()

	a, err := s.NextSeed(context.Background())
	require.NoError(t, err)
	b, err := s.NextSeed(context.Background())
	require.NoError(t, err)

	assert.Len(t, a, SeedLen)
	assert.NotEqual(t, a, b)
}

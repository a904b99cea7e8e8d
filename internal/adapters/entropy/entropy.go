// Package entropy provee semillas para la derivación de genes.
package entropy

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// SeedLen es el largo de cada semilla entregada.
const SeedLen = 32

// CryptoSource usa crypto/rand.
type CryptoSource struct{}

func NewCryptoSource() CryptoSource {
	return CryptoSource{}
}

func (CryptoSource) NextSeed(ctx context.Context) ([]byte, error) {
	b := make([]byte, SeedLen)
	if _, err := crand.Read(b); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return b, nil
}

// HashChain es determinística: seed_n = blake2b(seed_{n-1} || n).
// Para dev y tests; no es impredecible para quien conoce la semilla inicial.
type HashChain struct {
	mu    sync.Mutex
	state [SeedLen]byte
	n     uint64
}

func NewHashChain(seed []byte) *HashChain {
	return &HashChain{state: blake2b.Sum256(seed)}
}

func (h *HashChain) NextSeed(ctx context.Context) ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf [SeedLen + 8]byte
	copy(buf[:SeedLen], h.state[:])
	binary.BigEndian.PutUint64(buf[SeedLen:], h.n)

	h.state = blake2b.Sum256(buf[:])
	h.n++

	out := make([]byte, SeedLen)
	copy(out, h.state[:])
	return out, nil
}

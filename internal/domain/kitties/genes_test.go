package kitties

import (
	"bytes"
	"testing"
)

func TestMintGenes_Deterministic(t *testing.T) {
	a := MintGenes([]byte("seed-1"))
	b := MintGenes([]byte("seed-1"))
	c := MintGenes([]byte("seed-2"))

	if a != b {
		t.Fatalf("same seed must give same genes: %s vs %s", a, b)
	}
	if a == c {
		t.Fatalf("different seeds should give different genes")
	}
}

func TestBreedGenes_DeterministicAndInherited(t *testing.T) {
	p1 := MintGenes([]byte("parent-1"))
	p2 := MintGenes([]byte("parent-2"))
	seed := []byte("breed-seed")

	child := BreedGenes(p1, p2, seed)
	if again := BreedGenes(p1, p2, seed); again != child {
		t.Fatalf("breeding must be deterministic: %s vs %s", child, again)
	}

	for i := 0; i < GenesLen; i++ {
		d1 := child[i] ^ p1[i]
		d2 := child[i] ^ p2[i]
		if d1&^mutationMask != 0 && d2&^mutationMask != 0 {
			t.Fatalf("position %d (%#x) not inherited from %#x or %#x", i, child[i], p1[i], p2[i])
		}
	}
}

func TestBreedGenes_SwapOnlyChangesAttribution(t *testing.T) {
	p1 := MintGenes([]byte("parent-1"))
	p2 := MintGenes([]byte("parent-2"))
	seed := []byte("breed-seed")

	ab := BreedGenes(p1, p2, seed)
	ba := BreedGenes(p2, p1, seed)

	for i := 0; i < GenesLen; i++ {
		if ba[i] != ab[i]^p1[i]^p2[i] {
			t.Fatalf("position %d: swapped parents should pick the other parent with the same mutation", i)
		}
	}
}

func TestBreedGenes_IdenticalParentsOnlyMutate(t *testing.T) {
	p := MintGenes([]byte("clone"))
	child := BreedGenes(p, p, []byte("x"))

	for i := 0; i < GenesLen; i++ {
		if (child[i]^p[i])&^mutationMask != 0 {
			t.Fatalf("position %d mutated outside mask", i)
		}
	}
}

func TestMixSeed_BindsAccountAndID(t *testing.T) {
	raw := []byte("raw")
	a := mixSeed(raw, "alice", 1)

	if !bytes.Equal(a, mixSeed(raw, "alice", 1)) {
		t.Fatalf("mixSeed must be deterministic")
	}
	if bytes.Equal(a, mixSeed(raw, "bob", 1)) || bytes.Equal(a, mixSeed(raw, "alice", 2)) {
		t.Fatalf("mixSeed must depend on account and id")
	}
}

func TestMixSeed_NoConcatenationCollision(t *testing.T) {
	a := mixSeed([]byte("x"), "ab", 0)
	b := mixSeed([]byte("xa"), "b", 0)

	if bytes.Equal(a, b) {
		t.Fatalf("seed/account boundary must be part of the mix")
	}
	if MintGenes(a) == MintGenes(b) {
		t.Fatalf("expected distinct genes, both %s", MintGenes(a))
	}
}

func TestGenesSex_Parity(t *testing.T) {
	var g Genes
	g[0] = 2
	if g.Sex() != SexMale {
		t.Fatalf("even byte 0 should be male")
	}
	g[0] = 3
	if g.Sex() != SexFemale {
		t.Fatalf("odd byte 0 should be female")
	}
}

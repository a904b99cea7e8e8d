package kitties

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// mutationMask son los bits que la entropía fresca puede alterar en cada posición heredada.
const mutationMask = 0x03

// MintGenes deriva genes solo desde entropía.
func MintGenes(seed []byte) Genes {
	sum := blake2b.Sum256(seed)
	var g Genes
	copy(g[:], sum[:GenesLen])
	return g
}

// BreedGenes combina los genes de dos padres con entropía.
// Por posición, un bit de la entropía elige el byte de parent1 (0) o parent2 (1),
// y luego se mezclan bits de mutación. Es determinística para las mismas entradas.
func BreedGenes(parent1, parent2 Genes, seed []byte) Genes {
	h := blake2b.Sum512(seed)
	selectors := h[:GenesLen]
	mutations := h[GenesLen : 2*GenesLen]

	var child Genes
	for i := 0; i < GenesLen; i++ {
		b := parent1[i]
		if selectors[i]&1 == 1 {
			b = parent2[i]
		}
		child[i] = b ^ (mutations[i] & mutationMask)
	}
	return child
}

// mixSeed liga la semilla cruda a quien pide y al id que se asigna,
// así dos llamadas con la misma semilla producen genes distintos.
// Semilla y cuenta van con prefijo de largo para que ningún par colisione por concatenación.
func mixSeed(seed []byte, account string, id KittyID) []byte {
	payload := make([]byte, 0, 4+len(seed)+4+len(account)+4)
	payload = binary.BigEndian.AppendUint32(payload, uint32(len(seed)))
	payload = append(payload, seed...)
	payload = binary.BigEndian.AppendUint32(payload, uint32(len(account)))
	payload = append(payload, account...)
	payload = binary.BigEndian.AppendUint32(payload, uint32(id))

	sum := blake2b.Sum256(payload)
	return sum[:]
}

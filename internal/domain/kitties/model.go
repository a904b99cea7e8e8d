package kitties

import (
	"encoding/hex"
	"errors"
	"math"
	"strconv"
	"strings"

	"kitty-registry/internal/ports/ledger"
)

// KittyID identifica un kitty. Se asigna al crear y nunca se reutiliza.
type KittyID uint32

// GenesLen es el largo fijo de la secuencia genética.
const GenesLen = 16

// Genes es la secuencia genética que define la identidad del kitty.
type Genes [GenesLen]byte

func (g Genes) String() string {
	return hex.EncodeToString(g[:])
}

var ErrInvalidGenes = errors.New("invalid genes")

// ParseGenes lee la forma hex de String.
func ParseGenes(s string) (Genes, error) {
	var g Genes
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil || len(b) != GenesLen {
		return g, ErrInvalidGenes
	}
	copy(g[:], b)
	return g, nil
}

// Sex se deriva de los genes (paridad del byte 0).
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (g Genes) Sex() Sex {
	if g[0]%2 == 0 {
		return SexMale
	}
	return SexFemale
}

// Parents registra el linaje de un kitty criado. Nil para kitties creados.
type Parents struct {
	Parent1 KittyID
	Parent2 KittyID
}

// Kitty es inmutable una vez creado. El dueño vive en el índice de ownership, no acá.
type Kitty struct {
	ID      KittyID
	Genes   Genes
	Parents *Parents
}

func (k Kitty) Sex() Sex {
	return k.Genes.Sex()
}

// Config del motor de transiciones.
type Config struct {
	// Stake reservado por cada kitty mientras se posee.
	CreatePrice ledger.Balance
	// Máximo de kitties por cuenta.
	MaxOwned int
	// Cota exclusiva del contador de ids: el contador nunca supera este valor.
	MaxKittyID KittyID
	// Si es true, Breed exige padres de sexo opuesto.
	RequireOppositeSex bool
}

func DefaultConfig() Config {
	return Config{
		CreatePrice: 1000,
		MaxOwned:    8,
		MaxKittyID:  math.MaxUint32,
	}
}

// ParseID interpreta un id decimal de ruta o query.
func ParseID(s string) (KittyID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, ErrInvalidKittyID
	}
	return KittyID(n), nil
}

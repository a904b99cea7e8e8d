package entropy

import "context"

// Source entrega material aleatorio para derivar genes.
// Cada llamada debe devolver una semilla distinta e impredecible para quien la invoca.
type Source interface {
	NextSeed(ctx context.Context) ([]byte, error)
}

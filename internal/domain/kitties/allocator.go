package kitties

// Allocator asigna ids monotónicos sin pasar de Limit.
type Allocator struct {
	Limit KittyID
}

// Allocate devuelve el id a usar y el próximo valor del contador.
// Si avanzar desborda, falla sin consumir el id.
func (a Allocator) Allocate(next KittyID) (id KittyID, advanced KittyID, err error) {
	if next >= a.Limit {
		return 0, next, ErrKittiesCountOverflow
	}
	return next, next + 1, nil
}

package kitties

// OwnedKitties es la colección acotada y ordenada de ids de una cuenta.
// El chequeo de capacidad ocurre antes de insertar; nunca se trunca.
type OwnedKitties struct {
	ids []KittyID
	max int
}

func newOwnedKitties(ids []KittyID, max int) OwnedKitties {
	cp := make([]KittyID, len(ids), len(ids)+1)
	copy(cp, ids)
	return OwnedKitties{ids: cp, max: max}
}

func (o OwnedKitties) Len() int { return len(o.ids) }

func (o OwnedKitties) Full() bool { return len(o.ids) >= o.max }

func (o OwnedKitties) IDs() []KittyID { return o.ids }

func (o OwnedKitties) Contains(id KittyID) bool {
	for _, v := range o.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Push agrega id al final.
func (o *OwnedKitties) Push(id KittyID) error {
	if o.Full() {
		return ErrExceedMaxKittyOwned
	}
	o.ids = append(o.ids, id)
	return nil
}

// Remove quita id preservando el orden del resto.
func (o *OwnedKitties) Remove(id KittyID) bool {
	for i, v := range o.ids {
		if v == id {
			o.ids = append(o.ids[:i], o.ids[i+1:]...)
			return true
		}
	}
	return false
}

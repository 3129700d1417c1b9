package entity

// Selection un cliente elegido para generación, con su bandera de scheme
// promocional individual.
type Selection struct {
	Phone       string
	ApplyScheme bool
}

// SelectionSet conjunto ordenado de clientes seleccionados. Reemplaza el
// estado de sesión mutable de la UI: "seleccionar todo" y "deseleccionar
// todo" son constructores puros, y el conjunto viaja como valor por el
// pipeline. El orden de inserción se preserva para que el listado de
// archivos generados sea reproducible.
type SelectionSet struct {
	entries []Selection
}

// NewSelectionSet construye el conjunto descartando teléfonos repetidos
// (gana la primera aparición) y entradas con teléfono vacío.
func NewSelectionSet(entries []Selection) SelectionSet {
	seen := make(map[string]bool, len(entries))
	out := make([]Selection, 0, len(entries))
	for _, e := range entries {
		if e.Phone == "" || seen[e.Phone] {
			continue
		}
		seen[e.Phone] = true
		out = append(out, e)
	}
	return SelectionSet{entries: out}
}

// SelectAll selecciona todos los clientes dados, con la misma bandera de
// scheme para todos.
func SelectAll(customers []CustomerIdentity, applyScheme bool) SelectionSet {
	entries := make([]Selection, 0, len(customers))
	for _, c := range customers {
		entries = append(entries, Selection{Phone: c.Phone, ApplyScheme: applyScheme})
	}
	return NewSelectionSet(entries)
}

// DeselectAll conjunto vacío.
func DeselectAll() SelectionSet { return SelectionSet{} }

// Entries devuelve las selecciones en orden de inserción.
func (s SelectionSet) Entries() []Selection { return s.entries }

// Len cantidad de clientes seleccionados.
func (s SelectionSet) Len() int { return len(s.entries) }

// IsEmpty indica si no hay ningún cliente seleccionado.
func (s SelectionSet) IsEmpty() bool { return len(s.entries) == 0 }

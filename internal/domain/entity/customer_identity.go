package entity

// CustomerIdentity identidad canónica de un cliente derivada del export POS.
// El teléfono en forma canónica (solo dígitos) es la clave real de identidad;
// el nombre se conserva para mostrar y para ordenar listados.
type CustomerIdentity struct {
	Name  string // nombre con espacios recortados
	Phone string // solo dígitos; "" si el número no pudo normalizarse
}

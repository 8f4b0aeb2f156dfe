package entity

// Customer representa un cliente del negocio.
// No hay integridad referencial hacia Order: cada orden guarda un snapshot
// desnormalizado del cliente al momento de crearse, así que borrar un cliente
// no toca las órdenes existentes.
type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	GSTNumber string `json:"gstNumber,omitempty"` // GSTIN del cliente (opcional)
}

package dto

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	GSTNumber string `json:"gstNumber"`
}

// UpdateCustomerRequest actualización de registro completo: los campos
// enviados reemplazan a los existentes.
type UpdateCustomerRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	GSTNumber string `json:"gstNumber"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	GSTNumber string `json:"gstNumber,omitempty"`
}

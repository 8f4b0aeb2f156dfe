package dto

// LoginRequest entrada del login. No hay contraseña: el acceso se controla
// por pestañas según el rol, no por credenciales.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Role     string `json:"role" validate:"required,oneof=admin staff accountant"`
}

// UserResponse salida de un usuario de sistema.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse token + usuario + pestañas visibles para su rol.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	Tabs  []string     `json:"tabs"`
}

// SessionResponse sesión vigente restaurada del almacén.
type SessionResponse struct {
	User UserResponse `json:"user"`
	Tabs []string     `json:"tabs"`
}

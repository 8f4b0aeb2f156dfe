package entity

// Roles válidos para User. El rol solo determina qué pestañas ve el usuario;
// no es una frontera de seguridad (todos los datos viven en el mismo proceso).
const (
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
	RoleAccountant = "accountant"
)

// User representa un usuario del sistema.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"` // admin, staff, accountant
	Name     string `json:"name"`
}

// ValidRole indica si r es uno de los roles conocidos.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleAccountant
}

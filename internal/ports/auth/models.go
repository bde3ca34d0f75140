package auth

// Claims representa la información extraída del token.
// Role viene del proveedor de identidad ("user" | "admin"); vacío equivale a "user".
type Claims struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

package users

import (
	"strings"
	"time"

	"patitas-eternas/internal/platform/validation"
)

var messages = validation.Messages{
	"name":     "El nombre debe tener al menos 2 caracteres",
	"email":    "Por favor ingresa un correo electrónico válido",
	"password": "La contraseña debe tener entre 8 y 128 caracteres",
	"image":    "La imagen debe ser una URL válida",
}

// RegisterRequest es el body de POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=8,max=128"`
	Image    string `json:"image" validate:"omitempty,url"`
}

// ValidateRegistration normaliza (email en minúsculas) y arma el User sin hash.
// El rol siempre es user: la elevación a admin es manual (cmd/initdb).
func ValidateRegistration(req RegisterRequest, now time.Time) (User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = NormalizeEmail(req.Email)
	req.Image = strings.TrimSpace(req.Image)

	if err := validation.Struct(req, messages); err != nil {
		return User{}, err
	}

	return User{
		Name:      req.Name,
		Email:     req.Email,
		Image:     req.Image,
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

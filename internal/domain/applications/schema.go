package applications

import (
	"strings"
	"time"

	"patitas-eternas/internal/platform/validation"
)

var messages = validation.Messages{
	"petId":       "El ID de la mascota es requerido",
	"name":        "El nombre debe tener al menos 2 caracteres",
	"email":       "Por favor ingresa un correo electrónico válido",
	"phone":       "Por favor ingresa un número de teléfono válido",
	"address":     "Por favor ingresa una dirección válida",
	"housingType": "Por favor selecciona un tipo de vivienda",
	"experience":  "Por favor comparte más detalles sobre tu experiencia (10 a 500 caracteres)",
	"reason":      "Por favor comparte más detalles sobre por qué quieres adoptar (10 a 500 caracteres)",
	"status":      "Estado no válido",
}

// SubmitRequest es el body de POST /adoption-applications.
// userId no se acepta del body: lo pone el servidor si hay sesión.
type SubmitRequest struct {
	PetID            string `json:"petId" validate:"required"`
	Name             string `json:"name" validate:"min=2"`
	Email            string `json:"email" validate:"required,email"`
	Phone            string `json:"phone" validate:"min=10"`
	Address          string `json:"address" validate:"min=5"`
	HousingType      string `json:"housingType" validate:"required,oneof=house apartment other"`
	HasOtherPets     *bool  `json:"hasOtherPets"`
	OtherPetsDetails string `json:"otherPetsDetails"`
	Experience       string `json:"experience" validate:"min=10,max=500"`
	Reason           string `json:"reason" validate:"min=10,max=500"`
}

// StatusRequest es el body de PATCH /adoption-applications/{id}.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ValidateSubmit normaliza y aplica defaults (status pending, timestamps = now).
func ValidateSubmit(req SubmitRequest, now time.Time) (Application, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.Experience = strings.TrimSpace(req.Experience)
	req.Reason = strings.TrimSpace(req.Reason)
	req.OtherPetsDetails = strings.TrimSpace(req.OtherPetsDetails)

	if err := validation.Struct(req, messages); err != nil {
		return Application{}, err
	}

	hasOther := false
	if req.HasOtherPets != nil {
		hasOther = *req.HasOtherPets
	}

	return Application{
		PetID:            req.PetID,
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		HousingType:      HousingType(req.HousingType),
		HasOtherPets:     hasOther,
		OtherPetsDetails: req.OtherPetsDetails,
		Experience:       req.Experience,
		Reason:           req.Reason,
		Status:           StatusPending,
		SubmittedAt:      now,
		UpdatedAt:        now,
	}, nil
}

func ValidateStatus(req StatusRequest) (Status, error) {
	req.Status = strings.TrimSpace(req.Status)
	if err := validation.Struct(req, messages); err != nil {
		return "", err
	}
	return Status(req.Status), nil
}

package pets

import (
	"strings"
	"time"

	"patitas-eternas/internal/platform/validation"
)

var messages = validation.Messages{
	"name":        "El nombre es requerido",
	"species":     "La especie es requerida",
	"breed":       "La raza es requerida",
	"age":         "La edad debe ser un número positivo",
	"size":        "El tamaño es requerido",
	"gender":      "El género es requerido",
	"location":    "La ubicación es requerida",
	"description": "La descripción debe tener al menos 10 caracteres",
	"status":      "Estado no válido",
}

// CreateRequest es el body de POST /pets.
// Age acepta número o string numérico (viene de formularios).
type CreateRequest struct {
	Name            string            `json:"name" validate:"required"`
	Species         string            `json:"species" validate:"required,oneof=dog cat"`
	Breed           string            `json:"breed" validate:"required"`
	Age             validation.Number `json:"age" swaggertype:"number"`
	Size            string            `json:"size" validate:"required,oneof=small medium large"`
	Gender          string            `json:"gender" validate:"required,oneof=male female"`
	Location        string            `json:"location" validate:"required"`
	Description     string            `json:"description" validate:"min=10"`
	Characteristics []string          `json:"characteristics"`
	HealthStatus    []string          `json:"healthStatus"`
	Status          string            `json:"status" validate:"omitempty,oneof=available pending adopted"`
	ImageIDs        []string          `json:"imageIds"`
}

// UpdateRequest es el body de PUT /pets/{id}: solo se validan y escriben los campos enviados.
// Age debe venir como número JSON.
type UpdateRequest struct {
	Name            *string           `json:"name" validate:"omitempty,min=1"`
	Species         *string           `json:"species" validate:"omitempty,oneof=dog cat"`
	Breed           *string           `json:"breed" validate:"omitempty,min=1"`
	Age             validation.Number `json:"age" swaggertype:"number"`
	Size            *string           `json:"size" validate:"omitempty,oneof=small medium large"`
	Gender          *string           `json:"gender" validate:"omitempty,oneof=male female"`
	Location        *string           `json:"location" validate:"omitempty,min=1"`
	Description     *string           `json:"description" validate:"omitempty,min=10"`
	Characteristics *[]string         `json:"characteristics"`
	HealthStatus    *[]string         `json:"healthStatus"`
	Status          *string           `json:"status" validate:"omitempty,oneof=available pending adopted"`
	ImageIDs        *[]string         `json:"imageIds"`
}

// ageRule es la única regla de edad; la usan create y update.
type ageRule struct {
	Age *float64 `json:"age" validate:"required,min=0"`
}

func checkAge(v *float64, errs *validation.Error) {
	errs.Merge(validation.Struct(ageRule{Age: v}, messages))
}

// ValidateCreate normaliza el body y aplica defaults con el reloj del servicio.
// Devuelve *validation.Error con todos los campos inválidos.
func ValidateCreate(req CreateRequest, now time.Time) (Pet, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Breed = strings.TrimSpace(req.Breed)
	req.Location = strings.TrimSpace(req.Location)
	req.Description = strings.TrimSpace(req.Description)

	errs := &validation.Error{}
	errs.Merge(validation.Struct(req, messages))

	age, ok := req.Age.Coerce()
	if !ok {
		errs.Add("age", messages["age"])
	} else {
		checkAge(age, errs)
	}

	if err := errs.OrNil(); err != nil {
		return Pet{}, err
	}

	status := StatusAvailable
	if req.Status != "" {
		status = Status(req.Status)
	}

	return Pet{
		Name:            req.Name,
		Species:         Species(req.Species),
		Breed:           req.Breed,
		Age:             *age,
		Size:            Size(req.Size),
		Gender:          Gender(req.Gender),
		Location:        req.Location,
		Description:     req.Description,
		Characteristics: cleanTags(req.Characteristics),
		HealthStatus:    cleanTags(req.HealthStatus),
		Status:          status,
		ImageIDs:        cleanTags(req.ImageIDs),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ValidateUpdate valida solo lo presente y arma el Patch. Sin campos => ErrEmptyUpdate.
func ValidateUpdate(req UpdateRequest, now time.Time) (Patch, error) {
	trim(req.Name)
	trim(req.Breed)
	trim(req.Location)
	trim(req.Description)

	errs := &validation.Error{}
	errs.Merge(validation.Struct(req, messages))

	var age *float64
	if req.Age.Present {
		v, ok := req.Age.Strict()
		if !ok {
			errs.Add("age", messages["age"])
		} else {
			checkAge(v, errs)
			age = v
		}
	}

	if err := errs.OrNil(); err != nil {
		return Patch{}, err
	}

	patch := Patch{
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         age,
		Location:    req.Location,
		Description: req.Description,
		UpdatedAt:   now,
	}
	if req.Species != nil {
		s := Species(*req.Species)
		patch.Species = &s
	}
	if req.Size != nil {
		s := Size(*req.Size)
		patch.Size = &s
	}
	if req.Gender != nil {
		g := Gender(*req.Gender)
		patch.Gender = &g
	}
	if req.Status != nil {
		s := Status(*req.Status)
		patch.Status = &s
	}
	if req.Characteristics != nil {
		v := cleanTags(*req.Characteristics)
		patch.Characteristics = &v
	}
	if req.HealthStatus != nil {
		v := cleanTags(*req.HealthStatus)
		patch.HealthStatus = &v
	}
	if req.ImageIDs != nil {
		v := cleanTags(*req.ImageIDs)
		patch.ImageIDs = &v
	}

	if patch.empty() {
		return Patch{}, ErrEmptyUpdate
	}
	return patch, nil
}

func (pt Patch) empty() bool {
	return pt.Name == nil && pt.Species == nil && pt.Breed == nil && pt.Age == nil &&
		pt.Size == nil && pt.Gender == nil && pt.Location == nil && pt.Description == nil &&
		pt.Characteristics == nil && pt.HealthStatus == nil && pt.Status == nil && pt.ImageIDs == nil
}

func trim(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// cleanTags quita vacíos y espacios; nil => [] para que el JSON sea siempre un array.
func cleanTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

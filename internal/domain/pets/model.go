package pets

import "time"

// Species define las especies que maneja el refugio.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Size: tamaño aproximado del animal adulto.
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Status de publicación. Solo "available" aparece en el listado público por default.
// @Enum available, pending, adopted
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusAdopted:
		return true
	}
	return false
}

// Pet es una mascota publicada para adopción.
type Pet struct {
	ID string `json:"id"`

	Name        string  `json:"name"`
	Species     Species `json:"species"`
	Breed       string  `json:"breed"`
	Age         float64 `json:"age"` // años; admite fracciones (0.5 = seis meses)
	Size        Size    `json:"size"`
	Gender      Gender  `json:"gender"`
	Location    string  `json:"location"`
	Description string  `json:"description"`

	Characteristics []string `json:"characteristics"`
	HealthStatus    []string `json:"healthStatus"`

	Status   Status   `json:"status"`
	ImageIDs []string `json:"imageIds"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListFilter: una dimensión opcional por campo. Todo lo seteado se combina con AND;
// varias especies se combinan con OR entre sí.
type ListFilter struct {
	Species []Species
	Size    *Size
	MinAge  *float64
	MaxAge  *float64
	Status  *Status
}

// Matches evalúa el filtro en memoria (adapter memory y tests).
func (f ListFilter) Matches(p Pet) bool {
	if len(f.Species) > 0 {
		found := false
		for _, s := range f.Species {
			if p.Species == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Size != nil && p.Size != *f.Size {
		return false
	}
	if f.MinAge != nil && p.Age < *f.MinAge {
		return false
	}
	if f.MaxAge != nil && p.Age > *f.MaxAge {
		return false
	}
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	return true
}

// Patch: nil = no tocar. UpdatedAt siempre se escribe.
type Patch struct {
	Name            *string
	Species         *Species
	Breed           *string
	Age             *float64
	Size            *Size
	Gender          *Gender
	Location        *string
	Description     *string
	Characteristics *[]string
	HealthStatus    *[]string
	Status          *Status
	ImageIDs        *[]string

	UpdatedAt time.Time
}

// Apply escribe en p los campos presentes del patch.
func (pt Patch) Apply(p *Pet) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Species != nil {
		p.Species = *pt.Species
	}
	if pt.Breed != nil {
		p.Breed = *pt.Breed
	}
	if pt.Age != nil {
		p.Age = *pt.Age
	}
	if pt.Size != nil {
		p.Size = *pt.Size
	}
	if pt.Gender != nil {
		p.Gender = *pt.Gender
	}
	if pt.Location != nil {
		p.Location = *pt.Location
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Characteristics != nil {
		p.Characteristics = cloneStrings(*pt.Characteristics)
	}
	if pt.HealthStatus != nil {
		p.HealthStatus = cloneStrings(*pt.HealthStatus)
	}
	if pt.Status != nil {
		p.Status = *pt.Status
	}
	if pt.ImageIDs != nil {
		p.ImageIDs = cloneStrings(*pt.ImageIDs)
	}
	if !pt.UpdatedAt.IsZero() {
		p.UpdatedAt = pt.UpdatedAt
	}
}

// Clone copia los slices para que el caller no comparta memoria con el store.
func (p Pet) Clone() Pet {
	p.Characteristics = cloneStrings(p.Characteristics)
	p.HealthStatus = cloneStrings(p.HealthStatus)
	p.ImageIDs = cloneStrings(p.ImageIDs)
	return p
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

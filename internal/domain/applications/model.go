package applications

import "time"

// @Enum pending, approved, rejected
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// @Enum house, apartment, other
type HousingType string

const (
	HousingHouse     HousingType = "house"
	HousingApartment HousingType = "apartment"
	HousingOther     HousingType = "other"
)

// Application es una solicitud de adopción. UserID vacío = enviada sin cuenta.
type Application struct {
	ID     string `json:"id"`
	PetID  string `json:"petId"`
	UserID string `json:"userId,omitempty"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	HousingType      HousingType `json:"housingType"`
	HasOtherPets     bool        `json:"hasOtherPets"`
	OtherPetsDetails string      `json:"otherPetsDetails,omitempty"`
	Experience       string      `json:"experience"`
	Reason           string      `json:"reason"`

	Status      Status    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListFilter: UserID nil = todas (admin).
type ListFilter struct {
	UserID *string
}

func (f ListFilter) Matches(a Application) bool {
	return f.UserID == nil || a.UserID == *f.UserID
}

// Patch: solo el status es mutable después de enviada.
type Patch struct {
	Status    *Status
	UpdatedAt time.Time
}

func (pt Patch) Apply(a *Application) {
	if pt.Status != nil {
		a.Status = *pt.Status
	}
	if !pt.UpdatedAt.IsZero() {
		a.UpdatedAt = pt.UpdatedAt
	}
}

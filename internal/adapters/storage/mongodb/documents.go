package mongodb

import (
	"time"

	"patitas-eternas/internal/domain/applications"
	"patitas-eternas/internal/domain/payments"
	"patitas-eternas/internal/domain/pets"
	"patitas-eternas/internal/domain/users"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campos en camelCase, como en la API.

type petDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Species         string             `bson:"species"`
	Breed           string             `bson:"breed"`
	Age             float64            `bson:"age"`
	Size            string             `bson:"size"`
	Gender          string             `bson:"gender"`
	Location        string             `bson:"location"`
	Description     string             `bson:"description"`
	Characteristics []string           `bson:"characteristics"`
	HealthStatus    []string           `bson:"healthStatus"`
	Status          string             `bson:"status"`
	ImageIDs        []string           `bson:"imageIds"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func petToDoc(p pets.Pet) petDoc {
	return petDoc{
		Name:            p.Name,
		Species:         string(p.Species),
		Breed:           p.Breed,
		Age:             p.Age,
		Size:            string(p.Size),
		Gender:          string(p.Gender),
		Location:        p.Location,
		Description:     p.Description,
		Characteristics: nonNil(p.Characteristics),
		HealthStatus:    nonNil(p.HealthStatus),
		Status:          string(p.Status),
		ImageIDs:        nonNil(p.ImageIDs),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (d petDoc) toDomain() pets.Pet {
	return pets.Pet{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Species:         pets.Species(d.Species),
		Breed:           d.Breed,
		Age:             d.Age,
		Size:            pets.Size(d.Size),
		Gender:          pets.Gender(d.Gender),
		Location:        d.Location,
		Description:     d.Description,
		Characteristics: nonNil(d.Characteristics),
		HealthStatus:    nonNil(d.HealthStatus),
		Status:          pets.Status(d.Status),
		ImageIDs:        nonNil(d.ImageIDs),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type applicationDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	PetID            string             `bson:"petId"`
	UserID           string             `bson:"userId,omitempty"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	Phone            string             `bson:"phone"`
	Address          string             `bson:"address"`
	HousingType      string             `bson:"housingType"`
	HasOtherPets     bool               `bson:"hasOtherPets"`
	OtherPetsDetails string             `bson:"otherPetsDetails,omitempty"`
	Experience       string             `bson:"experience"`
	Reason           string             `bson:"reason"`
	Status           string             `bson:"status"`
	SubmittedAt      time.Time          `bson:"submittedAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func applicationToDoc(a applications.Application) applicationDoc {
	return applicationDoc{
		PetID:            a.PetID,
		UserID:           a.UserID,
		Name:             a.Name,
		Email:            a.Email,
		Phone:            a.Phone,
		Address:          a.Address,
		HousingType:      string(a.HousingType),
		HasOtherPets:     a.HasOtherPets,
		OtherPetsDetails: a.OtherPetsDetails,
		Experience:       a.Experience,
		Reason:           a.Reason,
		Status:           string(a.Status),
		SubmittedAt:      a.SubmittedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (d applicationDoc) toDomain() applications.Application {
	return applications.Application{
		ID:               d.ID.Hex(),
		PetID:            d.PetID,
		UserID:           d.UserID,
		Name:             d.Name,
		Email:            d.Email,
		Phone:            d.Phone,
		Address:          d.Address,
		HousingType:      applications.HousingType(d.HousingType),
		HasOtherPets:     d.HasOtherPets,
		OtherPetsDetails: d.OtherPetsDetails,
		Experience:       d.Experience,
		Reason:           d.Reason,
		Status:           applications.Status(d.Status),
		SubmittedAt:      d.SubmittedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// userDoc guarda el hash en "password", igual que las cuentas existentes.
type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password,omitempty"`
	Image     string             `bson:"image,omitempty"`
	Role      string             `bson:"role"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func userToDoc(u users.User) userDoc {
	return userDoc{
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Image:     u.Image,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDoc) toDomain() users.User {
	role := users.Role(d.Role)
	if role == "" {
		role = users.RoleUser
	}
	return users.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Image:        d.Image,
		Role:         role,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"userId,omitempty"`
	Amount        float64            `bson:"amount"`
	Currency      string             `bson:"currency"`
	PaymentMethod string             `bson:"paymentMethod"`
	PaymentID     string             `bson:"paymentId"`
	OrderID       string             `bson:"orderId,omitempty"`
	Status        string             `bson:"status"`
	Description   string             `bson:"description,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func paymentToDoc(p payments.Payment) paymentDoc {
	return paymentDoc{
		UserID:        p.UserID,
		Amount:        p.Amount,
		Currency:      p.Currency,
		PaymentMethod: p.PaymentMethod,
		PaymentID:     p.PaymentID,
		OrderID:       p.OrderID,
		Status:        string(p.Status),
		Description:   p.Description,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (d paymentDoc) toDomain() payments.Payment {
	return payments.Payment{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		Amount:        d.Amount,
		Currency:      d.Currency,
		PaymentMethod: d.PaymentMethod,
		PaymentID:     d.PaymentID,
		OrderID:       d.OrderID,
		Status:        payments.Status(d.Status),
		Description:   d.Description,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}

package payments

import (
	"context"
	"time"
)

const (
	DefaultCurrency    = "MXN"
	DefaultDescription = "Donación a Patitas Eternas"
	MethodPayPal       = "paypal"
)

// @Enum pending, completed, failed
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Payment es una donación confirmada por la pasarela. No se modifica después de creada.
type Payment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId,omitempty"`
	Amount        float64   `json:"amount" validate:"gt=0"`
	Currency      string    `json:"currency" validate:"required,len=3"`
	PaymentMethod string    `json:"paymentMethod" validate:"required"`
	PaymentID     string    `json:"paymentId" validate:"required"`
	OrderID       string    `json:"orderId,omitempty"`
	Status        Status    `json:"status" validate:"oneof=pending completed failed"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Repository interface {
	Create(ctx context.Context, p Payment) (string, error)
	GetByID(ctx context.Context, id string) (Payment, error)
}

// Order es lo que se le pide a la pasarela.
type Order struct {
	Amount      float64
	Currency    string
	Description string
}

// OrderResult: id y status tal como los devuelve la pasarela (p.ej. CREATED, APPROVED, COMPLETED).
type OrderResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Confirmed indica que el comprador ya aprobó/capturó el pago.
func (o OrderResult) Confirmed() bool {
	return o.Status == "COMPLETED" || o.Status == "APPROVED"
}

// Gateway es la pasarela de pagos externa (PayPal).
type Gateway interface {
	CreateOrder(ctx context.Context, o Order) (OrderResult, error)
	GetOrder(ctx context.Context, orderID string) (OrderResult, error)
}

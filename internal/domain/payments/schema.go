package payments

import (
	"strings"

	"patitas-eternas/internal/platform/validation"
)

var messages = validation.Messages{
	"amount":        "El monto debe ser mayor a 0",
	"currency":      "Moneda inválida",
	"paymentMethod": "El método de pago es requerido",
	"paymentId":     "El ID del pago es requerido",
	"orderId":       "El ID de la orden es requerido",
	"status":        "Estado no válido",
}

// CreateOrderRequest es el body de POST /payments/create-order.
type CreateOrderRequest struct {
	Amount      validation.Number `json:"amount" swaggertype:"number"`
	Description string            `json:"description"`
}

// CaptureRequest es el body de POST /payments/capture.
type CaptureRequest struct {
	OrderID     string            `json:"orderId"`
	PaymentID   string            `json:"paymentId"`
	Amount      validation.Number `json:"amount" swaggertype:"number"`
	Description string            `json:"description"`
}

// positiveAmount acepta número o string numérico (> 0).
func positiveAmount(n validation.Number, errs *validation.Error) float64 {
	v, ok := n.Coerce()
	if !ok || v == nil || *v <= 0 {
		errs.Add("amount", messages["amount"])
		return 0
	}
	return *v
}

func ValidateCreateOrder(req CreateOrderRequest) (Order, error) {
	errs := &validation.Error{}
	amount := positiveAmount(req.Amount, errs)
	if err := errs.OrNil(); err != nil {
		return Order{}, err
	}
	return Order{
		Amount:      amount,
		Currency:    DefaultCurrency,
		Description: descriptionOrDefault(req.Description),
	}, nil
}

func ValidateCapture(req CaptureRequest) (CaptureRequest, float64, error) {
	req.OrderID = strings.TrimSpace(req.OrderID)
	req.PaymentID = strings.TrimSpace(req.PaymentID)

	errs := &validation.Error{}
	if req.OrderID == "" {
		errs.Add("orderId", messages["orderId"])
	}
	if req.PaymentID == "" {
		errs.Add("paymentId", messages["paymentId"])
	}
	amount := positiveAmount(req.Amount, errs)

	if err := errs.OrNil(); err != nil {
		return CaptureRequest{}, 0, err
	}
	req.Description = descriptionOrDefault(req.Description)
	return req, amount, nil
}

// ValidatePayment corre las reglas del registro antes de guardarlo.
func ValidatePayment(p Payment) error {
	return validation.Struct(p, messages)
}

func descriptionOrDefault(s string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return DefaultDescription
}

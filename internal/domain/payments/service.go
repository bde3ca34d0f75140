package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/ports/storage"
)

var (
	ErrNotFound = storage.ErrNotFound

	// ErrGatewayUnavailable: no hay credenciales de PayPal configuradas.
	ErrGatewayUnavailable = errors.New("payment gateway not configured")
	// ErrUpstream envuelve cualquier falla de la pasarela.
	ErrUpstream = errors.New("payment gateway error")
	// ErrNotConfirmed: la orden existe pero el comprador no la aprobó.
	ErrNotConfirmed = errors.New("payment not completed")
)

// Observer recibe las donaciones capturadas (métricas). Puede ser nil.
type Observer interface {
	DonationCaptured(amount float64)
}

type Service struct {
	repo    Repository
	gateway Gateway
	obs     Observer
	now     func() time.Time
}

// NewService acepta gateway nil: las operaciones devuelven ErrGatewayUnavailable.
func NewService(repo Repository, gateway Gateway, obs Observer) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
		obs:     obs,
		now:     time.Now,
	}
}

// CreateOrder abre una orden en la pasarela. No persiste nada.
func (s *Service) CreateOrder(ctx context.Context, caller authz.Caller, req CreateOrderRequest) (OrderResult, error) {
	if err := authz.Check(caller, authz.ActionDonate); err != nil {
		return OrderResult{}, err
	}

	order, err := ValidateCreateOrder(req)
	if err != nil {
		return OrderResult{}, err
	}
	if s.gateway == nil {
		return OrderResult{}, ErrGatewayUnavailable
	}

	res, err := s.gateway.CreateOrder(ctx, order)
	if err != nil {
		return OrderResult{}, fmt.Errorf("%w: create order: %v", ErrUpstream, err)
	}
	return res, nil
}

// Capture verifica la orden contra la pasarela y registra el pago.
// Solo órdenes COMPLETED o APPROVED se guardan.
func (s *Service) Capture(ctx context.Context, caller authz.Caller, req CaptureRequest) (Payment, error) {
	if err := authz.Check(caller, authz.ActionDonate); err != nil {
		return Payment{}, err
	}

	req, amount, err := ValidateCapture(req)
	if err != nil {
		return Payment{}, err
	}
	if s.gateway == nil {
		return Payment{}, ErrGatewayUnavailable
	}

	order, err := s.gateway.GetOrder(ctx, req.OrderID)
	if err != nil {
		return Payment{}, fmt.Errorf("%w: get order: %v", ErrUpstream, err)
	}
	if !order.Confirmed() {
		return Payment{}, ErrNotConfirmed
	}

	now := s.now()
	p := Payment{
		Amount:        amount,
		Currency:      DefaultCurrency,
		PaymentMethod: MethodPayPal,
		PaymentID:     req.PaymentID,
		OrderID:       req.OrderID,
		Status:        StatusCompleted,
		Description:   req.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if caller.Authenticated() {
		p.UserID = caller.ID
	}
	if err := ValidatePayment(p); err != nil {
		return Payment{}, err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Payment{}, fmt.Errorf("payments: create: %w", err)
	}
	p.ID = id

	if s.obs != nil {
		s.obs.DonationCaptured(p.Amount)
	}
	return p, nil
}

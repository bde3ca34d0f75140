package memory

import (
	"context"
	"sync"

	"patitas-eternas/internal/domain/payments"
	"patitas-eternas/internal/ports/storage"
)

type paymentRepo struct {
	mu   sync.RWMutex
	byID map[string]payments.Payment
}

func NewPaymentRepo() payments.Repository {
	return &paymentRepo{
		byID: make(map[string]payments.Payment),
	}
}

func (r *paymentRepo) Create(_ context.Context, p payments.Payment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = newID()
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *paymentRepo) GetByID(_ context.Context, id string) (payments.Payment, error) {
	id, err := parseID(id)
	if err != nil {
		return payments.Payment{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return payments.Payment{}, storage.ErrNotFound
	}
	return p, nil
}

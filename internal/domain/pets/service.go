package pets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/ports/storage"
)

var (
	ErrNotFound    = storage.ErrNotFound
	ErrMalformedID = storage.ErrMalformedID

	// ErrEmptyUpdate: PUT sin ningún campo reconocido.
	ErrEmptyUpdate = errors.New("update requires at least one field")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Pet, error) {
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("pets: list: %w", err)
	}
	if items == nil {
		items = []Pet{}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Create: solo admin. Guard antes de validar.
func (s *Service) Create(ctx context.Context, caller authz.Caller, req CreateRequest) (Pet, error) {
	if err := guardManage(caller); err != nil {
		return Pet{}, err
	}

	p, err := ValidateCreate(req, s.now())
	if err != nil {
		return Pet{}, err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, fmt.Errorf("pets: create: %w", err)
	}
	p.ID = id
	return p, nil
}

// Update aplica un update parcial. Cambiar el status acá nunca toca solicitudes.
func (s *Service) Update(ctx context.Context, caller authz.Caller, id string, req UpdateRequest) (Pet, error) {
	if err := guardManage(caller); err != nil {
		return Pet{}, err
	}

	// existencia antes que el body: 404 gana sobre 400
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return Pet{}, err
	}

	patch, err := ValidateUpdate(req, s.now())
	if err != nil {
		return Pet{}, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, caller authz.Caller, id string) error {
	if err := guardManage(caller); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// MarkAdopted la usa el módulo de solicitudes al aprobar una.
// No pasa por el guard: quien llama ya verificó que es admin.
func (s *Service) MarkAdopted(ctx context.Context, id string) error {
	adopted := StatusAdopted
	_, err := s.repo.Update(ctx, id, Patch{Status: &adopted, UpdatedAt: s.now()})
	return err
}

// Exists: chequeo de integridad referencial para solicitudes nuevas.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrMalformedID):
		return false, nil
	default:
		return false, err
	}
}

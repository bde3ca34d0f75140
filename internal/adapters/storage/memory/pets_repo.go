package memory

import (
	"context"
	"sort"
	"sync"

	"patitas-eternas/internal/domain/pets"
	"patitas-eternas/internal/ports/storage"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petRepo) Create(_ context.Context, p pets.Pet) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p = p.Clone()
	p.ID = newID()
	r.byID[p.ID] = p
	return p.ID, nil
}

func (r *petRepo) GetByID(_ context.Context, id string) (pets.Pet, error) {
	id, err := parseID(id)
	if err != nil {
		return pets.Pet{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, storage.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *petRepo) List(_ context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if f.Matches(p) {
			out = append(out, p.Clone())
		}
	}

	// Orden estable por created_at asc
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *petRepo) Update(_ context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	id, err := parseID(id)
	if err != nil {
		return pets.Pet{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, storage.ErrNotFound
	}
	patch.Apply(&p)
	r.byID[id] = p
	return p.Clone(), nil
}

func (r *petRepo) Delete(_ context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return storage.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

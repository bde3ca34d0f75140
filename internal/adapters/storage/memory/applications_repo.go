package memory

import (
	"context"
	"sort"
	"sync"

	"patitas-eternas/internal/domain/applications"
	"patitas-eternas/internal/ports/storage"
)

type applicationRepo struct {
	mu   sync.RWMutex
	byID map[string]applications.Application
}

func NewApplicationRepo() applications.Repository {
	return &applicationRepo{
		byID: make(map[string]applications.Application),
	}
}

func (r *applicationRepo) Create(_ context.Context, a applications.Application) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = newID()
	r.byID[a.ID] = a
	return a.ID, nil
}

func (r *applicationRepo) GetByID(_ context.Context, id string) (applications.Application, error) {
	id, err := parseID(id)
	if err != nil {
		return applications.Application{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return applications.Application{}, storage.ErrNotFound
	}
	return a, nil
}

func (r *applicationRepo) List(_ context.Context, f applications.ListFilter) ([]applications.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]applications.Application, 0)
	for _, a := range r.byID {
		if f.Matches(a) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.Before(out[j].SubmittedAt)
	})
	return out, nil
}

func (r *applicationRepo) Update(_ context.Context, id string, patch applications.Patch) (applications.Application, error) {
	id, err := parseID(id)
	if err != nil {
		return applications.Application{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return applications.Application{}, storage.ErrNotFound
	}
	patch.Apply(&a)
	r.byID[id] = a
	return a, nil
}

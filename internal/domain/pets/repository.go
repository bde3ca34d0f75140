package pets

import "context"

// Repository: los adapters devuelven storage.ErrNotFound / storage.ErrMalformedID.
// El id lo genera el store en Create.
type Repository interface {
	Create(ctx context.Context, p Pet) (string, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context, f ListFilter) ([]Pet, error)
	Update(ctx context.Context, id string, patch Patch) (Pet, error)
	Delete(ctx context.Context, id string) error
}

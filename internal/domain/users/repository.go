package users

import "context"

// Repository: Create devuelve storage.ErrDuplicate si el email ya existe (índice único).
type Repository interface {
	Create(ctx context.Context, u User) (string, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	SetRole(ctx context.Context, id string, role Role) error
}

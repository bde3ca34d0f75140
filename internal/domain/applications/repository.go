package applications

import "context"

type Repository interface {
	Create(ctx context.Context, a Application) (string, error)
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, f ListFilter) ([]Application, error)
	Update(ctx context.Context, id string, patch Patch) (Application, error)
}

package locations

import "context"

type Repository interface {
	Create(ctx context.Context, p LocationPoint) error
	GetByID(ctx context.Context, id string) (LocationPoint, error)
	List(ctx context.Context) ([]LocationPoint, error)
	Delete(ctx context.Context, id string) error
}

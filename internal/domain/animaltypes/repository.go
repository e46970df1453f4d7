package animaltypes

import "context"

type Repository interface {
	Create(ctx context.Context, t AnimalType) error
	Update(ctx context.Context, t AnimalType) error
	GetByID(ctx context.Context, id string) (AnimalType, error)
	List(ctx context.Context) ([]AnimalType, error)
	Delete(ctx context.Context, id string) error
}

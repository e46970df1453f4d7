package animals

import "context"

// Repository loads and saves the aggregate whole: an animal travels with its
// ordered type tags and visited locations, and Update persists the full
// current state after a mutation.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	ListByChipper(ctx context.Context, chipperID string) ([]Animal, error)
	Delete(ctx context.Context, id string) error
}

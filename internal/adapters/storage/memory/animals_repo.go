package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"animal-chip-registry/internal/domain/animals"
)

type animalsRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalsRepo() animals.Repository {
	return &animalsRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = cloneAnimal(a)
	return nil
}

func (r *animalsRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; !exists {
		return animals.ErrNotFound
	}
	r.byID[a.ID] = cloneAnimal(a)
	return nil
}

func (r *animalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return cloneAnimal(a), nil
}

func (r *animalsRepo) ListByChipper(ctx context.Context, chipperID string) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if a.ChipperID == chipperID {
			out = append(out, cloneAnimal(a))
		}
	}

	// Stable order for dev consistency
	sort.Slice(out, func(i, j int) bool {
		return out[i].ChippingDatetime.Before(out[j].ChippingDatetime)
	})

	return out, nil
}

func (r *animalsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return animals.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// cloneAnimal copies the child slices so callers never mutate stored state
// without going through Update.
func cloneAnimal(a animals.Animal) animals.Animal {
	out := a
	out.Types = append([]animals.TypeTag(nil), a.Types...)
	out.VisitedLocations = append([]animals.VisitedLocation(nil), a.VisitedLocations...)
	if a.DeathDatetime != nil {
		t := *a.DeathDatetime
		out.DeathDatetime = &t
	}
	return out
}

package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"animal-chip-registry/internal/domain/animaltypes"
)

type animalTypesRepo struct {
	mu   sync.RWMutex
	byID map[string]animaltypes.AnimalType
}

func NewAnimalTypesRepo() animaltypes.Repository {
	return &animalTypesRepo{
		byID: make(map[string]animaltypes.AnimalType),
	}
}

func (r *animalTypesRepo) Create(ctx context.Context, t animaltypes.AnimalType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("type id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("type already exists")
	}
	if r.nameTaken(t.Name, "") {
		return animaltypes.ErrAlreadyExists
	}
	r.byID[t.ID] = t
	return nil
}

func (r *animalTypesRepo) Update(ctx context.Context, t animaltypes.AnimalType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return animaltypes.ErrNotFound
	}
	if r.nameTaken(t.Name, t.ID) {
		return animaltypes.ErrAlreadyExists
	}
	r.byID[t.ID] = t
	return nil
}

func (r *animalTypesRepo) GetByID(ctx context.Context, id string) (animaltypes.AnimalType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return animaltypes.AnimalType{}, animaltypes.ErrNotFound
	}
	return t, nil
}

func (r *animalTypesRepo) List(ctx context.Context) ([]animaltypes.AnimalType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animaltypes.AnimalType, 0, len(r.byID))
	for _, t := range r.byID {
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *animalTypesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return animaltypes.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *animalTypesRepo) nameTaken(name, excludeID string) bool {
	for _, t := range r.byID {
		if t.ID != excludeID && t.Name == name {
			return true
		}
	}
	return false
}

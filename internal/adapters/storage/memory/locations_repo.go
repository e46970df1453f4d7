package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"animal-chip-registry/internal/domain/locations"
)

type locationsRepo struct {
	mu   sync.RWMutex
	byID map[string]locations.LocationPoint
}

func NewLocationsRepo() locations.Repository {
	return &locationsRepo{
		byID: make(map[string]locations.LocationPoint),
	}
}

func (r *locationsRepo) Create(ctx context.Context, p locations.LocationPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("location id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("location already exists")
	}
	// Same uniqueness the postgres schema enforces on (latitude, longitude).
	for _, q := range r.byID {
		if q.Latitude == p.Latitude && q.Longitude == p.Longitude {
			return locations.ErrAlreadyExists
		}
	}
	r.byID[p.ID] = p
	return nil
}

func (r *locationsRepo) GetByID(ctx context.Context, id string) (locations.LocationPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return locations.LocationPoint{}, locations.ErrNotFound
	}
	return p, nil
}

func (r *locationsRepo) List(ctx context.Context) ([]locations.LocationPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]locations.LocationPoint, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *locationsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return locations.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

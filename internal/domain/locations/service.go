package locations

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("location point not found")

	// ErrAlreadyExists surfaces the storage uniqueness constraint on
	// (latitude, longitude); ErrInUse the reference from animals.
	ErrAlreadyExists = errors.New("location point already exists")
	ErrInUse         = errors.New("location point is in use")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Latitude  float64
	Longitude float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (LocationPoint, error) {
	if in.Latitude < -90 || in.Latitude > 90 {
		return LocationPoint{}, ErrInvalidInput
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return LocationPoint{}, ErrInvalidInput
	}

	p := LocationPoint{
		ID:        uuid.NewString(),
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return LocationPoint{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (LocationPoint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return LocationPoint{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]LocationPoint, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

package animaltypes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal type not found")

	// ErrAlreadyExists surfaces the storage uniqueness constraint on the
	// type name; ErrInUse the reference from tagged animals.
	ErrAlreadyExists = errors.New("animal type already exists")
	ErrInUse         = errors.New("animal type is in use")
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

func (s *Service) Create(ctx context.Context, name string) (AnimalType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnimalType{}, ErrInvalidInput
	}

	t := AnimalType{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return AnimalType{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (AnimalType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return AnimalType{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]AnimalType, error) {
	return s.repo.List(ctx)
}

func (s *Service) Rename(ctx context.Context, id, name string) (AnimalType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnimalType{}, ErrInvalidInput
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AnimalType{}, err
	}

	t.Name = name
	if err := s.repo.Update(ctx, t); err != nil {
		return AnimalType{}, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

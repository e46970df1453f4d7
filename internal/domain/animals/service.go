package animals

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
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
	TypeIDs            []string
	Weight             float64
	Length             float64
	Height             float64
	Gender             Gender
	ChippingLocationID string
}

// Create registers a new animal chipped by chipperID. The type list is the
// one bulk path into the tag sequence, so it is screened for duplicates here
// rather than through AddType.
func (s *Service) Create(ctx context.Context, chipperID string, in CreateInput) (Animal, error) {
	if strings.TrimSpace(chipperID) == "" {
		return Animal{}, ErrInvalidInput
	}
	if len(in.TypeIDs) == 0 {
		return Animal{}, ErrInvalidInput
	}
	if in.Weight <= 0 || in.Length <= 0 || in.Height <= 0 {
		return Animal{}, ErrInvalidInput
	}
	if !in.Gender.Valid() {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.ChippingLocationID) == "" {
		return Animal{}, ErrInvalidInput
	}

	a := Animal{
		ID:                 uuid.NewString(),
		Weight:             in.Weight,
		Length:             in.Length,
		Height:             in.Height,
		Gender:             in.Gender,
		LifeStatus:         LifeStatusAlive,
		ChippingDatetime:   s.now(),
		ChippingLocationID: strings.TrimSpace(in.ChippingLocationID),
		ChipperID:          strings.TrimSpace(chipperID),
	}
	for _, id := range in.TypeIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return Animal{}, ErrInvalidInput
		}
		a.Types = append(a.Types, TypeTag{TypeID: id})
	}
	if dup, ok := a.DuplicateType(); ok {
		return Animal{}, &DuplicateTypeError{AnimalID: a.ID, TypeID: dup.TypeID}
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByChipper(ctx context.Context, chipperID string) ([]Animal, error) {
	chipperID = strings.TrimSpace(chipperID)
	if chipperID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByChipper(ctx, chipperID)
}

// Update applies a partial update. When the patch flips the life status to
// dead, the death time is stamped with the service clock; flipping it back
// does not clear the stamp.
func (s *Service) Update(ctx context.Context, id string, p Patch) (Animal, error) {
	if err := p.Validate(); err != nil {
		return Animal{}, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	a.Apply(p)
	if p.LifeStatus != nil {
		a.SetDeathDatetime(s.now())
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// Delete removes an animal from the registry. An animal with movement
// history must have its visited locations deleted first.
func (s *Service) Delete(ctx context.Context, id string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if len(a.VisitedLocations) > 0 {
		return &HasVisitedLocationsError{AnimalID: a.ID}
	}
	return s.repo.Delete(ctx, a.ID)
}

func (s *Service) AddType(ctx context.Context, id, typeID string) (Animal, error) {
	return s.mutate(ctx, id, func(a *Animal) error {
		return a.AddType(typeID)
	})
}

func (s *Service) ChangeType(ctx context.Context, id, oldTypeID, newTypeID string) (Animal, error) {
	return s.mutate(ctx, id, func(a *Animal) error {
		return a.ChangeType(oldTypeID, newTypeID)
	})
}

func (s *Service) DeleteType(ctx context.Context, id, typeID string) (Animal, error) {
	return s.mutate(ctx, id, func(a *Animal) error {
		return a.DeleteType(typeID)
	})
}

func (s *Service) AddVisitedLocation(ctx context.Context, id, locationPointID string) (VisitedLocation, error) {
	var v VisitedLocation
	_, err := s.mutate(ctx, id, func(a *Animal) error {
		var err error
		v, err = a.AddVisitedLocation(locationPointID, s.now())
		return err
	})
	if err != nil {
		return VisitedLocation{}, err
	}
	return v, nil
}

func (s *Service) ChangeVisitedLocation(ctx context.Context, id, visitedLocationID, newLocationPointID string) (VisitedLocation, error) {
	var v VisitedLocation
	_, err := s.mutate(ctx, id, func(a *Animal) error {
		var err error
		v, err = a.ChangeVisitedLocation(visitedLocationID, newLocationPointID)
		return err
	})
	if err != nil {
		return VisitedLocation{}, err
	}
	return v, nil
}

func (s *Service) DeleteVisitedLocation(ctx context.Context, id, visitedLocationID string) (Animal, error) {
	return s.mutate(ctx, id, func(a *Animal) error {
		return a.DeleteVisitedLocation(visitedLocationID)
	})
}

// mutate is the load-mutate-save cycle shared by all rule operations. A rule
// rejection returns before Update, so storage never sees a half-applied
// change.
func (s *Service) mutate(ctx context.Context, id string, fn func(a *Animal) error) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}
	if err := fn(&a); err != nil {
		return Animal{}, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

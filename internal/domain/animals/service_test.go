package animals

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Animal

	updates int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[a.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	r.updates++
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) ListByChipper(ctx context.Context, chipperID string) ([]Animal, error) {
	out := make([]Animal, 0)
	for _, a := range r.byID {
		if a.ChipperID == chipperID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func newTestService(repo *testRepo, now time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func validCreate() CreateInput {
	return CreateInput{
		TypeIDs:            []string{"type-a", "type-b"},
		Weight:             4.2,
		Length:             0.61,
		Height:             0.24,
		Gender:             GenderFemale,
		ChippingLocationID: "point-5",
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, testNow)

	a, err := svc.Create(context.Background(), "chipper-1", validCreate())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if a.ID == "" {
		t.Fatalf("expected an id")
	}
	if a.LifeStatus != LifeStatusAlive {
		t.Fatalf("expected alive, got %s", a.LifeStatus)
	}
	if !a.ChippingDatetime.Equal(testNow) {
		t.Fatalf("expected chipping datetime %v, got %v", testNow, a.ChippingDatetime)
	}
	if len(a.VisitedLocations) != 0 {
		t.Fatalf("expected empty history")
	}
	if len(a.Types) != 2 || a.Types[0].TypeID != "type-a" {
		t.Fatalf("expected ordered tags, got %+v", a.Types)
	}
	if _, ok := repo.byID[a.ID]; !ok {
		t.Fatalf("expected animal persisted")
	}
}

func TestService_Create_RejectsBadInput(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, testNow)

	cases := map[string]CreateInput{}

	in := validCreate()
	in.Weight = 0
	cases["zero weight"] = in

	in = validCreate()
	in.Length = -1
	cases["negative length"] = in

	in = validCreate()
	in.Gender = "sideways"
	cases["unknown gender"] = in

	in = validCreate()
	in.TypeIDs = nil
	cases["no types"] = in

	in = validCreate()
	in.ChippingLocationID = " "
	cases["blank chipping location"] = in

	for name, in := range cases {
		if _, err := svc.Create(context.Background(), "chipper-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_Create_RejectsDuplicateTypeIDs(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, testNow)

	in := validCreate()
	in.TypeIDs = []string{"type-a", "type-b", "type-a"}

	var dupErr *DuplicateTypeError
	_, err := svc.Create(context.Background(), "chipper-1", in)
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateTypeError, got %v", err)
	}
	if dupErr.TypeID != "type-a" {
		t.Fatalf("expected duplicate type-a, got %s", dupErr.TypeID)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("rejected animal must not be persisted")
	}
}

func TestService_Update_PatchAndDeathStamp(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, testNow)

	a, err := svc.Create(context.Background(), "chipper-1", validCreate())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	later := testNow.Add(2 * time.Hour)
	svc.now = func() time.Time { return later }

	dead := LifeStatusDead
	w := 5.0
	updated, err := svc.Update(context.Background(), a.ID, Patch{Weight: &w, LifeStatus: &dead})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if updated.Weight != 5.0 || updated.LifeStatus != LifeStatusDead {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.DeathDatetime == nil || !updated.DeathDatetime.Equal(later) {
		t.Fatalf("expected death stamped at %v, got %v", later, updated.DeathDatetime)
	}
	if updated.Length != a.Length {
		t.Fatalf("unset fields must stay unchanged")
	}

	// reviving does not clear the stamp
	alive := LifeStatusAlive
	revived, err := svc.Update(context.Background(), a.ID, Patch{LifeStatus: &alive})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if revived.DeathDatetime == nil || !revived.DeathDatetime.Equal(later) {
		t.Fatalf("expected stamp preserved, got %v", revived.DeathDatetime)
	}
}

func TestService_Update_InvalidPatchTouchesNothing(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, testNow)

	a, _ := svc.Create(context.Background(), "chipper-1", validCreate())

	neg := -3.0
	if _, err := svc.Update(context.Background(), a.ID, Patch{Weight: &neg}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("invalid patch must not hit the repo")
	}
}

func TestService_AddVisitedLocation_PersistsAggregate(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, testNow)

	a, _ := svc.Create(context.Background(), "chipper-1", validCreate())

	v, err := svc.AddVisitedLocation(context.Background(), a.ID, "point-7")
	if err != nil {
		t.Fatalf("AddVisitedLocation error: %v", err)
	}
	if !v.VisitDatetime.Equal(testNow) {
		t.Fatalf("expected service clock timestamp")
	}

	stored := repo.byID[a.ID]
	if len(stored.VisitedLocations) != 1 || stored.VisitedLocations[0].ID != v.ID {
		t.Fatalf("expected entry persisted, got %+v", stored.VisitedLocations)
	}
}

func TestService_AddVisitedLocation_RuleFailureDoesNotSave(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, testNow)

	a, _ := svc.Create(context.Background(), "chipper-1", validCreate())
	repo.updates = 0

	var chipErr *ChippingLocationError
	if _, err := svc.AddVisitedLocation(context.Background(), a.ID, "point-5"); !errors.As(err, &chipErr) {
		t.Fatalf("expected ChippingLocationError, got %v", err)
	}
	if repo.updates != 0 {
		t.Fatalf("rejected mutation must not hit the repo")
	}
}

func TestService_Delete_GuardsMovementHistory(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, testNow)

	a, _ := svc.Create(context.Background(), "chipper-1", validCreate())
	if _, err := svc.AddVisitedLocation(context.Background(), a.ID, "point-7"); err != nil {
		t.Fatalf("AddVisitedLocation error: %v", err)
	}

	var hvErr *HasVisitedLocationsError
	if err := svc.Delete(context.Background(), a.ID); !errors.As(err, &hvErr) {
		t.Fatalf("expected HasVisitedLocationsError, got %v", err)
	}

	// clear history, then deletion goes through
	stored := repo.byID[a.ID]
	if _, err := svc.DeleteVisitedLocation(context.Background(), a.ID, stored.VisitedLocations[0].ID); err != nil {
		t.Fatalf("DeleteVisitedLocation error: %v", err)
	}
	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok := repo.byID[a.ID]; ok {
		t.Fatalf("expected animal removed")
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, testNow)

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

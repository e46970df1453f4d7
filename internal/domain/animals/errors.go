package animals

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
)

// Rule violations carry the offending animal id plus the type or location id
// involved, so callers can report exactly what was rejected. Each one is
// raised before any mutation is applied.

// DeadAnimalError rejects movement-history changes on a dead animal.
type DeadAnimalError struct {
	AnimalID string
}

func (e *DeadAnimalError) Error() string {
	return fmt.Sprintf("animal %s is dead", e.AnimalID)
}

// AlreadyHaveTypeError rejects attaching a type tag the animal already has.
type AlreadyHaveTypeError struct {
	AnimalID string
	TypeID   string
}

func (e *AlreadyHaveTypeError) Error() string {
	return fmt.Sprintf("animal %s already has type %s", e.AnimalID, e.TypeID)
}

// HaveBothTypesError rejects a type change where old and new are both
// already attached as distinct tags.
type HaveBothTypesError struct {
	AnimalID  string
	OldTypeID string
	NewTypeID string
}

func (e *HaveBothTypesError) Error() string {
	return fmt.Sprintf("animal %s already has both types %s and %s", e.AnimalID, e.OldTypeID, e.NewTypeID)
}

// NoSuchTypeError rejects operations on a type tag the animal does not have.
type NoSuchTypeError struct {
	AnimalID string
	TypeID   string
}

func (e *NoSuchTypeError) Error() string {
	return fmt.Sprintf("animal %s does not have type %s", e.AnimalID, e.TypeID)
}

// OnlyTypeError rejects removing the sole remaining type tag.
type OnlyTypeError struct {
	AnimalID string
	TypeID   string
}

func (e *OnlyTypeError) Error() string {
	return fmt.Sprintf("animal %s only has type %s", e.AnimalID, e.TypeID)
}

// ChippingLocationError rejects visiting the point the animal was chipped at.
type ChippingLocationError struct {
	AnimalID        string
	LocationPointID string
}

func (e *ChippingLocationError) Error() string {
	return fmt.Sprintf("animal %s: location point %s equals the chipping location", e.AnimalID, e.LocationPointID)
}

// AlreadyAtPointError rejects appending a visit to the point the animal is
// currently at.
type AlreadyAtPointError struct {
	AnimalID        string
	LocationPointID string
}

func (e *AlreadyAtPointError) Error() string {
	return fmt.Sprintf("animal %s is already at location point %s", e.AnimalID, e.LocationPointID)
}

// NoSuchVisitedLocationError rejects edits to a visited-location entry the
// animal's history does not contain.
type NoSuchVisitedLocationError struct {
	AnimalID          string
	VisitedLocationID string
}

func (e *NoSuchVisitedLocationError) Error() string {
	return fmt.Sprintf("animal %s has no visited location %s", e.AnimalID, e.VisitedLocationID)
}

// SamePointError rejects updating a visited-location entry to the point it
// already records.
type SamePointError struct {
	AnimalID        string
	LocationPointID string
}

func (e *SamePointError) Error() string {
	return fmt.Sprintf("animal %s: visited location already records point %s", e.AnimalID, e.LocationPointID)
}

// AdjacentPointError rejects an edit that would leave two neighboring history
// entries recording the same point.
type AdjacentPointError struct {
	AnimalID        string
	LocationPointID string
}

func (e *AdjacentPointError) Error() string {
	return fmt.Sprintf("animal %s: neighboring visited location already records point %s", e.AnimalID, e.LocationPointID)
}

// FirstPointChippingError rejects updating the first history entry to the
// chipping location.
type FirstPointChippingError struct {
	AnimalID        string
	LocationPointID string
}

func (e *FirstPointChippingError) Error() string {
	return fmt.Sprintf("animal %s: first visited location cannot be the chipping location %s", e.AnimalID, e.LocationPointID)
}

// HasVisitedLocationsError rejects deleting an animal that still has movement
// history.
type HasVisitedLocationsError struct {
	AnimalID string
}

func (e *HasVisitedLocationsError) Error() string {
	return fmt.Sprintf("animal %s still has visited locations", e.AnimalID)
}

// DuplicateTypeError reports a type tag attached more than once. It can only
// arise from bulk input (e.g. the type list supplied at registration), never
// from AddType.
type DuplicateTypeError struct {
	AnimalID string
	TypeID   string
}

func (e *DuplicateTypeError) Error() string {
	return fmt.Sprintf("animal %s has duplicate type %s", e.AnimalID, e.TypeID)
}

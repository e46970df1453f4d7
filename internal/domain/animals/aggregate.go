package animals

import (
	"time"

	"github.com/google/uuid"
)

// Aggregate rules. Every method checks its preconditions before touching any
// state, so a returned error always leaves the animal unchanged. Timestamps
// are passed in by the caller (the service injects its clock).

// SetDeathDatetime stamps the death time if the animal is dead and does
// nothing otherwise. It never clears an existing stamp, even if the status
// is later flipped back to alive.
func (a *Animal) SetDeathDatetime(now time.Time) {
	if a.LifeStatus == LifeStatusDead {
		a.DeathDatetime = &now
	}
}

// AddType appends a type tag.
func (a *Animal) AddType(typeID string) error {
	if a.typeIndex(typeID) >= 0 {
		return &AlreadyHaveTypeError{AnimalID: a.ID, TypeID: typeID}
	}
	a.Types = append(a.Types, TypeTag{TypeID: typeID})
	return nil
}

// AddVisitedLocation appends a new movement-history entry timestamped now
// and returns it.
func (a *Animal) AddVisitedLocation(locationPointID string, now time.Time) (VisitedLocation, error) {
	if a.LifeStatus == LifeStatusDead {
		return VisitedLocation{}, &DeadAnimalError{AnimalID: a.ID}
	}
	if locationPointID == a.ChippingLocationID {
		return VisitedLocation{}, &ChippingLocationError{AnimalID: a.ID, LocationPointID: locationPointID}
	}
	if n := len(a.VisitedLocations); n > 0 && a.VisitedLocations[n-1].LocationPointID == locationPointID {
		return VisitedLocation{}, &AlreadyAtPointError{AnimalID: a.ID, LocationPointID: locationPointID}
	}

	v := VisitedLocation{
		ID:              uuid.NewString(),
		LocationPointID: locationPointID,
		VisitDatetime:   now,
	}
	a.VisitedLocations = append(a.VisitedLocations, v)
	return v, nil
}

// ChangeType replaces the tag for oldTypeID with newTypeID in place, keeping
// its position in the tag sequence.
func (a *Animal) ChangeType(oldTypeID, newTypeID string) error {
	hasOld := a.typeIndex(oldTypeID) >= 0
	hasNew := a.typeIndex(newTypeID) >= 0

	if hasOld && hasNew {
		return &HaveBothTypesError{AnimalID: a.ID, OldTypeID: oldTypeID, NewTypeID: newTypeID}
	}
	if hasNew {
		return &AlreadyHaveTypeError{AnimalID: a.ID, TypeID: newTypeID}
	}

	i := a.typeIndex(oldTypeID)
	if i < 0 {
		return &NoSuchTypeError{AnimalID: a.ID, TypeID: oldTypeID}
	}
	a.Types[i].TypeID = newTypeID
	return nil
}

// ChangeVisitedLocation updates the point recorded by an existing history
// entry, keeping its position, and returns the updated entry.
//
// The position-dependent checks mirror each other but do not stack: an
// interior entry is checked against both neighbors, the first entry against
// the chipping location, and the last entry only against itself. A history
// of one entry counts as first, not last.
func (a *Animal) ChangeVisitedLocation(visitedLocationID, newLocationPointID string) (VisitedLocation, error) {
	i := a.visitedIndex(visitedLocationID)
	if i < 0 {
		return VisitedLocation{}, &NoSuchVisitedLocationError{AnimalID: a.ID, VisitedLocationID: visitedLocationID}
	}

	switch {
	case a.VisitedLocations[i].LocationPointID == newLocationPointID:
		return VisitedLocation{}, &SamePointError{AnimalID: a.ID, LocationPointID: newLocationPointID}

	case i != 0 && i != len(a.VisitedLocations)-1:
		if a.VisitedLocations[i+1].LocationPointID == newLocationPointID ||
			a.VisitedLocations[i-1].LocationPointID == newLocationPointID {
			return VisitedLocation{}, &AdjacentPointError{AnimalID: a.ID, LocationPointID: newLocationPointID}
		}

	case i == 0 && newLocationPointID == a.ChippingLocationID:
		return VisitedLocation{}, &FirstPointChippingError{AnimalID: a.ID, LocationPointID: newLocationPointID}
	}

	a.VisitedLocations[i].LocationPointID = newLocationPointID
	return a.VisitedLocations[i], nil
}

// DeleteVisitedLocation removes a history entry. If the removed entry is the
// first one and the entry right after it records the chipping location, that
// entry is removed as well: once the real first visit is gone, a "back at the
// chip point" entry carries no information.
func (a *Animal) DeleteVisitedLocation(visitedLocationID string) error {
	i := a.visitedIndex(visitedLocationID)
	if i < 0 {
		return &NoSuchVisitedLocationError{AnimalID: a.ID, VisitedLocationID: visitedLocationID}
	}

	if i == 0 && len(a.VisitedLocations) > 1 &&
		a.VisitedLocations[1].LocationPointID == a.ChippingLocationID {
		a.VisitedLocations = append(a.VisitedLocations[:1], a.VisitedLocations[2:]...)
	}
	a.VisitedLocations = append(a.VisitedLocations[:i], a.VisitedLocations[i+1:]...)
	return nil
}

// DeleteType detaches a type tag. The last remaining tag cannot be removed:
// a registered animal always has at least one type.
func (a *Animal) DeleteType(typeID string) error {
	i := a.typeIndex(typeID)
	if i < 0 {
		return &NoSuchTypeError{AnimalID: a.ID, TypeID: typeID}
	}
	if len(a.Types) == 1 {
		return &OnlyTypeError{AnimalID: a.ID, TypeID: typeID}
	}
	a.Types = append(a.Types[:i], a.Types[i+1:]...)
	return nil
}

// DuplicateType reports the first type tag that appears more than once in
// the sequence. AddType keeps the sequence duplicate-free; this exists to
// catch duplicates smuggled in through bulk paths (registration input,
// hand-edited storage).
func (a *Animal) DuplicateType() (TypeTag, bool) {
	seen := make(map[string]struct{}, len(a.Types))
	for _, t := range a.Types {
		if _, ok := seen[t.TypeID]; ok {
			return t, true
		}
		seen[t.TypeID] = struct{}{}
	}
	return TypeTag{}, false
}

func (a *Animal) typeIndex(typeID string) int {
	for i, t := range a.Types {
		if t.TypeID == typeID {
			return i
		}
	}
	return -1
}

func (a *Animal) visitedIndex(visitedLocationID string) int {
	for i, v := range a.VisitedLocations {
		if v.ID == visitedLocationID {
			return i
		}
	}
	return -1
}

package animals

import "time"

// TypeTag attaches a classification type to an animal.
// Two tags are the same tag iff they reference the same type id.
type TypeTag struct {
	TypeID string
}

// VisitedLocation is one timestamped entry in an animal's movement history.
// It belongs to exactly one animal; its position in the ordered history matters.
type VisitedLocation struct {
	ID              string
	LocationPointID string
	VisitDatetime   time.Time
}

// Animal is the aggregate root of the registry: a chipped animal, its type
// tags and its ordered movement history. All rule checks happen on this
// struct, in memory; repositories only load and save it whole.
type Animal struct {
	ID string

	Types []TypeTag // ordered, unique by TypeID

	Weight float64 // kg
	Length float64 // m
	Height float64 // m
	Gender Gender

	LifeStatus    LifeStatus
	DeathDatetime *time.Time // set only once LifeStatus becomes dead

	ChippingDatetime   time.Time
	ChippingLocationID string
	ChipperID          string

	VisitedLocations []VisitedLocation // chronological
}

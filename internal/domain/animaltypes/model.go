package animaltypes

import "time"

// AnimalType is a classification code animals get tagged with.
type AnimalType struct {
	ID   string
	Name string

	CreatedAt time.Time
}

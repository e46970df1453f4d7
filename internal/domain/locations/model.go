package locations

import "time"

// LocationPoint is a geographic point animals get chipped at or observed at.
type LocationPoint struct {
	ID string

	Latitude  float64 // -90..90
	Longitude float64 // -180..180

	CreatedAt time.Time
}

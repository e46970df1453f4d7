package postgres

import (
	"errors"

	"animal-chip-registry/internal/domain/animaltypes"
	"animal-chip-registry/internal/domain/locations"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// constraintErrors maps schema constraint names onto domain errors, so a
// storage-level rejection surfaces to callers as the rule it stands for.
var constraintErrors = map[string]error{
	// (latitude, longitude) is unique per location point
	"location_points_lat_lon_key": locations.ErrAlreadyExists,
	// type names are unique
	"animal_types_name_key": animaltypes.ErrAlreadyExists,

	// references from animals keep catalog rows alive
	"animals_chipping_location_id_fkey":             locations.ErrInUse,
	"animal_visited_locations_location_point_id_fkey": locations.ErrInUse,
	"animal_type_tags_type_id_fkey":                 animaltypes.ErrInUse,
}

// translateConstraint rewrites postgres constraint violations into domain
// errors; anything it does not recognize passes through untouched.
func translateConstraint(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code != uniqueViolation && pgErr.Code != foreignKeyViolation {
		return err
	}

	if mapped, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return mapped
	}
	return err
}

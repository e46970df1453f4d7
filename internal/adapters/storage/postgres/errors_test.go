package postgres

import (
	"errors"
	"fmt"
	"testing"

	"animal-chip-registry/internal/domain/animaltypes"
	"animal-chip-registry/internal/domain/locations"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslateConstraint(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{
			name: "duplicate coordinates",
			in:   &pgconn.PgError{Code: uniqueViolation, ConstraintName: "location_points_lat_lon_key"},
			want: locations.ErrAlreadyExists,
		},
		{
			name: "duplicate type name",
			in:   &pgconn.PgError{Code: uniqueViolation, ConstraintName: "animal_types_name_key"},
			want: animaltypes.ErrAlreadyExists,
		},
		{
			name: "location referenced by chipping",
			in:   &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "animals_chipping_location_id_fkey"},
			want: locations.ErrInUse,
		},
		{
			name: "location referenced by history",
			in:   &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "animal_visited_locations_location_point_id_fkey"},
			want: locations.ErrInUse,
		},
		{
			name: "type referenced by tags",
			in:   &pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "animal_type_tags_type_id_fkey"},
			want: animaltypes.ErrInUse,
		},
	}

	for _, tc := range cases {
		got := translateConstraint(tc.in)
		if !errors.Is(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestTranslateConstraint_PassThrough(t *testing.T) {
	if err := translateConstraint(nil); err != nil {
		t.Fatalf("nil must stay nil, got %v", err)
	}

	plain := errors.New("boom")
	if got := translateConstraint(plain); got != plain {
		t.Fatalf("plain errors must pass through, got %v", got)
	}

	// unknown constraint stays untouched
	unknown := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "something_else_key"}
	if got := translateConstraint(unknown); got != error(unknown) {
		t.Fatalf("unknown constraint must pass through, got %v", got)
	}

	// wrapped PgError is still recognized
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "animal_types_name_key"})
	if got := translateConstraint(wrapped); !errors.Is(got, animaltypes.ErrAlreadyExists) {
		t.Fatalf("wrapped PgError not translated, got %v", got)
	}
}

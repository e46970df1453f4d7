package postgres

import (
	"context"
	"database/sql"
	"strings"

	"animal-chip-registry/internal/domain/locations"
)

type LocationsRepo struct {
	db *sql.DB
}

func NewLocationsRepo(db *sql.DB) *LocationsRepo {
	return &LocationsRepo{db: db}
}

func (r *LocationsRepo) Create(ctx context.Context, p locations.LocationPoint) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO location_points (id, latitude, longitude, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		p.ID,
		p.Latitude,
		p.Longitude,
		p.CreatedAt,
	)
	return translateConstraint(err)
}

func (r *LocationsRepo) GetByID(ctx context.Context, id string) (locations.LocationPoint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return locations.LocationPoint{}, locations.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, latitude, longitude, created_at
		FROM location_points
		WHERE id = $1
	`, id)

	var p locations.LocationPoint
	if err := row.Scan(&p.ID, &p.Latitude, &p.Longitude, &p.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return locations.LocationPoint{}, locations.ErrNotFound
		}
		return locations.LocationPoint{}, err
	}
	return p, nil
}

func (r *LocationsRepo) List(ctx context.Context) ([]locations.LocationPoint, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, latitude, longitude, created_at
		FROM location_points
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]locations.LocationPoint, 0)
	for rows.Next() {
		var p locations.LocationPoint
		if err := rows.Scan(&p.ID, &p.Latitude, &p.Longitude, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *LocationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM location_points WHERE id = $1`, id)
	if err != nil {
		// FK violation here means an animal still references the point.
		return translateConstraint(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return locations.ErrNotFound
	}
	return nil
}

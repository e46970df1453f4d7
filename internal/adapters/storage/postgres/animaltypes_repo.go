package postgres

import (
	"context"
	"database/sql"
	"strings"

	"animal-chip-registry/internal/domain/animaltypes"
)

type AnimalTypesRepo struct {
	db *sql.DB
}

func NewAnimalTypesRepo(db *sql.DB) *AnimalTypesRepo {
	return &AnimalTypesRepo{db: db}
}

func (r *AnimalTypesRepo) Create(ctx context.Context, t animaltypes.AnimalType) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animal_types (id, name, created_at)
		VALUES ($1,$2,$3)
	`,
		t.ID,
		t.Name,
		t.CreatedAt,
	)
	return translateConstraint(err)
}

func (r *AnimalTypesRepo) Update(ctx context.Context, t animaltypes.AnimalType) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animal_types
		SET name = $2
		WHERE id = $1
	`, t.ID, t.Name)
	if err != nil {
		return translateConstraint(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animaltypes.ErrNotFound
	}
	return nil
}

func (r *AnimalTypesRepo) GetByID(ctx context.Context, id string) (animaltypes.AnimalType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animaltypes.AnimalType{}, animaltypes.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at
		FROM animal_types
		WHERE id = $1
	`, id)

	var t animaltypes.AnimalType
	if err := row.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return animaltypes.AnimalType{}, animaltypes.ErrNotFound
		}
		return animaltypes.AnimalType{}, err
	}
	return t, nil
}

func (r *AnimalTypesRepo) List(ctx context.Context) ([]animaltypes.AnimalType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at
		FROM animal_types
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animaltypes.AnimalType, 0)
	for rows.Next() {
		var t animaltypes.AnimalType
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *AnimalTypesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animal_types WHERE id = $1`, id)
	if err != nil {
		// FK violation here means some animal still carries the tag.
		return translateConstraint(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animaltypes.ErrNotFound
	}
	return nil
}

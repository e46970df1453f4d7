package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"animal-chip-registry/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO animals (
			id, weight, length, height, gender,
			life_status, death_datetime,
			chipping_datetime, chipping_location_id, chipper_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.Weight,
		a.Length,
		a.Height,
		string(a.Gender),
		string(a.LifeStatus),
		toNullTime(a.DeathDatetime),
		a.ChippingDatetime,
		a.ChippingLocationID,
		a.ChipperID,
	)
	if err != nil {
		return translateConstraint(err)
	}

	if err := insertChildren(ctx, tx, a); err != nil {
		return err
	}
	return tx.Commit()
}

// Update persists the full current aggregate state. Child rows are replaced
// wholesale; their position column preserves the in-memory order.
func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		UPDATE animals
		SET
			weight = $2,
			length = $3,
			height = $4,
			gender = $5,
			life_status = $6,
			death_datetime = $7,
			chipping_location_id = $8,
			chipper_id = $9
		WHERE id = $1
	`,
		a.ID,
		a.Weight,
		a.Length,
		a.Height,
		string(a.Gender),
		string(a.LifeStatus),
		toNullTime(a.DeathDatetime),
		a.ChippingLocationID,
		a.ChipperID,
	)
	if err != nil {
		return translateConstraint(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM animal_type_tags WHERE animal_id = $1`, a.ID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM animal_visited_locations WHERE animal_id = $1`, a.ID); err != nil {
		return err
	}
	if err := insertChildren(ctx, tx, a); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, weight, length, height, gender,
			life_status, death_datetime,
			chipping_datetime, chipping_location_id, chipper_id
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, err
	}
	if err := r.loadChildren(ctx, &a); err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) ListByChipper(ctx context.Context, chipperID string) ([]animals.Animal, error) {
	chipperID = strings.TrimSpace(chipperID)
	if chipperID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, weight, length, height, gender,
			life_status, death_datetime,
			chipping_datetime, chipping_location_id, chipper_id
		FROM animals
		WHERE chipper_id = $1
		ORDER BY chipping_datetime ASC
	`, chipperID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := r.loadChildren(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	// Child rows go via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return translateConstraint(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var gender, status string
	var death sql.NullTime

	if err := row.Scan(
		&a.ID,
		&a.Weight,
		&a.Length,
		&a.Height,
		&gender,
		&status,
		&death,
		&a.ChippingDatetime,
		&a.ChippingLocationID,
		&a.ChipperID,
	); err != nil {
		if err == sql.ErrNoRows {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}

	a.Gender = animals.Gender(gender)
	a.LifeStatus = animals.LifeStatus(status)
	if death.Valid {
		t := death.Time
		a.DeathDatetime = &t
	}
	return a, nil
}

func (r *AnimalsRepo) loadChildren(ctx context.Context, a *animals.Animal) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT type_id
		FROM animal_type_tags
		WHERE animal_id = $1
		ORDER BY position ASC
	`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var typeID string
		if err := rows.Scan(&typeID); err != nil {
			return err
		}
		a.Types = append(a.Types, animals.TypeTag{TypeID: typeID})
	}
	if err := rows.Err(); err != nil {
		return err
	}

	vrows, err := r.db.QueryContext(ctx, `
		SELECT id, location_point_id, visit_datetime
		FROM animal_visited_locations
		WHERE animal_id = $1
		ORDER BY position ASC
	`, a.ID)
	if err != nil {
		return err
	}
	defer vrows.Close()

	for vrows.Next() {
		var v animals.VisitedLocation
		if err := vrows.Scan(&v.ID, &v.LocationPointID, &v.VisitDatetime); err != nil {
			return err
		}
		a.VisitedLocations = append(a.VisitedLocations, v)
	}
	return vrows.Err()
}

func insertChildren(ctx context.Context, tx *sql.Tx, a animals.Animal) error {
	for i, t := range a.Types {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO animal_type_tags (animal_id, type_id, position)
			VALUES ($1,$2,$3)
		`, a.ID, t.TypeID, i); err != nil {
			return translateConstraint(err)
		}
	}
	for i, v := range a.VisitedLocations {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO animal_visited_locations (id, animal_id, location_point_id, visit_datetime, position)
			VALUES ($1,$2,$3,$4,$5)
		`, v.ID, a.ID, v.LocationPointID, v.VisitDatetime, i); err != nil {
			return translateConstraint(err)
		}
	}
	return nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

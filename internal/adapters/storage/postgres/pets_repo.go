package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"patitas-eternas/internal/domain/pets"

	"github.com/google/uuid"
)

const petColumns = `
	id, name, species, breed, age, size, gender, location, description,
	characteristics, health_status, status, image_ids,
	created_at, updated_at`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (string, error) {
	chars, err := encodeList(p.Characteristics)
	if err != nil {
		return "", err
	}
	health, err := encodeList(p.HealthStatus)
	if err != nil {
		return "", err
	}
	imgs, err := encodeList(p.ImageIDs)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10::jsonb,$11::jsonb,$12,$13::jsonb,$14,$15)
	`,
		id,
		p.Name,
		p.Species,
		p.Breed,
		p.Age,
		p.Size,
		p.Gender,
		p.Location,
		p.Description,
		chars,
		health,
		p.Status,
		imgs,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return "", mapErr(err)
	}
	return id, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id, err := parseID(id)
	if err != nil {
		return pets.Pet{}, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, mapErr(err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, f pets.ListFilter) ([]pets.Pet, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.Species) > 0 {
		start := len(args) + 1
		for _, s := range f.Species {
			args = append(args, s)
		}
		where = append(where, "species IN ("+placeholders(start, len(f.Species))+")")
	}
	if f.Size != nil {
		where = append(where, "size = "+arg(*f.Size))
	}
	if f.MinAge != nil {
		where = append(where, "age >= "+arg(*f.MinAge))
	}
	if f.MaxAge != nil {
		where = append(where, "age <= "+arg(*f.MaxAge))
	}
	if f.Status != nil {
		where = append(where, "status = "+arg(*f.Status))
	}

	q := `SELECT ` + petColumns + ` FROM pets`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update escribe solo los campos presentes en el patch y devuelve el registro final.
func (r *PetsRepo) Update(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	id, err := parseID(id)
	if err != nil {
		return pets.Pet{}, err
	}

	var (
		sets []string
		args = []any{id}
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	setList := func(col string, v []string) error {
		enc, err := encodeList(v)
		if err != nil {
			return err
		}
		args = append(args, enc)
		sets = append(sets, fmt.Sprintf("%s = $%d::jsonb", col, len(args)))
		return nil
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Species != nil {
		set("species", *patch.Species)
	}
	if patch.Breed != nil {
		set("breed", *patch.Breed)
	}
	if patch.Age != nil {
		set("age", *patch.Age)
	}
	if patch.Size != nil {
		set("size", *patch.Size)
	}
	if patch.Gender != nil {
		set("gender", *patch.Gender)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Characteristics != nil {
		if err := setList("characteristics", *patch.Characteristics); err != nil {
			return pets.Pet{}, err
		}
	}
	if patch.HealthStatus != nil {
		if err := setList("health_status", *patch.HealthStatus); err != nil {
			return pets.Pet{}, err
		}
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.ImageIDs != nil {
		if err := setList("image_ids", *patch.ImageIDs); err != nil {
			return pets.Pet{}, err
		}
	}
	if !patch.UpdatedAt.IsZero() {
		set("updated_at", patch.UpdatedAt)
	}
	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	row := r.db.QueryRowContext(ctx,
		`UPDATE pets SET `+strings.Join(sets, ", ")+` WHERE id = $1 RETURNING `+petColumns,
		args...,
	)
	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, mapErr(err)
	}
	return p, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var (
		p                     pets.Pet
		chars, health, images []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Species,
		&p.Breed,
		&p.Age,
		&p.Size,
		&p.Gender,
		&p.Location,
		&p.Description,
		&chars,
		&health,
		&p.Status,
		&images,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	var err error
	if p.Characteristics, err = decodeList(chars); err != nil {
		return pets.Pet{}, err
	}
	if p.HealthStatus, err = decodeList(health); err != nil {
		return pets.Pet{}, err
	}
	if p.ImageIDs, err = decodeList(images); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

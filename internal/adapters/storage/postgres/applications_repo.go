package postgres

import (
	"context"
	"database/sql"

	"patitas-eternas/internal/domain/applications"

	"github.com/google/uuid"
)

const applicationColumns = `
	id, pet_id, user_id, name, email, phone, address,
	housing_type, has_other_pets, other_pets_details, experience, reason,
	status, submitted_at, updated_at`

type ApplicationsRepo struct {
	db *sql.DB
}

func NewApplicationsRepo(db *sql.DB) *ApplicationsRepo {
	return &ApplicationsRepo{db: db}
}

func (r *ApplicationsRepo) Create(ctx context.Context, a applications.Application) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_applications (`+applicationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		id,
		a.PetID,
		a.UserID,
		a.Name,
		a.Email,
		a.Phone,
		a.Address,
		a.HousingType,
		a.HasOtherPets,
		a.OtherPetsDetails,
		a.Experience,
		a.Reason,
		a.Status,
		a.SubmittedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return "", mapErr(err)
	}
	return id, nil
}

func (r *ApplicationsRepo) GetByID(ctx context.Context, id string) (applications.Application, error) {
	id, err := parseID(id)
	if err != nil {
		return applications.Application{}, err
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM adoption_applications WHERE id = $1`, id)
	a, err := scanApplication(row)
	if err != nil {
		return applications.Application{}, mapErr(err)
	}
	return a, nil
}

func (r *ApplicationsRepo) List(ctx context.Context, f applications.ListFilter) ([]applications.Application, error) {
	q := `SELECT ` + applicationColumns + ` FROM adoption_applications`
	var args []any
	if f.UserID != nil {
		q += ` WHERE user_id = $1`
		args = append(args, *f.UserID)
	}
	q += ` ORDER BY submitted_at ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]applications.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ApplicationsRepo) Update(ctx context.Context, id string, patch applications.Patch) (applications.Application, error) {
	id, err := parseID(id)
	if err != nil {
		return applications.Application{}, err
	}

	// COALESCE deja el status como está cuando el patch no lo trae
	var status sql.NullString
	if patch.Status != nil {
		status = sql.NullString{String: string(*patch.Status), Valid: true}
	}
	var updatedAt sql.NullTime
	if !patch.UpdatedAt.IsZero() {
		updatedAt = sql.NullTime{Time: patch.UpdatedAt, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE adoption_applications
		SET
			status = COALESCE($2, status),
			updated_at = COALESCE($3, updated_at)
		WHERE id = $1
		RETURNING `+applicationColumns,
		id, status, updatedAt,
	)
	a, err := scanApplication(row)
	if err != nil {
		return applications.Application{}, mapErr(err)
	}
	return a, nil
}

func scanApplication(row rowScanner) (applications.Application, error) {
	var a applications.Application
	err := row.Scan(
		&a.ID,
		&a.PetID,
		&a.UserID,
		&a.Name,
		&a.Email,
		&a.Phone,
		&a.Address,
		&a.HousingType,
		&a.HasOtherPets,
		&a.OtherPetsDetails,
		&a.Experience,
		&a.Reason,
		&a.Status,
		&a.SubmittedAt,
		&a.UpdatedAt,
	)
	return a, err
}

package postgres

import (
	"context"
	"database/sql"

	"patitas-eternas/internal/domain/users"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, password_hash, image, role, created_at, updated_at`

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

// Create: el índice único users_email_key produce ErrDuplicate.
func (r *UsersRepo) Create(ctx context.Context, u users.User) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		id,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Image,
		u.Role,
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return "", mapErr(err)
	}
	return id, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	id, err := parseID(id)
	if err != nil {
		return users.User{}, err
	}
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UsersRepo) SetRole(ctx context.Context, id string, role users.Role) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`, id, role)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mapErr(sql.ErrNoRows)
	}
	return nil
}

func (r *UsersRepo) getOne(ctx context.Context, where string, arg any) (users.User, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users `+where, arg).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Image,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return users.User{}, mapErr(err)
	}
	return u, nil
}

package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"patitas-eternas/internal/authz"
	"patitas-eternas/internal/ports/storage"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt.DefaultCost (10) es el mismo costo que ya usaban los hashes existentes.
const defaultBcryptCost = bcrypt.DefaultCost

var (
	ErrNotFound   = storage.ErrNotFound
	ErrEmailTaken = errors.New("email already registered")
)

type Service struct {
	repo Repository
	now  func() time.Time
	cost int
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
		cost: defaultBcryptCost,
	}
}

// Register crea una cuenta con rol user. Email duplicado => ErrEmailTaken.
func (s *Service) Register(ctx context.Context, caller authz.Caller, req RegisterRequest) (User, error) {
	if err := authz.Check(caller, authz.ActionRegister); err != nil {
		return User{}, err
	}

	u, err := ValidateRegistration(req, s.now())
	if err != nil {
		return User{}, err
	}

	// Chequeo previo para el caso común; el índice único cubre la carrera.
	_, err = s.repo.GetByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return User{}, ErrEmailTaken
	case !errors.Is(err, storage.ErrNotFound):
		return User{}, fmt.Errorf("users: lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("users: hash password: %w", err)
	}
	u.PasswordHash = string(hash)

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("users: create: %w", err)
	}
	u.ID = id
	return u, nil
}

// EnsureAdmin crea la cuenta admin inicial o promueve una existente. Idempotente.
// Devuelve created=true si la cuenta no existía.
func (s *Service) EnsureAdmin(ctx context.Context, name, email, password string) (User, bool, error) {
	email = NormalizeEmail(email)

	existing, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != RoleAdmin {
			if err := s.repo.SetRole(ctx, existing.ID, RoleAdmin); err != nil {
				return User{}, false, fmt.Errorf("users: promote admin: %w", err)
			}
			existing.Role = RoleAdmin
		}
		return existing, false, nil
	case !errors.Is(err, storage.ErrNotFound):
		return User{}, false, fmt.Errorf("users: lookup admin: %w", err)
	}

	u, err := ValidateRegistration(RegisterRequest{Name: name, Email: email, Password: password}, s.now())
	if err != nil {
		return User{}, false, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return User{}, false, fmt.Errorf("users: hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	u.Role = RoleAdmin

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return User{}, false, fmt.Errorf("users: create admin: %w", err)
	}
	u.ID = id
	return u, true, nil
}

// CheckPassword compara contra el hash guardado. Sin hash (cuenta del IdP) nunca coincide.
func CheckPassword(u User, password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

package postgres

import (
	"context"
	"database/sql"

	"patitas-eternas/internal/domain/payments"

	"github.com/google/uuid"
)

const paymentColumns = `
	id, user_id, amount, currency, payment_method, payment_id, order_id,
	status, description, created_at, updated_at`

type PaymentsRepo struct {
	db *sql.DB
}

func NewPaymentsRepo(db *sql.DB) *PaymentsRepo {
	return &PaymentsRepo{db: db}
}

func (r *PaymentsRepo) Create(ctx context.Context, p payments.Payment) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		id,
		p.UserID,
		p.Amount,
		p.Currency,
		p.PaymentMethod,
		p.PaymentID,
		p.OrderID,
		p.Status,
		p.Description,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return "", mapErr(err)
	}
	return id, nil
}

func (r *PaymentsRepo) GetByID(ctx context.Context, id string) (payments.Payment, error) {
	id, err := parseID(id)
	if err != nil {
		return payments.Payment{}, err
	}

	var p payments.Payment
	err = r.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id).Scan(
		&p.ID,
		&p.UserID,
		&p.Amount,
		&p.Currency,
		&p.PaymentMethod,
		&p.PaymentID,
		&p.OrderID,
		&p.Status,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return payments.Payment{}, mapErr(err)
	}
	return p, nil
}

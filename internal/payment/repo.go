package payment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/restaurante-ecom/internal/receipt"
)

var (
	ErrNotFound     = errors.New("payment not found")
	ErrUserNotFound = errors.New("user not found")
)

// ReceiptFor builds the receipt of a payment once the paying user is known.
type ReceiptFor func(c Customer) *receipt.Receipt

type Repository interface {
	// Checkout stores p, looks up its user, stores the receipt returned by
	// newReceipt and empties the user's cart as one unit: either all four
	// happen or none do.
	Checkout(ctx context.Context, p *Payment, newReceipt ReceiptFor) (*receipt.Receipt, error)
	ListAll(ctx context.Context) ([]Payment, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Checkout(ctx context.Context, p *Payment, newReceipt ReceiptFor) (*receipt.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var rc *receipt.Receipt
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			INSERT INTO payments (id, user_id, billing, instrument, amount, quantity, status, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
		`, p.ID, p.UserID, p.Billing, p.Instrument, p.Amount, p.Quantity, p.Status, p.CreatedAt); err != nil {
			return err
		}

		var c Customer
		err := tx.QueryRow(ctx, `SELECT username, email FROM users WHERE id=$1`, p.UserID).
			Scan(&c.Username, &c.Email)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}

		rc = newReceipt(c)
		if _, err := tx.Exec(ctx, `
			INSERT INTO receipts (id, payment_id, user_id, username, email, quantity, total_amount, purchase_date, items)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`, rc.ID, rc.PaymentID, rc.UserID, rc.Username, rc.Email, rc.Quantity, rc.TotalAmount, rc.PurchaseDate, rc.Items); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, p.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, billing, instrument, amount, quantity, status, created_at, updated_at
		FROM payments
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Payment{}
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.Billing, &p.Instrument, &p.Amount, &p.Quantity,
			&p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE payments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

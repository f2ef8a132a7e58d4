package receipt

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Receipt, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, payment_id, user_id, username, email, quantity, total_amount, purchase_date, items
		FROM receipts WHERE user_id=$1
		ORDER BY purchase_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Receipt{}
	for rows.Next() {
		var rc Receipt
		if err := rows.Scan(&rc.ID, &rc.PaymentID, &rc.UserID, &rc.Username, &rc.Email, &rc.Quantity,
			&rc.TotalAmount, &rc.PurchaseDate, &rc.Items); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

package cart

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Entries(ctx context.Context, userID string) ([]Entry, error)
	// Lines joins entries with the menu; entries whose item is gone are
	// left out.
	Lines(ctx context.Context, userID string) ([]Line, error)
	// Set stores quantity as the entry's absolute value, creating it if
	// needed.
	Set(ctx context.Context, userID, itemID string, quantity int) error
	Remove(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Entries(ctx context.Context, userID string) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, item_id, quantity, added_at
		FROM cart_items WHERE user_id=$1
		ORDER BY added_at, item_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.ItemID, &e.Quantity, &e.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PGRepo) Lines(ctx context.Context, userID string) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.name, m.category, m.price, m.rating, m.stock, m.image, m.description,
		       m.created_at, m.updated_at, c.quantity
		FROM cart_items c
		JOIN menu_items m ON m.id = c.item_id
		WHERE c.user_id=$1
		ORDER BY c.added_at, c.item_id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Line{}
	for rows.Next() {
		var l Line
		m := &l.Item
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Rating, &m.Stock, &m.Image, &m.Description,
			&m.CreatedAt, &m.UpdatedAt, &l.Quantity); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PGRepo) Set(ctx context.Context, userID, itemID string, quantity int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO cart_items (user_id, item_id, quantity, added_at)
		VALUES ($1,$2,$3,NOW())
		ON CONFLICT (user_id, item_id) DO UPDATE SET quantity = EXCLUDED.quantity
	`, userID, itemID, quantity)
	return err
}

func (r *PGRepo) Remove(ctx context.Context, userID, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1 AND item_id=$2`, userID, itemID)
	return err
}

func (r *PGRepo) Clear(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id=$1`, userID)
	return err
}

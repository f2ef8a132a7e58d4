// Package menu holds the menu items and their stock: the inventory the cart
// checks against.
package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound = errors.New("menu item not found")
)

type Repository interface {
	Create(ctx context.Context, m *MenuItem) error
	GetByID(ctx context.Context, id string) (*MenuItem, error)
	List(ctx context.Context) ([]MenuItem, error)
	Update(ctx context.Context, id string, in UpdateItemRequest) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, m *MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (id, name, category, price, rating, stock, image, description, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW(),NOW())
		RETURNING created_at, updated_at
	`, m.ID, m.Name, m.Category, m.Price, m.Rating, m.Stock, m.Image, m.Description).
		Scan(&m.CreatedAt, &m.UpdatedAt)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var m MenuItem
	err := r.db.QueryRow(ctx, `
		SELECT id, name, category, price, rating, stock, image, description, created_at, updated_at
		FROM menu_items WHERE id=$1
	`, id).Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Rating, &m.Stock, &m.Image, &m.Description, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PGRepo) List(ctx context.Context) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, price, rating, stock, image, description, created_at, updated_at
		FROM menu_items
		ORDER BY category, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []MenuItem{}
	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Rating, &m.Stock, &m.Image, &m.Description, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id string, in UpdateItemRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name     = COALESCE(NULLIF($2,''), name),
		    category = COALESCE(NULLIF($3,''), category),
		    price    = COALESCE(NULLIF($4,''), price),
		    rating   = COALESCE($5, rating),
		    stock    = COALESCE($6, stock),
		    image    = COALESCE(NULLIF($7,''), image),
		    updated_at = NOW()
		WHERE id = $1
	`, id, in.Name, in.Category, in.Price, in.Rating, in.Stock, in.Image)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

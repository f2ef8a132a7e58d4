package booking

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrTableNotFound = errors.New("table not found")

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	ListByUser(ctx context.Context, userID string) ([]Booking, error)
	ListAll(ctx context.Context) ([]Booking, error)
	GetTable(ctx context.Context, number string) (*Table, error)
	ListTables(ctx context.Context) ([]Table, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const selectBooking = `
	SELECT id, user_id, username, table_number, to_char(booking_date, 'YYYY-MM-DD'),
	       booking_time, guests, status, created_at
	FROM bookings`

func (r *PGRepo) Create(ctx context.Context, b *Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, user_id, username, table_number, booking_date, booking_time, guests, status, created_at)
		VALUES ($1,$2,$3,$4,$5::text::date,$6,$7,$8,$9)
	`, b.ID, b.UserID, b.Username, b.TableNumber, b.Date, b.Time, b.Guests, b.Status, b.CreatedAt)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, selectBooking+` WHERE user_id=$1 ORDER BY booking_date, booking_time`, userID)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

func (r *PGRepo) ListAll(ctx context.Context) ([]Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, selectBooking+` ORDER BY booking_date, booking_time`)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]Booking, error) {
	defer rows.Close()
	out := []Booking{}
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.Username, &b.TableNumber, &b.Date,
			&b.Time, &b.Guests, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetTable(ctx context.Context, number string) (*Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t Table
	err := r.db.QueryRow(ctx, `SELECT number, capacity, image FROM dining_tables WHERE number=$1`, number).
		Scan(&t.Number, &t.Capacity, &t.Image)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PGRepo) ListTables(ctx context.Context) ([]Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT number, capacity, image FROM dining_tables ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Table{}
	for rows.Next() {
		var t Table
		if err := rows.Scan(&t.Number, &t.Capacity, &t.Image); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
)

type stubRepo struct {
	tables   []Table
	bookings []Booking
}

func (s *stubRepo) Create(ctx context.Context, b *Booking) error {
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *stubRepo) ListByUser(ctx context.Context, userID string) ([]Booking, error) {
	out := []Booking{}
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAll(ctx context.Context) ([]Booking, error) {
	return append([]Booking(nil), s.bookings...), nil
}

func (s *stubRepo) GetTable(ctx context.Context, number string) (*Table, error) {
	for i := range s.tables {
		if s.tables[i].Number == number {
			t := s.tables[i]
			return &t, nil
		}
	}
	return nil, ErrTableNotFound
}

func (s *stubRepo) ListTables(ctx context.Context) ([]Table, error) {
	return s.tables, nil
}

var asha = auth.Session{UserID: "u1", Username: "asha", Role: auth.RoleUser}

func newRepo() *stubRepo {
	return &stubRepo{tables: []Table{{Number: "T4", Capacity: 4}}}
}

func TestBook_Confirmed(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo)

	b, err := svc.Book(context.Background(), asha, BookRequest{TableNumber: "T4", Date: "2024-05-01", Time: "19:30", Guests: 4})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, "u1", b.UserID)
	assert.Equal(t, "asha", b.Username)
	require.Len(t, repo.bookings, 1)
}

func TestBook_Rejections(t *testing.T) {
	ok := BookRequest{TableNumber: "T4", Date: "2024-05-01", Time: "19:30", Guests: 2}
	cases := []struct {
		name   string
		mutate func(r *BookRequest)
		want   error
	}{
		{"no table", func(r *BookRequest) { r.TableNumber = "" }, errNoTable},
		{"bad date", func(r *BookRequest) { r.Date = "01/05/2024" }, errBadDate},
		{"bad time", func(r *BookRequest) { r.Time = "7pm" }, errBadTime},
		{"no guests", func(r *BookRequest) { r.Guests = 0 }, errBadGuests},
		{"unknown table", func(r *BookRequest) { r.TableNumber = "T99" }, errUnknownTable},
		{"too many guests", func(r *BookRequest) { r.Guests = 5 }, errOverCapacity},
		{"someone else", func(r *BookRequest) { r.UserID = "u2" }, errForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newRepo()
			req := ok
			tc.mutate(&req)
			_, err := NewService(repo).Book(context.Background(), asha, req)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, repo.bookings)
		})
	}
}

func TestListByUser(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo)
	ctx := context.Background()
	_, err := svc.Book(ctx, asha, BookRequest{TableNumber: "T4", Date: "2024-05-01", Time: "19:30", Guests: 2})
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, asha, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.ListByUser(ctx, asha, "u2")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	admin := auth.Session{UserID: "a1", Role: auth.RoleAdmin}
	all, err := svc.ListByUser(ctx, admin, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

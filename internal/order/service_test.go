package order

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
	"github.com/MikeMC777/restaurante-ecom/internal/events"
)

// stubRepo implements Repository in memory.
type stubRepo struct {
	orders  []Order
	failAll bool
}

func (s *stubRepo) Create(ctx context.Context, o *Order) error {
	if s.failAll {
		return errors.New("db down")
	}
	s.orders = append(s.orders, *o)
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			cp := s.orders[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubRepo) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	out := []Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAll(ctx context.Context) ([]Order, error) {
	return append([]Order(nil), s.orders...), nil
}

func (s *stubRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

type recordingPublisher struct{ events []events.Event }

func (r *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	r.events = append(r.events, e)
	return nil
}

var user = auth.Session{UserID: "u1", Username: "asha", Role: auth.RoleUser}

func TestPlace_EmptyOrderPersistsNothing(t *testing.T) {
	repo := &stubRepo{}
	pub := &recordingPublisher{}
	svc := NewService(repo, pub, zerolog.Nop())

	_, err := svc.Place(context.Background(), user, PlaceOrderRequest{UserID: "u1", Total: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Empty(t, repo.orders)
	assert.Empty(t, pub.events)
}

func TestPlace_Pending(t *testing.T) {
	repo := &stubRepo{}
	pub := &recordingPublisher{}
	svc := NewService(repo, pub, zerolog.Nop())

	o, err := svc.Place(context.Background(), user, PlaceOrderRequest{
		UserID: "u1",
		Items:  []Item{{Name: "Paneer Tikka", Quantity: 2, Price: "$10.00"}},
		Total:  decimal.NewFromInt(20),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "asha", o.Username)
	assert.False(t, o.CreatedAt.IsZero())
	require.Len(t, repo.orders, 1)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeOrderPlaced, pub.events[0].Type)
}

func TestPlace_Rejections(t *testing.T) {
	svc := NewService(&stubRepo{}, events.Nop{}, zerolog.Nop())
	ctx := context.Background()
	items := []Item{{Name: "Dal", Quantity: 1, Price: "$8"}}

	_, err := svc.Place(ctx, user, PlaceOrderRequest{UserID: "u2", Items: items})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.Place(ctx, user, PlaceOrderRequest{UserID: "u1", Items: []Item{{Name: "Dal", Quantity: 0}}})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Place(ctx, user, PlaceOrderRequest{UserID: "u1", Items: items, Total: decimal.NewFromInt(-1)})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Place(ctx, user, PlaceOrderRequest{UserID: "u1", Items: items, Total: decimal.RequireFromString("8.005")})
	assert.Equal(t, "total must have at most 2 decimal places", apperr.Message(err))

	_, err = svc.Place(ctx, user, PlaceOrderRequest{UserID: "u1", Items: items, Total: decimal.New(1, 10)})
	assert.Equal(t, "total is too large", apperr.Message(err))
}

func TestPlace_PersistenceError(t *testing.T) {
	pub := &recordingPublisher{}
	svc := NewService(&stubRepo{failAll: true}, pub, zerolog.Nop())
	_, err := svc.Place(context.Background(), user, PlaceOrderRequest{
		Items: []Item{{Name: "Dal", Quantity: 1}},
	})
	assert.Equal(t, apperr.KindPersistence, apperr.KindOf(err))
	assert.Empty(t, pub.events)
}

func TestListAndStatus(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, events.Nop{}, zerolog.Nop())
	ctx := context.Background()
	o, err := svc.Place(ctx, user, PlaceOrderRequest{Items: []Item{{Name: "Dal", Quantity: 1}}})
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, user, "u1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.ListByUser(ctx, user, "u9")
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	require.NoError(t, svc.UpdateStatus(ctx, o.ID, StatusConfirmed))
	got, err := svc.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, got.Status)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, errOrderNotFound)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, o.ID, "Teleported"), errBadStatus)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, "missing", StatusCancelled), errOrderNotFound)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

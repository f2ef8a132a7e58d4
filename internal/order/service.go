package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
	"github.com/MikeMC777/restaurante-ecom/internal/events"
)

var (
	ErrEmptyOrder = apperr.Validation("no items in the order")

	errOrderNotFound = apperr.NotFound("order not found")
	errBadStatus     = apperr.Validation("invalid status")
	errForbidden     = apperr.Forbidden("not allowed to access these orders")

	// orders.total is NUMERIC(12, 2).
	maxTotal = decimal.New(1, 10)
)

type Service struct {
	repo   Repository
	events events.Publisher
	log    zerolog.Logger
	now    func() time.Time
}

func NewService(repo Repository, pub events.Publisher, log zerolog.Logger) *Service {
	return &Service{repo: repo, events: pub, log: log, now: time.Now}
}

// Place records an order in status Pending. It neither clears the cart nor
// touches stock; the caller decides what follows.
func (s *Service) Place(ctx context.Context, sess auth.Session, in PlaceOrderRequest) (*Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if in.UserID == "" {
		in.UserID = sess.UserID
	}
	if !sess.CanActFor(in.UserID) {
		return nil, errForbidden
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.Name) == "" {
			return nil, apperr.Validationf("items[%d].name is required", i)
		}
		if it.Quantity <= 0 {
			return nil, apperr.Validationf("items[%d].quantity must be greater than 0", i)
		}
	}
	if in.Total.IsNegative() {
		return nil, apperr.Validation("total must not be negative")
	}
	if !in.Total.Equal(in.Total.Truncate(2)) {
		return nil, apperr.Validation("total must have at most 2 decimal places")
	}
	if !in.Total.LessThan(maxTotal) {
		return nil, apperr.Validation("total is too large")
	}
	username := in.Username
	if username == "" {
		username = sess.Username
	}

	o := &Order{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Username:  username,
		Items:     in.Items,
		Total:     in.Total,
		Status:    StatusPending,
		CreatedAt: s.now().UTC(),
	}
	o.UpdatedAt = o.CreatedAt
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, apperr.Persistence("error placing order", err)
	}

	if evt, err := events.New(events.TypeOrderPlaced, o.UserID, o); err == nil {
		if err := s.events.Publish(ctx, evt); err != nil {
			s.log.Warn().Err(err).Str("order_id", o.ID).Msg("publish order.placed failed")
		}
	}
	return o, nil
}

func (s *Service) ListByUser(ctx context.Context, sess auth.Session, userID string) ([]Order, error) {
	if !sess.CanActFor(userID) {
		return nil, errForbidden
	}
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch orders", err)
	}
	return out, nil
}

// ListAll is the back-office view; the route is admin-only.
func (s *Service) ListAll(ctx context.Context) ([]Order, error) {
	out, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch orders", err)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, errOrderNotFound
	}
	if err != nil {
		return nil, apperr.Persistence("failed to fetch order", err)
	}
	return o, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if !validStatuses[status] {
		return errBadStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, ErrNotFound) {
			return errOrderNotFound
		}
		return apperr.Persistence("failed to update order", err)
	}
	return nil
}

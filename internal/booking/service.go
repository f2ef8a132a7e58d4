// Package booking reserves dining tables for a date and time slot.
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
)

var (
	errNoTable      = apperr.Validation("tableNumber is required")
	errBadDate      = apperr.Validation("date must be YYYY-MM-DD")
	errBadTime      = apperr.Validation("time must be HH:MM")
	errBadGuests    = apperr.Validation("guests must be greater than 0")
	errOverCapacity = apperr.Validation("guests exceed table capacity")
	errUnknownTable = apperr.NotFound("table not found")
	errForbidden    = apperr.Forbidden("not allowed to access another user's bookings")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Book confirms a reservation for the session's user. An empty
// req.UserID means the caller books for themselves.
func (s *Service) Book(ctx context.Context, sess auth.Session, req BookRequest) (*Booking, error) {
	if req.UserID == "" {
		req.UserID = sess.UserID
	}
	if !sess.CanActFor(req.UserID) {
		return nil, errForbidden
	}

	number := strings.TrimSpace(req.TableNumber)
	if number == "" {
		return nil, errNoTable
	}
	if _, err := time.Parse(time.DateOnly, req.Date); err != nil {
		return nil, errBadDate
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, errBadTime
	}
	if req.Guests <= 0 {
		return nil, errBadGuests
	}

	t, err := s.repo.GetTable(ctx, number)
	if errors.Is(err, ErrTableNotFound) {
		return nil, errUnknownTable
	}
	if err != nil {
		return nil, apperr.Persistence("failed to book table", err)
	}
	if req.Guests > t.Capacity {
		return nil, errOverCapacity
	}

	b := &Booking{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Username:    sess.Username,
		TableNumber: t.Number,
		Date:        req.Date,
		Time:        req.Time,
		Guests:      req.Guests,
		Status:      StatusConfirmed,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, apperr.Persistence("failed to book table", err)
	}
	return b, nil
}

func (s *Service) ListByUser(ctx context.Context, sess auth.Session, userID string) ([]Booking, error) {
	if !sess.CanActFor(userID) {
		return nil, errForbidden
	}
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch bookings", err)
	}
	return out, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Booking, error) {
	out, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch bookings", err)
	}
	return out, nil
}

func (s *Service) ListTables(ctx context.Context) ([]Table, error) {
	out, err := s.repo.ListTables(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch tables", err)
	}
	return out, nil
}

// Package payment records simulated card payments. A successful payment
// writes its receipt and empties the payer's cart in the same transaction.
package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
	"github.com/MikeMC777/restaurante-ecom/internal/events"
	"github.com/MikeMC777/restaurante-ecom/internal/receipt"
)

var (
	errUserNotFound    = apperr.NotFound("user not found")
	errPaymentNotFound = apperr.NotFound("payment not found")
	errBadStatus       = apperr.Validation("status must be pending or paid")
	errForbidden       = apperr.Forbidden("not allowed to pay for another user")
)

type completed struct {
	PaymentID string          `json:"payment_id"`
	ReceiptID string          `json:"receipt_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Quantity  int             `json:"quantity"`
}

type Service struct {
	repo   Repository
	events events.Publisher
	log    zerolog.Logger
	now    func() time.Time
}

func NewService(repo Repository, pub events.Publisher, log zerolog.Logger) *Service {
	return &Service{repo: repo, events: pub, log: log, now: time.Now}
}

// Submit validates req and, when it passes, records the payment as paid,
// writes its receipt and clears the cart.
func (s *Service) Submit(ctx context.Context, sess auth.Session, req SubmitRequest) (*SubmitResponse, error) {
	if err := Validate(&req); err != nil {
		return nil, err
	}
	if !sess.CanActFor(req.UserID) {
		return nil, errForbidden
	}

	now := s.now().UTC()
	p := &Payment{
		ID:      uuid.NewString(),
		UserID:  req.UserID,
		Billing: *req.Billing,
		Instrument: Instrument{
			CardNumber:     maskCard(req.Payment.CardNumber),
			CardholderName: req.Payment.CardholderName,
			ExpiryDate:     req.Payment.ExpiryDate,
		},
		Amount:    req.Amount,
		Quantity:  req.Quantity,
		Status:    StatusPaid,
		CreatedAt: now,
		UpdatedAt: now,
	}

	rc, err := s.repo.Checkout(ctx, p, func(c Customer) *receipt.Receipt {
		return &receipt.Receipt{
			ID:           uuid.NewString(),
			PaymentID:    p.ID,
			UserID:       p.UserID,
			Username:     c.Username,
			Email:        c.Email,
			Quantity:     req.Quantity,
			TotalAmount:  req.Amount,
			PurchaseDate: now,
			Items:        req.Items,
		}
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, errUserNotFound
		}
		return nil, apperr.Persistence("failed to process payment", err)
	}

	s.publish(ctx, completed{
		PaymentID: p.ID,
		ReceiptID: rc.ID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		Quantity:  p.Quantity,
	})

	return &SubmitResponse{
		Success:   true,
		Message:   "Payment recorded and receipt created successfully",
		PaymentID: p.ID,
		ReceiptID: rc.ID,
	}, nil
}

// UpdateStatus sets status without checking the transition.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if status != StatusPending && status != StatusPaid {
		return errBadStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, ErrNotFound) {
			return errPaymentNotFound
		}
		return apperr.Persistence("failed to update payment", err)
	}
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]Payment, error) {
	out, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch payments", err)
	}
	return out, nil
}

func (s *Service) publish(ctx context.Context, c completed) {
	evt, err := events.New(events.TypePaymentCompleted, c.UserID, c)
	if err != nil {
		return
	}
	if err := s.events.Publish(ctx, evt); err != nil {
		s.log.Warn().Err(err).Str("payment_id", c.PaymentID).Msg("publish payment.completed failed")
	}
}

// Package receipt serves the receipts written by checkout.
package receipt

import (
	"context"
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
)

var (
	ErrNotFound = apperr.NotFound("no receipts found")

	errForbidden = apperr.Forbidden("not allowed to access these receipts")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

func (s *Service) ListByUser(ctx context.Context, sess auth.Session, userID string) ([]Receipt, error) {
	if !sess.CanActFor(userID) {
		return nil, errForbidden
	}
	out, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch receipts", err)
	}
	return out, nil
}

// Latest returns the user's receipt with the most recent purchase date.
func (s *Service) Latest(ctx context.Context, sess auth.Session, userID string) (*Receipt, error) {
	all, err := s.ListByUser(ctx, sess, userID)
	if err != nil {
		return nil, err
	}
	latest := MostRecent(all)
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

// MostRecent picks the receipt with the latest PurchaseDate regardless of
// the order of rs. Ties keep the first seen.
func MostRecent(rs []Receipt) *Receipt {
	var best *Receipt
	for i := range rs {
		if best == nil || rs[i].PurchaseDate.After(best.PurchaseDate) {
			best = &rs[i]
		}
	}
	return best
}

// QRCode renders a PNG that identifies rc at the counter.
func QRCode(rc *Receipt, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	content := fmt.Sprintf("receipt:%s;payment:%s;total:%s", rc.ID, rc.PaymentID, rc.TotalAmount.StringFixed(2))
	return qrcode.Encode(content, qrcode.Medium, size)
}

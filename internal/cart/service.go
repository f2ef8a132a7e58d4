// Package cart manages each user's working set of menu items awaiting
// checkout. Stock is checked when items are added; it is not reserved.
package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/MikeMC777/restaurante-ecom/internal/auth"
	"github.com/MikeMC777/restaurante-ecom/internal/menu"
)

var (
	ErrInvalidReference  = apperr.NotFound("item not found")
	ErrInsufficientStock = apperr.Validation("requested quantity exceeds stock")
	ErrCartNotFound      = apperr.NotFound("cart not found")
	ErrItemNotInCart     = apperr.NotFound("item not found in cart")

	errInvalidItemID = apperr.Validation("invalid item ID")
	errBadQuantity   = apperr.Validation("quantity must be greater than 0")
	errNegativeQty   = apperr.Validation("quantity must not be negative")
	errForbidden     = apperr.Forbidden("not allowed to access this cart")
)

// Inventory resolves menu items for stock checks.
type Inventory interface {
	Get(ctx context.Context, id string) (*menu.MenuItem, error)
}

type Service struct {
	repo      Repository
	inventory Inventory
}

func NewService(repo Repository, inventory Inventory) *Service {
	return &Service{repo: repo, inventory: inventory}
}

// AddItem adds quantity units of itemID, summing with any existing entry.
// The combined quantity may not exceed the item's stock.
func (s *Service) AddItem(ctx context.Context, sess auth.Session, userID, itemID string, quantity int) error {
	if !sess.CanActFor(userID) {
		return errForbidden
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return errInvalidItemID
	}
	if quantity <= 0 {
		return errBadQuantity
	}

	item, err := s.inventory.Get(ctx, itemID)
	if err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			return ErrInvalidReference
		}
		return apperr.Persistence("failed to look up item", err)
	}

	entries, err := s.repo.Entries(ctx, userID)
	if err != nil {
		return apperr.Persistence("failed to load cart", err)
	}
	existing := 0
	for _, e := range entries {
		if e.ItemID == itemID {
			existing = e.Quantity
			break
		}
	}
	if existing+quantity > item.Stock {
		return ErrInsufficientStock
	}

	if err := s.repo.Set(ctx, userID, itemID, existing+quantity); err != nil {
		return apperr.Persistence("failed to add item to cart", err)
	}
	return nil
}

// SetQuantity overwrites the quantity of the entry whose item is named
// itemName. Zero removes the entry. Stock is not re-checked.
func (s *Service) SetQuantity(ctx context.Context, sess auth.Session, userID, itemName string, quantity int) error {
	if !sess.CanActFor(userID) {
		return errForbidden
	}
	if quantity < 0 {
		return errNegativeQty
	}

	entries, err := s.repo.Entries(ctx, userID)
	if err != nil {
		return apperr.Persistence("failed to load cart", err)
	}
	if len(entries) == 0 {
		return ErrCartNotFound
	}
	lines, err := s.repo.Lines(ctx, userID)
	if err != nil {
		return apperr.Persistence("failed to load cart", err)
	}

	var itemID string
	for _, l := range lines {
		if l.Item.Name == itemName {
			itemID = l.Item.ID
			break
		}
	}
	if itemID == "" {
		return ErrItemNotInCart
	}

	if quantity == 0 {
		err = s.repo.Remove(ctx, userID, itemID)
	} else {
		err = s.repo.Set(ctx, userID, itemID, quantity)
	}
	if err != nil {
		return apperr.Persistence("failed to update cart", err)
	}
	return nil
}

// Entries returns the cart with item references left unresolved.
func (s *Service) Entries(ctx context.Context, sess auth.Session, userID string) ([]Entry, error) {
	if !sess.CanActFor(userID) {
		return nil, errForbidden
	}
	entries, err := s.repo.Entries(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch cart", err)
	}
	return entries, nil
}

// Lines returns the cart with each item resolved to a menu snapshot.
func (s *Service) Lines(ctx context.Context, sess auth.Session, userID string) ([]Line, error) {
	if !sess.CanActFor(userID) {
		return nil, errForbidden
	}
	lines, err := s.repo.Lines(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch cart", err)
	}
	return lines, nil
}

// Clear empties the cart. Clearing an empty cart is not an error.
func (s *Service) Clear(ctx context.Context, sess auth.Session, userID string) error {
	if !sess.CanActFor(userID) {
		return errForbidden
	}
	if err := s.repo.Clear(ctx, userID); err != nil {
		return apperr.Persistence("failed to clear cart", err)
	}
	return nil
}

// Total prices the user's cart.
func (s *Service) Total(ctx context.Context, sess auth.Session, userID string) (TotalResponse, error) {
	lines, err := s.Lines(ctx, sess, userID)
	if err != nil {
		return TotalResponse{}, err
	}
	units := 0
	for _, l := range lines {
		units += l.Quantity
	}
	return TotalResponse{Total: menu.FormatPrice(Sum(lines)), Quantity: units}, nil
}

// Sum adds price*quantity over lines. Unparseable prices count as zero.
func Sum(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(menu.ParsePrice(l.Item.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

package menu

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
)

const defaultDescription = "A delicious dish prepared with fresh ingredients."

var (
	errItemNotFound   = apperr.NotFound("item not found")
	errFieldsRequired = apperr.Validation("name, category, price and image are required")
	errBadRating      = apperr.Validation("rating must be between 0 and 5")
	errBadStock       = apperr.Validation("quantity must be non-negative")
	errBadPrice       = apperr.Validation("price must be a positive amount")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// Get is the inventory lookup used by the cart.
func (s *Service) Get(ctx context.Context, id string) (*MenuItem, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Persistence("failed to fetch menu item", err)
	}
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Persistence("error fetching menu items", err)
	}
	return items, nil
}

// ListGrouped returns the menu grouped by category in first-seen order. The
// category description is taken from its first item.
func (s *Service) ListGrouped(ctx context.Context) ([]Category, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []Category{}
	idx := map[string]int{}
	for _, it := range items {
		i, ok := idx[it.Category]
		if !ok {
			i = len(out)
			idx[it.Category] = i
			out = append(out, Category{Category: it.Category, Description: it.Description})
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, in CreateItemRequest) (*MenuItem, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Price) == "" || in.Image == "" {
		return nil, errFieldsRequired
	}
	if !ParsePrice(in.Price).IsPositive() {
		return nil, errBadPrice
	}
	if in.Rating < 0 || in.Rating > 5 {
		return nil, errBadRating
	}
	if in.Stock < 0 {
		return nil, errBadStock
	}
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		desc = defaultDescription
	}
	m := &MenuItem{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Price:       strings.TrimSpace(in.Price),
		Rating:      in.Rating,
		Stock:       in.Stock,
		Image:       in.Image,
		Description: desc,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, apperr.Persistence("failed to add menu item", err)
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateItemRequest) error {
	if in.Price != "" && !ParsePrice(in.Price).IsPositive() {
		return errBadPrice
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		return errBadRating
	}
	if in.Stock != nil && *in.Stock < 0 {
		return errBadStock
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		if errors.Is(err, ErrNotFound) {
			return errItemNotFound
		}
		return apperr.Persistence("failed to update menu item", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Persistence("failed to delete menu item", err)
	}
	if !ok {
		return errItemNotFound
	}
	return nil
}

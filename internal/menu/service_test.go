package menu

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
)

// stubRepo is an in-memory Repository.
type stubRepo struct {
	items     map[string]*MenuItem
	order     []string
	listCalls int
	failList  bool
}

func newStubRepo() *stubRepo { return &stubRepo{items: map[string]*MenuItem{}} }

func (s *stubRepo) Create(ctx context.Context, m *MenuItem) error {
	cp := *m
	s.items[m.ID] = &cp
	s.order = append(s.order, m.ID)
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	m, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *stubRepo) List(ctx context.Context) ([]MenuItem, error) {
	s.listCalls++
	if s.failList {
		return nil, fmt.Errorf("db down")
	}
	out := []MenuItem{}
	for _, id := range s.order {
		if m, ok := s.items[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *stubRepo) Update(ctx context.Context, id string, in UpdateItemRequest) error {
	m, ok := s.items[id]
	if !ok {
		return ErrNotFound
	}
	if in.Name != "" {
		m.Name = in.Name
	}
	if in.Price != "" {
		m.Price = in.Price
	}
	if in.Rating != nil {
		m.Rating = *in.Rating
	}
	if in.Stock != nil {
		m.Stock = *in.Stock
	}
	return nil
}

func (s *stubRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func TestCreate_DefaultsAndValidation(t *testing.T) {
	svc := NewService(newStubRepo())
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateItemRequest{Name: "Dal", Category: "Mains", Price: "$8.00", Rating: 4, Stock: 3, Image: "img"})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, defaultDescription, m.Description)

	_, err = svc.Create(ctx, CreateItemRequest{Name: "Dal", Category: "Mains", Price: "$8.00"})
	assert.ErrorIs(t, err, errFieldsRequired)

	_, err = svc.Create(ctx, CreateItemRequest{Name: "Dal", Category: "Mains", Price: "free", Image: "i"})
	assert.ErrorIs(t, err, errBadPrice)

	_, err = svc.Create(ctx, CreateItemRequest{Name: "Dal", Category: "Mains", Price: "$1", Rating: 6, Image: "i"})
	assert.ErrorIs(t, err, errBadRating)

	_, err = svc.Create(ctx, CreateItemRequest{Name: "Dal", Category: "Mains", Price: "$1", Stock: -1, Image: "i"})
	assert.ErrorIs(t, err, errBadStock)
}

func TestListGrouped(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	ctx := context.Background()
	for _, it := range []CreateItemRequest{
		{Name: "Samosa", Category: "Starters", Price: "$3", Image: "i", Description: "crisp"},
		{Name: "Biryani", Category: "Mains", Price: "$12", Image: "i"},
		{Name: "Paneer Tikka", Category: "Starters", Price: "$10", Image: "i"},
	} {
		_, err := svc.Create(ctx, it)
		require.NoError(t, err)
	}

	groups, err := svc.ListGrouped(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Starters", groups[0].Category)
	assert.Equal(t, "crisp", groups[0].Description)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Mains", groups[1].Category)
}

func TestUpdateAndDelete(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo)
	ctx := context.Background()
	m, err := svc.Create(ctx, CreateItemRequest{Name: "Dal", Category: "Mains", Price: "$8", Image: "i", Stock: 2})
	require.NoError(t, err)

	stock := 9
	require.NoError(t, svc.Update(ctx, m.ID, UpdateItemRequest{Price: "$9.50", Stock: &stock}))
	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "$9.50", got.Price)
	assert.Equal(t, 9, got.Stock)
	assert.Equal(t, "Dal", got.Name)

	bad := 7.0
	assert.ErrorIs(t, svc.Update(ctx, m.ID, UpdateItemRequest{Rating: &bad}), errBadRating)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(svc.Update(ctx, "nope", UpdateItemRequest{Name: "x"})))

	require.NoError(t, svc.Delete(ctx, m.ID))
	assert.ErrorIs(t, svc.Delete(ctx, m.ID), errItemNotFound)
	_, err = svc.Get(ctx, m.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_PersistenceError(t *testing.T) {
	repo := newStubRepo()
	repo.failList = true
	_, err := NewService(repo).List(context.Background())
	assert.Equal(t, apperr.KindPersistence, apperr.KindOf(err))
}

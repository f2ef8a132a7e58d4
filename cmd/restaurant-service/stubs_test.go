package main

import (
	"context"
	"sort"
	"sync"

	"github.com/MikeMC777/restaurante-ecom/internal/booking"
	"github.com/MikeMC777/restaurante-ecom/internal/cart"
	"github.com/MikeMC777/restaurante-ecom/internal/menu"
	"github.com/MikeMC777/restaurante-ecom/internal/order"
	"github.com/MikeMC777/restaurante-ecom/internal/payment"
	"github.com/MikeMC777/restaurante-ecom/internal/receipt"
	"github.com/MikeMC777/restaurante-ecom/internal/user"
)

//
// ---------- IN-MEMORY STORE ----------
//

// memStore backs every stub repository so that checkout can see and clear
// the cart the way the Postgres transaction does.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*user.User
	items    map[string]*menu.MenuItem
	carts    map[string]map[string]int
	orders   []order.Order
	payments []payment.Payment
	receipts []receipt.Receipt
	tables   []booking.Table
	bookings []booking.Booking
}

func newMemStore() *memStore {
	return &memStore{
		users: map[string]*user.User{},
		items: map[string]*menu.MenuItem{},
		carts: map[string]map[string]int{},
	}
}

type userRepo struct{ *memStore }

func (r userRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.users {
		if x.Email == u.Email {
			return user.ErrAlreadyExist
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r userRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r userRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

type menuRepo struct{ *memStore }

func (r menuRepo) Create(ctx context.Context, m *menu.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.items[m.ID] = &cp
	return nil
}

func (r menuRepo) GetByID(ctx context.Context, id string) (*menu.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return nil, menu.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r menuRepo) List(ctx context.Context) ([]menu.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []menu.MenuItem{}
	for _, m := range r.items {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r menuRepo) Update(ctx context.Context, id string, in menu.UpdateItemRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.items[id]
	if !ok {
		return menu.ErrNotFound
	}
	if in.Name != "" {
		m.Name = in.Name
	}
	if in.Price != "" {
		m.Price = in.Price
	}
	if in.Stock != nil {
		m.Stock = *in.Stock
	}
	return nil
}

func (r menuRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

type cartRepo struct{ *memStore }

func (r cartRepo) Entries(ctx context.Context, userID string) ([]cart.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []cart.Entry{}
	for itemID, q := range r.carts[userID] {
		out = append(out, cart.Entry{UserID: userID, ItemID: itemID, Quantity: q})
	}
	return out, nil
}

func (r cartRepo) Lines(ctx context.Context, userID string) ([]cart.Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []cart.Line{}
	for itemID, q := range r.carts[userID] {
		if m, ok := r.items[itemID]; ok {
			out = append(out, cart.Line{Item: *m, Quantity: q})
		}
	}
	return out, nil
}

func (r cartRepo) Set(ctx context.Context, userID, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.carts[userID] == nil {
		r.carts[userID] = map[string]int{}
	}
	r.carts[userID][itemID] = quantity
	return nil
}

func (r cartRepo) Remove(ctx context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts[userID], itemID)
	return nil
}

func (r cartRepo) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

type orderRepo struct{ *memStore }

func (r orderRepo) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = append(r.orders, *o)
	return nil
}

func (r orderRepo) GetByID(ctx context.Context, id string) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			cp := r.orders[i]
			return &cp, nil
		}
	}
	return nil, order.ErrNotFound
}

func (r orderRepo) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []order.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r orderRepo) ListAll(ctx context.Context) ([]order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]order.Order{}, r.orders...), nil
}

func (r orderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			return nil
		}
	}
	return order.ErrNotFound
}

type paymentRepo struct{ *memStore }

func (r paymentRepo) Checkout(ctx context.Context, p *payment.Payment, newReceipt payment.ReceiptFor) (*receipt.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[p.UserID]
	if !ok {
		return nil, payment.ErrUserNotFound
	}
	rc := newReceipt(payment.Customer{Username: u.Username, Email: u.Email})
	r.payments = append(r.payments, *p)
	r.receipts = append(r.receipts, *rc)
	delete(r.carts, p.UserID)
	return rc, nil
}

func (r paymentRepo) ListAll(ctx context.Context) ([]payment.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]payment.Payment{}, r.payments...), nil
}

func (r paymentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.payments {
		if r.payments[i].ID == id {
			r.payments[i].Status = status
			return nil
		}
	}
	return payment.ErrNotFound
}

type receiptRepo struct{ *memStore }

func (r receiptRepo) ListByUser(ctx context.Context, userID string) ([]receipt.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []receipt.Receipt{}
	for _, rc := range r.receipts {
		if rc.UserID == userID {
			out = append(out, rc)
		}
	}
	return out, nil
}

type bookingRepo struct{ *memStore }

func (r bookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r bookingRepo) ListByUser(ctx context.Context, userID string) ([]booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []booking.Booking{}
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r bookingRepo) ListAll(ctx context.Context) ([]booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]booking.Booking{}, r.bookings...), nil
}

func (r bookingRepo) GetTable(ctx context.Context, number string) (*booking.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tables {
		if t.Number == number {
			cp := t
			return &cp, nil
		}
	}
	return nil, booking.ErrTableNotFound
}

func (r bookingRepo) ListTables(ctx context.Context) ([]booking.Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]booking.Table{}, r.tables...), nil
}

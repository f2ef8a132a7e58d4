package cart

import (
	"time"

	"github.com/MikeMC777/restaurante-ecom/internal/menu"
)

// Entry is one (user, item) row of a cart. There is at most one per pair.
type Entry struct {
	UserID   string    `json:"-"`
	ItemID   string    `json:"item"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"-"`
}

// Line is an entry with its menu item resolved.
type Line struct {
	Item     menu.MenuItem `json:"item"`
	Quantity int           `json:"quantity"`
}

// AddItemRequest payload of POST /api/cart/:userId.
// swagger:model AddItemRequest
type AddItemRequest struct {
	ItemID   string `json:"itemId"   example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity int    `json:"quantity" example:"2"`
}

// SetQuantityRequest payload of PUT /api/cart/:userId/:itemName.
// swagger:model SetQuantityRequest
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" example:"3"`
}

// TotalResponse is the priced view of a cart.
// swagger:model TotalResponse
type TotalResponse struct {
	Total    string `json:"total"    example:"$20.00"`
	Quantity int    `json:"quantity" example:"2"`
}

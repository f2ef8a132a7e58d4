package menu

import "time"

type MenuItem struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	// Price keeps the currency prefix as entered, e.g. "$10.00".
	Price       string    `json:"price"`
	Rating      float64   `json:"rating"`
	Stock       int       `json:"quantity"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Category groups the admin menu view.
type Category struct {
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items"`
}

// CreateItemRequest payload of creation.
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	Name        string  `json:"name"        example:"Paneer Tikka"`
	Category    string  `json:"category"    example:"Starters"`
	Price       string  `json:"price"       example:"$10.00"`
	Rating      float64 `json:"rating"      example:"4.5"`
	Stock       int     `json:"quantity"    example:"20"`
	Image       string  `json:"image"       example:"data:image/png;base64,iVBOR..."`
	Description string  `json:"description" example:"Char-grilled cottage cheese"`
}

// UpdateItemRequest payload of update. Empty or omitted fields keep their
// current value.
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    string   `json:"price"`
	Rating   *float64 `json:"rating,omitempty"`
	Stock    *int     `json:"quantity,omitempty"`
	Image    string   `json:"image,omitempty"`
}

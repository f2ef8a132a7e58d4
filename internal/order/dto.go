package order

import "github.com/shopspring/decimal"

// PlaceOrderRequest payload of order creation.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	UserID   string          `json:"userId"   example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Username string          `json:"username" example:"asha"`
	Items    []Item          `json:"items"`
	Total    decimal.Decimal `json:"total"    swaggertype:"number" example:"20.00"`
}

// UpdateStatusRequest payload of a staff status change.
// swagger:model UpdateOrderStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"Confirmed"`
}

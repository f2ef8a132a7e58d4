package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is the proof of purchase written alongside a successful payment.
// It is never updated.
type Receipt struct {
	ID           string          `json:"_id"`
	PaymentID    string          `json:"paymentId"`
	UserID       string          `json:"userId"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	Items        []Item          `json:"items"`
}

type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type Payment struct {
	ID         string          `json:"_id"`
	UserID     string          `json:"userId"`
	Billing    Billing         `json:"billing"`
	Instrument Instrument      `json:"payment"`
	Amount     decimal.Decimal `json:"amount"`
	Quantity   int             `json:"quantity"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type Billing struct {
	FullName string `json:"fullName" example:"Asha Rao"`
	Email    string `json:"email"    example:"asha@example.com"`
	Phone    string `json:"phone"    example:"+91 98450 00000"`
	Address  string `json:"address"  example:"12 MG Road, Bengaluru"`
}

// Card is the instrument as submitted. It is never stored as is.
type Card struct {
	CardNumber     string `json:"cardNumber"     example:"4111111111111111"`
	CardholderName string `json:"cardholderName" example:"ASHA RAO"`
	ExpiryDate     string `json:"expiryDate"     example:"09/27"`
	CVV            string `json:"cvv"            example:"123"`
}

// Instrument is the stored form of a Card: masked number, no CVV.
type Instrument struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
}

// Customer is the identity snapshot copied onto a receipt.
type Customer struct {
	Username string
	Email    string
}

func maskCard(number string) string {
	if len(number) < 4 {
		return "****"
	}
	return "**** **** **** " + number[len(number)-4:]
}

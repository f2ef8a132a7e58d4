package payment

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/restaurante-ecom/internal/receipt"
)

// SubmitRequest payload of POST /api/payment.
// swagger:model SubmitPaymentRequest
type SubmitRequest struct {
	UserID   string          `json:"userId"   example:"b2f5ff47-2b1e-4f22-8a96-5f3c1f2f2e7b"`
	Billing  *Billing        `json:"billing"`
	Payment  *Card           `json:"payment"`
	Amount   decimal.Decimal `json:"amount"   swaggertype:"number" example:"20.00"`
	Quantity int             `json:"quantity" example:"2"`
	Items    []receipt.Item  `json:"items"`
}

// SubmitResponse links the payment to the receipt written with it.
// swagger:model SubmitPaymentResponse
type SubmitResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PaymentID string `json:"paymentId"`
	ReceiptID string `json:"receiptId"`
}

// UpdateStatusRequest payload of PATCH /api/admin/payments/:id.
// swagger:model UpdatePaymentStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"paid"`
}

package payment

import (
	"regexp"
	"strings"

	"github.com/MikeMC777/restaurante-ecom/internal/apperr"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCardNumber = apperr.Validation("invalid card number")
	ErrInvalidExpiry     = apperr.Validation("invalid expiry date")
	ErrInvalidCVV        = apperr.Validation("invalid CVV")

	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)

	// Amounts are stored as NUMERIC(12, 2).
	maxAmount = decimal.New(1, 10)
)

func missing(field string) error {
	return apperr.Validationf("%s is required", field)
}

// Validate checks req in a fixed order and stops at the first problem:
// required fields, then card number, expiry and CVV format.
func Validate(req *SubmitRequest) error {
	switch {
	case strings.TrimSpace(req.UserID) == "":
		return missing("userId")
	case req.Billing == nil || strings.TrimSpace(req.Billing.FullName) == "":
		return missing("billing.fullName")
	case strings.TrimSpace(req.Billing.Email) == "":
		return missing("billing.email")
	case req.Payment == nil || req.Payment.CardNumber == "":
		return missing("payment.cardNumber")
	case req.Payment.ExpiryDate == "":
		return missing("payment.expiryDate")
	case req.Payment.CVV == "":
		return missing("payment.cvv")
	case !req.Amount.IsPositive():
		return apperr.Validation("amount must be greater than 0")
	case !req.Amount.Equal(req.Amount.Truncate(2)):
		return apperr.Validation("amount must have at most 2 decimal places")
	case !req.Amount.LessThan(maxAmount):
		return apperr.Validation("amount is too large")
	case req.Quantity <= 0:
		return apperr.Validation("quantity must be greater than 0")
	case len(req.Items) == 0:
		return missing("items")
	}

	if !cardNumberRe.MatchString(req.Payment.CardNumber) {
		return ErrInvalidCardNumber
	}
	if !expiryRe.MatchString(req.Payment.ExpiryDate) {
		return ErrInvalidExpiry
	}
	if !cvvRe.MatchString(req.Payment.CVV) {
		return ErrInvalidCVV
	}
	return nil
}


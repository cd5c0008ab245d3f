package billing

import (
	"time"

	"github.com/billing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Invoice represents an invoice owed by a company.
// It is the aggregate root for the payment lifecycle: PaidDate is non-nil
// exactly while the invoice is paid and records the most recent transition
// into the paid state.
type Invoice struct {
	ID       int64
	CompCode string
	Amount   decimal.Decimal
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}

// NewInvoice creates a new unpaid invoice for the given company code
func NewInvoice(compCode string, amount decimal.Decimal) (*Invoice, error) {
	if compCode == "" {
		return nil, shared.NewDomainError("INVALID_COMP_CODE", "Company code cannot be empty")
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	return &Invoice{
		CompCode: compCode,
		Amount:   amount,
		Paid:     false,
		AddDate:  time.Now(),
		PaidDate: nil,
	}, nil
}

// SetAmount updates the invoice amount
func (i *Invoice) SetAmount(amount decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	i.Amount = amount
	return nil
}

// ApplyPayment moves the invoice into or out of the paid state at the
// given time. Whether the invoice was already paid is judged by PaidDate,
// so repeated paid writes retain the original payment timestamp; any
// transition out of the paid state clears it.
func (i *Invoice) ApplyPayment(paid bool, now time.Time) {
	switch {
	case paid && i.PaidDate == nil:
		i.PaidDate = &now
	case !paid:
		i.PaidDate = nil
	}
	i.Paid = paid
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Invoice amount must be greater than zero")
	}
	return nil
}

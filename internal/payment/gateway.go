// Package payment charges customers through an external payment processor.
package payment

import "context"

const (
	// LetterPrice is the fixed charge in the smallest currency unit ($49.99).
	LetterPrice    int64 = 4999
	LetterCurrency       = "usd"

	StatusSucceeded = "succeeded"
)

type ChargeRequest struct {
	PaymentMethodID string
	Amount          int64
	Currency        string
	Metadata        map[string]string
}

type Charge struct {
	ID     string
	Status string
}

func (c *Charge) Succeeded() bool {
	return c != nil && c.Status == StatusSucceeded
}

// Gateway creates and confirms a charge in one synchronous call.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*Charge, error)
}

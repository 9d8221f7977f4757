package model

import "github.com/shopspring/decimal"

// CardType identifies the kind of payment card.
type CardType string

const (
	// CardTypeCredit represents a credit card.
	CardTypeCredit CardType = "credit"
	// CardTypeDebit represents a debit card.
	CardTypeDebit CardType = "debit"
)

// Card represents a payment card. Used tracks the sum of settled card
// expenses; nothing blocks overspend, Available may go negative.
type Card struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Limit       decimal.Decimal `json:"limit"`
	Used        decimal.Decimal `json:"used"`
	Type        CardType        `json:"type"`
	Bank        string          `json:"bank,omitempty"`
	DueDate     int             `json:"dueDate,omitempty"`     // day of month, 1-31
	ClosingDate int             `json:"closingDate,omitempty"` // day of month, 1-31
}

// Available returns the remaining spendable amount on the card.
func (c *Card) Available() decimal.Decimal {
	return c.Limit.Sub(c.Used)
}

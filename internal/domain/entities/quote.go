package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteStatus string

const (
	QuoteStatusDraft            QuoteStatus = "draft"
	QuoteStatusSent             QuoteStatus = "sent"
	QuoteStatusApproved         QuoteStatus = "approved"
	QuoteStatusRejected         QuoteStatus = "rejected"
	QuoteStatusChangesRequested QuoteStatus = "changes_requested"
)

// Valid reports enum membership only. Any status may follow any other.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusChangesRequested:
		return true
	}
	return false
}

// Quote is a priced proposal sent to a client.
//
// Subtotal, DiscountAmount, TaxAmount and Total are recomputed from the line
// items, discount and tax rate on every write.
type Quote struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	QuoteNumber    string          `json:"quote_number"`
	Title          string          `json:"title"`
	LineItems      []LineItem      `json:"line_items"`
	Discount       *Discount       `json:"discount,omitempty"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
	Status         QuoteStatus     `json:"status"`
	ValidUntil     time.Time       `json:"valid_until"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (q Quote) EntityID() string   { return q.ID }
func (q Quote) Created() time.Time { return q.CreatedAt }

package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPastDue InvoiceStatus = "past_due"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusPastDue:
		return true
	}
	return false
}

// Invoice bills a client, optionally for a specific job.
//
// Totals follow the quote rules; Balance is Total minus AmountPaid.
type Invoice struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	JobID          string          `json:"job_id,omitempty"`
	InvoiceNumber  string          `json:"invoice_number"`
	Title          string          `json:"title"`
	LineItems      []LineItem      `json:"line_items"`
	Discount       *Discount       `json:"discount,omitempty"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Balance        decimal.Decimal `json:"balance"`
	Status         InvoiceStatus   `json:"status"`
	IssueDate      time.Time       `json:"issue_date"`
	DueDate        time.Time       `json:"due_date"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (i Invoice) EntityID() string   { return i.ID }
func (i Invoice) Created() time.Time { return i.CreatedAt }

// Payable reports whether the invoice can receive a payment.
func (i Invoice) Payable() bool {
	return (i.Status == InvoiceStatusSent || i.Status == InvoiceStatusPastDue) && i.Balance.IsPositive()
}

package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoicePayment records a payment processed by the payment provider.
//
// ProviderPayloadRaw keeps the provider response as received; ProviderPayload
// is its parsed form for querying.
type InvoicePayment struct {
	ID                 string                 `json:"id"`
	InvoiceID          string                 `json:"invoice_id"`
	Amount             decimal.Decimal        `json:"amount"`
	Date               time.Time              `json:"date"`
	Status             PaymentStatus          `json:"status"`
	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func (p InvoicePayment) EntityID() string   { return p.ID }
func (p InvoicePayment) Created() time.Time { return p.Date }

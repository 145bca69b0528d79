package response

import (
	"time"

	"taskloop/internal/domain/entities"
)

type InvoiceResponse struct {
	ID             string             `json:"id"`
	ClientID       string             `json:"client_id"`
	JobID          string             `json:"job_id,omitempty"`
	InvoiceNumber  string             `json:"invoice_number"`
	Title          string             `json:"title"`
	LineItems      []LineItemResponse `json:"line_items"`
	Discount       *DiscountResponse  `json:"discount,omitempty"`
	TaxRate        float64            `json:"tax_rate"`
	Subtotal       float64            `json:"subtotal"`
	DiscountAmount float64            `json:"discount_amount"`
	TaxAmount      float64            `json:"tax_amount"`
	Total          float64            `json:"total"`
	AmountPaid     float64            `json:"amount_paid"`
	Balance        float64            `json:"balance"`
	Status         string             `json:"status"`
	IssueDate      time.Time          `json:"issue_date"`
	DueDate        time.Time          `json:"due_date"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             i.ID,
		ClientID:       i.ClientID,
		JobID:          i.JobID,
		InvoiceNumber:  i.InvoiceNumber,
		Title:          i.Title,
		LineItems:      fromLineItems(i.LineItems),
		Discount:       fromDiscount(i.Discount),
		TaxRate:        i.TaxRate.InexactFloat64(),
		Subtotal:       money(i.Subtotal),
		DiscountAmount: money(i.DiscountAmount),
		TaxAmount:      money(i.TaxAmount),
		Total:          money(i.Total),
		AmountPaid:     money(i.AmountPaid),
		Balance:        money(i.Balance),
		Status:         string(i.Status),
		IssueDate:      i.IssueDate,
		DueDate:        i.DueDate,
		Notes:          i.Notes,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

type InvoicePaymentResponse struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		ID:                 p.ID,
		InvoiceID:          p.InvoiceID,
		Amount:             money(p.Amount),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

package response

import (
	"time"

	"taskloop/internal/domain/entities"
)

type QuoteResponse struct {
	ID             string             `json:"id"`
	ClientID       string             `json:"client_id"`
	QuoteNumber    string             `json:"quote_number"`
	Title          string             `json:"title"`
	LineItems      []LineItemResponse `json:"line_items"`
	Discount       *DiscountResponse  `json:"discount,omitempty"`
	TaxRate        float64            `json:"tax_rate"`
	Subtotal       float64            `json:"subtotal"`
	DiscountAmount float64            `json:"discount_amount"`
	TaxAmount      float64            `json:"tax_amount"`
	Total          float64            `json:"total"`
	Status         string             `json:"status"`
	ValidUntil     time.Time          `json:"valid_until"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		ClientID:       q.ClientID,
		QuoteNumber:    q.QuoteNumber,
		Title:          q.Title,
		LineItems:      fromLineItems(q.LineItems),
		Discount:       fromDiscount(q.Discount),
		TaxRate:        q.TaxRate.InexactFloat64(),
		Subtotal:       money(q.Subtotal),
		DiscountAmount: money(q.DiscountAmount),
		TaxAmount:      money(q.TaxAmount),
		Total:          money(q.Total),
		Status:         string(q.Status),
		ValidUntil:     q.ValidUntil,
		Notes:          q.Notes,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

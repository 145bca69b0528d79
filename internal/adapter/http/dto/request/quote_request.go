package request

import (
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateQuoteRequest struct {
	ClientID    string            `json:"client_id" binding:"required"`
	QuoteNumber string            `json:"quote_number"`
	Title       string            `json:"title" binding:"required,min=3"`
	LineItems   []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	Discount    *DiscountRequest  `json:"discount"`
	TaxRate     float64           `json:"tax_rate" binding:"gte=0,lte=100"`
	Status      string            `json:"status" binding:"omitempty,oneof=draft sent approved rejected changes_requested"`
	ValidUntil  string            `json:"valid_until" binding:"omitempty,date"`
	Notes       string            `json:"notes"`
}

func (r CreateQuoteRequest) ToInput() (usecase.QuoteInput, error) {
	validUntil, err := parseDateOrZero(r.ValidUntil)
	if err != nil {
		return usecase.QuoteInput{}, err
	}
	return usecase.QuoteInput{
		ClientID:    r.ClientID,
		QuoteNumber: r.QuoteNumber,
		Title:       r.Title,
		LineItems:   lineItemInputs(r.LineItems),
		Discount:    r.Discount.ToDiscount(),
		TaxRate:     decimal.NewFromFloat(r.TaxRate),
		Status:      entities.QuoteStatus(r.Status),
		ValidUntil:  validUntil,
		Notes:       r.Notes,
	}, nil
}

type UpdateQuoteRequest struct {
	ClientID      *string            `json:"client_id" binding:"omitempty,min=1"`
	QuoteNumber   *string            `json:"quote_number"`
	Title         *string            `json:"title" binding:"omitempty,min=3"`
	LineItems     *[]LineItemRequest `json:"line_items" binding:"omitempty,min=1,dive"`
	Discount      *DiscountRequest   `json:"discount"`
	ClearDiscount bool               `json:"clear_discount"`
	TaxRate       *float64           `json:"tax_rate" binding:"omitempty,gte=0,lte=100"`
	Status        *string            `json:"status" binding:"omitempty,oneof=draft sent approved rejected changes_requested"`
	ValidUntil    *string            `json:"valid_until" binding:"omitempty,date"`
	Notes         *string            `json:"notes"`
}

func (r UpdateQuoteRequest) ToPatch() (usecase.QuotePatch, error) {
	validUntil, err := parseDatePtr(r.ValidUntil)
	if err != nil {
		return usecase.QuotePatch{}, err
	}
	var status *entities.QuoteStatus
	if r.Status != nil {
		s := entities.QuoteStatus(*r.Status)
		status = &s
	}
	return usecase.QuotePatch{
		ClientID:      r.ClientID,
		QuoteNumber:   r.QuoteNumber,
		Title:         r.Title,
		LineItems:     lineItemInputsPtr(r.LineItems),
		Discount:      r.Discount.ToDiscount(),
		ClearDiscount: r.ClearDiscount,
		TaxRate:       decimalPtr(r.TaxRate),
		Status:        status,
		ValidUntil:    validUntil,
		Notes:         r.Notes,
	}, nil
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent approved rejected changes_requested"`
}

package request

import (
	"encoding/json"
	"errors"
	"strings"

	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	ClientID      string            `json:"client_id" binding:"required"`
	JobID         string            `json:"job_id"`
	InvoiceNumber string            `json:"invoice_number"`
	Title         string            `json:"title" binding:"required,min=3"`
	LineItems     []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	Discount      *DiscountRequest  `json:"discount"`
	TaxRate       float64           `json:"tax_rate" binding:"gte=0,lte=100"`
	Status        string            `json:"status" binding:"omitempty,oneof=draft sent paid past_due"`
	IssueDate     string            `json:"issue_date" binding:"omitempty,date"`
	DueDate       string            `json:"due_date" binding:"omitempty,date"`
	Notes         string            `json:"notes"`
}

func (r CreateInvoiceRequest) ToInput() (usecase.InvoiceInput, error) {
	issued, err := parseDateOrZero(r.IssueDate)
	if err != nil {
		return usecase.InvoiceInput{}, err
	}
	due, err := parseDateOrZero(r.DueDate)
	if err != nil {
		return usecase.InvoiceInput{}, err
	}
	return usecase.InvoiceInput{
		ClientID:      r.ClientID,
		JobID:         r.JobID,
		InvoiceNumber: r.InvoiceNumber,
		Title:         r.Title,
		LineItems:     lineItemInputs(r.LineItems),
		Discount:      r.Discount.ToDiscount(),
		TaxRate:       decimal.NewFromFloat(r.TaxRate),
		Status:        entities.InvoiceStatus(r.Status),
		IssueDate:     issued,
		DueDate:       due,
		Notes:         r.Notes,
	}, nil
}

type UpdateInvoiceRequest struct {
	ClientID      *string            `json:"client_id" binding:"omitempty,min=1"`
	JobID         *string            `json:"job_id"`
	InvoiceNumber *string            `json:"invoice_number"`
	Title         *string            `json:"title" binding:"omitempty,min=3"`
	LineItems     *[]LineItemRequest `json:"line_items" binding:"omitempty,min=1,dive"`
	Discount      *DiscountRequest   `json:"discount"`
	ClearDiscount bool               `json:"clear_discount"`
	TaxRate       *float64           `json:"tax_rate" binding:"omitempty,gte=0,lte=100"`
	Status        *string            `json:"status" binding:"omitempty,oneof=draft sent paid past_due"`
	IssueDate     *string            `json:"issue_date" binding:"omitempty,date"`
	DueDate       *string            `json:"due_date" binding:"omitempty,date"`
	Notes         *string            `json:"notes"`
}

func (r UpdateInvoiceRequest) ToPatch() (usecase.InvoicePatch, error) {
	issued, err := parseDatePtr(r.IssueDate)
	if err != nil {
		return usecase.InvoicePatch{}, err
	}
	due, err := parseDatePtr(r.DueDate)
	if err != nil {
		return usecase.InvoicePatch{}, err
	}
	var status *entities.InvoiceStatus
	if r.Status != nil {
		s := entities.InvoiceStatus(*r.Status)
		status = &s
	}
	return usecase.InvoicePatch{
		ClientID:      r.ClientID,
		JobID:         r.JobID,
		InvoiceNumber: r.InvoiceNumber,
		Title:         r.Title,
		LineItems:     lineItemInputsPtr(r.LineItems),
		Discount:      r.Discount.ToDiscount(),
		ClearDiscount: r.ClearDiscount,
		TaxRate:       decimalPtr(r.TaxRate),
		Status:        status,
		IssueDate:     issued,
		DueDate:       due,
		Notes:         r.Notes,
	}, nil
}

type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent paid past_due"`
}

// InvoiceFromJobRequest is the optional body of POST /jobs/:id/invoice.
type InvoiceFromJobRequest struct {
	TaxRate *float64 `json:"tax_rate" binding:"omitempty,gte=0,lte=100"`
}

func (r InvoiceFromJobRequest) TaxRateOrZero() decimal.Decimal {
	if r.TaxRate == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*r.TaxRate)
}

var ErrInvalidPaymentPayload = errors.New("payment payload must be a json object")

// PaymentPayload extracts the provider payload from a payment request body.
//
// The body is either the Mercado Pago payment request itself or an envelope
// {"mp_payload": {...}}. An empty body is an empty payload.
func PaymentPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidPaymentPayload
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, ErrInvalidPaymentPayload
	}
	if wrapped, ok := envelope["mp_payload"]; ok {
		trimmed := strings.TrimSpace(string(wrapped))
		if trimmed == "" || trimmed == "null" || !strings.HasPrefix(trimmed, "{") {
			return nil, ErrInvalidPaymentPayload
		}
		return wrapped, nil
	}
	return json.RawMessage(raw), nil
}

package repository

import (
	"testing"
	"time"

	"taskloop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestJobItem_PreservesScheduleAndMoney(t *testing.T) {
	start := time.Date(2024, 5, 6, 9, 30, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	job := entities.Job{
		ID:       "j-1",
		ClientID: "c-1",
		Title:    "Lawn",
		LineItems: []entities.LineItem{
			{ID: "li-1", Description: "Mow", Quantity: decimal.RequireFromString("1.5"), UnitPrice: decimal.RequireFromString("40"), Total: decimal.RequireFromString("60")},
		},
		Total:          decimal.RequireFromString("60"),
		Status:         entities.JobStatusScheduled,
		ScheduledStart: &start,
		ScheduledEnd:   &end,
		Address:        &entities.Address{Street: "1 Elm", City: "Town"},
		CreatedAt:      start.Add(-time.Hour),
		UpdatedAt:      start.Add(-time.Hour),
	}

	it := toJobItem(job)
	if it.ScheduledStart != "2024-05-06T09:30:00Z" {
		t.Fatalf("unexpected stored start %q", it.ScheduledStart)
	}
	if it.LineItems[0].Quantity != "1.5" {
		t.Fatalf("unexpected stored quantity %q", it.LineItems[0].Quantity)
	}

	back := fromJobItem(it)
	if !back.ScheduledStart.Equal(start) || !back.ScheduledEnd.Equal(end) {
		t.Fatalf("schedule not preserved: %v - %v", back.ScheduledStart, back.ScheduledEnd)
	}
	if !back.Total.Equal(job.Total) || !back.LineItems[0].Quantity.Equal(job.LineItems[0].Quantity) {
		t.Fatalf("money not preserved: %+v", back)
	}
	if back.Address == nil || back.Address.Street != "1 Elm" {
		t.Fatalf("address not preserved: %+v", back.Address)
	}
}

func TestJobItem_UnscheduledJobHasNoDates(t *testing.T) {
	back := fromJobItem(toJobItem(entities.Job{ID: "j-2"}))
	if back.ScheduledStart != nil || back.ScheduledEnd != nil {
		t.Fatalf("expected nil schedule, got %v - %v", back.ScheduledStart, back.ScheduledEnd)
	}
	if back.Address != nil {
		t.Fatalf("expected nil address, got %+v", back.Address)
	}
}

func TestQuoteItem_Discount(t *testing.T) {
	q := entities.Quote{
		ID:       "q-1",
		Discount: &entities.Discount{Type: entities.DiscountTypeFixed, Value: decimal.RequireFromString("12.5")},
	}
	back := fromQuoteItem(toQuoteItem(q))
	if back.Discount == nil || back.Discount.Type != entities.DiscountTypeFixed || !back.Discount.Value.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("discount not preserved: %+v", back.Discount)
	}

	q.Discount = nil
	if fromQuoteItem(toQuoteItem(q)).Discount != nil {
		t.Fatalf("expected nil discount")
	}
}

func TestInvoicePaymentItem_KeepsProviderPayload(t *testing.T) {
	p := entities.InvoicePayment{
		ID:                 "pay-1",
		InvoiceID:          "inv-1",
		Amount:             decimal.RequireFromString("99.90"),
		Date:               time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: []byte(`{"id":1}`),
	}
	back := fromInvoicePaymentItem(toInvoicePaymentItem(p))
	if string(back.ProviderPayloadRaw) != `{"id":1}` {
		t.Fatalf("unexpected raw payload %s", back.ProviderPayloadRaw)
	}
	if !back.Date.Equal(p.Date) || !back.Amount.Equal(p.Amount) {
		t.Fatalf("unexpected payment %+v", back)
	}
}

func TestParseHelpers_TolerateBadInput(t *testing.T) {
	if !parseDecimal("not-a-number").IsZero() {
		t.Fatalf("expected zero decimal")
	}
	if !parseTime("").IsZero() {
		t.Fatalf("expected zero time")
	}
	if parseTimePtr("") != nil {
		t.Fatalf("expected nil time")
	}
	if formatTime(time.Time{}) != "" {
		t.Fatalf("expected empty string for zero time")
	}
}

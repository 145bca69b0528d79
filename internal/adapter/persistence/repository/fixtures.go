package repository

import (
	"time"

	"taskloop/internal/domain/entities"
	"taskloop/internal/domain/finance"

	"github.com/shopspring/decimal"
)

// Fixtures is the demo data set loaded into the memory stores when seeding is
// enabled. Dates are relative to the moment the set is built so the calendar
// always has something to show around today.
type Fixtures struct {
	Clients  []entities.Client
	Quotes   []entities.Quote
	Jobs     []entities.Job
	Requests []entities.Request
	Invoices []entities.Invoice
}

func NewFixtures(now time.Time) Fixtures {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	at := func(offsetDays, hour int) *time.Time {
		t := day.AddDate(0, 0, offsetDays).Add(time.Duration(hour) * time.Hour)
		return &t
	}
	created := day.AddDate(0, 0, -14)

	clients := []entities.Client{
		{
			ID:         "c0a80101-0000-4000-8000-000000000001",
			FirstName:  "John",
			LastName:   "Smith",
			Email:      "john.smith@example.com",
			Phone:      "(555) 123-4567",
			Address:    entities.Address{Street: "123 Main St", City: "Springfield", State: "IL", ZipCode: "62701"},
			Balance:    decimal.RequireFromString("250.00"),
			Properties: 1,
			Tags:       []string{"residential"},
			CreatedAt:  created,
			UpdatedAt:  created,
		},
		{
			ID:          "c0a80101-0000-4000-8000-000000000002",
			FirstName:   "Maria",
			LastName:    "Garcia",
			CompanyName: "Garcia Property Management",
			Email:       "maria@garciapm.example.com",
			Phone:       "(555) 987-6543",
			Address:     entities.Address{Street: "456 Oak Ave", City: "Springfield", State: "IL", ZipCode: "62704"},
			BillingAddress: &entities.Address{
				Street: "PO Box 88", City: "Springfield", State: "IL", ZipCode: "62705",
			},
			Balance:    decimal.Zero,
			Properties: 4,
			Tags:       []string{"commercial", "recurring"},
			Notes:      "Prefers morning visits.",
			CreatedAt:  created,
			UpdatedAt:  created,
		},
	}

	lawnItems := []entities.LineItem{
		{ID: "li-lawn-1", Description: "Lawn mowing", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(45)},
		{ID: "li-lawn-2", Description: "Hedge trimming", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(60)},
	}
	gutterItems := []entities.LineItem{
		{ID: "li-gutter-1", Description: "Gutter cleaning", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(75)},
	}

	quote := entities.Quote{
		ID:          "d0a80101-0000-4000-8000-000000000001",
		ClientID:    clients[1].ID,
		QuoteNumber: "Q-1001",
		Title:       "Seasonal gutter cleaning",
		Discount:    &entities.Discount{Type: entities.DiscountTypePercentage, Value: decimal.NewFromInt(10)},
		TaxRate:     decimal.NewFromInt(8),
		Status:      entities.QuoteStatusSent,
		ValidUntil:  day.AddDate(0, 0, 30),
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	qt := finance.Calculate(gutterItems, quote.Discount, quote.TaxRate)
	quote.LineItems, quote.Subtotal, quote.DiscountAmount, quote.TaxAmount, quote.Total = qt.LineItems, qt.Subtotal, qt.DiscountAmount, qt.TaxAmount, qt.Total

	jt := finance.Calculate(lawnItems, nil, decimal.Zero)
	jobs := []entities.Job{
		{
			ID:             "e0a80101-0000-4000-8000-000000000001",
			ClientID:       clients[0].ID,
			JobNumber:      "J-1001",
			Title:          "Weekly lawn care",
			LineItems:      jt.LineItems,
			Total:          jt.Subtotal,
			Status:         entities.JobStatusScheduled,
			ScheduledStart: at(1, 9),
			ScheduledEnd:   at(1, 11),
			AssignedTo:     "Alex",
			Address:        &clients[0].Address,
			CreatedAt:      created,
			UpdatedAt:      created,
		},
		{
			ID:             "e0a80101-0000-4000-8000-000000000002",
			ClientID:       clients[1].ID,
			JobNumber:      "J-1002",
			Title:          "Irrigation check",
			Status:         entities.JobStatusInProgress,
			LineItems:      []entities.LineItem{},
			Total:          decimal.Zero,
			ScheduledStart: at(0, 14),
			ScheduledEnd:   at(0, 16),
			AssignedTo:     "Sam",
			CreatedAt:      created,
			UpdatedAt:      created,
		},
	}

	requests := []entities.Request{
		{
			ID:             "f0a80101-0000-4000-8000-000000000001",
			ClientID:       clients[1].ID,
			Title:          "Tree removal estimate",
			Description:    "Dead oak near the parking lot.",
			Status:         entities.RequestStatusNew,
			Priority:       entities.RequestPriorityHigh,
			RequestedDate:  day.AddDate(0, 0, -2),
			AssessmentDate: at(2, 10),
			CreatedAt:      created,
			UpdatedAt:      created,
		},
		{
			ID:            "f0a80101-0000-4000-8000-000000000002",
			ClientID:      clients[0].ID,
			Title:         "Fence repair",
			Status:        entities.RequestStatusUnscheduled,
			Priority:      entities.RequestPriorityLow,
			RequestedDate: *at(-1, 13),
			CreatedAt:     created,
			UpdatedAt:     created,
		},
	}

	invoice := entities.Invoice{
		ID:            "b0a80101-0000-4000-8000-000000000001",
		ClientID:      clients[0].ID,
		JobID:         jobs[0].ID,
		InvoiceNumber: "INV-1001",
		Title:         "Weekly lawn care",
		TaxRate:       decimal.NewFromInt(5),
		AmountPaid:    decimal.Zero,
		Status:        entities.InvoiceStatusSent,
		IssueDate:     day.AddDate(0, 0, -7),
		DueDate:       day.AddDate(0, 0, 23),
		CreatedAt:     created,
		UpdatedAt:     created,
	}
	it := finance.Calculate(lawnItems, nil, invoice.TaxRate)
	invoice.LineItems, invoice.Subtotal, invoice.DiscountAmount, invoice.TaxAmount, invoice.Total = it.LineItems, it.Subtotal, it.DiscountAmount, it.TaxAmount, it.Total
	invoice.Balance = finance.Balance(invoice.Total, invoice.AmountPaid)

	return Fixtures{
		Clients:  clients,
		Quotes:   []entities.Quote{quote},
		Jobs:     jobs,
		Requests: requests,
		Invoices: []entities.Invoice{invoice},
	}
}

package export

import (
	"bytes"
	"testing"
	"time"

	"taskloop/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestInvoiceXLSXExporter_Export(t *testing.T) {
	issued := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	invoices := []entities.Invoice{
		{
			ID:            "inv-1",
			ClientID:      "c-1",
			InvoiceNumber: "INV-1",
			Title:         "Lawn",
			Status:        entities.InvoiceStatusSent,
			IssueDate:     issued,
			DueDate:       issued.AddDate(0, 0, 30),
			Subtotal:      decimal.NewFromInt(100),
			Total:         decimal.RequireFromString("108.25"),
			Balance:       decimal.RequireFromString("108.25"),
		},
		{ID: "inv-2", ClientID: "gone", InvoiceNumber: "INV-2", Title: "Orphan"},
	}

	var buf bytes.Buffer
	e := NewInvoiceXLSXExporter()
	if err := e.Export(&buf, invoices, map[string]string{"c-1": "Ana Lima"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("output is not a workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(invoiceSheet)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Invoice Number" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][1] != "Ana Lima" || rows[1][4] != "2024-04-01" || rows[1][9] != "108.25" {
		t.Fatalf("unexpected first row %v", rows[1])
	}
	if rows[2][1] != "" {
		t.Fatalf("orphaned invoice should have no client name, got %q", rows[2][1])
	}
	if e.FileExtension() != ".xlsx" {
		t.Fatalf("unexpected extension %s", e.FileExtension())
	}
}

// Package export renders invoices into spreadsheet downloads.
package export

import (
	"io"

	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const invoiceSheet = "Invoices"

var invoiceHeadings = []string{
	"Invoice Number", "Client", "Title", "Status", "Issue Date", "Due Date",
	"Subtotal", "Discount", "Tax", "Total", "Amount Paid", "Balance",
}

type InvoiceXLSXExporter struct{}

var _ interfaces.IInvoiceExporter = (*InvoiceXLSXExporter)(nil)

func NewInvoiceXLSXExporter() *InvoiceXLSXExporter {
	return &InvoiceXLSXExporter{}
}

func (e *InvoiceXLSXExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *InvoiceXLSXExporter) FileExtension() string {
	return ".xlsx"
}

// Export writes one header row and one row per invoice, in the given order.
func (e *InvoiceXLSXExporter) Export(w io.Writer, invoices []entities.Invoice, clientNames map[string]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", invoiceSheet); err != nil {
		return err
	}

	for i, h := range invoiceHeadings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(invoiceSheet, cell, h); err != nil {
			return err
		}
	}

	for r, inv := range invoices {
		row := []interface{}{
			inv.InvoiceNumber,
			clientNames[inv.ClientID],
			inv.Title,
			string(inv.Status),
			inv.IssueDate.Format("2006-01-02"),
			inv.DueDate.Format("2006-01-02"),
			inv.Subtotal.InexactFloat64(),
			inv.DiscountAmount.InexactFloat64(),
			inv.TaxAmount.InexactFloat64(),
			inv.Total.InexactFloat64(),
			inv.AmountPaid.InexactFloat64(),
			inv.Balance.InexactFloat64(),
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(invoiceSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(invoiceSheet, "A", "C", 24); err != nil {
		return err
	}
	return f.Write(w)
}

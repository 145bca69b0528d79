package interfaces

import (
	"io"

	"taskloop/internal/domain/entities"
)

// IInvoiceExporter renders invoices into a downloadable document.
type IInvoiceExporter interface {
	ContentType() string
	FileExtension() string
	Export(w io.Writer, invoices []entities.Invoice, clientNames map[string]string) error
}

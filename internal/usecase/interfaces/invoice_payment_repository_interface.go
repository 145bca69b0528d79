package interfaces

import (
	"context"

	"taskloop/internal/domain/entities"
)

// IInvoicePaymentRepository persists payments made against invoices.

type IInvoicePaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

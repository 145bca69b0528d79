package interfaces

import "taskloop/internal/domain/entities"

// IInvoiceRepository persists invoices. Both the memory/snapshot stores and
// DynamoDB implement it.
type IInvoiceRepository interface {
	IRepository[entities.Invoice]
}

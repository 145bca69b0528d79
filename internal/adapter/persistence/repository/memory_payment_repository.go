package repository

import (
	"context"
	"sort"

	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase/interfaces"
)

// InvoicePaymentMemoryRepository stores payments in process memory.
type InvoicePaymentMemoryRepository struct {
	store *MemoryRepository[entities.InvoicePayment]
}

var _ interfaces.IInvoicePaymentRepository = (*InvoicePaymentMemoryRepository)(nil)

func NewInvoicePaymentMemoryRepository() *InvoicePaymentMemoryRepository {
	return &InvoicePaymentMemoryRepository{store: NewMemoryRepository[entities.InvoicePayment]()}
}

func (r *InvoicePaymentMemoryRepository) Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
	return r.store.Create(ctx, p)
}

func (r *InvoicePaymentMemoryRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	all, err := r.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.InvoicePayment, 0, len(all))
	for _, p := range all {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

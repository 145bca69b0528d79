package interfaces

import "context"

// IInvoiceLocker serializes work on one key across concurrent requests.
// Payments hold it from reading the invoice until the new balance is saved.
type IInvoiceLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

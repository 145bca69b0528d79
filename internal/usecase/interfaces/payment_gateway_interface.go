package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges an invoice through an external provider.
//
// requestPayload already carries the amount and the invoice reference. The
// provider response comes back untouched and is stored on the payment.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

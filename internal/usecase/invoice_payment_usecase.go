package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"taskloop/internal/domain/entities"
	"taskloop/internal/domain/finance"
	"taskloop/internal/infrastructure/lock"
	"taskloop/internal/infrastructure/logging"
	"taskloop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrInvalidPaymentAmount           = errors.New("invalid payment amount")
	ErrInvoiceNotPayable              = errors.New("invoice not payable")
	ErrInvoicePaymentInProgress       = errors.New("another payment on this invoice is in progress")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IInvoicePaymentUseCase charges invoices through the payment gateway.
//
// An approved payment raises the invoice's amount paid and lowers its
// balance; the invoice becomes paid once nothing is owed. Client balances are
// never touched. Payments on one invoice run one at a time: the invoice lock
// is held from the payable check until the new balance is saved.

type IInvoicePaymentUseCase interface {
	RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo        interfaces.IInvoicePaymentRepository
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
	locks       interfaces.IInvoiceLocker
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

// NewInvoicePaymentUseCase builds the use case. A nil locks falls back to a
// process-local lock.
func NewInvoicePaymentUseCase(
	repo interfaces.IInvoicePaymentRepository,
	invoiceRepo interfaces.IInvoiceRepository,
	gateway interfaces.IPaymentGateway,
	locks interfaces.IInvoiceLocker,
) *InvoicePaymentUseCase {
	if locks == nil {
		locks = lock.NewKeyed()
	}
	return &InvoicePaymentUseCase{repo: repo, invoiceRepo: invoiceRepo, gateway: gateway, locks: locks}
}

func invoicePaymentLockKey(invoiceID string) string {
	return "invoices:" + invoiceID + ":payment"
}

func (u *InvoicePaymentUseCase) RecordPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.InvoicePayment, error) {
	log := logging.For("payment", "record").WithField("invoice_id", invoiceID)

	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.InvoicePayment{}, ErrInvalidInvoiceID
	}
	if len(strings.TrimSpace(string(payload))) == 0 {
		payload = json.RawMessage("{}")
	}
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		log.Warn("payload is not a json object")
		return entities.InvoicePayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.InvoicePayment{}, ErrPaymentGatewayNotConfigured
	}

	unlock, err := u.locks.Lock(ctx, invoicePaymentLockKey(invoiceID))
	if err != nil {
		logging.LogError("payment", "record", "lock invoice", map[string]string{"invoice_id": invoiceID}, err)
		return entities.InvoicePayment{}, fmt.Errorf("%w: %v", ErrInvoicePaymentInProgress, err)
	}
	defer unlock()

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if inv.ID == "" {
		return entities.InvoicePayment{}, ErrInvoiceNotFound
	}
	if !inv.Payable() {
		log.WithFields(logrus.Fields{"status": inv.Status, "balance": inv.Balance.StringFixed(2)}).Warn("invoice not payable")
		return entities.InvoicePayment{}, ErrInvoiceNotPayable
	}

	amount, err := resolvePaymentAmount(req, inv.Balance)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	// The invoice is the source of truth for amount and reference.
	req["transaction_amount"] = amount.InexactFloat64()
	req["external_reference"] = inv.ID
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	enriched, err := json.Marshal(req)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		logging.LogError("payment", "record", "payment gateway", map[string]string{"invoice_id": inv.ID}, err)
		switch {
		case isGatewayCustomerNotFound(err):
			return entities.InvoicePayment{}, ErrPaymentGatewayCustomerNotFound
		case isGatewayUnauthorized(err):
			return entities.InvoicePayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.InvoicePayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.InvoicePayment{}, err
	}

	var parsed map[string]interface{}
	if len(providerResp) > 0 {
		if err := json.Unmarshal(providerResp, &parsed); err != nil {
			log.WithError(err).Warn("provider response is not a json object")
		}
	}
	if providerID == "" {
		providerID = uuid.NewString()
	}

	p := entities.InvoicePayment{
		ID:                 providerID,
		InvoiceID:          inv.ID,
		Amount:             amount,
		Date:               now(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		inv.AmountPaid = inv.AmountPaid.Add(amount)
		inv.Balance = finance.Balance(inv.Total, inv.AmountPaid)
		if inv.Balance.IsZero() {
			inv.Status = entities.InvoiceStatusPaid
		}
		inv.UpdatedAt = now()
		if _, err := u.invoiceRepo.Update(ctx, inv); err != nil {
			logging.LogError("payment", "record", "apply payment to invoice", map[string]string{"invoice_id": inv.ID, "payment_id": created.ID}, err)
			return entities.InvoicePayment{}, err
		}
	}

	log.WithFields(logrus.Fields{
		"payment_id": created.ID,
		"status":     created.Status,
		"amount":     amount.StringFixed(2),
	}).Info("payment recorded")
	return created, nil
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}

// resolvePaymentAmount takes transaction_amount from the payload when present
// and defaults to the full balance.
func resolvePaymentAmount(req map[string]any, balance decimal.Decimal) (decimal.Decimal, error) {
	raw, ok := req["transaction_amount"]
	if !ok || raw == nil {
		return balance, nil
	}

	var amount decimal.Decimal
	switch v := raw.(type) {
	case float64:
		amount = decimal.NewFromFloat(v)
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, ErrInvalidPaymentAmount
		}
		amount = parsed
	default:
		return decimal.Zero, ErrInvalidPaymentAmount
	}

	amount = amount.Round(2)
	if !amount.IsPositive() || amount.GreaterThan(balance) {
		return decimal.Zero, ErrInvalidPaymentAmount
	}
	return amount, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	request "taskloop/internal/adapter/http/dto/request"
	response "taskloop/internal/adapter/http/dto/response"
	"taskloop/internal/infrastructure/logging"
	"taskloop/internal/usecase"
	"taskloop/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// InvoicePaymentHandler charges invoices and lists their payments.

type InvoicePaymentHandler struct {
	usecase usecase.IInvoicePaymentUseCase
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase) *InvoicePaymentHandler {
	return &InvoicePaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Pay an invoice
// @Description  The body is a Mercado Pago payment request, optionally wrapped as {"mp_payload": {...}}. Without transaction_amount the outstanding balance is charged.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "Invoice ID"
// @Success      201  {object}  response.InvoicePaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /invoices/{id}/payments [post]
func (h *InvoicePaymentHandler) CreatePayment(c *gin.Context) {
	invoiceID := c.Param("id")
	log := logging.For("payment", "handler").WithField("invoice_id", invoiceID)

	payload, err := readPaymentPayload(c)
	if err != nil {
		log.WithError(err).Warn("invalid payment payload")
		writeError(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.RecordPayment(c.Request.Context(), invoiceID, payload)
	if err != nil {
		log.WithError(err).Warn("payment failed")
		writeError(c, mapInvoicePaymentError(err))
		return
	}
	log.WithFields(logrus.Fields{
		"payment_id": created.ID,
		"status":     created.Status,
	}).Info("payment recorded")

	c.JSON(http.StatusCreated, response.FromInvoicePayment(created))
}

// ListPayments godoc
// @Summary  List an invoice's payments
// @Tags     payments
// @Produce  json
// @Param    id  path  string  true  "Invoice ID"
// @Success  200  {object}  response.ListResponse[response.InvoicePaymentResponse]
// @Failure  404  {object}  pkg.HTTPError
// @Router   /invoices/{id}/payments [get]
func (h *InvoicePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapInvoicePaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(payments, response.FromInvoicePayment))
}

func readPaymentPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.PaymentPayload(raw)
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewValidationError(map[string]string{"transaction_amount": "must be greater than 0 and not exceed the balance"})
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this payment provider context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice has no outstanding balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaymentInProgress):
		return pkg.NewDomainErrorSimple("INVOICE_PAYMENT_IN_PROGRESS", "Another payment on this invoice is in progress, retry shortly", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", err, http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

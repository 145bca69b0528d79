package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	response "taskloop/internal/adapter/http/dto/response"
	"taskloop/internal/adapter/http/handlers/mocks"
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoicePaymentHandler_CreatePayment(t *testing.T) {
	t.Run("envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		uc.EXPECT().RecordPayment(gomock.Any(), "i-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.InvoicePayment, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload: %v", err)
				}
				if m["transaction_amount"] != 25.0 {
					t.Fatalf("unexpected payload: %s", payload)
				}
				return entities.InvoicePayment{
					ID:        "p-1",
					InvoiceID: "i-1",
					Amount:    decimal.NewFromInt(25),
					Date:      time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC),
					Status:    entities.PaymentStatusApproved,
				}, nil
			})

		r := gin.New()
		r.POST("/invoices/:id/payments", h.CreatePayment)
		w := doRequest(r, http.MethodPost, "/invoices/i-1/payments", `{"mp_payload":{"transaction_amount":25}}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body response.InvoicePaymentResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.ID != "p-1" || body.Amount != 25 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("empty body charges the balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
		h := NewInvoicePaymentHandler(uc)

		uc.EXPECT().RecordPayment(gomock.Any(), "i-1", json.RawMessage("{}")).
			Return(entities.InvoicePayment{ID: "p-1"}, nil)

		r := gin.New()
		r.POST("/invoices/:id/payments", h.CreatePayment)
		w := doRequest(r, http.MethodPost, "/invoices/i-1/payments", "")

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid payload never reaches the use case", func(t *testing.T) {
		for _, body := range []string{"{", "[1,2]", `{"mp_payload":null}`} {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
			h := NewInvoicePaymentHandler(uc)

			r := gin.New()
			r.POST("/invoices/:id/payments", h.CreatePayment)
			w := doRequest(r, http.MethodPost, "/invoices/i-1/payments", body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", body, w.Code)
			}
			ctrl.Finish()
		}
	})

	t.Run("mapped errors", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{usecase.ErrInvoiceNotPayable, http.StatusConflict, "INVOICE_NOT_PAYABLE"},
			{usecase.ErrInvoiceNotFound, http.StatusNotFound, "INVOICE_NOT_FOUND"},
			{usecase.ErrInvalidPaymentAmount, http.StatusBadRequest, "VALIDATION_ERROR"},
			{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED"},
			{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND"},
			{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest, "INVALID_REQUEST"},
			{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_PROVIDER_UNAVAILABLE"},
			{usecase.ErrInvoicePaymentInProgress, http.StatusConflict, "INVOICE_PAYMENT_IN_PROGRESS"},
		}
		for _, tc := range cases {
			t.Run(tc.code, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
				h := NewInvoicePaymentHandler(uc)

				uc.EXPECT().RecordPayment(gomock.Any(), "i-1", gomock.Any()).Return(entities.InvoicePayment{}, tc.err)

				r := gin.New()
				r.POST("/invoices/:id/payments", h.CreatePayment)
				w := doRequest(r, http.MethodPost, "/invoices/i-1/payments", `{"transaction_amount":10}`)

				if w.Code != tc.status {
					t.Fatalf("expected %d, got %d", tc.status, w.Code)
				}
				if body := decodeError(t, w); body.Code != tc.code {
					t.Fatalf("expected %s, got %s", tc.code, body.Code)
				}
			})
		}
	})
}

func TestInvoicePaymentHandler_ListPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoicePaymentUseCase(ctrl)
	h := NewInvoicePaymentHandler(uc)

	uc.EXPECT().ListByInvoiceID(gomock.Any(), "i-1").Return([]entities.InvoicePayment{{ID: "p-1"}, {ID: "p-2"}}, nil)

	r := gin.New()
	r.GET("/invoices/:id/payments", h.ListPayments)
	w := doRequest(r, http.MethodGet, "/invoices/i-1/payments", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body response.ListResponse[response.InvoicePaymentResponse]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 2 {
		t.Fatalf("expected 2 payments, got %d", body.Count)
	}
}

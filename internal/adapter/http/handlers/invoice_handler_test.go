package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"taskloop/internal/adapter/http/handlers/mocks"
	"taskloop/internal/domain/entities"
	"taskloop/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestInvoiceHandler_CreateInvoiceFromJob(t *testing.T) {
	t.Run("empty body means no tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().CreateFromJob(gomock.Any(), "j-1", decimal.Zero).
			Return(entities.Invoice{ID: "i-1", JobID: "j-1", Status: entities.InvoiceStatusDraft}, nil)

		r := gin.New()
		r.POST("/jobs/:id/invoice", h.CreateInvoiceFromJob)
		w := doRequest(r, http.MethodPost, "/jobs/j-1/invoice", "")

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("tax rate from body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().CreateFromJob(gomock.Any(), "j-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, rate decimal.Decimal) (entities.Invoice, error) {
				if !rate.Equal(decimal.RequireFromString("8.25")) {
					t.Fatalf("unexpected rate: %s", rate)
				}
				return entities.Invoice{ID: "i-1"}, nil
			})

		r := gin.New()
		r.POST("/jobs/:id/invoice", h.CreateInvoiceFromJob)
		w := doRequest(r, http.MethodPost, "/jobs/j-1/invoice", `{"tax_rate":8.25}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().CreateFromJob(gomock.Any(), "j-9", gomock.Any()).Return(entities.Invoice{}, usecase.ErrJobNotFound)

		r := gin.New()
		r.POST("/jobs/:id/invoice", h.CreateInvoiceFromJob)
		w := doRequest(r, http.MethodPost, "/jobs/j-9/invoice", "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "JOB_NOT_FOUND" {
			t.Fatalf("expected JOB_NOT_FOUND, got %s", body.Code)
		}
	})
}

func TestInvoiceHandler_CreateAndStatus(t *testing.T) {
	t.Run("tax rate above 100", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		r := gin.New()
		r.POST("/invoices", h.CreateInvoice)
		w := doRequest(r, http.MethodPost, "/invoices", `{"client_id":"c-1","title":"March visit","tax_rate":120,"line_items":[{"description":"Labor","quantity":2,"unit_price":60}]}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Fields["tax_rate"] == "" {
			t.Fatalf("expected tax_rate error, got %+v", body)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.InvoiceInput) (entities.Invoice, error) {
				if in.DueDate.IsZero() || in.DueDate.Day() != 15 {
					t.Fatalf("unexpected due date: %v", in.DueDate)
				}
				return entities.Invoice{ID: "i-1", ClientID: in.ClientID}, nil
			})

		r := gin.New()
		r.POST("/invoices", h.CreateInvoice)
		w := doRequest(r, http.MethodPost, "/invoices", `{"client_id":"c-1","title":"March visit","due_date":"2026-04-15","line_items":[{"description":"Labor","quantity":2,"unit_price":60}]}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), "i-1", entities.InvoiceStatusPastDue).
			Return(entities.Invoice{ID: "i-1", Status: entities.InvoiceStatusPastDue}, nil)

		r := gin.New()
		r.PATCH("/invoices/:id/status", h.UpdateInvoiceStatus)
		w := doRequest(r, http.MethodPatch, "/invoices/i-1/status", `{"status":"past_due"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_ExportInvoices(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w io.Writer) (usecase.ExportResult, error) {
				_, _ = io.WriteString(w, "sheet")
				return usecase.ExportResult{ContentType: "application/test", FileName: "invoices-2026-10-17.xlsx"}, nil
			})

		r := gin.New()
		r.GET("/invoices/export", h.ExportInvoices)
		w := doRequest(r, http.MethodGet, "/invoices/export", "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "invoices-2026-10-17.xlsx") {
			t.Fatalf("unexpected disposition: %q", got)
		}
		if w.Header().Get("Content-Type") != "application/test" || w.Body.String() != "sheet" {
			t.Fatalf("unexpected payload: %q %q", w.Header().Get("Content-Type"), w.Body.String())
		}
	})

	t.Run("failure writes json not a partial file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)

		uc.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w io.Writer) (usecase.ExportResult, error) {
				_, _ = io.WriteString(w, "half")
				return usecase.ExportResult{}, errors.New("disk full")
			})

		r := gin.New()
		r.GET("/invoices/export", h.ExportInvoices)
		w := doRequest(r, http.MethodGet, "/invoices/export", "")

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "half") || w.Header().Get("Content-Disposition") != "" {
			t.Fatalf("partial export leaked: %s", w.Body.String())
		}
	})
}

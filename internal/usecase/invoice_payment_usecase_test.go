package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"taskloop/internal/adapter/persistence/repository"
	"taskloop/internal/domain/entities"
	"taskloop/internal/infrastructure/lock"
	mock_interfaces "taskloop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sentInvoice() entities.Invoice {
	return entities.Invoice{
		ID:            "i-1",
		ClientID:      "c-1",
		InvoiceNumber: "INV-1",
		Total:         dec("100"),
		AmountPaid:    dec("0"),
		Balance:       dec("100"),
		Status:        entities.InvoiceStatusSent,
	}
}

func TestInvoicePaymentUseCase_RecordPayment_Validations(t *testing.T) {
	ctx := context.Background()

	t.Run("empty invoice id", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil, nil)
		if _, err := uc.RecordPayment(ctx, " ", json.RawMessage(`{}`)); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("payload is not an object", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil, nil)
		if _, err := uc.RecordPayment(ctx, "i-1", json.RawMessage(`[1]`)); !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil, nil)
		if _, err := uc.RecordPayment(ctx, "i-1", nil); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, repository.NewMemoryRepository[entities.Invoice](), gateway, nil)

		if _, err := uc.RecordPayment(ctx, "i-1", nil); !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("draft invoice is not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		inv := sentInvoice()
		inv.Status = entities.InvoiceStatusDraft
		uc := NewInvoicePaymentUseCase(nil, repository.NewMemoryRepository(inv), gateway, nil)

		if _, err := uc.RecordPayment(ctx, "i-1", nil); !errors.Is(err, ErrInvoiceNotPayable) {
			t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
		}
	})

	t.Run("amount over balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, repository.NewMemoryRepository(sentInvoice()), gateway, nil)

		_, err := uc.RecordPayment(ctx, "i-1", json.RawMessage(`{"transaction_amount":100.01}`))
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(nil, repository.NewMemoryRepository(sentInvoice()), gateway, nil)

		_, err := uc.RecordPayment(ctx, "i-1", json.RawMessage(`{"transaction_amount":true}`))
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})
}

func TestInvoicePaymentUseCase_RecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("partial then full payment marks invoice paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		invoices := repository.NewMemoryRepository(sentInvoice())
		payments := repository.NewInvoicePaymentMemoryRepository()
		uc := NewInvoicePaymentUseCase(payments, invoices, gateway, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid payload: %v", err)
				}
				if req["transaction_amount"] != 30.0 || req["external_reference"] != "i-1" || req["description"] != "Invoice INV-1" {
					t.Fatalf("unexpected enriched payload: %v", req)
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			})
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-2", "approved", json.RawMessage(`{"id":"mp-2"}`), nil)

		p, err := uc.RecordPayment(ctx, "i-1", json.RawMessage(`{"transaction_amount":"30"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "mp-1" || p.Status != entities.PaymentStatusApproved || !p.Amount.Equal(dec("30")) {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if p.ProviderPayload["status"] != "approved" {
			t.Fatalf("expected parsed provider payload, got %v", p.ProviderPayload)
		}

		inv, _ := invoices.GetByID(ctx, "i-1")
		if !inv.Balance.Equal(dec("70")) || inv.Status != entities.InvoiceStatusSent {
			t.Fatalf("unexpected invoice after partial payment: %+v", inv)
		}

		p, err = uc.RecordPayment(ctx, "i-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !p.Amount.Equal(dec("70")) {
			t.Fatalf("expected remaining balance charged, got %s", p.Amount)
		}

		inv, _ = invoices.GetByID(ctx, "i-1")
		if !inv.Balance.IsZero() || !inv.AmountPaid.Equal(dec("100")) || inv.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected paid invoice, got %+v", inv)
		}

		list, err := uc.ListByInvoiceID(ctx, "i-1")
		if err != nil || len(list) != 2 {
			t.Fatalf("expected 2 payments, got %d, %v", len(list), err)
		}
	})

	t.Run("pending payment does not touch the invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		invoices := repository.NewMemoryRepository(sentInvoice())
		uc := NewInvoicePaymentUseCase(repository.NewInvoicePaymentMemoryRepository(), invoices, gateway, nil)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-3", "in_process", nil, nil)

		p, err := uc.RecordPayment(ctx, "i-1", nil)
		if err != nil || p.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending payment, got %+v, %v", p, err)
		}
		inv, _ := invoices.GetByID(ctx, "i-1")
		if !inv.Balance.Equal(dec("100")) {
			t.Fatalf("balance should be unchanged, got %s", inv.Balance)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := map[string]error{
			`{"status":400,"error":"bad_request"}`:    ErrPaymentGatewayBadRequest,
			`{"status":401,"error":"unauthorized"}`:   ErrPaymentGatewayUnauthorized,
			`{"cause":[{"code":2002}],"status":404}`: ErrPaymentGatewayCustomerNotFound,
		}
		for msg, want := range cases {
			ctrl := gomock.NewController(t)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewInvoicePaymentUseCase(repository.NewInvoicePaymentMemoryRepository(), repository.NewMemoryRepository(sentInvoice()), gateway, nil)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(msg))

			if _, err := uc.RecordPayment(ctx, "i-1", nil); !errors.Is(err, want) {
				t.Fatalf("%s: expected %v, got %v", msg, want, err)
			}
			ctrl.Finish()
		}
	})
}

type busyLocker struct{}

func (busyLocker) Lock(context.Context, string) (func(), error) {
	return nil, errors.New("lock held elsewhere")
}

func TestInvoicePaymentUseCase_RecordPayment_LockUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	invoices := repository.NewMemoryRepository(sentInvoice())
	uc := NewInvoicePaymentUseCase(repository.NewInvoicePaymentMemoryRepository(), invoices, gateway, busyLocker{})

	_, err := uc.RecordPayment(context.Background(), "i-1", nil)
	if !errors.Is(err, ErrInvoicePaymentInProgress) {
		t.Fatalf("expected ErrInvoicePaymentInProgress, got %v", err)
	}
	inv, _ := invoices.GetByID(context.Background(), "i-1")
	if !inv.AmountPaid.IsZero() {
		t.Fatalf("invoice must be untouched, got amount_paid %s", inv.AmountPaid)
	}
}

func TestInvoicePaymentUseCase_RecordPayment_Concurrent(t *testing.T) {
	ctx := context.Background()

	slowGateway := func(calls *int32) func(context.Context, json.RawMessage) (string, string, json.RawMessage, error) {
		return func(context.Context, json.RawMessage) (string, string, json.RawMessage, error) {
			n := atomic.AddInt32(calls, 1)
			time.Sleep(20 * time.Millisecond)
			return fmt.Sprintf("mp-%d", n), "approved", nil, nil
		}
	}

	payConcurrently := func(uc *InvoicePaymentUseCase, payload json.RawMessage) []error {
		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = uc.RecordPayment(ctx, "i-1", payload)
			}(i)
		}
		wg.Wait()
		return errs
	}

	t.Run("two partial payments both land on the balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		invoices := repository.NewMemoryRepository(sentInvoice())
		payments := repository.NewInvoicePaymentMemoryRepository()
		uc := NewInvoicePaymentUseCase(payments, invoices, gateway, lock.NewKeyed())

		var calls int32
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(slowGateway(&calls)).Times(2)

		for _, err := range payConcurrently(uc, json.RawMessage(`{"transaction_amount":50}`)) {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		inv, _ := invoices.GetByID(ctx, "i-1")
		if !inv.AmountPaid.Equal(dec("100")) || !inv.Balance.IsZero() || inv.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected both payments applied, got paid=%s balance=%s status=%s", inv.AmountPaid, inv.Balance, inv.Status)
		}
		list, _ := uc.ListByInvoiceID(ctx, "i-1")
		if len(list) != 2 {
			t.Fatalf("expected 2 payments, got %d", len(list))
		}
	})

	t.Run("two full payments charge the gateway once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		invoices := repository.NewMemoryRepository(sentInvoice())
		uc := NewInvoicePaymentUseCase(repository.NewInvoicePaymentMemoryRepository(), invoices, gateway, nil)

		var calls int32
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(slowGateway(&calls)).Times(1)

		var ok, notPayable int
		for _, err := range payConcurrently(uc, nil) {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrInvoiceNotPayable):
				notPayable++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if ok != 1 || notPayable != 1 {
			t.Fatalf("expected one success and one ErrInvoiceNotPayable, got %d and %d", ok, notPayable)
		}

		inv, _ := invoices.GetByID(ctx, "i-1")
		if !inv.AmountPaid.Equal(dec("100")) || inv.Status != entities.InvoiceStatusPaid {
			t.Fatalf("expected invoice paid once, got paid=%s status=%s", inv.AmountPaid, inv.Status)
		}
	})
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskloop/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository[entities.Client]()

	c := entities.Client{ID: "c-1", FirstName: "Ana", CreatedAt: time.Now().UTC()}

	t.Run("create and get", func(t *testing.T) {
		created, err := repo.Create(ctx, c)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if created.ID != "c-1" {
			t.Fatalf("expected id c-1, got %q", created.ID)
		}

		got, err := repo.GetByID(ctx, "c-1")
		if err != nil || got.FirstName != "Ana" {
			t.Fatalf("unexpected get result: %+v err=%v", got, err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := repo.Create(ctx, c)
		if !errors.Is(err, ErrDuplicateID) {
			t.Fatalf("expected ErrDuplicateID, got %v", err)
		}
	})

	t.Run("update existing", func(t *testing.T) {
		c.FirstName = "Ana Maria"
		updated, err := repo.Update(ctx, c)
		if err != nil || updated.FirstName != "Ana Maria" {
			t.Fatalf("unexpected update result: %+v err=%v", updated, err)
		}
	})

	t.Run("update missing returns zero value", func(t *testing.T) {
		updated, err := repo.Update(ctx, entities.Client{ID: "missing"})
		if err != nil || updated.ID != "" {
			t.Fatalf("expected zero client, got %+v err=%v", updated, err)
		}
	})

	t.Run("get missing returns zero value", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "missing")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero client, got %+v err=%v", got, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		removed, err := repo.Delete(ctx, "c-1")
		if err != nil || !removed {
			t.Fatalf("expected removal, got %v err=%v", removed, err)
		}
		removed, err = repo.Delete(ctx, "c-1")
		if err != nil || removed {
			t.Fatalf("expected no removal on second delete, got %v err=%v", removed, err)
		}
		list, _ := repo.List(ctx)
		if len(list) != 0 {
			t.Fatalf("expected empty list, got %d", len(list))
		}
	})
}

func TestMemoryRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(
		entities.Job{ID: "j-1"},
		entities.Job{ID: "j-2"},
	)
	_, _ = repo.Create(ctx, entities.Job{ID: "j-3"})

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"j-1", "j-2", "j-3"}
	for i, id := range want {
		if list[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, list[i].ID)
		}
	}

	// The returned slice is a copy.
	list[0].ID = "changed"
	again, _ := repo.List(ctx)
	if again[0].ID != "j-1" {
		t.Fatalf("list leaked internal storage")
	}
}

func TestInvoicePaymentMemoryRepository_ListByInvoiceID(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoicePaymentMemoryRepository()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	_, _ = repo.Create(ctx, entities.InvoicePayment{ID: "p-2", InvoiceID: "inv-1", Date: base.Add(time.Hour), Amount: decimal.NewFromInt(5)})
	_, _ = repo.Create(ctx, entities.InvoicePayment{ID: "p-1", InvoiceID: "inv-1", Date: base, Amount: decimal.NewFromInt(10)})
	_, _ = repo.Create(ctx, entities.InvoicePayment{ID: "p-3", InvoiceID: "inv-2", Date: base})

	got, err := repo.ListByInvoiceID(ctx, "inv-1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p-1" || got[1].ID != "p-2" {
		t.Fatalf("unexpected payments: %+v", got)
	}

	none, err := repo.ListByInvoiceID(ctx, "inv-9")
	if err != nil || len(none) != 0 {
		t.Fatalf("expected no payments, got %+v err=%v", none, err)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"taskloop/internal/adapter/persistence/repository"
	"taskloop/internal/domain/entities"
	mock_interfaces "taskloop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_Create(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Create(context.Background(), QuoteInput{ClientID: "c-1"})
		if !errors.Is(err, ErrInvalidQuote) {
			t.Fatalf("expected ErrInvalidQuote, got %v", err)
		}
	})

	t.Run("percentage discount over 100", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Create(context.Background(), QuoteInput{
			ClientID:  "c-1",
			Title:     "Roof",
			LineItems: []LineItemInput{line("1", "10")},
			Discount:  &entities.Discount{Type: entities.DiscountTypePercentage, Value: dec("101")},
		})
		if !errors.Is(err, ErrInvalidQuote) {
			t.Fatalf("expected ErrInvalidQuote, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Create(context.Background(), QuoteInput{ClientID: "c-1", Title: "Roof", LineItems: []LineItemInput{line("0", "10")}})
		if !errors.Is(err, ErrInvalidQuote) {
			t.Fatalf("expected ErrInvalidQuote, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.Create(context.Background(), QuoteInput{ClientID: "c-1", Title: "Roof", Status: "won"})
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("success computes totals and defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (entities.Quote, error) {
			return q, nil
		})

		q, err := uc.Create(context.Background(), QuoteInput{
			ClientID:  "c-1",
			Title:     "Landscaping",
			LineItems: []LineItemInput{line("2", "100"), line("1", "50")},
			Discount:  &entities.Discount{Type: entities.DiscountTypePercentage, Value: dec("10")},
			TaxRate:   dec("8"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Status != entities.QuoteStatusDraft {
			t.Fatalf("expected draft, got %s", q.Status)
		}
		if q.QuoteNumber == "" || q.ValidUntil.IsZero() {
			t.Fatalf("expected generated number and validity, got %+v", q)
		}
		if !q.Subtotal.Equal(dec("250")) || !q.DiscountAmount.Equal(dec("25")) || !q.TaxAmount.Equal(dec("18")) || !q.Total.Equal(dec("243")) {
			t.Fatalf("unexpected totals: sub=%s disc=%s tax=%s total=%s", q.Subtotal, q.DiscountAmount, q.TaxAmount, q.Total)
		}
		for _, it := range q.LineItems {
			if it.ID == "" || !it.Total.Equal(it.Quantity.Mul(it.UnitPrice)) {
				t.Fatalf("unexpected line item %+v", it)
			}
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	ctx := context.Background()
	quotes := repository.NewMemoryRepository[entities.Quote]()
	uc := NewQuoteUseCase(quotes, repository.NewMemoryRepository[entities.Job]())

	q, err := uc.Create(ctx, QuoteInput{
		ClientID:  "c-1",
		Title:     "Fence",
		LineItems: []LineItemInput{line("1", "200")},
		Discount:  &entities.Discount{Type: entities.DiscountTypeFixed, Value: dec("20")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("line item edit re-prices", func(t *testing.T) {
		got, err := uc.Update(ctx, q.ID, QuotePatch{LineItems: ptr([]LineItemInput{line("2", "200")})})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Total.Equal(dec("380")) {
			t.Fatalf("expected 380, got %s", got.Total)
		}
	})

	t.Run("clear discount", func(t *testing.T) {
		got, err := uc.Update(ctx, q.ID, QuotePatch{ClearDiscount: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Discount != nil || !got.Total.Equal(dec("400")) {
			t.Fatalf("expected discount cleared, got %+v", got)
		}
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		for _, s := range []entities.QuoteStatus{entities.QuoteStatusApproved, entities.QuoteStatusDraft, entities.QuoteStatusRejected} {
			got, err := uc.UpdateStatus(ctx, q.ID, s)
			if err != nil || got.Status != s {
				t.Fatalf("status %s: got %s, %v", s, got.Status, err)
			}
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		if _, err := uc.UpdateStatus(ctx, q.ID, "lost"); !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		if _, err := uc.Update(ctx, "missing", QuotePatch{}); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_ConvertToJob(t *testing.T) {
	ctx := context.Background()

	t.Run("copies the quote into a scheduled job and approves it", func(t *testing.T) {
		quotes := repository.NewMemoryRepository[entities.Quote]()
		jobs := repository.NewMemoryRepository[entities.Job]()
		uc := NewQuoteUseCase(quotes, jobs)

		q, err := uc.Create(ctx, QuoteInput{
			ClientID:  "c-1",
			Title:     "Patio",
			LineItems: []LineItemInput{line("3", "40")},
			TaxRate:   dec("10"),
			Status:    entities.QuoteStatusSent,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		job, err := uc.ConvertToJob(ctx, q.ID)
		if err != nil {
			t.Fatalf("convert: %v", err)
		}
		if job.QuoteID != q.ID || job.ClientID != "c-1" || job.Title != "Patio" {
			t.Fatalf("unexpected job: %+v", job)
		}
		if job.Status != entities.JobStatusScheduled || job.ScheduledStart != nil {
			t.Fatalf("expected unscheduled job in scheduled status, got %+v", job)
		}
		if !job.Total.Equal(dec("120")) || len(job.LineItems) != 1 {
			t.Fatalf("expected job total 120, got %s", job.Total)
		}

		stored, _ := quotes.GetByID(ctx, q.ID)
		if stored.Status != entities.QuoteStatusApproved {
			t.Fatalf("expected quote approved, got %s", stored.Status)
		}
		all, _ := jobs.List(ctx)
		if len(all) != 1 {
			t.Fatalf("expected 1 job, got %d", len(all))
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		uc := NewQuoteUseCase(repository.NewMemoryRepository[entities.Quote](), repository.NewMemoryRepository[entities.Job]())
		if _, err := uc.ConvertToJob(ctx, "missing"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("job repo error leaves quote untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
		jobs := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewQuoteUseCase(quotes, jobs)

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", ClientID: "c-1", Title: "Patio"}, nil)
		jobs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, errors.New("db"))

		if _, err := uc.ConvertToJob(ctx, "q-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

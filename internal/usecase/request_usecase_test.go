package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskloop/internal/adapter/persistence/repository"
	"taskloop/internal/domain/entities"
	mock_interfaces "taskloop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRequestUseCase_Create(t *testing.T) {
	t.Run("invalid priority", func(t *testing.T) {
		uc := NewRequestUseCase(nil)
		_, err := uc.Create(context.Background(), RequestInput{ClientID: "c-1", Title: "Tree", Priority: "urgent"})
		if !errors.Is(err, ErrInvalidRequestPriority) {
			t.Fatalf("expected ErrInvalidRequestPriority, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewRequestUseCase(nil)
		_, err := uc.Create(context.Background(), RequestInput{ClientID: "c-1", Title: "Tree", Status: "done"})
		if !errors.Is(err, ErrInvalidRequestStatus) {
			t.Fatalf("expected ErrInvalidRequestStatus, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.Request) (entities.Request, error) {
			return r, nil
		})

		r, err := uc.Create(context.Background(), RequestInput{ClientID: "c-1", Title: "Tree"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Status != entities.RequestStatusNew || r.Priority != entities.RequestPriorityMedium || r.RequestedDate.IsZero() {
			t.Fatalf("unexpected defaults: %+v", r)
		}
	})
}

func TestRequestUseCase_Update(t *testing.T) {
	ctx := context.Background()
	assessment := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	uc := NewRequestUseCase(repository.NewMemoryRepository(entities.Request{
		ID:             "r-1",
		ClientID:       "c-1",
		Title:          "Tree",
		Status:         entities.RequestStatusNew,
		Priority:       entities.RequestPriorityLow,
		AssessmentDate: &assessment,
	}))

	t.Run("clear assessment", func(t *testing.T) {
		got, err := uc.Update(ctx, "r-1", RequestPatch{ClearAssessment: true})
		if err != nil || got.AssessmentDate != nil {
			t.Fatalf("expected assessment cleared, got %+v, %v", got, err)
		}
	})

	t.Run("priority and status", func(t *testing.T) {
		got, err := uc.Update(ctx, "r-1", RequestPatch{Priority: ptr(entities.RequestPriorityHigh)})
		if err != nil || got.Priority != entities.RequestPriorityHigh {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
		got, err = uc.UpdateStatus(ctx, "r-1", entities.RequestStatusOverdue)
		if err != nil || got.Status != entities.RequestStatusOverdue {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
	})

	t.Run("empty title rejected", func(t *testing.T) {
		if _, err := uc.Update(ctx, "r-1", RequestPatch{Title: ptr(" ")}); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("unknown request", func(t *testing.T) {
		if err := uc.Delete(ctx, "missing"); !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}

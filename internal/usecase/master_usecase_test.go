package usecase

import (
	"context"
	"errors"
	"testing"

	"recoverydesk/internal/domain/entities"
	mock_interfaces "recoverydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDeriveMaster(t *testing.T) {
	inAmount := 500.0
	outAmount := 600.0
	in := entities.InwardRecord{JobID: "JOB-0001", EstimatedAmount: &inAmount}

	t.Run("no outward means pending with inward amount", func(t *testing.T) {
		m := deriveMaster(in, nil, nil)
		if m.Status != entities.StatusPending {
			t.Fatalf("expected pending, got %s", m.Status)
		}
		if m.EstimatedAmount == nil || *m.EstimatedAmount != 500.0 {
			t.Fatalf("expected inward amount, got %+v", m.EstimatedAmount)
		}
	})

	t.Run("open outward means in_progress", func(t *testing.T) {
		out := entities.OutwardRecord{JobID: "JOB-0001"}
		m := deriveMaster(in, &out, nil)
		if m.Status != entities.StatusInProgress {
			t.Fatalf("expected in_progress, got %s", m.Status)
		}
		if m.EstimatedAmount == nil || *m.EstimatedAmount != 500.0 {
			t.Fatalf("expected inward amount to survive, got %+v", m.EstimatedAmount)
		}
	})

	t.Run("outward amount overrides inward amount", func(t *testing.T) {
		out := entities.OutwardRecord{JobID: "JOB-0001", EstimatedAmount: &outAmount}
		m := deriveMaster(in, &out, nil)
		if m.EstimatedAmount == nil || *m.EstimatedAmount != 600.0 {
			t.Fatalf("expected outward amount, got %+v", m.EstimatedAmount)
		}
	})

	t.Run("completed outward wins and carries the date", func(t *testing.T) {
		out := entities.OutwardRecord{JobID: "JOB-0001", IsCompleted: true, CompletedDate: "2026-03-10"}
		m := deriveMaster(in, &out, nil)
		if m.Status != entities.StatusCompleted || m.CompletedDate != "2026-03-10" {
			t.Fatalf("unexpected master: %+v", m)
		}
	})

	t.Run("override replaces derived status", func(t *testing.T) {
		ov := entities.StatusOverride{JobID: "JOB-0001", Status: entities.StatusCompleted}
		m := deriveMaster(in, nil, &ov)
		if m.Status != entities.StatusCompleted {
			t.Fatalf("expected override to apply, got %s", m.Status)
		}
	})

	t.Run("natural completion beats the override", func(t *testing.T) {
		out := entities.OutwardRecord{JobID: "JOB-0001", IsCompleted: true, CompletedDate: "2026-03-10"}
		ov := entities.StatusOverride{JobID: "JOB-0001", Status: entities.StatusPending}
		m := deriveMaster(in, &out, &ov)
		if m.Status != entities.StatusCompleted {
			t.Fatalf("expected completed, got %s", m.Status)
		}
	})
}

func TestMasterUseCase_GetMasterRecordData(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc := NewMasterUseCase(nil)
		_, err := uc.GetMasterRecordData(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewMasterUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{}, nil)
		store.EXPECT().ReadOverrides(gomock.Any()).Return([]entities.StatusOverride{}, nil)

		_, err := uc.GetMasterRecordData(context.Background(), "JOB-0001")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("joins the three collections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewMasterUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadOverrides(gomock.Any()).Return([]entities.StatusOverride{}, nil)

		m, err := uc.GetMasterRecordData(context.Background(), "JOB-0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Status != entities.StatusInProgress {
			t.Fatalf("expected in_progress, got %s", m.Status)
		}
	})
}

func TestMasterUseCase_SetStatusOverride(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewMasterUseCase(nil)
		_, err := uc.SetStatusOverride(context.Background(), "JOB-0001", "done")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("completed job cannot be overridden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewMasterUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{
			{JobID: "JOB-0001", IsCompleted: true, CompletedDate: "2026-03-10"},
		}, nil)
		store.EXPECT().ReadOverrides(gomock.Any()).Return([]entities.StatusOverride{}, nil)

		_, err := uc.SetStatusOverride(context.Background(), "JOB-0001", entities.StatusPending)
		if !errors.Is(err, ErrJobCompleted) {
			t.Fatalf("expected ErrJobCompleted, got %v", err)
		}
	})

	t.Run("upserts the override", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewMasterUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{}, nil)
		store.EXPECT().ReadOverrides(gomock.Any()).Return([]entities.StatusOverride{
			{JobID: "JOB-0001", Status: entities.StatusInProgress},
		}, nil)
		store.EXPECT().WriteOverrides(gomock.Any(), []entities.StatusOverride{
			{JobID: "JOB-0001", Status: entities.StatusCompleted},
		}).Return(nil)

		m, err := uc.SetStatusOverride(context.Background(), "JOB-0001", entities.StatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Status != entities.StatusCompleted {
			t.Fatalf("expected completed, got %s", m.Status)
		}
	})
}

func TestMasterUseCase_ClearStatusOverride(t *testing.T) {
	t.Run("clearing an absent override is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewMasterUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{}, nil)
		store.EXPECT().ReadOverrides(gomock.Any()).Return([]entities.StatusOverride{}, nil)

		m, err := uc.ClearStatusOverride(context.Background(), "JOB-0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Status != entities.StatusPending {
			t.Fatalf("expected pending, got %s", m.Status)
		}
	})

	t.Run("removes the override and reports the derived view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewMasterUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadOverrides(gomock.Any()).Return([]entities.StatusOverride{
			{JobID: "JOB-0001", Status: entities.StatusCompleted},
		}, nil)
		store.EXPECT().WriteOverrides(gomock.Any(), []entities.StatusOverride{}).Return(nil)

		m, err := uc.ClearStatusOverride(context.Background(), "JOB-0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Status != entities.StatusInProgress {
			t.Fatalf("expected in_progress after clear, got %s", m.Status)
		}
	})
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"recoverydesk/internal/domain/entities"
	mock_interfaces "recoverydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOutwardUseCase_Create(t *testing.T) {
	valid := entities.OutwardRecord{JobID: "JOB-0001", Date: "2026-03-01", CustomerName: "Asha"}

	t.Run("missing job id", func(t *testing.T) {
		uc := NewOutwardUseCase(nil)
		_, err := uc.Create(context.Background(), entities.OutwardRecord{Date: "2026-03-01", CustomerName: "Asha"})
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("unknown delivery mode", func(t *testing.T) {
		uc := NewOutwardUseCase(nil)
		rec := valid
		rec.DeliveryMode = "Drone"
		_, err := uc.Create(context.Background(), rec)
		if !errors.Is(err, ErrInvalidDeliveryMode) {
			t.Fatalf("expected ErrInvalidDeliveryMode, got %v", err)
		}
	})

	t.Run("no inward record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOutwardUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{}, nil)

		_, err := uc.Create(context.Background(), valid)
		if !errors.Is(err, ErrInwardNotFound) {
			t.Fatalf("expected ErrInwardNotFound, got %v", err)
		}
	})

	t.Run("one outward per job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOutwardUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{{JobID: "JOB-0001"}}, nil)

		_, err := uc.Create(context.Background(), valid)
		if !errors.Is(err, ErrOutwardAlreadyExists) {
			t.Fatalf("expected ErrOutwardAlreadyExists, got %v", err)
		}
	})

	t.Run("completion fields are server owned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOutwardUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{}, nil)
		store.EXPECT().WriteOutward(gomock.Any(), gomock.Any()).Return(nil)

		rec := valid
		rec.IsCompleted = true
		rec.CompletedDate = "2026-03-02"
		res, err := uc.Create(context.Background(), rec)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsCompleted || res.CompletedDate != "" {
			t.Fatalf("expected completion fields reset, got %+v", res)
		}
		if res.ID != 1 {
			t.Fatalf("expected record id 1, got %d", res.ID)
		}
	})
}

func TestOutwardUseCase_Update(t *testing.T) {
	valid := entities.OutwardRecord{Date: "2026-03-05", CustomerName: "Asha"}

	t.Run("completed record is view-only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOutwardUseCase(store)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{
			{ID: 1, JobID: "JOB-0001", IsCompleted: true, CompletedDate: "2026-03-01"},
		}, nil)

		_, err := uc.Update(context.Background(), "JOB-0001", valid)
		if !errors.Is(err, ErrOutwardCompleted) {
			t.Fatalf("expected ErrOutwardCompleted, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOutwardUseCase(store)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{}, nil)

		_, err := uc.Update(context.Background(), "JOB-0001", valid)
		if !errors.Is(err, ErrOutwardNotFound) {
			t.Fatalf("expected ErrOutwardNotFound, got %v", err)
		}
	})
}

func TestOutwardUseCase_MarkDelivered(t *testing.T) {
	details := entities.DeliveryDetails{
		DeliveredTo:   "Asha Rao",
		DeliveryMode:  entities.DeliveryModeInPerson,
		CompletedDate: "2026-03-10",
	}

	t.Run("missing delivered to", func(t *testing.T) {
		uc := NewOutwardUseCase(nil)
		_, err := uc.MarkDelivered(context.Background(), "JOB-0001", entities.DeliveryDetails{CompletedDate: "2026-03-10"})
		if !errors.Is(err, ErrInvalidDeliveredTo) {
			t.Fatalf("expected ErrInvalidDeliveredTo, got %v", err)
		}
	})

	t.Run("invalid completed date", func(t *testing.T) {
		uc := NewOutwardUseCase(nil)
		_, err := uc.MarkDelivered(context.Background(), "JOB-0001", entities.DeliveryDetails{DeliveredTo: "Asha", CompletedDate: "10/03/2026"})
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("no outward record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOutwardUseCase(store)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{}, nil)

		_, err := uc.MarkDelivered(context.Background(), "JOB-0001", details)
		if !errors.Is(err, ErrOutwardNotFound) {
			t.Fatalf("expected ErrOutwardNotFound, got %v", err)
		}
	})

	t.Run("second delivery refused without writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOutwardUseCase(store)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{
			{ID: 1, JobID: "JOB-0001", IsCompleted: true, CompletedDate: "2026-03-01"},
		}, nil)

		_, err := uc.MarkDelivered(context.Background(), "JOB-0001", details)
		if !errors.Is(err, ErrAlreadyDelivered) {
			t.Fatalf("expected ErrAlreadyDelivered, got %v", err)
		}
	})

	t.Run("commits outward, inward mirror and override removal as one batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOutwardUseCase(store)

		amount := 600.0
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{
			{ID: 1, JobID: "JOB-0001", Date: "2026-03-01", CustomerName: "Asha"},
		}, nil)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{
			{ID: 1, JobID: "JOB-0001", Date: "2026-02-20", CustomerName: "Asha", ReceivedFrom: "Counter"},
		}, nil)
		store.EXPECT().ReadOverrides(gomock.Any()).Return([]entities.StatusOverride{
			{JobID: "JOB-0001", Status: entities.StatusInProgress},
		}, nil)
		store.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch entities.CollectionBatch) error {
				if batch.Outward == nil || batch.Inward == nil || batch.Overrides == nil {
					t.Fatalf("expected all three collections in the batch: %+v", batch)
				}
				out := (*batch.Outward)[0]
				if !out.IsCompleted || out.CompletedDate != "2026-03-10" || out.DeliveredTo != "Asha Rao" {
					t.Fatalf("outward not finalized: %+v", out)
				}
				if out.EstimatedAmount == nil || *out.EstimatedAmount != 600.0 {
					t.Fatalf("amount override not applied: %+v", out)
				}
				in := (*batch.Inward)[0]
				if !in.IsDelivered || in.DeliveryDate != "2026-03-10" {
					t.Fatalf("inward mirror missing: %+v", in)
				}
				if len(*batch.Overrides) != 0 {
					t.Fatalf("override not removed: %+v", *batch.Overrides)
				}
				return nil
			},
		)

		d := details
		d.EstimatedAmount = &amount
		res, err := uc.MarkDelivered(context.Background(), "JOB-0001", d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsCompleted || res.CompletedDate != "2026-03-10" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("nil amount keeps the stored one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewOutwardUseCase(store)

		stored := 500.0
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{
			{ID: 1, JobID: "JOB-0001", Date: "2026-03-01", CustomerName: "Asha", EstimatedAmount: &stored},
		}, nil)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{}, nil)
		store.EXPECT().ReadOverrides(gomock.Any()).Return([]entities.StatusOverride{}, nil)
		store.EXPECT().WriteBatch(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.MarkDelivered(context.Background(), "JOB-0001", details)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EstimatedAmount == nil || *res.EstimatedAmount != 500.0 {
			t.Fatalf("stored amount lost: %+v", res)
		}
	})
}

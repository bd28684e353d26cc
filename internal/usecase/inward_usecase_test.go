package usecase

import (
	"context"
	"errors"
	"testing"

	"recoverydesk/internal/domain/entities"
	mock_interfaces "recoverydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInwardUseCase_Create(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		uc := NewInwardUseCase(nil)
		_, err := uc.Create(context.Background(), entities.InwardRecord{Date: "02/01/2026", CustomerName: "Asha", ReceivedFrom: "Counter"})
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		uc := NewInwardUseCase(nil)
		_, err := uc.Create(context.Background(), entities.InwardRecord{Date: "2026-01-02", CustomerName: "   ", ReceivedFrom: "Counter"})
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("missing received from", func(t *testing.T) {
		uc := NewInwardUseCase(nil)
		_, err := uc.Create(context.Background(), entities.InwardRecord{Date: "2026-01-02", CustomerName: "Asha"})
		if !errors.Is(err, ErrInvalidReceivedFrom) {
			t.Fatalf("expected ErrInvalidReceivedFrom, got %v", err)
		}
	})

	t.Run("first record gets JOB-0001", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)

		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{}, nil)
		store.EXPECT().WriteInward(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, records []entities.InwardRecord) error {
				if len(records) != 1 {
					t.Fatalf("expected 1 record, got %d", len(records))
				}
				if records[0].JobID != "JOB-0001" || records[0].ID != 1 {
					t.Fatalf("unexpected identifiers: %+v", records[0])
				}
				return nil
			},
		)

		res, err := uc.Create(context.Background(), entities.InwardRecord{Date: "2026-01-02", CustomerName: "Asha", ReceivedFrom: "Counter"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.JobID != "JOB-0001" {
			t.Fatalf("expected JOB-0001, got %s", res.JobID)
		}
	})

	t.Run("sequence stays monotonic after import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)

		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{ID: 5, JobID: "JOB-0009"}}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{{ID: 2, JobID: "JOB-0015"}}, nil)
		store.EXPECT().WriteInward(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Create(context.Background(), entities.InwardRecord{Date: "2026-01-02", CustomerName: "Asha", ReceivedFrom: "Counter"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.JobID != "JOB-0016" {
			t.Fatalf("expected JOB-0016, got %s", res.JobID)
		}
		if res.ID != 6 {
			t.Fatalf("expected record id 6, got %d", res.ID)
		}
	})

	t.Run("delivery fields are server owned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)

		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{}, nil)
		store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{}, nil)
		store.EXPECT().WriteInward(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Create(context.Background(), entities.InwardRecord{
			Date: "2026-01-02", CustomerName: "Asha", ReceivedFrom: "Counter",
			IsDelivered: true, DeliveryDate: "2026-01-03",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsDelivered || res.DeliveryDate != "" {
			t.Fatalf("expected delivery fields reset, got %+v", res)
		}
	})
}

func TestInwardUseCase_Update(t *testing.T) {
	valid := entities.InwardRecord{Date: "2026-02-01", CustomerName: "Asha", ReceivedFrom: "Courier"}

	t.Run("invalid job id", func(t *testing.T) {
		uc := NewInwardUseCase(nil)
		_, err := uc.Update(context.Background(), "  ", valid)
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)

		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{}, nil)

		_, err := uc.Update(context.Background(), "JOB-0001", valid)
		if !errors.Is(err, ErrInwardNotFound) {
			t.Fatalf("expected ErrInwardNotFound, got %v", err)
		}
	})

	t.Run("delivered record is view-only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)

		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{
			{ID: 1, JobID: "JOB-0001", IsDelivered: true, DeliveryDate: "2026-01-10"},
		}, nil)

		_, err := uc.Update(context.Background(), "JOB-0001", valid)
		if !errors.Is(err, ErrInwardDelivered) {
			t.Fatalf("expected ErrInwardDelivered, got %v", err)
		}
	})

	t.Run("identity survives the edit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)

		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{
			{ID: 4, JobID: "JOB-0004", Date: "2026-01-01", CustomerName: "Old", ReceivedFrom: "Counter"},
		}, nil)
		store.EXPECT().WriteInward(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.Update(context.Background(), "JOB-0004", valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 4 || res.JobID != "JOB-0004" {
			t.Fatalf("identity changed: %+v", res)
		}
		if res.CustomerName != "Asha" || res.ReceivedFrom != "Courier" {
			t.Fatalf("edit not applied: %+v", res)
		}
	})
}

func TestInwardUseCase_List(t *testing.T) {
	records := []entities.InwardRecord{
		{ID: 1, JobID: "JOB-0001", CustomerName: "Asha Rao", ReceivedFrom: "Counter"},
		{ID: 2, JobID: "JOB-0002", CustomerName: "Vik Shah", ReceivedFrom: "Courier", IsDelivered: true},
	}

	t.Run("delivered hidden by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return(records, nil)

		res, err := uc.List(context.Background(), false, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].JobID != "JOB-0001" {
			t.Fatalf("unexpected list: %+v", res)
		}
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return(records, nil)

		res, err := uc.List(context.Background(), true, "VIK")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].JobID != "JOB-0002" {
			t.Fatalf("unexpected list: %+v", res)
		}
	})
}

func TestInwardUseCase_IssueEstimateNumber(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		uc := NewInwardUseCase(nil)
		_, err := uc.IssueEstimateNumber(context.Background(), " ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{}, nil)

		_, err := uc.IssueEstimateNumber(context.Background(), "JOB-0001")
		if !errors.Is(err, ErrInwardNotFound) {
			t.Fatalf("expected ErrInwardNotFound, got %v", err)
		}
	})

	t.Run("first number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadCounters(gomock.Any()).Return([]entities.Counter{}, nil)
		store.EXPECT().WriteCounters(gomock.Any(), []entities.Counter{{Name: "estimate", Value: 1}}).Return(nil)

		number, err := uc.IssueEstimateNumber(context.Background(), "JOB-0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "EST-0001" {
			t.Fatalf("expected EST-0001, got %s", number)
		}
	})

	t.Run("counter advances", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewInwardUseCase(store)
		store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{{JobID: "JOB-0001"}}, nil)
		store.EXPECT().ReadCounters(gomock.Any()).Return([]entities.Counter{{Name: "estimate", Value: 41}}, nil)
		store.EXPECT().WriteCounters(gomock.Any(), []entities.Counter{{Name: "estimate", Value: 42}}).Return(nil)

		number, err := uc.IssueEstimateNumber(context.Background(), "JOB-0001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if number != "EST-0042" {
			t.Fatalf("expected EST-0042, got %s", number)
		}
	})
}

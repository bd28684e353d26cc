package usecase

import (
	"context"
	"errors"
	"testing"

	"recoverydesk/internal/domain/entities"
	mock_interfaces "recoverydesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func reportFixture(t *testing.T, store *mock_interfaces.MockILedgerStore) {
	t.Helper()
	a1 := 500.0
	a2 := 750.0
	store.EXPECT().ReadInward(gomock.Any()).Return([]entities.InwardRecord{
		{ID: 1, JobID: "JOB-0001", Date: "2026-01-05", CustomerName: "Asha Rao", PhoneNumber: "9876500001", ReceivedFrom: "Counter", EstimatedAmount: &a1},
		{ID: 2, JobID: "JOB-0002", Date: "2026-01-20", CustomerName: "Vik Shah", PhoneNumber: "9876500002", ReceivedFrom: "Courier"},
		{ID: 3, JobID: "JOB-0003", Date: "2026-02-01", CustomerName: "Meera Nair", PhoneNumber: "9876500003", ReceivedFrom: "Counter"},
	}, nil)
	store.EXPECT().ReadOutward(gomock.Any()).Return([]entities.OutwardRecord{
		{ID: 1, JobID: "JOB-0001", Date: "2026-01-10", CustomerName: "Asha Rao", DeliveredTo: "Asha Rao", DeliveryMode: entities.DeliveryModeInPerson, IsCompleted: true, CompletedDate: "2026-01-10", EstimatedAmount: &a2},
		{ID: 2, JobID: "JOB-0002", Date: "2026-01-25", CustomerName: "Vik Shah", DeliveryMode: entities.DeliveryModeCourier},
	}, nil)
	store.EXPECT().ReadHardDisks(gomock.Any()).Return([]entities.HardDiskRecord{
		{ID: 1, JobID: "JOB-0001", DeviceInfo: "WD Blue 1TB", SerialNumber: "WCC4E1111111"},
	}, nil)
	store.EXPECT().ReadOverrides(gomock.Any()).Return([]entities.StatusOverride{}, nil)
}

func TestReportUseCase_DeliveryReports(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewReportUseCase(nil)
		_, err := uc.DeliveryReports(context.Background(), ReportFilter{Status: "done"})
		if !errors.Is(err, ErrInvalidReportFilter) {
			t.Fatalf("expected ErrInvalidReportFilter, got %v", err)
		}
	})

	t.Run("invalid date filter", func(t *testing.T) {
		uc := NewReportUseCase(nil)
		_, err := uc.DeliveryReports(context.Background(), ReportFilter{DateFrom: "05/01/2026"})
		if !errors.Is(err, ErrInvalidReportFilter) {
			t.Fatalf("expected ErrInvalidReportFilter, got %v", err)
		}
	})

	t.Run("one row per inward job with joined fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewReportUseCase(store)
		reportFixture(t, store)

		rows, err := uc.DeliveryReports(context.Background(), ReportFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}

		first := rows[0]
		if first.JobID != "JOB-0001" || first.Status != entities.StatusCompleted {
			t.Fatalf("unexpected first row: %+v", first)
		}
		if first.DeviceInfo != "WD Blue 1TB" || first.SerialNumber != "WCC4E1111111" {
			t.Fatalf("hard disk join missing: %+v", first)
		}
		if first.EstimatedAmount == nil || *first.EstimatedAmount != 750.0 {
			t.Fatalf("expected outward amount, got %+v", first.EstimatedAmount)
		}
		if first.Date != "2026-01-10" || first.InwardDate != "2026-01-05" {
			t.Fatalf("unexpected dates: %+v", first)
		}

		if rows[1].Status != entities.StatusInProgress {
			t.Fatalf("expected in_progress, got %s", rows[1].Status)
		}
		if rows[2].Status != entities.StatusPending {
			t.Fatalf("expected pending, got %s", rows[2].Status)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewReportUseCase(store)
		reportFixture(t, store)

		rows, err := uc.DeliveryReports(context.Background(), ReportFilter{Status: entities.StatusCompleted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].JobID != "JOB-0001" {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})

	t.Run("date range uses the row date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewReportUseCase(store)
		reportFixture(t, store)

		rows, err := uc.DeliveryReports(context.Background(), ReportFilter{DateFrom: "2026-01-20", DateTo: "2026-01-31"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].JobID != "JOB-0002" {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})

	t.Run("search matches device info", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewReportUseCase(store)
		reportFixture(t, store)

		rows, err := uc.DeliveryReports(context.Background(), ReportFilter{Search: "wd blue"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].JobID != "JOB-0001" {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})
}

func TestReportUseCase_Summary(t *testing.T) {
	t.Run("counts and revenue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewReportUseCase(store)
		reportFixture(t, store)

		s, err := uc.Summary(context.Background(), ReportFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalDeliveries != 3 || s.CompletedDeliveries != 1 || s.InProgressDeliveries != 1 || s.PendingDeliveries != 1 {
			t.Fatalf("unexpected summary: %+v", s)
		}
		if s.TotalRevenue != 750.0 {
			t.Fatalf("expected revenue 750, got %v", s.TotalRevenue)
		}
	})

	t.Run("date range narrows the summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockILedgerStore(ctrl)
		uc := NewReportUseCase(store)
		reportFixture(t, store)

		s, err := uc.Summary(context.Background(), ReportFilter{DateFrom: "2026-02-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalDeliveries != 1 || s.PendingDeliveries != 1 || s.TotalRevenue != 0 {
			t.Fatalf("unexpected summary: %+v", s)
		}
	})
}

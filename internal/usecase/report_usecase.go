package usecase

import (
	"context"
	"errors"
	"strings"

	"recoverydesk/internal/domain/entities"
	"recoverydesk/internal/usecase/interfaces"
)

var ErrInvalidReportFilter = errors.New("invalid report filter")

// ReportFilter narrows the delivery report. Dates are inclusive YYYY-MM-DD
// bounds; empty fields mean "no constraint".

type ReportFilter struct {
	Status       entities.RecordStatus
	DeliveryMode entities.DeliveryMode
	DateFrom     string
	DateTo       string
	Search       string
}

// IReportUseCase is the reporting aggregator: it joins inward, outward, hard
// disk and master data into read-only rows. Status and amount come from the
// derivation engine so reports can never disagree with the record views.

type IReportUseCase interface {
	DeliveryReports(ctx context.Context, filter ReportFilter) ([]entities.DeliveryReport, error)
	Summary(ctx context.Context, filter ReportFilter) (entities.ReportSummary, error)
}

type ReportUseCase struct {
	store interfaces.ILedgerStore
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store interfaces.ILedgerStore) *ReportUseCase {
	return &ReportUseCase{store: store}
}

func (u *ReportUseCase) DeliveryReports(ctx context.Context, filter ReportFilter) ([]entities.DeliveryReport, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	rows, err := u.buildRows(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]entities.DeliveryReport, 0, len(rows))
	for _, row := range rows {
		if filter.Status != "" && row.Status != filter.Status {
			continue
		}
		if filter.DeliveryMode != "" && row.DeliveryMode != filter.DeliveryMode {
			continue
		}
		if !inDateRange(row.Date, filter.DateFrom, filter.DateTo) {
			continue
		}
		if search != "" && !rowMatches(row, search) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (u *ReportUseCase) Summary(ctx context.Context, filter ReportFilter) (entities.ReportSummary, error) {
	if err := validateFilter(filter); err != nil {
		return entities.ReportSummary{}, err
	}

	rows, err := u.buildRows(ctx)
	if err != nil {
		return entities.ReportSummary{}, err
	}

	var s entities.ReportSummary
	for _, row := range rows {
		if !inDateRange(row.Date, filter.DateFrom, filter.DateTo) {
			continue
		}
		s.TotalDeliveries++
		switch row.Status {
		case entities.StatusPending:
			s.PendingDeliveries++
		case entities.StatusInProgress:
			s.InProgressDeliveries++
		case entities.StatusCompleted:
			s.CompletedDeliveries++
			if row.EstimatedAmount != nil {
				s.TotalRevenue += *row.EstimatedAmount
			}
		}
	}
	return s, nil
}

// buildRows joins the collections over one read-time snapshot: one row per
// inward job, enriched with the outward leg, hard disk metadata and the
// derived master view.
func (u *ReportUseCase) buildRows(ctx context.Context) ([]entities.DeliveryReport, error) {
	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return nil, err
	}
	outward, err := u.store.ReadOutward(ctx)
	if err != nil {
		return nil, err
	}
	hardDisks, err := u.store.ReadHardDisks(ctx)
	if err != nil {
		return nil, err
	}
	overrides, err := u.store.ReadOverrides(ctx)
	if err != nil {
		return nil, err
	}

	outwardByJob := make(map[string]*entities.OutwardRecord, len(outward))
	for i := range outward {
		outwardByJob[outward[i].JobID] = &outward[i]
	}
	hddByJob := make(map[string]*entities.HardDiskRecord, len(hardDisks))
	for i := range hardDisks {
		hddByJob[hardDisks[i].JobID] = &hardDisks[i]
	}
	overrideByJob := make(map[string]*entities.StatusOverride, len(overrides))
	for i := range overrides {
		overrideByJob[overrides[i].JobID] = &overrides[i]
	}

	rows := make([]entities.DeliveryReport, 0, len(inward))
	for _, in := range inward {
		out := outwardByJob[in.JobID]
		master := deriveMaster(in, out, overrideByJob[in.JobID])

		row := entities.DeliveryReport{
			ID:              in.ID,
			JobID:           in.JobID,
			Date:            in.Date,
			CustomerName:    in.CustomerName,
			PhoneNumber:     in.PhoneNumber,
			InwardDate:      in.Date,
			Status:          master.Status,
			EstimatedAmount: master.EstimatedAmount,
			CompletedDate:   master.CompletedDate,
		}
		if out != nil {
			row.ID = out.ID
			row.Date = out.Date
			row.DeliveredTo = out.DeliveredTo
			row.DeliveryMode = out.DeliveryMode
			row.IsCompleted = out.IsCompleted
		}
		if hdd := hddByJob[in.JobID]; hdd != nil {
			row.DeviceInfo = hdd.DeviceInfo
			row.SerialNumber = hdd.SerialNumber
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateFilter(f ReportFilter) error {
	if f.Status != "" && !f.Status.Valid() {
		return ErrInvalidReportFilter
	}
	if f.DeliveryMode != "" && !f.DeliveryMode.Valid() {
		return ErrInvalidReportFilter
	}
	if f.DateFrom != "" && !validDate(f.DateFrom) {
		return ErrInvalidReportFilter
	}
	if f.DateTo != "" && !validDate(f.DateTo) {
		return ErrInvalidReportFilter
	}
	return nil
}

// inDateRange compares YYYY-MM-DD strings; lexicographic order matches
// chronological order for this layout.
func inDateRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}

func rowMatches(row entities.DeliveryReport, search string) bool {
	return strings.Contains(strings.ToLower(row.JobID), search) ||
		strings.Contains(strings.ToLower(row.CustomerName), search) ||
		strings.Contains(strings.ToLower(row.DeliveredTo), search) ||
		strings.Contains(strings.ToLower(row.DeviceInfo), search) ||
		strings.Contains(row.PhoneNumber, search)
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"recoverydesk/internal/domain/entities"
	"recoverydesk/internal/usecase/interfaces"
)

var (
	ErrOutwardNotFound      = errors.New("outward record not found")
	ErrOutwardAlreadyExists = errors.New("outward record already exists for this job")
	ErrOutwardCompleted     = errors.New("outward record already completed")
	ErrAlreadyDelivered     = errors.New("job already delivered")
	ErrInvalidDeliveryMode  = errors.New("invalid delivery mode")
	ErrInvalidDeliveredTo   = errors.New("invalid delivered to")
)

// IOutwardUseCase exposes the delivery-leg operations, including the
// one-way delivery workflow.

type IOutwardUseCase interface {
	Create(ctx context.Context, in entities.OutwardRecord) (entities.OutwardRecord, error)
	Update(ctx context.Context, jobID string, in entities.OutwardRecord) (entities.OutwardRecord, error)
	List(ctx context.Context, search string) ([]entities.OutwardRecord, error)
	GetByJobID(ctx context.Context, jobID string) (entities.OutwardRecord, error)
	MarkDelivered(ctx context.Context, jobID string, details entities.DeliveryDetails) (entities.OutwardRecord, error)
}

type OutwardUseCase struct {
	store interfaces.ILedgerStore
}

var _ IOutwardUseCase = (*OutwardUseCase)(nil)

func NewOutwardUseCase(store interfaces.ILedgerStore) *OutwardUseCase {
	return &OutwardUseCase{store: store}
}

func (u *OutwardUseCase) Create(ctx context.Context, in entities.OutwardRecord) (entities.OutwardRecord, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	if in.JobID == "" {
		return entities.OutwardRecord{}, ErrInvalidJobID
	}
	if err := validateOutwardFields(in); err != nil {
		return entities.OutwardRecord{}, err
	}

	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return entities.OutwardRecord{}, err
	}
	if findInward(inward, in.JobID) < 0 {
		return entities.OutwardRecord{}, ErrInwardNotFound
	}

	outward, err := u.store.ReadOutward(ctx)
	if err != nil {
		return entities.OutwardRecord{}, err
	}
	// One outward record per job.
	if findOutward(outward, in.JobID) >= 0 {
		return entities.OutwardRecord{}, ErrOutwardAlreadyExists
	}

	ids := make([]int64, 0, len(outward))
	for _, r := range outward {
		ids = append(ids, r.ID)
	}
	in.ID = nextRecordID(ids)
	in.IsCompleted = false
	in.CompletedDate = ""

	if err := u.store.WriteOutward(ctx, append(outward, in)); err != nil {
		return entities.OutwardRecord{}, err
	}
	log.Printf("[outward][usecase] created job_id=%s customer=%q", in.JobID, in.CustomerName)
	return in, nil
}

func (u *OutwardUseCase) Update(ctx context.Context, jobID string, in entities.OutwardRecord) (entities.OutwardRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.OutwardRecord{}, ErrInvalidJobID
	}
	if err := validateOutwardFields(in); err != nil {
		return entities.OutwardRecord{}, err
	}

	outward, err := u.store.ReadOutward(ctx)
	if err != nil {
		return entities.OutwardRecord{}, err
	}
	idx := findOutward(outward, jobID)
	if idx < 0 {
		return entities.OutwardRecord{}, ErrOutwardNotFound
	}
	if outward[idx].IsCompleted {
		return entities.OutwardRecord{}, ErrOutwardCompleted
	}

	rec := outward[idx]
	rec.Date = in.Date
	rec.CustomerName = in.CustomerName
	rec.PhoneNumber = in.PhoneNumber
	rec.DeliveredTo = in.DeliveredTo
	rec.DeliveryMode = in.DeliveryMode
	rec.Notes = in.Notes
	rec.EstimatedAmount = in.EstimatedAmount
	outward[idx] = rec

	if err := u.store.WriteOutward(ctx, outward); err != nil {
		return entities.OutwardRecord{}, err
	}
	log.Printf("[outward][usecase] updated job_id=%s", jobID)
	return rec, nil
}

func (u *OutwardUseCase) List(ctx context.Context, search string) ([]entities.OutwardRecord, error) {
	outward, err := u.store.ReadOutward(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]entities.OutwardRecord, 0, len(outward))
	for _, r := range outward {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.JobID), search) &&
			!strings.Contains(strings.ToLower(r.CustomerName), search) &&
			!strings.Contains(strings.ToLower(r.DeliveredTo), search) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (u *OutwardUseCase) GetByJobID(ctx context.Context, jobID string) (entities.OutwardRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.OutwardRecord{}, ErrInvalidJobID
	}

	outward, err := u.store.ReadOutward(ctx)
	if err != nil {
		return entities.OutwardRecord{}, err
	}
	idx := findOutward(outward, jobID)
	if idx < 0 {
		return entities.OutwardRecord{}, ErrOutwardNotFound
	}
	return outward[idx], nil
}

// MarkDelivered finalizes the outward record and mirrors the completion onto
// the inward record, as one atomic commit. A second call for the same job
// fails with ErrAlreadyDelivered and mutates nothing.
func (u *OutwardUseCase) MarkDelivered(ctx context.Context, jobID string, details entities.DeliveryDetails) (entities.OutwardRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.OutwardRecord{}, ErrInvalidJobID
	}
	if strings.TrimSpace(details.DeliveredTo) == "" {
		return entities.OutwardRecord{}, ErrInvalidDeliveredTo
	}
	if !validDate(details.CompletedDate) {
		return entities.OutwardRecord{}, ErrInvalidDate
	}
	if details.DeliveryMode != "" && !details.DeliveryMode.Valid() {
		return entities.OutwardRecord{}, ErrInvalidDeliveryMode
	}

	outward, err := u.store.ReadOutward(ctx)
	if err != nil {
		return entities.OutwardRecord{}, err
	}
	oIdx := findOutward(outward, jobID)
	if oIdx < 0 {
		return entities.OutwardRecord{}, ErrOutwardNotFound
	}
	if outward[oIdx].IsCompleted {
		return entities.OutwardRecord{}, ErrAlreadyDelivered
	}

	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return entities.OutwardRecord{}, err
	}
	overrides, err := u.store.ReadOverrides(ctx)
	if err != nil {
		return entities.OutwardRecord{}, err
	}

	rec := outward[oIdx]
	rec.DeliveredTo = details.DeliveredTo
	if details.DeliveryMode != "" {
		rec.DeliveryMode = details.DeliveryMode
	}
	if details.Notes != "" {
		rec.Notes = details.Notes
	}
	if details.EstimatedAmount != nil {
		rec.EstimatedAmount = details.EstimatedAmount
	}
	rec.IsCompleted = true
	rec.CompletedDate = details.CompletedDate
	outward[oIdx] = rec

	batch := entities.CollectionBatch{Outward: &outward}

	if iIdx := findInward(inward, jobID); iIdx >= 0 {
		inward[iIdx].IsDelivered = true
		inward[iIdx].DeliveryDate = details.CompletedDate
		batch.Inward = &inward
	}

	// Natural completion supersedes any manual override.
	if pruned, changed := removeOverride(overrides, jobID); changed {
		batch.Overrides = &pruned
	}

	if err := u.store.WriteBatch(ctx, batch); err != nil {
		return entities.OutwardRecord{}, err
	}
	log.Printf("[outward][usecase] delivered job_id=%s delivered_to=%q completed_date=%s", jobID, rec.DeliveredTo, rec.CompletedDate)
	return rec, nil
}

func findOutward(records []entities.OutwardRecord, jobID string) int {
	for i, r := range records {
		if r.JobID == jobID {
			return i
		}
	}
	return -1
}

func removeOverride(overrides []entities.StatusOverride, jobID string) ([]entities.StatusOverride, bool) {
	out := make([]entities.StatusOverride, 0, len(overrides))
	changed := false
	for _, o := range overrides {
		if o.JobID == jobID {
			changed = true
			continue
		}
		out = append(out, o)
	}
	return out, changed
}

func validateOutwardFields(in entities.OutwardRecord) error {
	if !validDate(in.Date) {
		return ErrInvalidDate
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return ErrInvalidCustomerName
	}
	if in.DeliveryMode != "" && !in.DeliveryMode.Valid() {
		return ErrInvalidDeliveryMode
	}
	return nil
}

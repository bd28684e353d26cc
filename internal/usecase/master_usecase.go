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
	ErrJobNotFound   = errors.New("job not found")
	ErrJobCompleted  = errors.New("job already completed")
	ErrInvalidStatus = errors.New("invalid status")
)

// IMasterUseCase is the status derivation engine: the single source of truth
// for a job's status, amount and completion date, consumed by the inward and
// outward views and by the reporting aggregator.

type IMasterUseCase interface {
	GetMasterRecordData(ctx context.Context, jobID string) (entities.MasterRecord, error)
	SetStatusOverride(ctx context.Context, jobID string, status entities.RecordStatus) (entities.MasterRecord, error)
	ClearStatusOverride(ctx context.Context, jobID string) (entities.MasterRecord, error)
}

type MasterUseCase struct {
	store interfaces.ILedgerStore
}

var _ IMasterUseCase = (*MasterUseCase)(nil)

func NewMasterUseCase(store interfaces.ILedgerStore) *MasterUseCase {
	return &MasterUseCase{store: store}
}

// deriveMaster computes the authoritative per-job view from the facts alone.
//
//   - no outward record            => pending, inward amount
//   - outward exists, not complete => in_progress, outward amount if set
//   - outward complete             => completed, outward amount if set,
//     completion date from outward
//
// A manual override replaces the derived status for display, except that a
// naturally completed job always reports completed.
func deriveMaster(in entities.InwardRecord, out *entities.OutwardRecord, ov *entities.StatusOverride) entities.MasterRecord {
	m := entities.MasterRecord{
		JobID:           in.JobID,
		Status:          entities.StatusPending,
		EstimatedAmount: in.EstimatedAmount,
	}

	if out != nil {
		if out.IsCompleted {
			m.Status = entities.StatusCompleted
			m.CompletedDate = out.CompletedDate
		} else {
			m.Status = entities.StatusInProgress
		}
		if out.EstimatedAmount != nil {
			m.EstimatedAmount = out.EstimatedAmount
		}
	}

	if ov != nil && m.Status != entities.StatusCompleted {
		m.Status = ov.Status
	}
	return m
}

func (u *MasterUseCase) GetMasterRecordData(ctx context.Context, jobID string) (entities.MasterRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.MasterRecord{}, ErrInvalidJobID
	}

	inward, outward, overrides, err := u.readJoinSnapshot(ctx)
	if err != nil {
		return entities.MasterRecord{}, err
	}

	iIdx := findInward(inward, jobID)
	if iIdx < 0 {
		// A status cannot exist without an intake record.
		return entities.MasterRecord{}, ErrJobNotFound
	}

	var out *entities.OutwardRecord
	if oIdx := findOutward(outward, jobID); oIdx >= 0 {
		out = &outward[oIdx]
	}
	var ov *entities.StatusOverride
	if vIdx := findOverride(overrides, jobID); vIdx >= 0 {
		ov = &overrides[vIdx]
	}

	return deriveMaster(inward[iIdx], out, ov), nil
}

// SetStatusOverride records a manual status for a job. The override is a
// presentation-level annotation: the underlying completion flags stay
// untouched. A job that already completed naturally cannot be overridden.
func (u *MasterUseCase) SetStatusOverride(ctx context.Context, jobID string, status entities.RecordStatus) (entities.MasterRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.MasterRecord{}, ErrInvalidJobID
	}
	if !status.Valid() {
		return entities.MasterRecord{}, ErrInvalidStatus
	}

	inward, outward, overrides, err := u.readJoinSnapshot(ctx)
	if err != nil {
		return entities.MasterRecord{}, err
	}
	iIdx := findInward(inward, jobID)
	if iIdx < 0 {
		return entities.MasterRecord{}, ErrJobNotFound
	}

	var out *entities.OutwardRecord
	if oIdx := findOutward(outward, jobID); oIdx >= 0 {
		out = &outward[oIdx]
	}
	if out != nil && out.IsCompleted {
		return entities.MasterRecord{}, ErrJobCompleted
	}

	ov := entities.StatusOverride{JobID: jobID, Status: status}
	if vIdx := findOverride(overrides, jobID); vIdx >= 0 {
		overrides[vIdx] = ov
	} else {
		overrides = append(overrides, ov)
	}
	if err := u.store.WriteOverrides(ctx, overrides); err != nil {
		return entities.MasterRecord{}, err
	}
	log.Printf("[master][usecase] status override set job_id=%s status=%s", jobID, status)
	return deriveMaster(inward[iIdx], out, &ov), nil
}

// ClearStatusOverride removes the manual status for a job, if any, and
// reports the derived view. Clearing an absent override is a no-op.
func (u *MasterUseCase) ClearStatusOverride(ctx context.Context, jobID string) (entities.MasterRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.MasterRecord{}, ErrInvalidJobID
	}

	inward, outward, overrides, err := u.readJoinSnapshot(ctx)
	if err != nil {
		return entities.MasterRecord{}, err
	}
	iIdx := findInward(inward, jobID)
	if iIdx < 0 {
		return entities.MasterRecord{}, ErrJobNotFound
	}

	if pruned, changed := removeOverride(overrides, jobID); changed {
		if err := u.store.WriteOverrides(ctx, pruned); err != nil {
			return entities.MasterRecord{}, err
		}
		log.Printf("[master][usecase] status override cleared job_id=%s", jobID)
	}

	var out *entities.OutwardRecord
	if oIdx := findOutward(outward, jobID); oIdx >= 0 {
		out = &outward[oIdx]
	}
	return deriveMaster(inward[iIdx], out, nil), nil
}

// readJoinSnapshot reads the three collections the join needs, up front, so
// the derivation works over one consistent view of the store.
func (u *MasterUseCase) readJoinSnapshot(ctx context.Context) ([]entities.InwardRecord, []entities.OutwardRecord, []entities.StatusOverride, error) {
	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	outward, err := u.store.ReadOutward(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	overrides, err := u.store.ReadOverrides(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return inward, outward, overrides, nil
}

func findOverride(overrides []entities.StatusOverride, jobID string) int {
	for i, o := range overrides {
		if o.JobID == jobID {
			return i
		}
	}
	return -1
}

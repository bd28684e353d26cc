package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"recoverydesk/internal/domain/entities"
	"recoverydesk/internal/usecase/interfaces"
)

var (
	ErrInwardNotFound      = errors.New("inward record not found")
	ErrInwardDelivered     = errors.New("inward record already delivered")
	ErrInvalidJobID        = errors.New("invalid job id")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidCustomerName = errors.New("invalid customer name")
	ErrInvalidReceivedFrom = errors.New("invalid received from")
)

const dateLayout = "2006-01-02"

// IInwardUseCase exposes the intake-leg operations.
//
// Create assigns both identifiers (numeric record id and job id); callers
// never pick them. Update refuses to touch a delivered record: after the
// delivery workflow runs, the record is view-only.

type IInwardUseCase interface {
	Create(ctx context.Context, in entities.InwardRecord) (entities.InwardRecord, error)
	Update(ctx context.Context, jobID string, in entities.InwardRecord) (entities.InwardRecord, error)
	List(ctx context.Context, includeDelivered bool, search string) ([]entities.InwardRecord, error)
	GetByJobID(ctx context.Context, jobID string) (entities.InwardRecord, error)
	IssueEstimateNumber(ctx context.Context, jobID string) (string, error)
}

type InwardUseCase struct {
	store interfaces.ILedgerStore
}

var _ IInwardUseCase = (*InwardUseCase)(nil)

func NewInwardUseCase(store interfaces.ILedgerStore) *InwardUseCase {
	return &InwardUseCase{store: store}
}

func (u *InwardUseCase) Create(ctx context.Context, in entities.InwardRecord) (entities.InwardRecord, error) {
	if err := validateInwardFields(in); err != nil {
		return entities.InwardRecord{}, err
	}

	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return entities.InwardRecord{}, err
	}
	outward, err := u.store.ReadOutward(ctx)
	if err != nil {
		return entities.InwardRecord{}, err
	}

	ids := make([]int64, 0, len(inward))
	for _, r := range inward {
		ids = append(ids, r.ID)
	}
	in.ID = nextRecordID(ids)
	in.JobID = nextJobID(inward, outward)
	in.IsDelivered = false
	in.DeliveryDate = ""

	if err := u.store.WriteInward(ctx, append(inward, in)); err != nil {
		return entities.InwardRecord{}, err
	}
	log.Printf("[inward][usecase] created job_id=%s customer=%q", in.JobID, in.CustomerName)
	return in, nil
}

func (u *InwardUseCase) Update(ctx context.Context, jobID string, in entities.InwardRecord) (entities.InwardRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.InwardRecord{}, ErrInvalidJobID
	}
	if err := validateInwardFields(in); err != nil {
		return entities.InwardRecord{}, err
	}

	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return entities.InwardRecord{}, err
	}
	idx := findInward(inward, jobID)
	if idx < 0 {
		return entities.InwardRecord{}, ErrInwardNotFound
	}
	if inward[idx].IsDelivered {
		return entities.InwardRecord{}, ErrInwardDelivered
	}

	// Identity and delivery fields stay as stored; only the intake fields
	// are editable.
	rec := inward[idx]
	rec.Date = in.Date
	rec.CustomerName = in.CustomerName
	rec.PhoneNumber = in.PhoneNumber
	rec.ReceivedFrom = in.ReceivedFrom
	rec.Notes = in.Notes
	rec.EstimatedAmount = in.EstimatedAmount
	rec.EstimatedDeliveryDate = in.EstimatedDeliveryDate
	inward[idx] = rec

	if err := u.store.WriteInward(ctx, inward); err != nil {
		return entities.InwardRecord{}, err
	}
	log.Printf("[inward][usecase] updated job_id=%s", jobID)
	return rec, nil
}

func (u *InwardUseCase) List(ctx context.Context, includeDelivered bool, search string) ([]entities.InwardRecord, error) {
	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]entities.InwardRecord, 0, len(inward))
	for _, r := range inward {
		if !includeDelivered && r.IsDelivered {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.JobID), search) &&
			!strings.Contains(strings.ToLower(r.CustomerName), search) &&
			!strings.Contains(strings.ToLower(r.ReceivedFrom), search) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (u *InwardUseCase) GetByJobID(ctx context.Context, jobID string) (entities.InwardRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.InwardRecord{}, ErrInvalidJobID
	}

	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return entities.InwardRecord{}, err
	}
	idx := findInward(inward, jobID)
	if idx < 0 {
		return entities.InwardRecord{}, ErrInwardNotFound
	}
	return inward[idx], nil
}

// IssueEstimateNumber allocates the next estimate number for a job. Estimate
// numbers run in their own namespace backed by the persisted counter, so the
// sequence survives export/import.
func (u *InwardUseCase) IssueEstimateNumber(ctx context.Context, jobID string) (string, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return "", ErrInvalidJobID
	}

	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return "", err
	}
	if findInward(inward, jobID) < 0 {
		return "", ErrInwardNotFound
	}

	counters, err := u.store.ReadCounters(ctx)
	if err != nil {
		return "", err
	}

	next := int64(sequenceBase)
	idx := -1
	for i, c := range counters {
		if c.Name == estimateCounterName {
			idx = i
			if c.Value >= next {
				next = c.Value + 1
			}
		}
	}
	if idx < 0 {
		counters = append(counters, entities.Counter{Name: estimateCounterName, Value: next})
	} else {
		counters[idx].Value = next
	}

	if err := u.store.WriteCounters(ctx, counters); err != nil {
		return "", err
	}
	number := formatSequenceID(estimateNumberPrefix, next)
	log.Printf("[inward][usecase] issued estimate number job_id=%s number=%s", jobID, number)
	return number, nil
}

func findInward(records []entities.InwardRecord, jobID string) int {
	for i, r := range records {
		if r.JobID == jobID {
			return i
		}
	}
	return -1
}

func validateInwardFields(in entities.InwardRecord) error {
	if !validDate(in.Date) {
		return ErrInvalidDate
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return ErrInvalidCustomerName
	}
	if strings.TrimSpace(in.ReceivedFrom) == "" {
		return ErrInvalidReceivedFrom
	}
	if in.EstimatedDeliveryDate != "" && !validDate(in.EstimatedDeliveryDate) {
		return ErrInvalidDate
	}
	return nil
}

func validDate(s string) bool {
	if s == "" {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

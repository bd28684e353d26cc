package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"recoverydesk/internal/domain/entities"
	"recoverydesk/internal/usecase/interfaces"
)

var ErrInvalidDeviceInfo = errors.New("invalid device info")

// IHardDiskUseCase manages the device-identity metadata joined into reports.

type IHardDiskUseCase interface {
	Create(ctx context.Context, in entities.HardDiskRecord) (entities.HardDiskRecord, error)
	List(ctx context.Context, search string) ([]entities.HardDiskRecord, error)
	GetByJobID(ctx context.Context, jobID string) (entities.HardDiskRecord, error)
}

type HardDiskUseCase struct {
	store interfaces.ILedgerStore
}

var _ IHardDiskUseCase = (*HardDiskUseCase)(nil)

func NewHardDiskUseCase(store interfaces.ILedgerStore) *HardDiskUseCase {
	return &HardDiskUseCase{store: store}
}

func (u *HardDiskUseCase) Create(ctx context.Context, in entities.HardDiskRecord) (entities.HardDiskRecord, error) {
	in.JobID = strings.TrimSpace(in.JobID)
	if in.JobID == "" {
		return entities.HardDiskRecord{}, ErrInvalidJobID
	}
	if strings.TrimSpace(in.DeviceInfo) == "" {
		return entities.HardDiskRecord{}, ErrInvalidDeviceInfo
	}

	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return entities.HardDiskRecord{}, err
	}
	if findInward(inward, in.JobID) < 0 {
		return entities.HardDiskRecord{}, ErrInwardNotFound
	}

	records, err := u.store.ReadHardDisks(ctx)
	if err != nil {
		return entities.HardDiskRecord{}, err
	}

	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	in.ID = nextRecordID(ids)

	if err := u.store.WriteHardDisks(ctx, append(records, in)); err != nil {
		return entities.HardDiskRecord{}, err
	}
	log.Printf("[harddisk][usecase] created job_id=%s serial=%q", in.JobID, in.SerialNumber)
	return in, nil
}

func (u *HardDiskUseCase) List(ctx context.Context, search string) ([]entities.HardDiskRecord, error) {
	records, err := u.store.ReadHardDisks(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]entities.HardDiskRecord, 0, len(records))
	for _, r := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.JobID), search) &&
			!strings.Contains(strings.ToLower(r.DeviceInfo), search) &&
			!strings.Contains(strings.ToLower(r.SerialNumber), search) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (u *HardDiskUseCase) GetByJobID(ctx context.Context, jobID string) (entities.HardDiskRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.HardDiskRecord{}, ErrInvalidJobID
	}

	records, err := u.store.ReadHardDisks(ctx)
	if err != nil {
		return entities.HardDiskRecord{}, err
	}
	for _, r := range records {
		if r.JobID == jobID {
			return r, nil
		}
	}
	return entities.HardDiskRecord{}, ErrJobNotFound
}

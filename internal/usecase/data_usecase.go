package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"recoverydesk/internal/domain/entities"
	"recoverydesk/internal/usecase/interfaces"
)

var (
	ErrInvalidSnapshot     = errors.New("invalid snapshot document")
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrGateNotConfigured   = errors.New("authorization gate not configured")
)

// snapshotCollections are the top-level keys every snapshot document must
// carry, each holding an array.
var snapshotCollections = []string{"inward", "outward", "hardDisk", "overrides", "counters"}

// IDataUseCase implements the whole-database export/import/clear operations.
// Each one asks the authorization gate first; a denial is a clean refusal
// with no side effect, not a data error.

type IDataUseCase interface {
	ExportAll(ctx context.Context, credential string) (entities.Snapshot, error)
	ImportAll(ctx context.Context, credential string, doc json.RawMessage) error
	ClearAll(ctx context.Context, credential string) error
}

type DataUseCase struct {
	store interfaces.ILedgerStore
	gate  interfaces.IAuthorizationGate
}

var _ IDataUseCase = (*DataUseCase)(nil)

func NewDataUseCase(store interfaces.ILedgerStore, gate interfaces.IAuthorizationGate) *DataUseCase {
	return &DataUseCase{store: store, gate: gate}
}

func (u *DataUseCase) ExportAll(ctx context.Context, credential string) (entities.Snapshot, error) {
	if err := u.authorize(ctx, entities.DataActionExport, credential); err != nil {
		return entities.Snapshot{}, err
	}

	inward, err := u.store.ReadInward(ctx)
	if err != nil {
		return entities.Snapshot{}, err
	}
	outward, err := u.store.ReadOutward(ctx)
	if err != nil {
		return entities.Snapshot{}, err
	}
	hardDisks, err := u.store.ReadHardDisks(ctx)
	if err != nil {
		return entities.Snapshot{}, err
	}
	overrides, err := u.store.ReadOverrides(ctx)
	if err != nil {
		return entities.Snapshot{}, err
	}
	counters, err := u.store.ReadCounters(ctx)
	if err != nil {
		return entities.Snapshot{}, err
	}

	snap := entities.Snapshot{
		Inward:    emptyIfNil(inward),
		Outward:   emptyIfNil(outward),
		HardDisks: emptyIfNil(hardDisks),
		Overrides: emptyIfNil(overrides),
		Counters:  emptyIfNil(counters),
	}

	log.Printf("[data][usecase] exported inward=%d outward=%d harddisk=%d overrides=%d counters=%d",
		len(snap.Inward), len(snap.Outward), len(snap.HardDisks), len(snap.Overrides), len(snap.Counters))
	return snap, nil
}

// ImportAll validates the document shape, then overwrites every collection as
// one atomic batch. A malformed document leaves the store untouched; there is
// no path where some collections are replaced and others stay stale.
func (u *DataUseCase) ImportAll(ctx context.Context, credential string, doc json.RawMessage) error {
	if err := u.authorize(ctx, entities.DataActionImport, credential); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(doc, &raw); err != nil {
		return ErrInvalidSnapshot
	}
	for _, name := range snapshotCollections {
		val, ok := raw[name]
		if !ok {
			return ErrInvalidSnapshot
		}
		var shape []json.RawMessage
		if err := json.Unmarshal(val, &shape); err != nil {
			return ErrInvalidSnapshot
		}
	}

	var snap entities.Snapshot
	if err := json.Unmarshal(doc, &snap); err != nil {
		return ErrInvalidSnapshot
	}
	if snap.Inward == nil {
		snap.Inward = []entities.InwardRecord{}
	}
	if snap.Outward == nil {
		snap.Outward = []entities.OutwardRecord{}
	}
	if snap.HardDisks == nil {
		snap.HardDisks = []entities.HardDiskRecord{}
	}
	if snap.Overrides == nil {
		snap.Overrides = []entities.StatusOverride{}
	}
	if snap.Counters == nil {
		snap.Counters = []entities.Counter{}
	}

	batch := entities.CollectionBatch{
		Inward:    &snap.Inward,
		Outward:   &snap.Outward,
		HardDisks: &snap.HardDisks,
		Overrides: &snap.Overrides,
		Counters:  &snap.Counters,
	}
	if err := u.store.WriteBatch(ctx, batch); err != nil {
		return err
	}
	log.Printf("[data][usecase] imported inward=%d outward=%d harddisk=%d overrides=%d counters=%d",
		len(snap.Inward), len(snap.Outward), len(snap.HardDisks), len(snap.Overrides), len(snap.Counters))
	return nil
}

func (u *DataUseCase) ClearAll(ctx context.Context, credential string) error {
	if err := u.authorize(ctx, entities.DataActionClear, credential); err != nil {
		return err
	}
	if err := u.store.Clear(ctx); err != nil {
		return err
	}
	log.Printf("[data][usecase] cleared all collections")
	return nil
}

// emptyIfNil keeps exported collections array-shaped in JSON.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (u *DataUseCase) authorize(ctx context.Context, action entities.DataAction, credential string) error {
	if u.gate == nil {
		return ErrGateNotConfigured
	}
	granted, err := u.gate.Authorize(ctx, action, credential)
	if err != nil {
		return err
	}
	if !granted {
		log.Printf("[data][usecase] authorization denied action=%s", action)
		return ErrAuthorizationDenied
	}
	return nil
}

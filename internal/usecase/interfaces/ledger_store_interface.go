package interfaces

import (
	"context"

	"recoverydesk/internal/domain/entities"
)

//go:generate mockgen -source=ledger_store_interface.go -destination=mocks/mock_ledger_store.go -package=mock_interfaces

// ILedgerStore abstracts the persistent key-value medium holding the ledger
// collections. Each collection is stored under its own key as serialized
// text.
//
// Read contract (fail soft): an absent key or unparseable stored text yields
// an empty slice and no error; only a medium failure is an error.
//
// Write contract: every write is all-or-nothing. WriteBatch commits several
// collections as one indivisible unit so a reader observes either the
// pre-state or the post-state, never a mix.
type ILedgerStore interface {
	ReadInward(ctx context.Context) ([]entities.InwardRecord, error)
	ReadOutward(ctx context.Context) ([]entities.OutwardRecord, error)
	ReadHardDisks(ctx context.Context) ([]entities.HardDiskRecord, error)
	ReadOverrides(ctx context.Context) ([]entities.StatusOverride, error)
	ReadCounters(ctx context.Context) ([]entities.Counter, error)

	WriteInward(ctx context.Context, records []entities.InwardRecord) error
	WriteOutward(ctx context.Context, records []entities.OutwardRecord) error
	WriteHardDisks(ctx context.Context, records []entities.HardDiskRecord) error
	WriteOverrides(ctx context.Context, overrides []entities.StatusOverride) error
	WriteCounters(ctx context.Context, counters []entities.Counter) error

	WriteBatch(ctx context.Context, batch entities.CollectionBatch) error
	Clear(ctx context.Context) error
}

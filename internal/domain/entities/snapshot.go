package entities

// Counter is a named identifier sequence persisted in the "counters"
// collection. Job identifiers are derived from the records themselves; only
// the estimate-number namespace needs a stored counter.

type Counter struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Snapshot is the whole-database document produced by export and consumed by
// import. Every collection appears verbatim so that
// export -> import -> export round-trips byte for byte.

type Snapshot struct {
	Inward    []InwardRecord   `json:"inward"`
	Outward   []OutwardRecord  `json:"outward"`
	HardDisks []HardDiskRecord `json:"hardDisk"`
	Overrides []StatusOverride `json:"overrides"`
	Counters  []Counter        `json:"counters"`
}

// CollectionBatch is a multi-collection write. A nil field leaves that
// collection untouched; set fields are committed all-or-nothing.

type CollectionBatch struct {
	Inward    *[]InwardRecord
	Outward   *[]OutwardRecord
	HardDisks *[]HardDiskRecord
	Overrides *[]StatusOverride
	Counters  *[]Counter
}

// DataAction names the destructive/sensitive whole-store operations that must
// pass the authorization gate before executing.

type DataAction string

const (
	DataActionExport DataAction = "export"
	DataActionImport DataAction = "import"
	DataActionClear  DataAction = "clear"
)

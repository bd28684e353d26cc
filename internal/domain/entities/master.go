package entities

// RecordStatus is the authoritative per-job status reported by the master
// view and consumed by the inward, outward and report surfaces.
//
//   - pending:     intake exists, no outward record yet
//   - in_progress: outward record exists, not completed
//   - completed:   outward record completed by the delivery workflow

type RecordStatus string

const (
	StatusPending    RecordStatus = "pending"
	StatusInProgress RecordStatus = "in_progress"
	StatusCompleted  RecordStatus = "completed"
)

func (s RecordStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// MasterRecord is the derived per-job view. It is computed on every read from
// the inward and outward collections plus the status-override collection and
// is never persisted as a primary entity.

type MasterRecord struct {
	JobID           string       `json:"jobId"`
	Status          RecordStatus `json:"status"`
	EstimatedAmount *float64     `json:"estimatedAmount,omitempty"`
	CompletedDate   string       `json:"completedDate,omitempty"`
}

// StatusOverride is a manual, presentation-level status annotation for a job.
// It layers on top of the derived status without touching the underlying
// completion flags, and is dropped when the job completes naturally.

type StatusOverride struct {
	JobID  string       `json:"jobId"`
	Status RecordStatus `json:"status"`
}

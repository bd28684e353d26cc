package request

// StatusOverrideRequest sets a manual status for a job.
type StatusOverrideRequest struct {
	Status string `json:"status" binding:"required"`
}

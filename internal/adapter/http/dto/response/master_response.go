package response

import "recoverydesk/internal/domain/entities"

// MasterResponse is the derived per-job view returned by the status engine.
type MasterResponse struct {
	JobID           string   `json:"jobId"`
	Status          string   `json:"status"`
	EstimatedAmount *float64 `json:"estimatedAmount,omitempty"`
	CompletedDate   string   `json:"completedDate,omitempty"`
}

func FromMasterRecord(m entities.MasterRecord) MasterResponse {
	return MasterResponse{
		JobID:           m.JobID,
		Status:          string(m.Status),
		EstimatedAmount: m.EstimatedAmount,
		CompletedDate:   m.CompletedDate,
	}
}

// EstimateNumberResponse carries a freshly issued estimate number.
type EstimateNumberResponse struct {
	JobID          string `json:"jobId"`
	EstimateNumber string `json:"estimateNumber"`
}

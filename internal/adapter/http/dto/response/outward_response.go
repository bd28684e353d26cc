package response

import "recoverydesk/internal/domain/entities"

type OutwardResponse struct {
	ID              int64    `json:"id"`
	JobID           string   `json:"jobId"`
	Date            string   `json:"date"`
	CustomerName    string   `json:"customerName"`
	PhoneNumber     string   `json:"phoneNumber"`
	DeliveredTo     string   `json:"deliveredTo"`
	DeliveryMode    string   `json:"deliveryMode,omitempty"`
	Notes           string   `json:"notes"`
	EstimatedAmount *float64 `json:"estimatedAmount,omitempty"`
	IsCompleted     bool     `json:"isCompleted"`
	CompletedDate   string   `json:"completedDate,omitempty"`
}

func FromOutwardRecord(r entities.OutwardRecord) OutwardResponse {
	return OutwardResponse{
		ID:              r.ID,
		JobID:           r.JobID,
		Date:            r.Date,
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.PhoneNumber,
		DeliveredTo:     r.DeliveredTo,
		DeliveryMode:    string(r.DeliveryMode),
		Notes:           r.Notes,
		EstimatedAmount: r.EstimatedAmount,
		IsCompleted:     r.IsCompleted,
		CompletedDate:   r.CompletedDate,
	}
}

func FromOutwardRecords(records []entities.OutwardRecord) []OutwardResponse {
	out := make([]OutwardResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromOutwardRecord(r))
	}
	return out
}

package response

import "recoverydesk/internal/domain/entities"

type InwardResponse struct {
	ID                    int64    `json:"id"`
	JobID                 string   `json:"jobId"`
	Date                  string   `json:"date"`
	CustomerName          string   `json:"customerName"`
	PhoneNumber           string   `json:"phoneNumber"`
	ReceivedFrom          string   `json:"receivedFrom"`
	Notes                 string   `json:"notes"`
	EstimatedAmount       *float64 `json:"estimatedAmount,omitempty"`
	EstimatedDeliveryDate string   `json:"estimatedDeliveryDate,omitempty"`
	IsDelivered           bool     `json:"isDelivered"`
	DeliveryDate          string   `json:"deliveryDate,omitempty"`
}

func FromInwardRecord(r entities.InwardRecord) InwardResponse {
	return InwardResponse{
		ID:                    r.ID,
		JobID:                 r.JobID,
		Date:                  r.Date,
		CustomerName:          r.CustomerName,
		PhoneNumber:           r.PhoneNumber,
		ReceivedFrom:          r.ReceivedFrom,
		Notes:                 r.Notes,
		EstimatedAmount:       r.EstimatedAmount,
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
		IsDelivered:           r.IsDelivered,
		DeliveryDate:          r.DeliveryDate,
	}
}

func FromInwardRecords(records []entities.InwardRecord) []InwardResponse {
	out := make([]InwardResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromInwardRecord(r))
	}
	return out
}

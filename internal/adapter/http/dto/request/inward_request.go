package request

import "recoverydesk/internal/domain/entities"

// InwardRequest is the payload for creating or editing an inward record.
// Identity (id, jobId) and delivery fields are server-owned and ignored if
// supplied.
type InwardRequest struct {
	Date                  string   `json:"date" binding:"required"`
	CustomerName          string   `json:"customerName" binding:"required"`
	PhoneNumber           string   `json:"phoneNumber"`
	ReceivedFrom          string   `json:"receivedFrom" binding:"required"`
	Notes                 string   `json:"notes"`
	EstimatedAmount       *float64 `json:"estimatedAmount"`
	EstimatedDeliveryDate string   `json:"estimatedDeliveryDate"`
}

func (r InwardRequest) ToEntity() entities.InwardRecord {
	return entities.InwardRecord{
		Date:                  r.Date,
		CustomerName:          r.CustomerName,
		PhoneNumber:           r.PhoneNumber,
		ReceivedFrom:          r.ReceivedFrom,
		Notes:                 r.Notes,
		EstimatedAmount:       r.EstimatedAmount,
		EstimatedDeliveryDate: r.EstimatedDeliveryDate,
	}
}

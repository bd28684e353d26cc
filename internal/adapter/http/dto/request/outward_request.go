package request

import "recoverydesk/internal/domain/entities"

// OutwardRequest creates or edits the delivery leg of a job. Completion
// fields are owned by the delivery workflow and ignored if supplied.
type OutwardRequest struct {
	JobID           string   `json:"jobId"`
	Date            string   `json:"date" binding:"required"`
	CustomerName    string   `json:"customerName" binding:"required"`
	PhoneNumber     string   `json:"phoneNumber"`
	DeliveredTo     string   `json:"deliveredTo"`
	DeliveryMode    string   `json:"deliveryMode"`
	Notes           string   `json:"notes"`
	EstimatedAmount *float64 `json:"estimatedAmount"`
}

func (r OutwardRequest) ToEntity() entities.OutwardRecord {
	return entities.OutwardRecord{
		JobID:           r.JobID,
		Date:            r.Date,
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.PhoneNumber,
		DeliveredTo:     r.DeliveredTo,
		DeliveryMode:    entities.DeliveryMode(r.DeliveryMode),
		Notes:           r.Notes,
		EstimatedAmount: r.EstimatedAmount,
	}
}

// DeliveryRequest carries the delivery details captured when a job is marked
// delivered.
type DeliveryRequest struct {
	DeliveredTo     string   `json:"deliveredTo" binding:"required"`
	DeliveryMode    string   `json:"deliveryMode"`
	CompletedDate   string   `json:"completedDate" binding:"required"`
	Notes           string   `json:"notes"`
	EstimatedAmount *float64 `json:"estimatedAmount"`
}

func (r DeliveryRequest) ToDetails() entities.DeliveryDetails {
	return entities.DeliveryDetails{
		DeliveredTo:     r.DeliveredTo,
		DeliveryMode:    entities.DeliveryMode(r.DeliveryMode),
		CompletedDate:   r.CompletedDate,
		Notes:           r.Notes,
		EstimatedAmount: r.EstimatedAmount,
	}
}

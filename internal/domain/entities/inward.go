package entities

// InwardRecord is a device received for service (the intake leg of a job).
//
// Storage model (DynamoDB collection item):
//   - stored inside the "inward" collection, serialized as one JSON array
//
// Identity:
//   - ID is a numeric sequence local to the collection.
//   - JobID is the business key shared with the outward leg and hard disk
//     records ("JOB-" + zero-padded sequence). Unique among inward records.
//
// Once IsDelivered is set by the delivery workflow the record is closed to
// ordinary edits; only the workflow writes the delivery fields.

type InwardRecord struct {
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

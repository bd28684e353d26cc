package entities

// DeliveryReport is a read-only report row joining inward, outward, hard disk
// and master data for one job. It is produced by the reporting aggregator and
// never written back.

type DeliveryReport struct {
	ID              int64        `json:"id"`
	JobID           string       `json:"jobId"`
	Date            string       `json:"date"`
	DeliveredTo     string       `json:"deliveredTo"`
	DeliveryMode    DeliveryMode `json:"deliveryMode,omitempty"`
	CustomerName    string       `json:"customerName"`
	PhoneNumber     string       `json:"phoneNumber"`
	IsCompleted     bool         `json:"isCompleted"`
	CompletedDate   string       `json:"completedDate,omitempty"`
	InwardDate      string       `json:"inwardDate,omitempty"`
	DeviceInfo      string       `json:"deviceInfo,omitempty"`
	SerialNumber    string       `json:"serialNumber,omitempty"`
	EstimatedAmount *float64     `json:"estimatedAmount,omitempty"`
	Status          RecordStatus `json:"status"`
}

// ReportSummary aggregates a date-filtered set of report rows. Revenue counts
// only completed jobs with a known amount.

type ReportSummary struct {
	TotalDeliveries      int     `json:"totalDeliveries"`
	CompletedDeliveries  int     `json:"completedDeliveries"`
	InProgressDeliveries int     `json:"inProgressDeliveries"`
	PendingDeliveries    int     `json:"pendingDeliveries"`
	TotalRevenue         float64 `json:"totalRevenue"`
}

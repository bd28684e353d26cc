package response

import "recoverydesk/internal/domain/entities"

type DeliveryReportResponse struct {
	ID              int64    `json:"id"`
	JobID           string   `json:"jobId"`
	Date            string   `json:"date"`
	DeliveredTo     string   `json:"deliveredTo,omitempty"`
	DeliveryMode    string   `json:"deliveryMode,omitempty"`
	CustomerName    string   `json:"customerName"`
	PhoneNumber     string   `json:"phoneNumber"`
	IsCompleted     bool     `json:"isCompleted"`
	CompletedDate   string   `json:"completedDate,omitempty"`
	InwardDate      string   `json:"inwardDate,omitempty"`
	DeviceInfo      string   `json:"deviceInfo,omitempty"`
	SerialNumber    string   `json:"serialNumber,omitempty"`
	EstimatedAmount *float64 `json:"estimatedAmount,omitempty"`
	Status          string   `json:"status"`
}

func FromDeliveryReport(r entities.DeliveryReport) DeliveryReportResponse {
	return DeliveryReportResponse{
		ID:              r.ID,
		JobID:           r.JobID,
		Date:            r.Date,
		DeliveredTo:     r.DeliveredTo,
		DeliveryMode:    string(r.DeliveryMode),
		CustomerName:    r.CustomerName,
		PhoneNumber:     r.PhoneNumber,
		IsCompleted:     r.IsCompleted,
		CompletedDate:   r.CompletedDate,
		InwardDate:      r.InwardDate,
		DeviceInfo:      r.DeviceInfo,
		SerialNumber:    r.SerialNumber,
		EstimatedAmount: r.EstimatedAmount,
		Status:          string(r.Status),
	}
}

func FromDeliveryReports(rows []entities.DeliveryReport) []DeliveryReportResponse {
	out := make([]DeliveryReportResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromDeliveryReport(r))
	}
	return out
}

type ReportSummaryResponse struct {
	TotalDeliveries      int     `json:"totalDeliveries"`
	CompletedDeliveries  int     `json:"completedDeliveries"`
	InProgressDeliveries int     `json:"inProgressDeliveries"`
	PendingDeliveries    int     `json:"pendingDeliveries"`
	TotalRevenue         float64 `json:"totalRevenue"`
}

func FromReportSummary(s entities.ReportSummary) ReportSummaryResponse {
	return ReportSummaryResponse{
		TotalDeliveries:      s.TotalDeliveries,
		CompletedDeliveries:  s.CompletedDeliveries,
		InProgressDeliveries: s.InProgressDeliveries,
		PendingDeliveries:    s.PendingDeliveries,
		TotalRevenue:         s.TotalRevenue,
	}
}

// StatusMessageResponse acknowledges a data-management operation.
type StatusMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

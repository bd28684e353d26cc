package response

import "recoverydesk/internal/domain/entities"

type HardDiskResponse struct {
	ID           int64  `json:"id"`
	JobID        string `json:"jobId"`
	Date         string `json:"date,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	DeviceInfo   string `json:"deviceInfo"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func FromHardDiskRecord(r entities.HardDiskRecord) HardDiskResponse {
	return HardDiskResponse{
		ID:           r.ID,
		JobID:        r.JobID,
		Date:         r.Date,
		CustomerName: r.CustomerName,
		DeviceInfo:   r.DeviceInfo,
		SerialNumber: r.SerialNumber,
		Notes:        r.Notes,
	}
}

func FromHardDiskRecords(records []entities.HardDiskRecord) []HardDiskResponse {
	out := make([]HardDiskResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromHardDiskRecord(r))
	}
	return out
}

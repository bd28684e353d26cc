package request

import "recoverydesk/internal/domain/entities"

type HardDiskRequest struct {
	JobID        string `json:"jobId" binding:"required"`
	Date         string `json:"date"`
	CustomerName string `json:"customerName"`
	DeviceInfo   string `json:"deviceInfo" binding:"required"`
	SerialNumber string `json:"serialNumber"`
	Notes        string `json:"notes"`
}

func (r HardDiskRequest) ToEntity() entities.HardDiskRecord {
	return entities.HardDiskRecord{
		JobID:        r.JobID,
		Date:         r.Date,
		CustomerName: r.CustomerName,
		DeviceInfo:   r.DeviceInfo,
		SerialNumber: r.SerialNumber,
		Notes:        r.Notes,
	}
}

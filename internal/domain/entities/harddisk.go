package entities

// HardDiskRecord carries device-identity metadata (media description, serial
// number) associated with a job. It is referenced by JobID and owned by
// neither the inward nor the outward leg.

type HardDiskRecord struct {
	ID           int64  `json:"id"`
	JobID        string `json:"jobId"`
	Date         string `json:"date"`
	CustomerName string `json:"customerName"`
	DeviceInfo   string `json:"deviceInfo"`
	SerialNumber string `json:"serialNumber"`
	Notes        string `json:"notes"`
}

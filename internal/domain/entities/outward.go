package entities

// DeliveryMode is how a finished device goes back to the customer.

type DeliveryMode string

const (
	DeliveryModeInPerson DeliveryMode = "In Person"
	DeliveryModeCourier  DeliveryMode = "Courier"
	DeliveryModePostal   DeliveryMode = "Postal"
	DeliveryModeOther    DeliveryMode = "Other"
)

// DeliveryModes lists the accepted delivery modes, in display order.
var DeliveryModes = []DeliveryMode{
	DeliveryModeInPerson,
	DeliveryModeCourier,
	DeliveryModePostal,
	DeliveryModeOther,
}

func (m DeliveryMode) Valid() bool {
	for _, v := range DeliveryModes {
		if m == v {
			return true
		}
	}
	return false
}

// OutwardRecord is the delivery leg of a job.
//
// Domain rules:
//   - JobID must reference an existing InwardRecord.
//   - At most one OutwardRecord per JobID.
//   - EstimatedAmount, when set, supersedes the inward estimate in the
//     master view.
//   - IsCompleted/CompletedDate are written exactly once by the delivery
//     workflow; a completed record is closed to ordinary edits.

type OutwardRecord struct {
	ID              int64        `json:"id"`
	JobID           string       `json:"jobId"`
	Date            string       `json:"date"`
	CustomerName    string       `json:"customerName"`
	PhoneNumber     string       `json:"phoneNumber"`
	DeliveredTo     string       `json:"deliveredTo"`
	DeliveryMode    DeliveryMode `json:"deliveryMode,omitempty"`
	Notes           string       `json:"notes"`
	EstimatedAmount *float64     `json:"estimatedAmount,omitempty"`
	IsCompleted     bool         `json:"isCompleted"`
	CompletedDate   string       `json:"completedDate,omitempty"`
}

// DeliveryDetails is the transient input to the delivery workflow. It is not
// persisted standalone; the workflow folds it into the OutwardRecord and the
// mirrored inward delivery fields at commit time.

type DeliveryDetails struct {
	DeliveredTo     string       `json:"deliveredTo"`
	DeliveryMode    DeliveryMode `json:"deliveryMode,omitempty"`
	CompletedDate   string       `json:"completedDate"`
	Notes           string       `json:"notes,omitempty"`
	EstimatedAmount *float64     `json:"estimatedAmount,omitempty"`
}

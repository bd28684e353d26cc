package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"recoverydesk/internal/domain/entities"
)

const (
	jobIDPrefix          = "JOB-"
	estimateNumberPrefix = "EST-"
	sequencePadWidth     = 4
	sequenceBase         = 1

	estimateCounterName = "estimate"
)

// nextJobID derives the next job identifier from the maximum numeric suffix
// observed across the inward and outward collections. Deriving from the data
// instead of a stored counter keeps the sequence monotonic across imports:
// whatever a snapshot brings in, the next id is one past its maximum.
func nextJobID(inward []entities.InwardRecord, outward []entities.OutwardRecord) string {
	max := int64(sequenceBase - 1)
	for _, r := range inward {
		if n, ok := numericSuffix(r.JobID); ok && n > max {
			max = n
		}
	}
	for _, r := range outward {
		if n, ok := numericSuffix(r.JobID); ok && n > max {
			max = n
		}
	}
	return formatSequenceID(jobIDPrefix, max+1)
}

// nextRecordID returns one past the largest numeric record id seen so far.
func nextRecordID(ids []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func formatSequenceID(prefix string, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, sequencePadWidth, n)
}

// numericSuffix extracts the numeric part of an identifier like "JOB-0042".
func numericSuffix(id string) (int64, bool) {
	i := strings.LastIndex(id, "-")
	if i < 0 || i == len(id)-1 {
		return 0, false
	}
	n, err := strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

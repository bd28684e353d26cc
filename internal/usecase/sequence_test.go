package usecase

import (
	"testing"

	"recoverydesk/internal/domain/entities"
)

func TestNextJobID(t *testing.T) {
	t.Run("empty collections start the sequence", func(t *testing.T) {
		if got := nextJobID(nil, nil); got != "JOB-0001" {
			t.Fatalf("expected JOB-0001, got %s", got)
		}
	})

	t.Run("max suffix wins across both collections", func(t *testing.T) {
		inward := []entities.InwardRecord{{JobID: "JOB-0003"}, {JobID: "JOB-0007"}}
		outward := []entities.OutwardRecord{{JobID: "JOB-0012"}}
		if got := nextJobID(inward, outward); got != "JOB-0013" {
			t.Fatalf("expected JOB-0013, got %s", got)
		}
	})

	t.Run("malformed ids are ignored", func(t *testing.T) {
		inward := []entities.InwardRecord{{JobID: "JOB-"}, {JobID: "legacy"}, {JobID: "JOB-0002"}}
		if got := nextJobID(inward, nil); got != "JOB-0003" {
			t.Fatalf("expected JOB-0003, got %s", got)
		}
	})

	t.Run("sequence grows past the pad width", func(t *testing.T) {
		inward := []entities.InwardRecord{{JobID: "JOB-10000"}}
		if got := nextJobID(inward, nil); got != "JOB-10001" {
			t.Fatalf("expected JOB-10001, got %s", got)
		}
	})
}

func TestNumericSuffix(t *testing.T) {
	cases := []struct {
		id   string
		want int64
		ok   bool
	}{
		{"JOB-0042", 42, true},
		{"EST-0001", 1, true},
		{"JOB-", 0, false},
		{"plain", 0, false},
		{"JOB-abc", 0, false},
		{"JOB--5", 0, false},
	}
	for _, tc := range cases {
		n, ok := numericSuffix(tc.id)
		if ok != tc.ok || n != tc.want {
			t.Fatalf("numericSuffix(%q) = (%d, %v), want (%d, %v)", tc.id, n, ok, tc.want, tc.ok)
		}
	}
}

func TestNextRecordID(t *testing.T) {
	if got := nextRecordID(nil); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := nextRecordID([]int64{3, 9, 2}); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
}

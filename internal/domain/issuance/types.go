package issuance

import "strings"

type Status string

const (
	StatusIssued  Status = "ISSUED"
	StatusUsed    Status = "USED"
	StatusExpired Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusIssued, StatusUsed, StatusExpired:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// AllocationStatus is the outcome of one allocation attempt.
type AllocationStatus string

const (
	AllocationSuccess    AllocationStatus = "SUCCESS"
	AllocationDuplicated AllocationStatus = "DUPLICATED"
	AllocationSoldOut    AllocationStatus = "SOLD_OUT"
	AllocationNotStarted AllocationStatus = "NOT_STARTED"
	AllocationExpired    AllocationStatus = "EXPIRED"
)

func (s AllocationStatus) String() string {
	return string(s)
}

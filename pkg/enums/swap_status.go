package enums

import "fmt"

// SwapStatus maps to the swap_status_enum enum in Postgres.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "PENDING"
	SwapStatusAccepted  SwapStatus = "ACCEPTED"
	SwapStatusRejected  SwapStatus = "REJECTED"
	SwapStatusCompleted SwapStatus = "COMPLETED"
)

var validSwapStatuses = []SwapStatus{
	SwapStatusPending,
	SwapStatusAccepted,
	SwapStatusRejected,
	SwapStatusCompleted,
}

// IsValid reports whether the value matches the canonical swap status enum.
func (s SwapStatus) IsValid() bool {
	for _, candidate := range validSwapStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from the status.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapStatusRejected || s == SwapStatusCompleted
}

// ParseSwapStatus converts raw input into SwapStatus.
func ParseSwapStatus(value string) (SwapStatus, error) {
	for _, candidate := range validSwapStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid swap status %q", value)
}

package enums

import "fmt"

// ItemStatus maps to the item_status_enum enum in Postgres.
type ItemStatus string

const (
	// ItemStatusAvailable marks an item open to swap requests.
	ItemStatusAvailable ItemStatus = "AVAILABLE"
	// ItemStatusPending marks an item tied to an in-flight swap.
	ItemStatusPending ItemStatus = "PENDING"
	// ItemStatusSwapped marks an item whose exchange completed.
	ItemStatusSwapped ItemStatus = "SWAPPED"
	// ItemStatusRejected marks an item pulled from the catalog by moderation.
	ItemStatusRejected ItemStatus = "REJECTED"
)

var validItemStatuses = []ItemStatus{
	ItemStatusAvailable,
	ItemStatusPending,
	ItemStatusSwapped,
	ItemStatusRejected,
}

// IsValid reports whether the value matches the canonical item status enum.
func (s ItemStatus) IsValid() bool {
	for _, candidate := range validItemStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseItemStatus converts raw input into ItemStatus.
func ParseItemStatus(value string) (ItemStatus, error) {
	for _, candidate := range validItemStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item status %q", value)
}

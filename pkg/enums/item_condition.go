package enums

import (
	"fmt"
	"strings"
)

// ItemCondition maps to the item_condition_enum enum in Postgres.
type ItemCondition string

const (
	ItemConditionExcellent ItemCondition = "EXCELLENT"
	ItemConditionGood      ItemCondition = "GOOD"
	ItemConditionFair      ItemCondition = "FAIR"
	ItemConditionPoor      ItemCondition = "POOR"
)

var validItemConditions = []ItemCondition{
	ItemConditionExcellent,
	ItemConditionGood,
	ItemConditionFair,
	ItemConditionPoor,
}

// IsValid reports whether the value matches the canonical item condition enum.
func (c ItemCondition) IsValid() bool {
	for _, candidate := range validItemConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseItemCondition converts raw input into ItemCondition. Lowercase input is
// accepted because listing forms submit conditions in either case.
func ParseItemCondition(value string) (ItemCondition, error) {
	upper := strings.ToUpper(strings.TrimSpace(value))
	for _, candidate := range validItemConditions {
		if string(candidate) == upper {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item condition %q", value)
}

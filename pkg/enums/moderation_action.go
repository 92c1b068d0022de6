package enums

import "fmt"

// ItemModerationAction enumerates the admin actions on a listed item.
type ItemModerationAction string

const (
	ItemModerationApprove ItemModerationAction = "approve"
	ItemModerationReject  ItemModerationAction = "reject"
	ItemModerationDelete  ItemModerationAction = "delete"
)

var validItemModerationActions = []ItemModerationAction{
	ItemModerationApprove,
	ItemModerationReject,
	ItemModerationDelete,
}

func (a ItemModerationAction) IsValid() bool {
	for _, candidate := range validItemModerationActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseItemModerationAction converts raw input into ItemModerationAction.
func ParseItemModerationAction(value string) (ItemModerationAction, error) {
	for _, candidate := range validItemModerationActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid item moderation action %q", value)
}

// UserModerationAction enumerates the admin actions on a user account.
type UserModerationAction string

const (
	UserModerationApprove UserModerationAction = "approve"
	UserModerationSuspend UserModerationAction = "suspend"
	UserModerationDelete  UserModerationAction = "delete"
)

var validUserModerationActions = []UserModerationAction{
	UserModerationApprove,
	UserModerationSuspend,
	UserModerationDelete,
}

func (a UserModerationAction) IsValid() bool {
	for _, candidate := range validUserModerationActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseUserModerationAction converts raw input into UserModerationAction.
func ParseUserModerationAction(value string) (UserModerationAction, error) {
	for _, candidate := range validUserModerationActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user moderation action %q", value)
}

// SwapModerationAction enumerates the admin actions on a swap.
type SwapModerationAction string

const (
	SwapModerationApprove  SwapModerationAction = "approve"
	SwapModerationReject   SwapModerationAction = "reject"
	SwapModerationComplete SwapModerationAction = "complete"
	SwapModerationDelete   SwapModerationAction = "delete"
)

var validSwapModerationActions = []SwapModerationAction{
	SwapModerationApprove,
	SwapModerationReject,
	SwapModerationComplete,
	SwapModerationDelete,
}

func (a SwapModerationAction) IsValid() bool {
	for _, candidate := range validSwapModerationActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseSwapModerationAction converts raw input into SwapModerationAction.
func ParseSwapModerationAction(value string) (SwapModerationAction, error) {
	for _, candidate := range validSwapModerationActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid swap moderation action %q", value)
}

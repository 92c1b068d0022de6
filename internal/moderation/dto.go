package moderation

import (
	"time"

	"github.com/google/uuid"

	"github.com/rewearhq/rewear-backend/internal/users"
	"github.com/rewearhq/rewear-backend/pkg/db/models"
	"github.com/rewearhq/rewear-backend/pkg/enums"
)

// ItemAdminDTO is the moderation listing shape: the item plus a sanitized
// owner summary.
type ItemAdminDTO struct {
	ID        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Category  string           `json:"category"`
	Status    enums.ItemStatus `json:"status"`
	Points    int              `json:"points"`
	Owner     *users.SummaryDTO `json:"owner,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// SwapItemRef names an item inside a swap listing.
type SwapItemRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// SwapAdminDTO is the moderation listing shape for swaps: item titles plus
// sanitized participant summaries.
type SwapAdminDTO struct {
	ID        uuid.UUID         `json:"id"`
	Status    enums.SwapStatus  `json:"status"`
	Item1     *SwapItemRef      `json:"item1,omitempty"`
	Item2     *SwapItemRef      `json:"item2,omitempty"`
	User1     *users.SummaryDTO `json:"user1,omitempty"`
	User2     *users.SummaryDTO `json:"user2,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func itemAdminFromModel(item *models.Item) ItemAdminDTO {
	return ItemAdminDTO{
		ID:        item.ID,
		Title:     item.Title,
		Category:  item.Category,
		Status:    item.Status,
		Points:    item.Points,
		Owner:     users.SummaryFromModel(item.Owner),
		CreatedAt: item.CreatedAt,
	}
}

func swapAdminFromModel(swap *models.Swap) SwapAdminDTO {
	dto := SwapAdminDTO{
		ID:        swap.ID,
		Status:    swap.Status,
		User1:     users.SummaryFromModel(swap.User1),
		User2:     users.SummaryFromModel(swap.User2),
		CreatedAt: swap.CreatedAt,
	}
	if swap.Item1 != nil {
		dto.Item1 = &SwapItemRef{ID: swap.Item1.ID, Title: swap.Item1.Title}
	}
	if swap.Item2 != nil {
		dto.Item2 = &SwapItemRef{ID: swap.Item2.ID, Title: swap.Item2.Title}
	}
	return dto
}

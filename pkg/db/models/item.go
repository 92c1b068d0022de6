package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/rewearhq/rewear-backend/pkg/enums"
)

// Item is a listed garment. Status drives the swap lifecycle: AVAILABLE items
// can enter a swap, PENDING items are held by one, SWAPPED items are done,
// REJECTED items were pulled by moderation.
type Item struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Title       string              `gorm:"column:title;not null" json:"title"`
	Description string              `gorm:"column:description;not null" json:"description"`
	Images      pq.StringArray      `gorm:"column:images;type:text[];not null" json:"images"`
	Category    string              `gorm:"column:category;not null" json:"category"`
	Size        string              `gorm:"column:size;not null" json:"size"`
	Condition   enums.ItemCondition `gorm:"column:condition;type:item_condition_enum;not null" json:"condition"`
	Status      enums.ItemStatus    `gorm:"column:status;type:item_status_enum;not null;default:'AVAILABLE'" json:"status"`
	Points      int                 `gorm:"column:points;not null" json:"points"`
	Tags        pq.StringArray      `gorm:"column:tags;type:text[];not null" json:"tags"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Owner *User `gorm:"foreignKey:UserID" json:"owner,omitempty"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

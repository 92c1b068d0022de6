package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rewearhq/rewear-backend/pkg/enums"
)

// PointsTransaction is one append-only ledger row. Amount is always positive;
// Type carries the direction.
type PointsTransaction struct {
	ID        uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID             `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Amount    int                   `gorm:"column:amount;not null" json:"amount"`
	Type      enums.TransactionType `gorm:"column:type;type:transaction_type_enum;not null" json:"type"`
	Reason    string                `gorm:"column:reason;not null" json:"reason"`
	CreatedAt time.Time             `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (t *PointsTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

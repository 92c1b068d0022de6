package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rewearhq/rewear-backend/pkg/enums"
)

// Swap is a proposed exchange of exactly two items between two users. Item1
// belongs to User1 (the proposer), Item2 to User2.
type Swap struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Item1ID   uuid.UUID        `gorm:"column:item1_id;type:uuid;not null;index" json:"item1_id"`
	Item2ID   uuid.UUID        `gorm:"column:item2_id;type:uuid;not null;index" json:"item2_id"`
	User1ID   uuid.UUID        `gorm:"column:user1_id;type:uuid;not null;index" json:"user1_id"`
	User2ID   uuid.UUID        `gorm:"column:user2_id;type:uuid;not null;index" json:"user2_id"`
	Status    enums.SwapStatus `gorm:"column:status;type:swap_status_enum;not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Item1 *Item `gorm:"foreignKey:Item1ID" json:"item1,omitempty"`
	Item2 *Item `gorm:"foreignKey:Item2ID" json:"item2,omitempty"`
	User1 *User `gorm:"foreignKey:User1ID" json:"user1,omitempty"`
	User2 *User `gorm:"foreignKey:User2ID" json:"user2,omitempty"`
}

// Participates reports whether the user is one of the two swap parties.
func (s Swap) Participates(userID uuid.UUID) bool {
	return s.User1ID == userID || s.User2ID == userID
}

func (s *Swap) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

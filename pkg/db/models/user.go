package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rewearhq/rewear-backend/pkg/enums"
)

// User represents the canonical identity entity. Points is the denormalized
// balance; the points_transactions table is the source ledger and the two are
// only ever written inside one transaction.
type User struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string           `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string           `gorm:"column:password_hash;not null" json:"-"`
	Name         string           `gorm:"column:name;not null" json:"name"`
	Location     string           `gorm:"column:location;not null" json:"location"`
	Points       int              `gorm:"column:points;not null;default:0" json:"points"`
	ProfilePic   *string          `gorm:"column:profile_pic" json:"profile_pic,omitempty"`
	Bio          *string          `gorm:"column:bio" json:"bio,omitempty"`
	Status       enums.UserStatus `gorm:"column:status;type:user_status_enum;not null;default:'ACTIVE'" json:"status"`
	SystemRole   *string          `gorm:"column:system_role" json:"-"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// IsAdmin reports whether the user carries the admin system role.
func (u User) IsAdmin() bool {
	return u.SystemRole != nil && *u.SystemRole == string(enums.SystemRoleAdmin)
}

// BeforeCreate assigns the identifier when the caller has not.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

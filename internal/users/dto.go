package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/rewearhq/rewear-backend/pkg/db/models"
	"github.com/rewearhq/rewear-backend/pkg/enums"
)

// UserDTO is the transport shape that omits credentials.
type UserDTO struct {
	ID         uuid.UUID        `json:"id"`
	Email      string           `json:"email"`
	Name       string           `json:"name"`
	Location   string           `json:"location"`
	Points     int              `json:"points"`
	ProfilePic *string          `json:"profile_pic,omitempty"`
	Bio        *string          `json:"bio,omitempty"`
	Status     enums.UserStatus `json:"status"`
	SystemRole *string          `json:"system_role,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// SummaryDTO is the minimal owner/participant shape embedded in admin listings.
type SummaryDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
	Name         string
	Location     string
	SystemRole   *string
}

// UpdateProfileDTO carries the optional profile fields a user may change.
type UpdateProfileDTO struct {
	Name       *string
	Location   *string
	ProfilePic *string
	Bio        *string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Location:   u.Location,
		Points:     u.Points,
		ProfilePic: u.ProfilePic,
		Bio:        u.Bio,
		Status:     u.Status,
		SystemRole: u.SystemRole,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func SummaryFromModel(u *models.User) *SummaryDTO {
	if u == nil {
		return nil
	}
	return &SummaryDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Name:         c.Name,
		Location:     c.Location,
		Status:       enums.UserStatusActive,
		SystemRole:   c.SystemRole,
	}
}

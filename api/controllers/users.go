package controllers

import (
	"errors"
	"net/http"

	"gorm.io/gorm"

	"github.com/rewearhq/rewear-backend/api/responses"
	"github.com/rewearhq/rewear-backend/api/validators"
	"github.com/rewearhq/rewear-backend/internal/users"
	pkgerrors "github.com/rewearhq/rewear-backend/pkg/errors"
	"github.com/rewearhq/rewear-backend/pkg/logger"
)

type updateProfilePayload struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Location   *string `json:"location,omitempty" validate:"omitempty,min=1"`
	ProfilePic *string `json:"profile_pic,omitempty"`
	Bio        *string `json:"bio,omitempty"`
}

// Me returns the authenticated user's profile and balance.
func Me(repo users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if repo == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users repository unavailable"))
			return
		}

		userID, err := actorUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		user, err := repo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				err = pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
			}
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, users.FromModel(user))
	}
}

// UpdateMe updates the authenticated user's profile fields.
func UpdateMe(repo users.Repository, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if repo == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users repository unavailable"))
			return
		}

		userID, err := actorUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateProfilePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := repo.UpdateProfile(ctx, userID, users.UpdateProfileDTO{
			Name:       payload.Name,
			Location:   payload.Location,
			ProfilePic: payload.ProfilePic,
			Bio:        payload.Bio,
		}); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		user, err := repo.FindByID(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, users.FromModel(user))
	}
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rewearhq/rewear-backend/api/responses"
	"github.com/rewearhq/rewear-backend/api/validators"
	"github.com/rewearhq/rewear-backend/internal/items"
	"github.com/rewearhq/rewear-backend/pkg/enums"
	pkgerrors "github.com/rewearhq/rewear-backend/pkg/errors"
	"github.com/rewearhq/rewear-backend/pkg/logger"
)

type createItemPayload struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category" validate:"required"`
	Size        string   `json:"size" validate:"required"`
	Condition   string   `json:"condition" validate:"required"`
	Points      int      `json:"points" validate:"gte=0"`
	Tags        []string `json:"tags,omitempty"`
}

// ItemsList serves the public catalog, or one owner's items when the userId
// filter is present.
func ItemsList(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("userId")); raw != "" {
			ownerID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid userId"))
				return
			}
			list, err := svc.ListByOwner(ctx, ownerID)
			if err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			responses.WriteSuccess(w, list)
			return
		}

		list, err := svc.ListCatalog(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// ItemGet returns one item with its owner.
func ItemGet(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		id, err := urlParamUUID(r, "itemId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, err := svc.Get(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

// ItemCreate lists a new garment for the authenticated user.
func ItemCreate(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "items service unavailable"))
			return
		}

		userID, err := actorUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload createItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		condition, err := enums.ParseItemCondition(payload.Condition)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition"))
			return
		}

		item, err := svc.Create(ctx, items.CreateItemInput{
			OwnerID:     userID,
			Title:       validators.SanitizeString(payload.Title, 200),
			Description: validators.SanitizeString(payload.Description, 2000),
			Images:      payload.Images,
			Category:    validators.SanitizeString(payload.Category, 100),
			Size:        validators.SanitizeString(payload.Size, 50),
			Condition:   condition,
			Points:      payload.Points,
			Tags:        payload.Tags,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

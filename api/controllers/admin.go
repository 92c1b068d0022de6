package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rewearhq/rewear-backend/api/responses"
	"github.com/rewearhq/rewear-backend/api/validators"
	"github.com/rewearhq/rewear-backend/internal/moderation"
	"github.com/rewearhq/rewear-backend/pkg/enums"
	pkgerrors "github.com/rewearhq/rewear-backend/pkg/errors"
	"github.com/rewearhq/rewear-backend/pkg/logger"
	"github.com/rewearhq/rewear-backend/pkg/pagination"
)

type moderationPayload struct {
	Action string `json:"action" validate:"required"`
}

type bulkDeletePayload struct {
	ItemIDs []uuid.UUID `json:"item_ids" validate:"required,min=1"`
}

// AdminUsersList returns every user, sanitized, newest first.
func AdminUsersList(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		list, err := svc.ListUsers(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminUserModerate applies approve/suspend/delete to a user.
func AdminUserModerate(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		id, err := urlParamUUID(r, "userId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload moderationPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		action, err := enums.ParseUserModerationAction(payload.Action)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid action"))
			return
		}

		if err := svc.ModerateUser(ctx, id, action); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"action": string(action)})
	}
}

// AdminItemsList returns one cursor page of items with owner summaries.
func AdminItemsList(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		cursor := strings.TrimSpace(r.URL.Query().Get("cursor"))

		list, next, err := svc.ListItems(ctx, pagination.Params{Limit: limit, Cursor: cursor})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"items":       list,
			"next_cursor": next,
		})
	}
}

// AdminItemModerate applies approve/reject/delete to an item.
func AdminItemModerate(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		id, err := urlParamUUID(r, "itemId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload moderationPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		action, err := enums.ParseItemModerationAction(payload.Action)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid action"))
			return
		}

		if err := svc.ModerateItem(ctx, id, action); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"action": string(action)})
	}
}

// AdminItemsBulkDelete deletes many items independently and reports per-id
// results.
func AdminItemsBulkDelete(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		var payload bulkDeletePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.BulkDeleteItems(ctx, payload.ItemIDs)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminSwapsList returns every swap with item titles and participant
// summaries.
func AdminSwapsList(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		list, err := svc.ListSwaps(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminSwapModerate applies approve/reject/complete/delete to a swap.
func AdminSwapModerate(svc moderation.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "moderation service unavailable"))
			return
		}

		id, err := urlParamUUID(r, "swapId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload moderationPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		action, err := enums.ParseSwapModerationAction(payload.Action)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid action"))
			return
		}

		if err := svc.ModerateSwap(ctx, id, action); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"action": string(action)})
	}
}

package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rewearhq/rewear-backend/api/responses"
	"github.com/rewearhq/rewear-backend/api/validators"
	"github.com/rewearhq/rewear-backend/internal/swaps"
	"github.com/rewearhq/rewear-backend/pkg/enums"
	pkgerrors "github.com/rewearhq/rewear-backend/pkg/errors"
	"github.com/rewearhq/rewear-backend/pkg/logger"
)

type createSwapPayload struct {
	OfferedItemID   uuid.UUID `json:"offered_item_id" validate:"required"`
	RequestedItemID uuid.UUID `json:"requested_item_id" validate:"required"`
}

type updateSwapPayload struct {
	Status string `json:"status" validate:"required"`
}

// SwapsList returns the authenticated user's swaps, newest first.
func SwapsList(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swaps service unavailable"))
			return
		}

		userID, err := actorUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, err := svc.ListMine(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// SwapCreate proposes an item-for-item swap.
func SwapCreate(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swaps service unavailable"))
			return
		}

		userID, err := actorUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload createSwapPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		swap, err := svc.Create(ctx, swaps.CreateSwapInput{
			ProposerID:      userID,
			OfferedItemID:   payload.OfferedItemID,
			RequestedItemID: payload.RequestedItemID,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, swap)
	}
}

// SwapGet returns one swap visible to the actor.
func SwapGet(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swaps service unavailable"))
			return
		}

		userID, err := actorUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		id, err := urlParamUUID(r, "swapId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		swap, err := svc.Get(ctx, swaps.Actor{UserID: userID, IsAdmin: actorIsAdmin(ctx)}, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, swap)
	}
}

// SwapUpdate moves a swap to a new status on behalf of a participant.
func SwapUpdate(svc swaps.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "swaps service unavailable"))
			return
		}

		userID, err := actorUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		id, err := urlParamUUID(r, "swapId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload updateSwapPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		target, err := enums.ParseSwapStatus(payload.Status)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		swap, err := svc.Transition(ctx, swaps.Actor{UserID: userID, IsAdmin: actorIsAdmin(ctx)}, id, target)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, swap)
	}
}

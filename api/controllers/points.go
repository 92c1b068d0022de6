package controllers

import (
	"net/http"

	"github.com/rewearhq/rewear-backend/api/responses"
	"github.com/rewearhq/rewear-backend/internal/points"
	pkgerrors "github.com/rewearhq/rewear-backend/pkg/errors"
	"github.com/rewearhq/rewear-backend/pkg/logger"
)

// PointsHistory returns the authenticated user's ledger, newest first.
func PointsHistory(svc points.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "points service unavailable"))
			return
		}

		userID, err := actorUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		history, err := svc.History(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, history)
	}
}

// PointsBalance returns the authenticated user's current balance.
func PointsBalance(svc points.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "points service unavailable"))
			return
		}

		userID, err := actorUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		balance, err := svc.Balance(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]int{"balance": balance})
	}
}

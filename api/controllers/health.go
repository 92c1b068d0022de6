package controllers

import (
	"context"
	"net/http"

	"github.com/rewearhq/rewear-backend/api/responses"
	"github.com/rewearhq/rewear-backend/pkg/logger"
)

// Pinger is the readiness surface a dependency must expose.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Liveness reports that the process is up.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// Readiness pings the hard dependencies and reports per-dependency status.
func Readiness(db Pinger, cache Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		status := map[string]string{"database": "ok", "redis": "ok"}
		healthy := true

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				status["database"] = "unreachable"
				healthy = false
				if logg != nil {
					logg.Error(ctx, "health.database", err)
				}
			}
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				status["redis"] = "unreachable"
				healthy = false
				if logg != nil {
					logg.Error(ctx, "health.redis", err)
				}
			}
		}

		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		responses.WriteSuccessStatus(w, code, status)
	}
}

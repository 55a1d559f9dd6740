package api

import (
	"net/http"
	"time"

	"github.com/projectveo/backend/database"
	"github.com/projectveo/backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	dashboard *services.DashboardAggregator
}

func newDashboardHandler(dashboard *services.DashboardAggregator) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		dashboard: dashboard,
	}
}

// @Router /api/dashboard/stats [get]
func (h dashboardHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.dashboard.Stats(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, stats)
	}
}

type healthHandler struct {
	responder   Responder
	db          database.Database
	startupTime time.Time
}

func newHealthHandler(db database.Database, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()
	return healthHandler{responder: NewResponder(logger), db: db, startupTime: startupTime}
}

// @Router /healthz [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK
		if err := h.db.Ping(r.Context()); err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		h.responder.WriteJSONStatus(w, code, map[string]any{
			"status":         status,
			"uptime_seconds": int(time.Since(h.startupTime).Seconds()),
		})
	}
}

package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/frahmantamala/smart-records/internal/database"
	"github.com/frahmantamala/smart-records/internal/transport"
	"github.com/frahmantamala/smart-records/pkg/logger"
)

type HealthHandler struct {
	*transport.BaseHandler
	gateway *database.Gateway
}

func NewHealthHandler(gw *database.Gateway) *HealthHandler {
	return &HealthHandler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		gateway:     gw,
	}
}

func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.gateway.Ping(ctx); err != nil {
		h.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}

func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "pong"})
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sembang-dev/sembang/shared/logger"
	"github.com/sembang-dev/sembang/shared/utils"
)

// pingTimeout bounds the storage round trip of a readiness check.
const pingTimeout = 2 * time.Second

type probeStatus struct {
	Status string `json:"status"`
}

// Health answers as long as the process serves HTTP. It never touches storage.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, probeStatus{Status: "ok"})
}

// Ready reports 503 while the store does not answer a ping.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("store ping failed", "error", err)
		utils.WriteJSON(w, http.StatusServiceUnavailable, probeStatus{Status: "unavailable"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, probeStatus{Status: "ok"})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// NewHealthcheckHandler reports liveness.
// @Summary Healthcheck
// @Tags healthcheck
// @Produce json
// @Success 200 {object} models.ApiResponse "Server is healthy"
// @Router /healthcheck [get]
func NewHealthcheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, models.Health{
			Status:    "OK",
			TimeStamp: time.Now().UTC().Format(time.RFC3339),
		}, "Server is healthy")
	}
}

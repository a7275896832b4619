package handlers

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// DashboardReader is the dashboard service as seen by the handlers.
type DashboardReader interface {
	ChannelStats(ctx context.Context, channelID primitive.ObjectID) (*models.ChannelStats, error)
	ChannelVideos(ctx context.Context, channelID, viewer primitive.ObjectID, q models.PageQuery) (*models.Page[models.ChannelVideo], error)
}

// NewChannelStatsHandler returns the counters of a channel.
// @Summary Channel stats
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Channel id"
// @Success 200 {object} models.ApiResponse "Channel stats"
// @Failure 400 {object} models.ErrorResponse "Invalid userId"
// @Router /dashboard/stats/{userId} [get]
func NewChannelStatsHandler(svc DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, channelID, err := userAndID(r, "userId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		stats, err := svc.ChannelStats(r.Context(), channelID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, stats, "Channel stats fetched successfully")
	}
}

// NewChannelVideosHandler returns one page of a channel's videos with like counts.
// @Summary Channel videos
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Channel id"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size, at most 50" default(10)
// @Success 200 {object} models.ApiResponse "Page of videos, possibly empty"
// @Failure 400 {object} models.ErrorResponse "Invalid page or limit"
// @Router /dashboard/channel-videos/{userId} [get]
func NewChannelVideosHandler(svc DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, channelID, err := userAndID(r, "userId")
		if err != nil {
			respondError(w, r, err)
			return
		}
		q, err := pageQuery(r, 1, 10)
		if err != nil {
			respondError(w, r, err)
			return
		}

		videos, err := svc.ChannelVideos(r.Context(), channelID, user.ID, q)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, videos, "Channel videos fetched successfully")
	}
}

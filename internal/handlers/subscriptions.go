package handlers

//go:generate mockgen -source=subscriptions.go -destination=subscriptions_mock.go -package=handlers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// SubscriptionManager is the subscription service as seen by the handlers.
type SubscriptionManager interface {
	Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (*models.SubscriptionToggle, error)
	Subscribers(ctx context.Context, channel primitive.ObjectID) ([]models.Subscriber, error)
	SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]models.SubscribedChannel, error)
}

// NewToggleSubscriptionHandler subscribes to or unsubscribes from a channel.
// @Summary Toggle subscription
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "Channel id"
// @Success 200 {object} models.ApiResponse "Subscription state"
// @Failure 400 {object} models.ErrorResponse "You cannot subscribe to yourself"
// @Failure 404 {object} models.ErrorResponse "Channel not found"
// @Router /subscriptions/toggleSubscription/{channelId} [post]
func NewToggleSubscriptionHandler(svc SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, channelID, err := userAndID(r, "channelId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		res, err := svc.Toggle(r.Context(), user.ID, channelID)
		if err != nil {
			respondError(w, r, err)
			return
		}

		message := "Channel Unsubscribed successfully"
		if res.IsSubscribed {
			message = "Channel Subscribed successfully"
		}
		respondJSON(w, http.StatusOK, res, message)
	}
}

// NewSubscribersHandler lists the subscribers of a channel.
// @Summary Channel subscribers
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param channelId path string true "Channel id"
// @Success 200 {object} models.ApiResponse "Subscribers, possibly empty"
// @Failure 400 {object} models.ErrorResponse "Invalid channelId"
// @Router /subscriptions/getSubscriptions/{channelId} [get]
func NewSubscribersHandler(svc SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, channelID, err := userAndID(r, "channelId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		subs, err := svc.Subscribers(r.Context(), channelID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		message := "Subscribers fetched successfully"
		if len(subs) == 0 {
			message = "No subscribers found"
		}
		respondJSON(w, http.StatusOK, subs, message)
	}
}

// NewSubscribedChannelsHandler lists the channels the current user follows.
// @Summary Subscribed channels
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Channels, possibly empty"
// @Router /subscriptions/subscribedChannels [get]
func NewSubscribedChannelsHandler(svc SubscriptionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		channels, err := svc.SubscribedChannels(r.Context(), user.ID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		message := "Subscribed channels fetched successfully"
		if len(channels) == 0 {
			message = "No subscribed channels found"
		}
		respondJSON(w, http.StatusOK, channels, message)
	}
}

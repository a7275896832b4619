package services

//go:generate mockgen -source=subscription.go -destination=subscription_mock.go -package=services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/repositories"
)

// SubscriptionStore defines persistence operations on subscriptions.
type SubscriptionStore interface {
	Delete(ctx context.Context, subscriber, channel primitive.ObjectID) (*models.Subscription, error)
	Create(ctx context.Context, sub *models.Subscription) error
	Subscribers(ctx context.Context, channel primitive.ObjectID) ([]models.Subscriber, error)
	SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]models.SubscribedChannel, error)
}

// UserFinder loads a user by id.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// SubscriptionService toggles and lists channel subscriptions.
type SubscriptionService struct {
	subs   SubscriptionStore
	users  UserFinder
	stats  StatsInvalidator
	events EventSink
}

func NewSubscriptionService(subs SubscriptionStore, users UserFinder, stats StatsInvalidator, events EventSink) *SubscriptionService {
	return &SubscriptionService{
		subs:   subs,
		users:  users,
		stats:  stats,
		events: events,
	}
}

// Toggle subscribes subscriber to channel, or unsubscribes when already subscribed.
func (svc *SubscriptionService) Toggle(ctx context.Context, subscriber, channel primitive.ObjectID) (*models.SubscriptionToggle, error) {
	if subscriber == channel {
		return nil, apierror.BadRequest("You cannot subscribe to yourself")
	}
	if _, err := svc.users.FindByID(ctx, channel); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apierror.NotFound("Channel not found")
		}
		return nil, err
	}

	log := logger.FromContext(ctx)

	_, err := svc.subs.Delete(ctx, subscriber, channel)
	switch {
	case err == nil:
		svc.after(ctx, subscriber, channel, false)
		return &models.SubscriptionToggle{IsSubscribed: false}, nil
	case !errors.Is(err, repositories.ErrNotFound):
		log.Errorw("failed to unsubscribe", "channel", channel.Hex(), "error", err)
		return nil, err
	}

	sub := &models.Subscription{Subscriber: subscriber, Channel: channel}
	if err := svc.subs.Create(ctx, sub); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return &models.SubscriptionToggle{IsSubscribed: true}, nil
		}
		log.Errorw("failed to subscribe", "channel", channel.Hex(), "error", err)
		return nil, apierror.Internal("Failed to toggle subscription")
	}

	svc.after(ctx, subscriber, channel, true)
	return &models.SubscriptionToggle{IsSubscribed: true, Subscription: sub}, nil
}

// Subscribers lists the subscribers of channel.
func (svc *SubscriptionService) Subscribers(ctx context.Context, channel primitive.ObjectID) ([]models.Subscriber, error) {
	return svc.subs.Subscribers(ctx, channel)
}

// SubscribedChannels lists the channels subscriber follows.
func (svc *SubscriptionService) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]models.SubscribedChannel, error) {
	return svc.subs.SubscribedChannels(ctx, subscriber)
}

func (svc *SubscriptionService) after(ctx context.Context, subscriber, channel primitive.ObjectID, active bool) {
	if svc.stats != nil {
		for _, id := range []primitive.ObjectID{subscriber, channel} {
			if err := svc.stats.Invalidate(ctx, id); err != nil {
				logger.FromContext(ctx).Warnw("failed to invalidate channel stats", "channelId", id.Hex(), "error", err)
			}
		}
	}
	publish(ctx, svc.events, toggleEvent(models.EventSubscriptionToggled, subscriber, channel, "channel", active))
}

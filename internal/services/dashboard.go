package services

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/repositories"
	"github.com/sbilibin2017/gw-videotube/internal/validation"
)

// ChannelVideoReader reads per-channel video aggregates.
type ChannelVideoReader interface {
	CountByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
	PublishedViews(ctx context.Context, owner primitive.ObjectID) (int64, error)
	ChannelVideos(ctx context.Context, owner primitive.ObjectID, includeUnpublished bool, page, limit int64) (*models.Page[models.ChannelVideo], error)
}

// SubscriptionCounter counts subscriptions in both directions.
type SubscriptionCounter interface {
	CountSubscribers(ctx context.Context, channel primitive.ObjectID) (int64, error)
	CountSubscriptions(ctx context.Context, subscriber primitive.ObjectID) (int64, error)
}

// ReceivedLikesCounter counts likes a channel's published videos received.
type ReceivedLikesCounter interface {
	ReceivedLikes(ctx context.Context, owner primitive.ObjectID) (int64, error)
}

// ChannelStatsCache caches computed stats.
type ChannelStatsCache interface {
	Get(ctx context.Context, channelID primitive.ObjectID) (*models.ChannelStats, error)
	Set(ctx context.Context, channelID primitive.ObjectID, stats *models.ChannelStats) error
}

// DashboardService computes channel statistics and listings.
type DashboardService struct {
	videos ChannelVideoReader
	subs   SubscriptionCounter
	likes  ReceivedLikesCounter
	cache  ChannelStatsCache
}

func NewDashboardService(videos ChannelVideoReader, subs SubscriptionCounter, likes ReceivedLikesCounter, cache ChannelStatsCache) *DashboardService {
	return &DashboardService{
		videos: videos,
		subs:   subs,
		likes:  likes,
		cache:  cache,
	}
}

// ChannelStats returns counters for channelID. Cached stats are served while
// fresh; cache failures fall through to the store.
func (svc *DashboardService) ChannelStats(ctx context.Context, channelID primitive.ObjectID) (*models.ChannelStats, error) {
	log := logger.FromContext(ctx)

	if svc.cache != nil {
		stats, err := svc.cache.Get(ctx, channelID)
		if err == nil {
			return stats, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			log.Warnw("failed to read channel stats cache", "channelId", channelID.Hex(), "error", err)
		}
	}

	var stats models.ChannelStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalVideos, err = svc.videos.CountByOwner(gctx, channelID)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalViews, err = svc.videos.PublishedViews(gctx, channelID)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalSubscribers, err = svc.subs.CountSubscribers(gctx, channelID)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalSubscriptions, err = svc.subs.CountSubscriptions(gctx, channelID)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalLikes, err = svc.likes.ReceivedLikes(gctx, channelID)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Errorw("failed to compute channel stats", "channelId", channelID.Hex(), "error", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, channelID, &stats); err != nil {
			log.Warnw("failed to cache channel stats", "channelId", channelID.Hex(), "error", err)
		}
	}
	return &stats, nil
}

// ChannelVideos lists videos of channelID. The owner also sees unpublished ones.
func (svc *DashboardService) ChannelVideos(ctx context.Context, channelID, viewer primitive.ObjectID, q models.PageQuery) (*models.Page[models.ChannelVideo], error) {
	if err := validation.Struct(models.ChannelVideosQuery(q)); err != nil {
		return nil, invalidInput(err)
	}
	return svc.videos.ChannelVideos(ctx, channelID, channelID == viewer, q.Page, q.Limit)
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// ErrCacheMiss is returned when no stats are cached for a channel.
var ErrCacheMiss = errors.New("channel stats not cached")

// ChannelStatsCacheRepository keeps dashboard counters in Redis
type ChannelStatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewChannelStatsCacheRepository(client *redis.Client, expiration time.Duration) *ChannelStatsCacheRepository {
	return &ChannelStatsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func statsKey(channelID primitive.ObjectID) string {
	return fmt.Sprintf("channel_stats:%s", channelID.Hex())
}

// Get returns cached stats or ErrCacheMiss.
func (r *ChannelStatsCacheRepository) Get(ctx context.Context, channelID primitive.ObjectID) (*models.ChannelStats, error) {
	key := statsKey(channelID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.FromContext(ctx).Debugw("cache get",
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var stats models.ChannelStats
	if err := json.Unmarshal(val, &stats); err != nil {
		logger.FromContext(ctx).Errorw("cache decode",
			"key", key,
			"error", err,
		)
		return nil, err
	}
	return &stats, nil
}

// Set stores stats with the configured TTL.
func (r *ChannelStatsCacheRepository) Set(ctx context.Context, channelID primitive.ObjectID, stats *models.ChannelStats) error {
	key := statsKey(channelID)
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, payload, r.exp).Err()
	logger.FromContext(ctx).Debugw("cache set",
		"key", key,
		"ttl", r.exp,
		"error", err,
	)
	return err
}

// Invalidate drops cached stats for a channel.
func (r *ChannelStatsCacheRepository) Invalidate(ctx context.Context, channelID primitive.ObjectID) error {
	return r.client.Del(ctx, statsKey(channelID)).Err()
}

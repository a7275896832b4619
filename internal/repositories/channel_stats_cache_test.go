package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

func TestChannelStatsCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewChannelStatsCacheRepository(rdb, 2*time.Second)

	t.Run("set then get", func(t *testing.T) {
		id := primitive.NewObjectID()
		stats := &models.ChannelStats{TotalVideos: 3, TotalViews: 42, TotalSubscribers: 7, TotalLikes: 5}

		require.NoError(t, repo.Set(ctx, id, stats))

		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("missing key is a cache miss", func(t *testing.T) {
		_, err := repo.Get(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("invalidate removes entry", func(t *testing.T) {
		id := primitive.NewObjectID()
		require.NoError(t, repo.Set(ctx, id, &models.ChannelStats{TotalVideos: 1}))
		require.NoError(t, repo.Invalidate(ctx, id))

		_, err := repo.Get(ctx, id)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("entry expires", func(t *testing.T) {
		id := primitive.NewObjectID()
		require.NoError(t, repo.Set(ctx, id, &models.ChannelStats{TotalViews: 1}))

		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, id)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}

package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

func setupMongoContainer(t *testing.T) (*mongo.Database, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "27017")
	uri := fmt.Sprintf("mongodb://%s:%d", host, port.Int())

	var (
		client *mongo.Client
		db     *mongo.Database
	)
	for i := 0; i < 10; i++ {
		client, db, err = Connect(ctx, uri, "videotube_test", 5*time.Second)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, EnsureIndexes(ctx, db))

	return db, func() {
		_ = client.Disconnect(ctx)
		_ = container.Terminate(ctx)
	}
}

func newUser(t *testing.T, repo *UserRepository, name string) *models.User {
	t.Helper()
	u := &models.User{
		UserName: name,
		Email:    name + "@example.com",
		FullName: "Full " + name,
		Avatar:   "http://cdn/" + name + ".png",
		Password: "hash",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func newVideo(t *testing.T, repo *VideoRepository, owner primitive.ObjectID, title string, published bool, views int64) *models.Video {
	t.Helper()
	v := &models.Video{
		VideoFile:   "http://cdn/" + title + ".mp4",
		Thumbnail:   "http://cdn/" + title + ".jpg",
		Owner:       owner,
		Title:       title,
		Description: "about " + title,
		Duration:    12.5,
		Views:       views,
		IsPublished: published,
	}
	require.NoError(t, repo.Create(context.Background(), v))
	return v
}

func TestUserRepository(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserRepository(db)
	videos := NewVideoRepository(db)
	subs := NewSubscriptionRepository(db)

	alice := newUser(t, users, "alice")
	bob := newUser(t, users, "bob")

	t.Run("duplicate userName rejected", func(t *testing.T) {
		err := users.Create(ctx, &models.User{UserName: "alice", Email: "other@example.com"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("find by userName or email", func(t *testing.T) {
		got, err := users.FindByUserNameOrEmail(ctx, "", "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, bob.ID, got.ID)

		_, err = users.FindByUserNameOrEmail(ctx, "nobody", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("refresh token set and unset", func(t *testing.T) {
		require.NoError(t, users.SetRefreshToken(ctx, alice.ID, "tok"))
		got, err := users.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "tok", got.RefreshToken)

		require.NoError(t, users.UnsetRefreshToken(ctx, alice.ID))
		got, err = users.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, got.RefreshToken)
	})

	t.Run("update account returns new document", func(t *testing.T) {
		got, err := users.UpdateAccount(ctx, bob.ID, "Robert", "robert@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Robert", got.FullName)
		assert.Equal(t, "robert@example.com", got.Email)
	})

	t.Run("channel profile counts", func(t *testing.T) {
		require.NoError(t, subs.Create(ctx, &models.Subscription{Subscriber: bob.ID, Channel: alice.ID}))

		profile, err := users.ChannelProfile(ctx, "alice", bob.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), profile.SubscribersCount)
		assert.Equal(t, int64(0), profile.ChannelsSubscribedToCount)
		assert.True(t, profile.IsSubscribed)

		profile, err = users.ChannelProfile(ctx, "alice", alice.ID)
		require.NoError(t, err)
		assert.False(t, profile.IsSubscribed)

		_, err = users.ChannelProfile(ctx, "ghost", bob.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("watch history resolves owners", func(t *testing.T) {
		v := newVideo(t, videos, alice.ID, "intro", true, 0)
		require.NoError(t, users.AddToWatchHistory(ctx, bob.ID, v.ID))
		require.NoError(t, users.AddToWatchHistory(ctx, bob.ID, v.ID))

		history, err := users.WatchHistory(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, v.ID, history[0].ID)
		require.NotNil(t, history[0].Owner)
		assert.Equal(t, "alice", history[0].Owner.UserName)
	})
}

func TestCommentRepository_Pagination(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserRepository(db)
	videos := NewVideoRepository(db)
	comments := NewCommentRepository(db)
	likes := NewLikeRepository(db)

	owner := newUser(t, users, "owner")
	viewer := newUser(t, users, "viewer")
	v := newVideo(t, videos, owner.ID, "clip", true, 0)

	var last *models.Comment
	for i := 0; i < 25; i++ {
		c := &models.Comment{Content: fmt.Sprintf("comment %d", i), Video: v.ID, Owner: owner.ID}
		require.NoError(t, comments.Create(ctx, c))
		last = c
		time.Sleep(2 * time.Millisecond)
	}
	require.NoError(t, likes.Create(ctx, &models.Like{LikedBy: viewer.ID, Target: models.CommentTarget(last.ID)}))

	page, err := comments.VideoComments(ctx, v.ID, viewer.ID, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Docs, 10)
	assert.Equal(t, int64(25), page.TotalDocs)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.True(t, page.HasNextPage)
	assert.False(t, page.HasPrevPage)

	newest := page.Docs[0]
	assert.Equal(t, last.ID, newest.ID)
	assert.Equal(t, int64(1), newest.LikeCount)
	assert.True(t, newest.IsLikedByCurrentUser)
	require.NotNil(t, newest.CreatedBy)
	assert.Equal(t, "owner", newest.CreatedBy.UserName)

	page, err = comments.VideoComments(ctx, v.ID, viewer.ID, 3, 10)
	require.NoError(t, err)
	assert.Len(t, page.Docs, 5)
	assert.False(t, page.HasNextPage)

	t.Run("only the author edits", func(t *testing.T) {
		_, err := comments.UpdateOwned(ctx, last.ID, viewer.ID, "hijack")
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := comments.UpdateOwned(ctx, last.ID, owner.ID, "edited")
		require.NoError(t, err)
		assert.Equal(t, "edited", got.Content)
	})
}

func TestLikeAndSubscriptionToggles(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserRepository(db)
	videos := NewVideoRepository(db)
	likes := NewLikeRepository(db)
	subs := NewSubscriptionRepository(db)

	creator := newUser(t, users, "creator")
	fan := newUser(t, users, "fan")
	published := newVideo(t, videos, creator.ID, "pub", true, 10)
	hidden := newVideo(t, videos, creator.ID, "hidden", false, 99)

	t.Run("like pair is unique", func(t *testing.T) {
		require.NoError(t, likes.Create(ctx, &models.Like{LikedBy: fan.ID, Target: models.VideoTarget(published.ID)}))
		err := likes.Create(ctx, &models.Like{LikedBy: fan.ID, Target: models.VideoTarget(published.ID)})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("different target kinds do not collide", func(t *testing.T) {
		require.NoError(t, likes.Create(ctx, &models.Like{LikedBy: fan.ID, Target: models.CommentTarget(primitive.NewObjectID())}))
		require.NoError(t, likes.Create(ctx, &models.Like{LikedBy: fan.ID, Target: models.CommentTarget(primitive.NewObjectID())}))
	})

	t.Run("received likes count published only", func(t *testing.T) {
		require.NoError(t, likes.Create(ctx, &models.Like{LikedBy: fan.ID, Target: models.VideoTarget(hidden.ID)}))
		n, err := likes.ReceivedLikes(ctx, creator.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		views, err := videos.PublishedViews(ctx, creator.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), views)
	})

	t.Run("liked videos", func(t *testing.T) {
		got, err := likes.LikedVideos(ctx, fan.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("delete like", func(t *testing.T) {
		_, err := likes.Delete(ctx, fan.ID, models.VideoTarget(hidden.ID))
		require.NoError(t, err)
		_, err = likes.Delete(ctx, fan.ID, models.VideoTarget(hidden.ID))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("subscription pair is unique", func(t *testing.T) {
		require.NoError(t, subs.Create(ctx, &models.Subscription{Subscriber: fan.ID, Channel: creator.ID}))
		err := subs.Create(ctx, &models.Subscription{Subscriber: fan.ID, Channel: creator.ID})
		assert.ErrorIs(t, err, ErrDuplicate)

		list, err := subs.Subscribers(ctx, creator.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "fan", list[0].UserName)

		channels, err := subs.SubscribedChannels(ctx, fan.ID)
		require.NoError(t, err)
		require.Len(t, channels, 1)
		assert.Equal(t, creator.ID, channels[0].ID)

		_, err = subs.Delete(ctx, fan.ID, creator.ID)
		require.NoError(t, err)
		n, err := subs.CountSubscribers(ctx, creator.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestVideoRepository(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserRepository(db)
	videos := NewVideoRepository(db)

	owner := newUser(t, users, "maker")
	other := newUser(t, users, "watcher")
	pub := newVideo(t, videos, owner.ID, "Go Tutorial", true, 5)
	draft := newVideo(t, videos, owner.ID, "draft cut", false, 0)

	t.Run("channel videos hide drafts from others", func(t *testing.T) {
		page, err := videos.ChannelVideos(ctx, owner.ID, false, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Docs, 1)
		assert.Equal(t, pub.ID, page.Docs[0].ID)

		page, err = videos.ChannelVideos(ctx, owner.ID, true, 1, 10)
		require.NoError(t, err)
		assert.Len(t, page.Docs, 2)
	})

	t.Run("feed search is case-insensitive and literal", func(t *testing.T) {
		page, err := videos.Feed(ctx, VideoFeedFilter{ViewerID: other.ID, Query: "go tut"}, 1, 10)
		require.NoError(t, err)
		require.Len(t, page.Docs, 1)
		assert.Equal(t, "maker", page.Docs[0].Owner.UserName)

		page, err = videos.Feed(ctx, VideoFeedFilter{ViewerID: other.ID, Query: ".*"}, 1, 10)
		require.NoError(t, err)
		assert.Empty(t, page.Docs)
	})

	t.Run("toggle publish flips flag for owner only", func(t *testing.T) {
		_, err := videos.TogglePublishOwned(ctx, draft.ID, other.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		got, err := videos.TogglePublishOwned(ctx, draft.ID, owner.ID)
		require.NoError(t, err)
		assert.True(t, got.IsPublished)
	})

	t.Run("increment views", func(t *testing.T) {
		require.NoError(t, videos.IncrementViews(ctx, pub.ID))
		got, err := videos.FindByID(ctx, pub.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(6), got.Views)
	})

	t.Run("delete owned", func(t *testing.T) {
		_, err := videos.DeleteOwned(ctx, pub.ID, owner.ID)
		require.NoError(t, err)
		ok, err := videos.Exists(ctx, pub.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPlaylistRepository(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	ctx := context.Background()
	playlists := NewPlaylistRepository(db)
	owner := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	p := &models.Playlist{Name: "Favs", Description: "best", Owner: owner}
	require.NoError(t, playlists.Create(ctx, p))

	got, err := playlists.AddVideoOwned(ctx, p.ID, owner, videoID)
	require.NoError(t, err)
	got, err = playlists.AddVideoOwned(ctx, p.ID, owner, videoID)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{videoID}, got.Videos)

	_, err = playlists.AddVideoOwned(ctx, p.ID, primitive.NewObjectID(), videoID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err = playlists.RemoveVideoOwned(ctx, p.ID, owner, videoID)
	require.NoError(t, err)
	assert.Empty(t, got.Videos)

	list, err := playlists.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = playlists.DeleteOwned(ctx, p.ID, owner)
	require.NoError(t, err)
	_, err = playlists.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

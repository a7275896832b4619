package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/gw-videotube/internal/logger"
)

// Collection names.
const (
	UsersCollection         = "users"
	VideosCollection        = "videos"
	CommentsCollection      = "comments"
	LikesCollection         = "likes"
	SubscriptionsCollection = "subscriptions"
	PlaylistsCollection     = "playlists"
)

var (
	// ErrNotFound indicates the requested document does not exist or did not match.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate indicates a unique index rejected the write.
	ErrDuplicate = errors.New("duplicate document")
)

// Connect opens a client, pings it and returns the named database.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(database), nil
}

// EnsureIndexes creates the unique and lookup indexes every repository relies on.
// The unique like and subscription indexes make the toggle operations race-free.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	partialUnique := func(field string) *options.IndexOptions {
		return options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.D{{Key: field, Value: bson.D{{Key: "$exists", Value: true}}}})
	}

	specs := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "userName", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		VideosCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		CommentsCollection: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		LikesCollection: {
			{Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "video", Value: 1}}, Options: partialUnique("video")},
			{Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "comment", Value: 1}}, Options: partialUnique("comment")},
			{Keys: bson.D{{Key: "likedBy", Value: 1}, {Key: "tweet", Value: 1}}, Options: partialUnique("tweet")},
			{Keys: bson.D{{Key: "video", Value: 1}}},
			{Keys: bson.D{{Key: "comment", Value: 1}}},
		},
		SubscriptionsCollection: {
			{Keys: bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "channel", Value: 1}}},
		},
		PlaylistsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}}},
		},
	}

	for coll, models := range specs {
		names, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			logger.Log.Errorw("failed to create indexes", "collection", coll, "error", err)
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
		logger.Log.Debugw("indexes ensured", "collection", coll, "indexes", names)
	}
	return nil
}

// mapErr converts driver errors into repository sentinels.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}

// logQuery writes one debug line per store round-trip.
func logQuery(collection, op string, filter any, err error) {
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		logger.Log.Errorw("query failed",
			"collection", collection,
			"op", op,
			"filter", filter,
			"error", err,
		)
		return
	}
	logger.Log.Debugw("query",
		"collection", collection,
		"op", op,
		"filter", filter,
		"error", err,
	)
}

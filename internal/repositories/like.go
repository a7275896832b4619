package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// LikeRepository persists likes on videos, comments and tweets.
type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{coll: db.Collection(LikesCollection)}
}

func pairFilter(likedBy primitive.ObjectID, target models.LikeTarget) bson.D {
	return bson.D{
		{Key: "likedBy", Value: likedBy},
		{Key: target.Field(), Value: target.ID},
	}
}

// Delete removes the like of likedBy on target in one atomic step and
// returns it, or ErrNotFound when there was none.
func (r *LikeRepository) Delete(ctx context.Context, likedBy primitive.ObjectID, target models.LikeTarget) (*models.Like, error) {
	if !target.Valid() {
		return nil, models.ErrInvalidLikeTarget
	}
	filter := pairFilter(likedBy, target)

	var like models.Like
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&like)
	logQuery(r.coll.Name(), "findOneAndDelete", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &like, nil
}

// Create inserts a like. A concurrent duplicate surfaces as ErrDuplicate.
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	now := time.Now().UTC()
	like.ID = primitive.NewObjectID()
	like.CreatedAt, like.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, like)
	logQuery(r.coll.Name(), "insertOne", pairFilter(like.LikedBy, like.Target), err)
	return mapErr(err)
}

// LikedVideos returns the videos liked by userID, most recent like first.
func (r *LikeRepository) LikedVideos(ctx context.Context, userID primitive.ObjectID) ([]models.Video, error) {
	pipeline := LikedVideosPipeline(userID)
	cur, err := r.coll.Aggregate(ctx, pipeline)
	logQuery(r.coll.Name(), "aggregate", pipeline, err)
	if err != nil {
		return nil, err
	}

	videos := []models.Video{}
	if err := cur.All(ctx, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// ReceivedLikes counts likes on the owner's published videos.
func (r *LikeRepository) ReceivedLikes(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	pipeline := ReceivedLikesPipeline(owner)
	cur, err := r.coll.Aggregate(ctx, pipeline)
	logQuery(r.coll.Name(), "aggregate", pipeline, err)
	if err != nil {
		return 0, err
	}

	var rows []struct {
		TotalLikes int64 `bson:"totalLikes"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalLikes, nil
}

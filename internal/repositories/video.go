package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// VideoRepository persists videos.
type VideoRepository struct {
	coll *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) *VideoRepository {
	return &VideoRepository{coll: db.Collection(VideosCollection)}
}

func (r *VideoRepository) Create(ctx context.Context, video *models.Video) error {
	now := time.Now().UTC()
	video.ID = primitive.NewObjectID()
	video.CreatedAt, video.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, video)
	logQuery(r.coll.Name(), "insertOne", bson.M{"owner": video.Owner, "title": video.Title}, err)
	return mapErr(err)
}

func (r *VideoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error) {
	filter := bson.D{{Key: "_id", Value: id}}
	var video models.Video
	err := r.coll.FindOne(ctx, filter).Decode(&video)
	logQuery(r.coll.Name(), "findOne", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &video, nil
}

// Exists reports whether a video with id exists.
func (r *VideoRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	filter := bson.D{{Key: "_id", Value: id}}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	logQuery(r.coll.Name(), "countDocuments", filter, err)
	return n > 0, err
}

// IncrementViews adds one view.
func (r *VideoRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.D{{Key: "_id", Value: id}}
	_, err := r.coll.UpdateOne(ctx, filter, bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}})
	logQuery(r.coll.Name(), "updateOne", filter, err)
	return mapErr(err)
}

// UpdateOwned updates title and description when owner owns the video.
func (r *VideoRepository) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, title, description string) (*models.Video, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: title},
		{Key: "description", Value: description},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	return r.findOneAndUpdate(ctx, id, owner, update)
}

// TogglePublishOwned flips isPublished atomically.
func (r *VideoRepository) TogglePublishOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	}
	return r.findOneAndUpdate(ctx, id, owner, update)
}

func (r *VideoRepository) findOneAndUpdate(ctx context.Context, id, owner primitive.ObjectID, update any) (*models.Video, error) {
	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var video models.Video
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&video)
	logQuery(r.coll.Name(), "findOneAndUpdate", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &video, nil
}

// DeleteOwned removes the video when owner owns it and returns it.
func (r *VideoRepository) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error) {
	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	var video models.Video
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&video)
	logQuery(r.coll.Name(), "findOneAndDelete", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &video, nil
}

// Feed returns one page of videos visible to the viewer.
func (r *VideoRepository) Feed(ctx context.Context, f VideoFeedFilter, page, limit int64) (*models.Page[models.VideoCard], error) {
	return aggregatePage[models.VideoCard](ctx, r.coll, VideoFeedPipeline(f), page, limit)
}

// ChannelVideos returns one page of the owner's videos, newest first.
func (r *VideoRepository) ChannelVideos(ctx context.Context, owner primitive.ObjectID, includeUnpublished bool, page, limit int64) (*models.Page[models.ChannelVideo], error) {
	return aggregatePage[models.ChannelVideo](ctx, r.coll, ChannelVideosPipeline(owner, includeUnpublished), page, limit)
}

// CountByOwner counts every video of owner, published or not.
func (r *VideoRepository) CountByOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	filter := bson.D{{Key: "owner", Value: owner}}
	n, err := r.coll.CountDocuments(ctx, filter)
	logQuery(r.coll.Name(), "countDocuments", filter, err)
	return n, err
}

// PublishedViews sums views over the owner's published videos.
func (r *VideoRepository) PublishedViews(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	pipeline := PublishedViewsPipeline(owner)
	cur, err := r.coll.Aggregate(ctx, pipeline)
	logQuery(r.coll.Name(), "aggregate", pipeline, err)
	if err != nil {
		return 0, err
	}

	var rows []struct {
		TotalViews int64 `bson:"totalViews"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].TotalViews, nil
}

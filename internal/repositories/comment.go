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

// CommentRepository persists comments.
type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(CommentsCollection)}
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	now := time.Now().UTC()
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt, comment.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, comment)
	logQuery(r.coll.Name(), "insertOne", bson.M{"video": comment.Video, "owner": comment.Owner}, err)
	return mapErr(err)
}

// Exists reports whether a comment with id exists.
func (r *CommentRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	filter := bson.D{{Key: "_id", Value: id}}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	logQuery(r.coll.Name(), "countDocuments", filter, err)
	return n > 0, err
}

// UpdateOwned replaces the content when owner wrote the comment.
func (r *CommentRepository) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Comment, error) {
	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment models.Comment
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&comment)
	logQuery(r.coll.Name(), "findOneAndUpdate", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &comment, nil
}

// DeleteOwned removes the comment when owner wrote it and returns it.
func (r *CommentRepository) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Comment, error) {
	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	var comment models.Comment
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&comment)
	logQuery(r.coll.Name(), "findOneAndDelete", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &comment, nil
}

// VideoComments returns one page of a video's comments as seen by viewer.
func (r *CommentRepository) VideoComments(ctx context.Context, videoID, viewer primitive.ObjectID, page, limit int64) (*models.Page[models.CommentView], error) {
	return aggregatePage[models.CommentView](ctx, r.coll, VideoCommentsPipeline(videoID, viewer), page, limit)
}

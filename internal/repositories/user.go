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

// UserRepository persists users and runs the user-centric aggregations.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection)}
}

// Create inserts user, filling id and timestamps.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt, user.UpdatedAt = now, now
	if user.WatchHistory == nil {
		user.WatchHistory = []primitive.ObjectID{}
	}

	_, err := r.coll.InsertOne(ctx, user)
	logQuery(r.coll.Name(), "insertOne", bson.M{"userName": user.UserName, "email": user.Email}, err)
	return mapErr(err)
}

func (r *UserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: id}})
}

// FindByUserNameOrEmail matches either field; empty arguments are ignored.
func (r *UserRepository) FindByUserNameOrEmail(ctx context.Context, userName, email string) (*models.User, error) {
	var or bson.A
	if userName != "" {
		or = append(or, bson.D{{Key: "userName", Value: userName}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: email}})
	}
	if len(or) == 0 {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.D{{Key: "$or", Value: or}})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.D) (*models.User, error) {
	var user models.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	logQuery(r.coll.Name(), "findOne", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

// SetRefreshToken stores the single active refresh token of a user.
func (r *UserRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return r.updateOne(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "refreshToken", Value: token},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
}

// UnsetRefreshToken removes the stored refresh token.
func (r *UserRepository) UnsetRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.D{
		{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: ""}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

// UpdatePassword stores a new password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error {
	return r.updateOne(ctx, id, bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: hash},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
}

// AddToWatchHistory records videoID once in the user's history.
func (r *UserRepository) AddToWatchHistory(ctx context.Context, id, videoID primitive.ObjectID) error {
	return r.updateOne(ctx, id, bson.D{{Key: "$addToSet", Value: bson.D{{Key: "watchHistory", Value: videoID}}}})
}

func (r *UserRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.D) error {
	filter := bson.D{{Key: "_id", Value: id}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	logQuery(r.coll.Name(), "updateOne", filter, err)
	if err != nil {
		return mapErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateAccount sets fullName and email and returns the updated user.
func (r *UserRepository) UpdateAccount(ctx context.Context, id primitive.ObjectID, fullName, email string) (*models.User, error) {
	return r.findOneAndSet(ctx, id, bson.D{
		{Key: "fullName", Value: fullName},
		{Key: "email", Value: email},
	})
}

// UpdateAvatar points the user at a new avatar asset.
func (r *UserRepository) UpdateAvatar(ctx context.Context, id primitive.ObjectID, url, key string) (*models.User, error) {
	return r.findOneAndSet(ctx, id, bson.D{
		{Key: "avatar", Value: url},
		{Key: "avatarKey", Value: key},
	})
}

// UpdateCoverImage points the user at a new cover image asset.
func (r *UserRepository) UpdateCoverImage(ctx context.Context, id primitive.ObjectID, url, key string) (*models.User, error) {
	return r.findOneAndSet(ctx, id, bson.D{
		{Key: "coverImage", Value: url},
		{Key: "coverImageKey", Value: key},
	})
}

func (r *UserRepository) findOneAndSet(ctx context.Context, id primitive.ObjectID, set bson.D) (*models.User, error) {
	filter := bson.D{{Key: "_id", Value: id}}
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now().UTC()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, opts).Decode(&user)
	logQuery(r.coll.Name(), "findOneAndUpdate", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &user, nil
}

// ChannelProfile returns the public profile of userName as seen by viewerID.
func (r *UserRepository) ChannelProfile(ctx context.Context, userName string, viewerID primitive.ObjectID) (*models.ChannelProfile, error) {
	pipeline := ChannelProfilePipeline(userName, viewerID)
	cur, err := r.coll.Aggregate(ctx, pipeline)
	logQuery(r.coll.Name(), "aggregate", pipeline, err)
	if err != nil {
		return nil, err
	}

	var profiles []models.ChannelProfile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, ErrNotFound
	}
	return &profiles[0], nil
}

// WatchHistory returns the user's watched videos with their owners.
func (r *UserRepository) WatchHistory(ctx context.Context, id primitive.ObjectID) ([]models.VideoCard, error) {
	pipeline := WatchHistoryPipeline(id)
	cur, err := r.coll.Aggregate(ctx, pipeline)
	logQuery(r.coll.Name(), "aggregate", pipeline, err)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		WatchHistory []models.VideoCard `bson:"watchHistory"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	if rows[0].WatchHistory == nil {
		return []models.VideoCard{}, nil
	}
	return rows[0].WatchHistory, nil
}

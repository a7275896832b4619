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

// PlaylistRepository persists playlists.
type PlaylistRepository struct {
	coll *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{coll: db.Collection(PlaylistsCollection)}
}

func (r *PlaylistRepository) Create(ctx context.Context, p *models.Playlist) error {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt, p.UpdatedAt = now, now
	if p.Videos == nil {
		p.Videos = []primitive.ObjectID{}
	}

	_, err := r.coll.InsertOne(ctx, p)
	logQuery(r.coll.Name(), "insertOne", bson.M{"owner": p.Owner, "name": p.Name}, err)
	return mapErr(err)
}

func (r *PlaylistRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error) {
	filter := bson.D{{Key: "_id", Value: id}}
	var p models.Playlist
	err := r.coll.FindOne(ctx, filter).Decode(&p)
	logQuery(r.coll.Name(), "findOne", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

// ListByOwner returns the owner's playlists, newest first.
func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Playlist, error) {
	filter := bson.D{{Key: "owner", Value: owner}}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	logQuery(r.coll.Name(), "find", filter, err)
	if err != nil {
		return nil, err
	}

	out := []models.Playlist{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOwned sets name and description.
func (r *PlaylistRepository) UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*models.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, owner, bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: name},
		{Key: "description", Value: description},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
}

// AddVideoOwned appends videoID unless already present.
func (r *PlaylistRepository) AddVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, owner, bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

// RemoveVideoOwned removes videoID.
func (r *PlaylistRepository) RemoveVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error) {
	return r.findOneAndUpdate(ctx, id, owner, bson.D{
		{Key: "$pull", Value: bson.D{{Key: "videos", Value: videoID}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now().UTC()}}},
	})
}

func (r *PlaylistRepository) findOneAndUpdate(ctx context.Context, id, owner primitive.ObjectID, update bson.D) (*models.Playlist, error) {
	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p models.Playlist
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p)
	logQuery(r.coll.Name(), "findOneAndUpdate", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

// DeleteOwned removes the playlist and returns it.
func (r *PlaylistRepository) DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Playlist, error) {
	filter := bson.D{{Key: "_id", Value: id}, {Key: "owner", Value: owner}}
	var p models.Playlist
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&p)
	logQuery(r.coll.Name(), "findOneAndDelete", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &p, nil
}

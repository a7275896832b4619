package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// SubscriptionRepository persists subscriber→channel links.
type SubscriptionRepository struct {
	coll *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) *SubscriptionRepository {
	return &SubscriptionRepository{coll: db.Collection(SubscriptionsCollection)}
}

// Delete removes the subscription atomically, or returns ErrNotFound.
func (r *SubscriptionRepository) Delete(ctx context.Context, subscriber, channel primitive.ObjectID) (*models.Subscription, error) {
	filter := bson.D{{Key: "subscriber", Value: subscriber}, {Key: "channel", Value: channel}}

	var sub models.Subscription
	err := r.coll.FindOneAndDelete(ctx, filter).Decode(&sub)
	logQuery(r.coll.Name(), "findOneAndDelete", filter, err)
	if err != nil {
		return nil, mapErr(err)
	}
	return &sub, nil
}

// Create inserts a subscription. A concurrent duplicate surfaces as ErrDuplicate.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	now := time.Now().UTC()
	sub.ID = primitive.NewObjectID()
	sub.CreatedAt, sub.UpdatedAt = now, now

	_, err := r.coll.InsertOne(ctx, sub)
	logQuery(r.coll.Name(), "insertOne", bson.M{"subscriber": sub.Subscriber, "channel": sub.Channel}, err)
	return mapErr(err)
}

// Subscribers lists users subscribed to channel.
func (r *SubscriptionRepository) Subscribers(ctx context.Context, channel primitive.ObjectID) ([]models.Subscriber, error) {
	out := []models.Subscriber{}
	err := r.aggregate(ctx, SubscribersPipeline(channel), &out)
	return out, err
}

// SubscribedChannels lists channels subscriber follows.
func (r *SubscriptionRepository) SubscribedChannels(ctx context.Context, subscriber primitive.ObjectID) ([]models.SubscribedChannel, error) {
	out := []models.SubscribedChannel{}
	err := r.aggregate(ctx, SubscribedChannelsPipeline(subscriber), &out)
	return out, err
}

func (r *SubscriptionRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out any) error {
	cur, err := r.coll.Aggregate(ctx, pipeline)
	logQuery(r.coll.Name(), "aggregate", pipeline, err)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// CountSubscribers counts subscriptions whose channel is channel.
func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channel primitive.ObjectID) (int64, error) {
	return r.count(ctx, bson.D{{Key: "channel", Value: channel}})
}

// CountSubscriptions counts subscriptions made by subscriber.
func (r *SubscriptionRepository) CountSubscriptions(ctx context.Context, subscriber primitive.ObjectID) (int64, error) {
	return r.count(ctx, bson.D{{Key: "subscriber", Value: subscriber}})
}

func (r *SubscriptionRepository) count(ctx context.Context, filter bson.D) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, filter)
	logQuery(r.coll.Name(), "countDocuments", filter, err)
	return n, err
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscription links a subscriber to a channel. Both are users.
type Subscription struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Subscriber is a row of a channel's subscriber list.
type Subscriber struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	UserName        string             `json:"userName" bson:"userName"`
	FullName        string             `json:"fullName" bson:"fullName"`
	Avatar          string             `json:"avatar" bson:"avatar"`
	SubscriberSince time.Time          `json:"subscriberSince" bson:"subscriberSince"`
}

// SubscribedChannel is a row of a user's subscriptions list.
type SubscribedChannel struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	UserName        string             `json:"userName" bson:"userName"`
	FullName        string             `json:"fullName" bson:"fullName"`
	Avatar          string             `json:"avatar" bson:"avatar"`
	SubscribedSince time.Time          `json:"subscribedSince" bson:"subscribedSince"`
}

// SubscriptionToggle reports the state after a toggle.
type SubscriptionToggle struct {
	IsSubscribed bool          `json:"isSubscribed"`
	Subscription *Subscription `json:"subscription,omitempty"`
}

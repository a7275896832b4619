package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Video is an uploaded video owned by a channel.
type Video struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	VideoFile    string             `json:"videoFile" bson:"videoFile"`
	VideoFileKey string             `json:"-" bson:"videoFileKey,omitempty"`
	Thumbnail    string             `json:"thumbnail" bson:"thumbnail"`
	ThumbnailKey string             `json:"-" bson:"thumbnailKey,omitempty"`
	Owner        primitive.ObjectID `json:"owner" bson:"owner"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Duration     float64            `json:"duration" bson:"duration"`
	Views        int64              `json:"views" bson:"views"`
	IsPublished  bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ChannelVideo is a row of the channel video listing.
type ChannelVideo struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	LikesCount  int64              `json:"likesCount" bson:"likesCount"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// VideoCard is a video with its owner resolved, as shown in feeds and watch history.
type VideoCard struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Owner       *UserSummary       `json:"owner" bson:"owner"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// ChannelStats aggregates counters for a channel dashboard.
type ChannelStats struct {
	TotalVideos        int64 `json:"totalVideos"`
	TotalViews         int64 `json:"totalViews"`
	TotalSubscribers   int64 `json:"totalSubscribers"`
	TotalSubscriptions int64 `json:"totalSubscriptions"`
	TotalLikes         int64 `json:"totalLikes"`
}

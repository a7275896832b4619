package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// summaryProjection selects the public profile fields of a joined user.
var summaryProjection = bson.D{
	{Key: "$project", Value: bson.D{
		{Key: "userName", Value: 1},
		{Key: "fullName", Value: 1},
		{Key: "avatar", Value: 1},
	}},
}

func match(filter bson.D) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

func sortBy(fields bson.D) bson.D {
	return bson.D{{Key: "$sort", Value: fields}}
}

func lookup(from, localField, foreignField, as string, pipeline ...bson.D) bson.D {
	stage := bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}
	if len(pipeline) > 0 {
		stage = append(stage, bson.E{Key: "pipeline", Value: pipeline})
	}
	return bson.D{{Key: "$lookup", Value: stage}}
}

func addFields(fields bson.D) bson.D {
	return bson.D{{Key: "$addFields", Value: fields}}
}

func project(fields bson.D) bson.D {
	return bson.D{{Key: "$project", Value: fields}}
}

func unwind(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: path}}
}

func first(path string) bson.D {
	return bson.D{{Key: "$first", Value: path}}
}

func size(path string) bson.D {
	return bson.D{{Key: "$size", Value: path}}
}

// paginateStage splits the stream into a total count and one page of documents.
func paginateStage(page, limit int64) bson.D {
	return bson.D{{Key: "$facet", Value: bson.D{
		{Key: "metadata", Value: bson.A{bson.D{{Key: "$count", Value: "total"}}}},
		{Key: "docs", Value: bson.A{
			bson.D{{Key: "$skip", Value: (page - 1) * limit}},
			bson.D{{Key: "$limit", Value: limit}},
		}},
	}}}
}

type facetResult[T any] struct {
	Metadata []struct {
		Total int64 `bson:"total"`
	} `bson:"metadata"`
	Docs []T `bson:"docs"`
}

// aggregatePage runs pipeline followed by the pagination facet.
func aggregatePage[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, page, limit int64) (*models.Page[T], error) {
	full := append(append(mongo.Pipeline{}, pipeline...), paginateStage(page, limit))

	cur, err := coll.Aggregate(ctx, full)
	logQuery(coll.Name(), "aggregatePage", full, err)
	if err != nil {
		return nil, err
	}

	var rows []facetResult[T]
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	var (
		total int64
		docs  []T
	)
	if len(rows) > 0 {
		if len(rows[0].Metadata) > 0 {
			total = rows[0].Metadata[0].Total
		}
		docs = rows[0].Docs
	}
	return models.NewPage(docs, total, page, limit), nil
}

// VideoCommentsPipeline lists comments of a video, newest first, with owner
// profile, like count and whether viewer liked each comment.
func VideoCommentsPipeline(videoID, viewerID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "video", Value: videoID}}),
		sortBy(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}),
		lookup(UsersCollection, "owner", "_id", "createdBy", summaryProjection),
		lookup(LikesCollection, "_id", "comment", "likes",
			project(bson.D{{Key: "likedBy", Value: 1}}),
		),
		addFields(bson.D{
			{Key: "likeCount", Value: size("$likes")},
			{Key: "isLikedByCurrentUser", Value: bson.D{{Key: "$in", Value: bson.A{viewerID, "$likes.likedBy"}}}},
			{Key: "createdBy", Value: first("$createdBy")},
		}),
		project(bson.D{
			{Key: "content", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "createdBy", Value: 1},
			{Key: "likeCount", Value: 1},
			{Key: "isLikedByCurrentUser", Value: 1},
		}),
	}
}

// PublishedViewsPipeline sums views of the owner's published videos; a
// missing views field counts as zero.
func PublishedViewsPipeline(ownerID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "owner", Value: ownerID}, {Key: "isPublished", Value: true}}),
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$views", 0}}}}}},
		}}},
	}
}

// ReceivedLikesPipeline counts likes on the owner's published videos.
func ReceivedLikesPipeline(ownerID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}}}),
		lookup(VideosCollection, "video", "_id", "videoDetails"),
		unwind("$videoDetails"),
		match(bson.D{
			{Key: "videoDetails.owner", Value: ownerID},
			{Key: "videoDetails.isPublished", Value: true},
		}),
		bson.D{{Key: "$count", Value: "totalLikes"}},
	}
}

// ChannelVideosPipeline lists a channel's videos newest first with like counts.
func ChannelVideosPipeline(ownerID primitive.ObjectID, includeUnpublished bool) mongo.Pipeline {
	filter := bson.D{{Key: "owner", Value: ownerID}}
	if !includeUnpublished {
		filter = append(filter, bson.E{Key: "isPublished", Value: true})
	}
	return mongo.Pipeline{
		match(filter),
		sortBy(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}),
		lookup(LikesCollection, "_id", "video", "likes", project(bson.D{{Key: "_id", Value: 1}})),
		addFields(bson.D{{Key: "likesCount", Value: size("$likes")}}),
		project(bson.D{
			{Key: "videoFile", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "duration", Value: 1},
			{Key: "views", Value: 1},
			{Key: "isPublished", Value: 1},
			{Key: "likesCount", Value: 1},
			{Key: "createdAt", Value: 1},
		}),
	}
}

// LikedVideosPipeline flattens the user's video likes into bare video documents.
func LikedVideosPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{
			{Key: "likedBy", Value: userID},
			{Key: "video", Value: bson.D{{Key: "$ne", Value: nil}}},
		}),
		sortBy(bson.D{{Key: "createdAt", Value: -1}}),
		lookup(VideosCollection, "video", "_id", "videoDetails"),
		unwind("$videoDetails"),
		bson.D{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$videoDetails"}}}},
	}
}

func counterpartPipeline(matchField, joinField, sinceField string, id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: matchField, Value: id}}),
		sortBy(bson.D{{Key: "createdAt", Value: -1}}),
		lookup(UsersCollection, joinField, "_id", "details"),
		unwind("$details"),
		project(bson.D{
			{Key: "_id", Value: "$details._id"},
			{Key: "userName", Value: "$details.userName"},
			{Key: "fullName", Value: "$details.fullName"},
			{Key: "avatar", Value: "$details.avatar"},
			{Key: sinceField, Value: "$createdAt"},
		}),
	}
}

// SubscribersPipeline lists the users subscribed to channelID.
func SubscribersPipeline(channelID primitive.ObjectID) mongo.Pipeline {
	return counterpartPipeline("channel", "subscriber", "subscriberSince", channelID)
}

// SubscribedChannelsPipeline lists the channels subscriberID follows.
func SubscribedChannelsPipeline(subscriberID primitive.ObjectID) mongo.Pipeline {
	return counterpartPipeline("subscriber", "channel", "subscribedSince", subscriberID)
}

// ChannelProfilePipeline resolves the public profile of userName as seen by viewerID.
func ChannelProfilePipeline(userName string, viewerID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "userName", Value: userName}}),
		lookup(SubscriptionsCollection, "_id", "channel", "subscribers"),
		lookup(SubscriptionsCollection, "_id", "subscriber", "subscribedTo"),
		addFields(bson.D{
			{Key: "subscribersCount", Value: size("$subscribers")},
			{Key: "channelsSubscribedToCount", Value: size("$subscribedTo")},
			{Key: "isSubscribed", Value: bson.D{{Key: "$in", Value: bson.A{viewerID, "$subscribers.subscriber"}}}},
		}),
		project(bson.D{
			{Key: "userName", Value: 1},
			{Key: "fullName", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
			{Key: "createdAt", Value: 1},
		}),
	}
}

// WatchHistoryPipeline resolves the user's watch history with video owners.
func WatchHistoryPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "_id", Value: userID}}),
		lookup(VideosCollection, "watchHistory", "_id", "watchHistory",
			lookup(UsersCollection, "owner", "_id", "owner", summaryProjection),
			addFields(bson.D{{Key: "owner", Value: first("$owner")}}),
		),
		project(bson.D{{Key: "watchHistory", Value: 1}}),
	}
}

// VideoFeedFilter narrows the public video listing.
type VideoFeedFilter struct {
	ViewerID primitive.ObjectID
	OwnerID  primitive.ObjectID
	Query    string
	SortBy   string
	SortDesc bool
}

// VideoFeedPipeline lists videos visible to the viewer: published ones and the viewer's own.
func VideoFeedPipeline(f VideoFeedFilter) mongo.Pipeline {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "isPublished", Value: true}},
		bson.D{{Key: "owner", Value: f.ViewerID}},
	}}}
	if !f.OwnerID.IsZero() {
		filter = append(filter, bson.E{Key: "owner", Value: f.OwnerID})
	}
	if f.Query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		filter = append(filter, bson.E{Key: "$and", Value: bson.A{
			bson.D{{Key: "$or", Value: bson.A{
				bson.D{{Key: "title", Value: re}},
				bson.D{{Key: "description", Value: re}},
			}}},
		}})
	}

	field := f.SortBy
	if field == "" {
		field = "createdAt"
	}
	dir := 1
	if f.SortDesc {
		dir = -1
	}

	return mongo.Pipeline{
		match(filter),
		sortBy(bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}),
		lookup(UsersCollection, "owner", "_id", "owner", summaryProjection),
		addFields(bson.D{{Key: "owner", Value: first("$owner")}}),
	}
}

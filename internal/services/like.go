package services

//go:generate mockgen -source=like.go -destination=like_mock.go -package=services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/repositories"
)

// LikeStore defines persistence operations on likes.
type LikeStore interface {
	Delete(ctx context.Context, likedBy primitive.ObjectID, target models.LikeTarget) (*models.Like, error)
	Create(ctx context.Context, like *models.Like) error
	LikedVideos(ctx context.Context, userID primitive.ObjectID) ([]models.Video, error)
}

// VideoFinder loads a video by id.
type VideoFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
}

// LikeService toggles likes on videos, comments and tweets.
type LikeService struct {
	likes    LikeStore
	videos   VideoFinder
	comments ExistenceChecker
	stats    StatsInvalidator
	events   EventSink
}

func NewLikeService(likes LikeStore, videos VideoFinder, comments ExistenceChecker, stats StatsInvalidator, events EventSink) *LikeService {
	return &LikeService{
		likes:    likes,
		videos:   videos,
		comments: comments,
		stats:    stats,
		events:   events,
	}
}

// Toggle removes the caller's like on target if present and creates it otherwise.
// Both steps are single atomic writes; a concurrent duplicate insert means the
// like is already on.
func (svc *LikeService) Toggle(ctx context.Context, likedBy primitive.ObjectID, target models.LikeTarget) (*models.LikeToggle, error) {
	if !target.Valid() {
		return nil, apierror.BadRequest("Invalid target id")
	}
	owner, err := svc.ensureTarget(ctx, target)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)

	_, err = svc.likes.Delete(ctx, likedBy, target)
	switch {
	case err == nil:
		svc.after(ctx, likedBy, owner, target, false)
		return &models.LikeToggle{IsLiked: false}, nil
	case !errors.Is(err, repositories.ErrNotFound):
		log.Errorw("failed to remove like", "target", target.ID.Hex(), "kind", target.Kind, "error", err)
		return nil, err
	}

	like := &models.Like{LikedBy: likedBy, Target: target}
	if err := svc.likes.Create(ctx, like); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return &models.LikeToggle{IsLiked: true}, nil
		}
		log.Errorw("failed to save like", "target", target.ID.Hex(), "kind", target.Kind, "error", err)
		return nil, apierror.Internal("Failed to toggle like")
	}

	svc.after(ctx, likedBy, owner, target, true)
	return &models.LikeToggle{IsLiked: true, Like: like}, nil
}

// LikedVideos lists the videos the user liked. An empty list is NotFound.
func (svc *LikeService) LikedVideos(ctx context.Context, userID primitive.ObjectID) ([]models.Video, error) {
	videos, err := svc.likes.LikedVideos(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, apierror.NotFound("No liked videos found")
	}
	return videos, nil
}

// ensureTarget checks that video and comment targets exist and returns the
// owner of a video target. Tweets have no backing collection.
func (svc *LikeService) ensureTarget(ctx context.Context, target models.LikeTarget) (primitive.ObjectID, error) {
	switch target.Kind {
	case models.LikeTargetVideo:
		video, err := svc.videos.FindByID(ctx, target.ID)
		if errors.Is(err, repositories.ErrNotFound) {
			return primitive.NilObjectID, apierror.NotFound("Video not found")
		}
		if err != nil {
			return primitive.NilObjectID, err
		}
		return video.Owner, nil
	case models.LikeTargetComment:
		ok, err := svc.comments.Exists(ctx, target.ID)
		if err != nil {
			return primitive.NilObjectID, err
		}
		if !ok {
			return primitive.NilObjectID, apierror.NotFound("Comment not found")
		}
	}
	return primitive.NilObjectID, nil
}

// after drops the cached stats of the liked video's channel and publishes the toggle.
func (svc *LikeService) after(ctx context.Context, actor, owner primitive.ObjectID, target models.LikeTarget, active bool) {
	if svc.stats != nil && !owner.IsZero() {
		if err := svc.stats.Invalidate(ctx, owner); err != nil {
			logger.FromContext(ctx).Warnw("failed to invalidate channel stats", "channelId", owner.Hex(), "error", err)
		}
	}
	publish(ctx, svc.events, toggleEvent(models.EventLikeToggled, actor, target.ID, string(target.Kind), active))
}

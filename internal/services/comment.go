package services

//go:generate mockgen -source=comment.go -destination=comment_mock.go -package=services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/validation"
)

// CommentStore defines persistence operations on comments.
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, content string) (*models.Comment, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Comment, error)
	VideoComments(ctx context.Context, videoID, viewer primitive.ObjectID, page, limit int64) (*models.Page[models.CommentView], error)
}

// ExistenceChecker reports whether a document exists.
type ExistenceChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// CommentService manages comments on videos.
type CommentService struct {
	comments CommentStore
	videos   ExistenceChecker
	events   EventSink
}

func NewCommentService(comments CommentStore, videos ExistenceChecker, events EventSink) *CommentService {
	return &CommentService{comments: comments, videos: videos, events: events}
}

// VideoComments returns one page of comments. An empty page is NotFound.
func (svc *CommentService) VideoComments(ctx context.Context, videoID, viewer primitive.ObjectID, q models.PageQuery) (*models.CommentPage, error) {
	if err := validation.Struct(q); err != nil {
		return nil, invalidInput(err)
	}

	page, err := svc.comments.VideoComments(ctx, videoID, viewer, q.Page, q.Limit)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to load comments", "videoId", videoID.Hex(), "error", err)
		return nil, err
	}
	if len(page.Docs) == 0 {
		return nil, apierror.NotFound("No comments found")
	}
	return models.NewCommentPage(page), nil
}

// Add comments on an existing video.
func (svc *CommentService) Add(ctx context.Context, videoID, owner primitive.ObjectID, req models.CommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apierror.BadRequest("Content is required")
	}

	ok, err := svc.videos.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.NotFound("Video not found")
	}

	comment := &models.Comment{Content: content, Video: videoID, Owner: owner}
	if err := svc.comments.Create(ctx, comment); err != nil {
		logger.FromContext(ctx).Errorw("failed to save comment", "videoId", videoID.Hex(), "error", err)
		return nil, apierror.Internal("Failed to add comment")
	}

	publish(ctx, svc.events, newEvent(models.EventCommentAdded, owner, videoID, string(models.LikeTargetVideo)))
	return comment, nil
}

// Update edits an owned comment.
func (svc *CommentService) Update(ctx context.Context, id, owner primitive.ObjectID, req models.CommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apierror.BadRequest("Content is required")
	}

	comment, err := svc.comments.UpdateOwned(ctx, id, owner, content)
	if err != nil {
		return nil, ownedErr(err, "Comment not found")
	}
	return comment, nil
}

// Delete removes an owned comment.
func (svc *CommentService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if _, err := svc.comments.DeleteOwned(ctx, id, owner); err != nil {
		return ownedErr(err, "Comment not found")
	}
	return nil
}

package services

//go:generate mockgen -source=video.go -destination=video_mock.go -package=services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/repositories"
	"github.com/sbilibin2017/gw-videotube/internal/validation"
)

// VideoStore defines persistence operations on videos.
type VideoStore interface {
	Create(ctx context.Context, video *models.Video) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Video, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID) error
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, title, description string) (*models.Video, error)
	TogglePublishOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error)
	Feed(ctx context.Context, f repositories.VideoFeedFilter, page, limit int64) (*models.Page[models.VideoCard], error)
}

// WatchHistoryRecorder appends a video to a user's watch history.
type WatchHistoryRecorder interface {
	AddToWatchHistory(ctx context.Context, id, videoID primitive.ObjectID) error
}

// StatsInvalidator drops cached channel stats.
type StatsInvalidator interface {
	Invalidate(ctx context.Context, channelID primitive.ObjectID) error
}

// PublishInput is the video publish form.
type PublishInput struct {
	models.VideoRequest
	VideoFile *multipart.FileHeader
	Thumbnail *multipart.FileHeader
}

// VideoService publishes, lists and edits videos.
type VideoService struct {
	videos   VideoStore
	history  WatchHistoryRecorder
	uploader AssetUploader
	stats    StatsInvalidator
}

func NewVideoService(videos VideoStore, history WatchHistoryRecorder, uploader AssetUploader, stats StatsInvalidator) *VideoService {
	return &VideoService{
		videos:   videos,
		history:  history,
		uploader: uploader,
		stats:    stats,
	}
}

// List returns one page of videos visible to viewer.
func (svc *VideoService) List(ctx context.Context, viewer primitive.ObjectID, q models.VideoListQuery) (*models.Page[models.VideoCard], error) {
	if err := validation.Struct(q); err != nil {
		return nil, invalidInput(err)
	}
	if err := validation.Struct(models.ChannelVideosQuery(q.PageQuery)); err != nil {
		return nil, invalidInput(err)
	}

	filter := repositories.VideoFeedFilter{
		ViewerID: viewer,
		Query:    strings.TrimSpace(q.Query),
		SortBy:   q.SortBy,
		SortDesc: q.SortType != "asc",
	}
	if q.UserID != "" {
		filter.OwnerID, _ = validation.ObjectID(q.UserID)
	}
	return svc.videos.Feed(ctx, filter, q.Page, q.Limit)
}

// Publish uploads the video file and thumbnail and stores the video as published.
func (svc *VideoService) Publish(ctx context.Context, owner primitive.ObjectID, in PublishInput) (*models.Video, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if validation.Blank(in.Title, in.Description) {
		return nil, apierror.BadRequest("Title and description are required")
	}
	if err := validation.Struct(in.VideoRequest); err != nil {
		return nil, invalidInput(err)
	}
	if in.VideoFile == nil {
		return nil, apierror.BadRequest("Video file is required")
	}
	if in.Thumbnail == nil {
		return nil, apierror.BadRequest("Thumbnail is required")
	}

	file, err := svc.uploader.Upload(ctx, in.VideoFile, "videos")
	if err != nil {
		return nil, apierror.Internal("Error while uploading video")
	}
	thumb, err := svc.uploader.Upload(ctx, in.Thumbnail, "thumbnails")
	if err != nil {
		svc.discard(ctx, file.Key)
		return nil, apierror.Internal("Error while uploading thumbnail")
	}

	video := &models.Video{
		VideoFile:    file.URL,
		VideoFileKey: file.Key,
		Thumbnail:    thumb.URL,
		ThumbnailKey: thumb.Key,
		Owner:        owner,
		Title:        in.Title,
		Description:  in.Description,
		Duration:     in.Duration,
		IsPublished:  true,
	}
	if err := svc.videos.Create(ctx, video); err != nil {
		logger.FromContext(ctx).Errorw("failed to save video", "owner", owner.Hex(), "error", err)
		svc.discard(ctx, file.Key)
		svc.discard(ctx, thumb.Key)
		return nil, apierror.Internal("Something went wrong while publishing the video")
	}

	svc.invalidate(ctx, owner)
	return video, nil
}

// Get returns a video, counting the view and recording it in the viewer's
// history. Unpublished videos are visible to their owner only.
func (svc *VideoService) Get(ctx context.Context, id, viewer primitive.ObjectID) (*models.Video, error) {
	log := logger.FromContext(ctx)

	video, err := svc.videos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apierror.NotFound("Video not found")
		}
		return nil, err
	}
	if !video.IsPublished && video.Owner != viewer {
		return nil, apierror.NotFound("Video not found")
	}

	if err := svc.videos.IncrementViews(ctx, id); err != nil {
		log.Warnw("failed to count view", "videoId", id.Hex(), "error", err)
	} else {
		video.Views++
	}
	if err := svc.history.AddToWatchHistory(ctx, viewer, id); err != nil {
		log.Warnw("failed to record watch history", "videoId", id.Hex(), "error", err)
	}
	return video, nil
}

// Update edits title and description of an owned video.
func (svc *VideoService) Update(ctx context.Context, id, owner primitive.ObjectID, req models.VideoRequest) (*models.Video, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if validation.Blank(req.Title, req.Description) {
		return nil, apierror.BadRequest("Title and description are required")
	}

	video, err := svc.videos.UpdateOwned(ctx, id, owner, req.Title, req.Description)
	if err != nil {
		return nil, ownedErr(err, "Video not found")
	}
	return video, nil
}

// TogglePublish flips the published flag of an owned video.
func (svc *VideoService) TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error) {
	video, err := svc.videos.TogglePublishOwned(ctx, id, owner)
	if err != nil {
		return nil, ownedErr(err, "Video not found")
	}
	svc.invalidate(ctx, owner)
	return video, nil
}

// Delete removes an owned video and then its remote assets.
func (svc *VideoService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	video, err := svc.videos.DeleteOwned(ctx, id, owner)
	if err != nil {
		return ownedErr(err, "Video not found")
	}
	svc.discard(ctx, video.VideoFileKey)
	svc.discard(ctx, video.ThumbnailKey)
	svc.invalidate(ctx, owner)
	return nil
}

func (svc *VideoService) discard(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := svc.uploader.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Warnw("failed to delete video asset", "key", key, "error", err)
	}
}

func (svc *VideoService) invalidate(ctx context.Context, owner primitive.ObjectID) {
	if svc.stats == nil {
		return
	}
	if err := svc.stats.Invalidate(ctx, owner); err != nil {
		logger.FromContext(ctx).Warnw("failed to invalidate channel stats", "channelId", owner.Hex(), "error", err)
	}
}

// ownedErr maps a failed owner-scoped write. A miss means absent or not owned.
func ownedErr(err error, notFound string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apierror.NotFound(notFound)
	}
	return err
}

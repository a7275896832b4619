package handlers

//go:generate mockgen -source=videos.go -destination=videos_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/services"
)

// VideoManager is the video service as seen by the handlers.
type VideoManager interface {
	List(ctx context.Context, viewer primitive.ObjectID, q models.VideoListQuery) (*models.Page[models.VideoCard], error)
	Publish(ctx context.Context, owner primitive.ObjectID, in services.PublishInput) (*models.Video, error)
	Get(ctx context.Context, id, viewer primitive.ObjectID) (*models.Video, error)
	Update(ctx context.Context, id, owner primitive.ObjectID, req models.VideoRequest) (*models.Video, error)
	TogglePublish(ctx context.Context, id, owner primitive.ObjectID) (*models.Video, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
}

// NewListVideosHandler returns a page of videos visible to the caller.
// @Summary List videos
// @Tags videos
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param query query string false "Title or description search"
// @Param sortBy query string false "createdAt, views, duration or title"
// @Param sortType query string false "asc or desc"
// @Param userId query string false "Owner id"
// @Success 200 {object} models.ApiResponse "Page of videos"
// @Failure 400 {object} models.ErrorResponse "Invalid query"
// @Router /videos [get]
func NewListVideosHandler(svc VideoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}
		page, err := pageQuery(r, 1, 10)
		if err != nil {
			respondError(w, r, err)
			return
		}

		q := r.URL.Query()
		videos, err := svc.List(r.Context(), user.ID, models.VideoListQuery{
			PageQuery: page,
			Query:     q.Get("query"),
			SortBy:    q.Get("sortBy"),
			SortType:  q.Get("sortType"),
			UserID:    q.Get("userId"),
		})
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, videos, "Videos fetched successfully")
	}
}

// NewPublishVideoHandler returns an HTTP handler that uploads and publishes a video.
// @Summary Publish a video
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param duration formData number false "Duration in seconds"
// @Param videoFile formData file true "Video file"
// @Param thumbnail formData file true "Thumbnail"
// @Success 201 {object} models.ApiResponse "Published video"
// @Failure 400 {object} models.ErrorResponse "Missing fields or files"
// @Router /videos [post]
func NewPublishVideoHandler(svc VideoManager, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}
		if err := parseMultipart(w, r, maxBytes); err != nil {
			respondError(w, r, err)
			return
		}

		in := services.PublishInput{
			VideoRequest: models.VideoRequest{
				Title:       r.FormValue("title"),
				Description: r.FormValue("description"),
			},
			VideoFile: formFile(r, "videoFile"),
			Thumbnail: formFile(r, "thumbnail"),
		}
		if raw := strings.TrimSpace(r.FormValue("duration")); raw != "" {
			if in.Duration, err = strconv.ParseFloat(raw, 64); err != nil {
				respondError(w, r, apierror.BadRequest("Invalid duration"))
				return
			}
		}

		video, err := svc.Publish(r.Context(), user.ID, in)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, video, "Video published successfully")
	}
}

// NewGetVideoHandler returns a single video and counts the view.
// @Summary Get a video
// @Tags videos
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video id"
// @Success 200 {object} models.ApiResponse "Video"
// @Failure 400 {object} models.ErrorResponse "Invalid videoId"
// @Failure 404 {object} models.ErrorResponse "Video not found"
// @Router /videos/{videoId} [get]
func NewGetVideoHandler(svc VideoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, "videoId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		video, err := svc.Get(r.Context(), id, user.ID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, video, "Video fetched successfully")
	}
}

// NewUpdateVideoHandler returns an HTTP handler that edits an owned video.
// @Summary Update a video
// @Tags videos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video id"
// @Param videoRequest body models.VideoRequest true "Title and description"
// @Success 200 {object} models.ApiResponse "Updated video"
// @Failure 404 {object} models.ErrorResponse "Video not found"
// @Router /videos/{videoId} [patch]
func NewUpdateVideoHandler(svc VideoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, "videoId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req models.VideoRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		video, err := svc.Update(r.Context(), id, user.ID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, video, "Video updated successfully")
	}
}

// NewTogglePublishHandler returns an HTTP handler that flips isPublished of an owned video.
// @Summary Toggle publish status
// @Tags videos
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video id"
// @Success 200 {object} models.ApiResponse "Updated video"
// @Failure 404 {object} models.ErrorResponse "Video not found"
// @Router /videos/toggle/publish/{videoId} [patch]
func NewTogglePublishHandler(svc VideoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, "videoId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		video, err := svc.TogglePublish(r.Context(), id, user.ID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, video, "Video publish status toggled successfully")
	}
}

// NewDeleteVideoHandler returns an HTTP handler that deletes an owned video.
// @Summary Delete a video
// @Tags videos
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video id"
// @Success 200 {object} models.ApiResponse "Deleted"
// @Failure 404 {object} models.ErrorResponse "Video not found"
// @Router /videos/{videoId} [delete]
func NewDeleteVideoHandler(svc VideoManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, "videoId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id, user.ID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, struct{}{}, "Video deleted successfully")
	}
}

// userAndID resolves the caller and one ObjectID path parameter.
func userAndID(r *http.Request, param string) (*models.User, primitive.ObjectID, error) {
	user, err := currentUser(r)
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	id, err := pathID(r, param)
	if err != nil {
		return nil, primitive.NilObjectID, err
	}
	return user, id, nil
}

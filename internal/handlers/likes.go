package handlers

//go:generate mockgen -source=likes.go -destination=likes_mock.go -package=handlers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// LikeToggler is the like service as seen by the handlers.
type LikeToggler interface {
	Toggle(ctx context.Context, likedBy primitive.ObjectID, target models.LikeTarget) (*models.LikeToggle, error)
	LikedVideos(ctx context.Context, userID primitive.ObjectID) ([]models.Video, error)
}

// NewToggleVideoLikeHandler likes or unlikes a video.
// @Summary Toggle video like
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video id"
// @Success 200 {object} models.ApiResponse "Like state"
// @Failure 404 {object} models.ErrorResponse "Video not found"
// @Router /likes/toggleLike/v/{videoId} [post]
func NewToggleVideoLikeHandler(svc LikeToggler) http.HandlerFunc {
	return toggleLikeHandler(svc, "videoId", models.VideoTarget)
}

// NewToggleCommentLikeHandler likes or unlikes a comment.
// @Summary Toggle comment like
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment id"
// @Success 200 {object} models.ApiResponse "Like state"
// @Failure 404 {object} models.ErrorResponse "Comment not found"
// @Router /likes/toggleLike/c/{commentId} [post]
func NewToggleCommentLikeHandler(svc LikeToggler) http.HandlerFunc {
	return toggleLikeHandler(svc, "commentId", models.CommentTarget)
}

// NewToggleTweetLikeHandler likes or unlikes a tweet.
// @Summary Toggle tweet like
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param tweetId path string true "Tweet id"
// @Success 200 {object} models.ApiResponse "Like state"
// @Failure 400 {object} models.ErrorResponse "Invalid tweetId"
// @Router /likes/toggleLike/t/{tweetId} [post]
func NewToggleTweetLikeHandler(svc LikeToggler) http.HandlerFunc {
	return toggleLikeHandler(svc, "tweetId", models.TweetTarget)
}

func toggleLikeHandler(svc LikeToggler, param string, target func(primitive.ObjectID) models.LikeTarget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, param)
		if err != nil {
			respondError(w, r, err)
			return
		}

		res, err := svc.Toggle(r.Context(), user.ID, target(id))
		if err != nil {
			respondError(w, r, err)
			return
		}

		message := "Like removed successfully"
		if res.IsLiked {
			message = "Like added successfully"
		}
		respondJSON(w, http.StatusOK, res, message)
	}
}

// NewLikedVideosHandler returns the videos the current user liked.
// @Summary Liked videos
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Liked videos"
// @Failure 404 {object} models.ErrorResponse "No liked videos found"
// @Router /likes/Liked/videos [get]
func NewLikedVideosHandler(svc LikeToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		videos, err := svc.LikedVideos(r.Context(), user.ID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, videos, "Liked videos fetched successfully")
	}
}

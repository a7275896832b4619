package handlers

//go:generate mockgen -source=comments.go -destination=comments_mock.go -package=handlers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// CommentManager is the comment service as seen by the handlers.
type CommentManager interface {
	VideoComments(ctx context.Context, videoID, viewer primitive.ObjectID, q models.PageQuery) (*models.CommentPage, error)
	Add(ctx context.Context, videoID, owner primitive.ObjectID, req models.CommentRequest) (*models.Comment, error)
	Update(ctx context.Context, id, owner primitive.ObjectID, req models.CommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
}

// NewVideoCommentsHandler returns one page of comments on a video, newest first.
// @Summary List video comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video id"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.ApiResponse "Comments page"
// @Failure 400 {object} models.ErrorResponse "Invalid videoId"
// @Failure 404 {object} models.ErrorResponse "No comments found"
// @Router /comments/getVideoComments/{videoId} [get]
func NewVideoCommentsHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, videoID, err := userAndID(r, "videoId")
		if err != nil {
			respondError(w, r, err)
			return
		}
		q, err := pageQuery(r, 1, 10)
		if err != nil {
			respondError(w, r, err)
			return
		}

		page, err := svc.VideoComments(r.Context(), videoID, user.ID, q)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, page, "Comments fetched successfully")
	}
}

// NewAddCommentHandler returns an HTTP handler that comments on a video.
// @Summary Add a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video id"
// @Param commentRequest body models.CommentRequest true "Comment"
// @Success 201 {object} models.ApiResponse "Created comment"
// @Failure 404 {object} models.ErrorResponse "Video not found"
// @Router /comments/addComment/{videoId} [post]
func NewAddCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, videoID, err := userAndID(r, "videoId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req models.CommentRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		comment, err := svc.Add(r.Context(), videoID, user.ID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, comment, "Comment added successfully")
	}
}

// NewUpdateCommentHandler returns an HTTP handler that edits an owned comment.
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment id"
// @Param commentRequest body models.CommentRequest true "Comment"
// @Success 200 {object} models.ApiResponse "Updated comment"
// @Failure 404 {object} models.ErrorResponse "Comment not found"
// @Router /comments/updateComment/{commentId} [put]
func NewUpdateCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, "commentId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req models.CommentRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		comment, err := svc.Update(r.Context(), id, user.ID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, comment, "Comment updated successfully")
	}
}

// NewDeleteCommentHandler returns an HTTP handler that deletes an owned comment.
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param commentId path string true "Comment id"
// @Success 200 {object} models.ApiResponse "Deleted"
// @Failure 404 {object} models.ErrorResponse "Comment not found"
// @Router /comments/deleteComment/{commentId} [delete]
func NewDeleteCommentHandler(svc CommentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, "commentId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id, user.ID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, struct{}{}, "Comment deleted successfully")
	}
}

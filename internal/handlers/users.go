package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// AccountUpdater edits profile fields.
type AccountUpdater interface {
	UpdateAccount(ctx context.Context, userID primitive.ObjectID, req models.UpdateAccountRequest) (*models.User, error)
}

// ImageUpdater replaces profile images.
type ImageUpdater interface {
	UpdateAvatar(ctx context.Context, current *models.User, fh *multipart.FileHeader) (*models.User, error)
	UpdateCoverImage(ctx context.Context, current *models.User, fh *multipart.FileHeader) (*models.User, error)
}

// ChannelReader reads public channel data.
type ChannelReader interface {
	ChannelProfile(ctx context.Context, userName string, viewer primitive.ObjectID) (*models.ChannelProfile, error)
	WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]models.VideoCard, error)
}

// NewCurrentUserHandler returns the authenticated user.
// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Current user"
// @Failure 401 {object} models.ErrorResponse "Unauthorized request"
// @Router /users/current-user [get]
func NewCurrentUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, user, "Current user fetched successfully")
	}
}

// NewUpdateAccountHandler returns an HTTP handler that edits full name and email.
// @Summary Update account details
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateAccountRequest body models.UpdateAccountRequest true "Full name and email"
// @Success 200 {object} models.ApiResponse "Updated user"
// @Failure 400 {object} models.ErrorResponse "All fields are required"
// @Failure 409 {object} models.ErrorResponse "Email already in use"
// @Router /users/update-account [patch]
func NewUpdateAccountHandler(svc AccountUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req models.UpdateAccountRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		updated, err := svc.UpdateAccount(r.Context(), user.ID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, updated, "Account details updated successfully")
	}
}

// NewUpdateAvatarHandler returns an HTTP handler that replaces the avatar.
// @Summary Update avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} models.ApiResponse "Updated user"
// @Failure 400 {object} models.ErrorResponse "Avatar file is missing"
// @Router /users/update-avatar [patch]
func NewUpdateAvatarHandler(svc ImageUpdater, maxBytes int64) http.HandlerFunc {
	return imageHandler(maxBytes, "avatar", svc.UpdateAvatar, "Avatar updated successfully")
}

// NewUpdateCoverImageHandler returns an HTTP handler that replaces the cover image.
// @Summary Update cover image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} models.ApiResponse "Updated user"
// @Failure 400 {object} models.ErrorResponse "Cover image file is missing"
// @Router /users/update-cover-image [patch]
func NewUpdateCoverImageHandler(svc ImageUpdater, maxBytes int64) http.HandlerFunc {
	return imageHandler(maxBytes, "coverImage", svc.UpdateCoverImage, "Cover image updated successfully")
}

func imageHandler(
	maxBytes int64,
	field string,
	update func(context.Context, *models.User, *multipart.FileHeader) (*models.User, error),
	message string,
) http.HandlerFunc {
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

		updated, err := update(r.Context(), user, formFile(r, field))
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, updated, message)
	}
}

// NewChannelProfileHandler returns the public profile of a channel.
// @Summary Channel profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userName path string true "Channel user name"
// @Success 200 {object} models.ApiResponse "Channel profile"
// @Failure 404 {object} models.ErrorResponse "Channel does not exist"
// @Router /users/c/{userName} [get]
func NewChannelProfileHandler(svc ChannelReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		profile, err := svc.ChannelProfile(r.Context(), strings.TrimSpace(chi.URLParam(r, "userName")), user.ID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, profile, "User channel fetched successfully")
	}
}

// NewWatchHistoryHandler returns the videos the current user watched.
// @Summary Watch history
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Watched videos with owners"
// @Router /users/watch-history [get]
func NewWatchHistoryHandler(svc ChannelReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		history, err := svc.WatchHistory(r.Context(), user.ID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, history, "Watch history fetched successfully")
	}
}

package handlers

//go:generate mockgen -source=playlists.go -destination=playlists_mock.go -package=handlers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// PlaylistManager is the playlist service as seen by the handlers.
type PlaylistManager interface {
	Create(ctx context.Context, owner primitive.ObjectID, req models.PlaylistRequest) (*models.Playlist, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error)
	ListByUser(ctx context.Context, owner primitive.ObjectID) ([]models.Playlist, error)
	Update(ctx context.Context, id, owner primitive.ObjectID, req models.PlaylistRequest) (*models.Playlist, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
	AddVideo(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error)
	RemoveVideo(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error)
}

// NewCreatePlaylistHandler creates a playlist owned by the current user.
// @Summary Create a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlistRequest body models.PlaylistRequest true "Name and description"
// @Success 201 {object} models.ApiResponse "Created playlist"
// @Failure 400 {object} models.ErrorResponse "Playlist name is required"
// @Router /playlists [post]
func NewCreatePlaylistHandler(svc PlaylistManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req models.PlaylistRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		p, err := svc.Create(r.Context(), user.ID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, p, "Playlist created successfully")
	}
}

// NewUserPlaylistsHandler lists a user's playlists.
// @Summary User playlists
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User id"
// @Success 200 {object} models.ApiResponse "Playlists, possibly empty"
// @Router /playlists/user/{userId} [get]
func NewUserPlaylistsHandler(svc PlaylistManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, owner, err := userAndID(r, "userId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		playlists, err := svc.ListByUser(r.Context(), owner)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, playlists, "Playlists fetched successfully")
	}
}

// NewGetPlaylistHandler returns one playlist.
// @Summary Get a playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} models.ApiResponse "Playlist"
// @Failure 404 {object} models.ErrorResponse "Playlist not found"
// @Router /playlists/{playlistId} [get]
func NewGetPlaylistHandler(svc PlaylistManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, id, err := userAndID(r, "playlistId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		p, err := svc.Get(r.Context(), id)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, p, "Playlist fetched successfully")
	}
}

// NewUpdatePlaylistHandler edits an owned playlist.
// @Summary Update a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param playlistId path string true "Playlist id"
// @Param playlistRequest body models.PlaylistRequest true "Name and description"
// @Success 200 {object} models.ApiResponse "Updated playlist"
// @Failure 404 {object} models.ErrorResponse "Playlist not found"
// @Router /playlists/{playlistId} [patch]
func NewUpdatePlaylistHandler(svc PlaylistManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, "playlistId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req models.PlaylistRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		p, err := svc.Update(r.Context(), id, user.ID, req)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, p, "Playlist updated successfully")
	}
}

// NewDeletePlaylistHandler deletes an owned playlist.
// @Summary Delete a playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} models.ApiResponse "Deleted"
// @Failure 404 {object} models.ErrorResponse "Playlist not found"
// @Router /playlists/{playlistId} [delete]
func NewDeletePlaylistHandler(svc PlaylistManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, "playlistId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id, user.ID); err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, struct{}{}, "Playlist deleted successfully")
	}
}

// NewAddToPlaylistHandler appends a video to an owned playlist.
// @Summary Add a video to a playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video id"
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} models.ApiResponse "Updated playlist"
// @Failure 404 {object} models.ErrorResponse "Playlist or video not found"
// @Router /playlists/add/{videoId}/{playlistId} [patch]
func NewAddToPlaylistHandler(svc PlaylistManager) http.HandlerFunc {
	return playlistVideoHandler(svc.AddVideo, "Video added to playlist")
}

// NewRemoveFromPlaylistHandler removes a video from an owned playlist.
// @Summary Remove a video from a playlist
// @Tags playlists
// @Produce json
// @Security BearerAuth
// @Param videoId path string true "Video id"
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} models.ApiResponse "Updated playlist"
// @Failure 404 {object} models.ErrorResponse "Playlist not found"
// @Router /playlists/remove/{videoId}/{playlistId} [patch]
func NewRemoveFromPlaylistHandler(svc PlaylistManager) http.HandlerFunc {
	return playlistVideoHandler(svc.RemoveVideo, "Video removed from playlist")
}

func playlistVideoHandler(
	apply func(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error),
	message string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, id, err := userAndID(r, "playlistId")
		if err != nil {
			respondError(w, r, err)
			return
		}
		videoID, err := pathID(r, "videoId")
		if err != nil {
			respondError(w, r, err)
			return
		}

		p, err := apply(r.Context(), id, user.ID, videoID)
		if err != nil {
			respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, p, message)
	}
}

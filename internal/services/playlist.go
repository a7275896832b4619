package services

//go:generate mockgen -source=playlist.go -destination=playlist_mock.go -package=services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/repositories"
)

// PlaylistStore defines persistence operations on playlists.
type PlaylistStore interface {
	Create(ctx context.Context, p *models.Playlist) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Playlist, error)
	UpdateOwned(ctx context.Context, id, owner primitive.ObjectID, name, description string) (*models.Playlist, error)
	DeleteOwned(ctx context.Context, id, owner primitive.ObjectID) (*models.Playlist, error)
	AddVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error)
	RemoveVideoOwned(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error)
}

// PlaylistService manages user playlists.
type PlaylistService struct {
	playlists PlaylistStore
	videos    ExistenceChecker
}

func NewPlaylistService(playlists PlaylistStore, videos ExistenceChecker) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos}
}

func (svc *PlaylistService) Create(ctx context.Context, owner primitive.ObjectID, req models.PlaylistRequest) (*models.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apierror.BadRequest("Playlist name is required")
	}

	p := &models.Playlist{Name: name, Description: strings.TrimSpace(req.Description), Owner: owner}
	if err := svc.playlists.Create(ctx, p); err != nil {
		logger.FromContext(ctx).Errorw("failed to save playlist", "owner", owner.Hex(), "error", err)
		return nil, apierror.Internal("Failed to create playlist")
	}
	return p, nil
}

func (svc *PlaylistService) Get(ctx context.Context, id primitive.ObjectID) (*models.Playlist, error) {
	p, err := svc.playlists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apierror.NotFound("Playlist not found")
		}
		return nil, err
	}
	return p, nil
}

// ListByUser returns the user's playlists; none is an empty list.
func (svc *PlaylistService) ListByUser(ctx context.Context, owner primitive.ObjectID) ([]models.Playlist, error) {
	return svc.playlists.ListByOwner(ctx, owner)
}

func (svc *PlaylistService) Update(ctx context.Context, id, owner primitive.ObjectID, req models.PlaylistRequest) (*models.Playlist, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apierror.BadRequest("Playlist name is required")
	}
	p, err := svc.playlists.UpdateOwned(ctx, id, owner, name, strings.TrimSpace(req.Description))
	if err != nil {
		return nil, ownedErr(err, "Playlist not found")
	}
	return p, nil
}

func (svc *PlaylistService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	if _, err := svc.playlists.DeleteOwned(ctx, id, owner); err != nil {
		return ownedErr(err, "Playlist not found")
	}
	return nil
}

// AddVideo appends an existing video once.
func (svc *PlaylistService) AddVideo(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error) {
	ok, err := svc.videos.Exists(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.NotFound("Video not found")
	}

	p, err := svc.playlists.AddVideoOwned(ctx, id, owner, videoID)
	if err != nil {
		return nil, ownedErr(err, "Playlist not found")
	}
	return p, nil
}

func (svc *PlaylistService) RemoveVideo(ctx context.Context, id, owner, videoID primitive.ObjectID) (*models.Playlist, error) {
	p, err := svc.playlists.RemoveVideoOwned(ctx, id, owner, videoID)
	if err != nil {
		return nil, ownedErr(err, "Playlist not found")
	}
	return p, nil
}

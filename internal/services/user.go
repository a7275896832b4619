package services

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

// UserService serves account and channel profile operations.
type UserService struct {
	users    UserStore
	uploader AssetUploader
}

func NewUserService(users UserStore, uploader AssetUploader) *UserService {
	return &UserService{users: users, uploader: uploader}
}

// UpdateAccount sets fullName and email.
func (svc *UserService) UpdateAccount(ctx context.Context, userID primitive.ObjectID, req models.UpdateAccountRequest) (*models.User, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if validation.Blank(req.FullName, req.Email) {
		return nil, apierror.BadRequest("All fields are required")
	}
	if err := validation.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	user, err := svc.users.UpdateAccount(ctx, userID, req.FullName, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, apierror.Conflict("User with email or username already exists")
		case errors.Is(err, repositories.ErrNotFound):
			return nil, apierror.NotFound("User does not exist")
		}
		return nil, err
	}
	return user.Sanitized(), nil
}

// UpdateAvatar replaces the avatar. The previous asset is deleted only
// after the record points at the new one.
func (svc *UserService) UpdateAvatar(ctx context.Context, current *models.User, fh *multipart.FileHeader) (*models.User, error) {
	if fh == nil {
		return nil, apierror.BadRequest("Avatar file is missing")
	}
	return svc.replaceImage(ctx, current.ID, current.AvatarKey, fh, "avatars", svc.users.UpdateAvatar)
}

// UpdateCoverImage replaces the cover image the same way as UpdateAvatar.
func (svc *UserService) UpdateCoverImage(ctx context.Context, current *models.User, fh *multipart.FileHeader) (*models.User, error) {
	if fh == nil {
		return nil, apierror.BadRequest("Cover image file is missing")
	}
	return svc.replaceImage(ctx, current.ID, current.CoverImageKey, fh, "covers", svc.users.UpdateCoverImage)
}

type imageSetter func(ctx context.Context, id primitive.ObjectID, url, key string) (*models.User, error)

func (svc *UserService) replaceImage(
	ctx context.Context,
	userID primitive.ObjectID,
	oldKey string,
	fh *multipart.FileHeader,
	folder string,
	set imageSetter,
) (*models.User, error) {
	log := logger.FromContext(ctx)

	asset, err := svc.uploader.Upload(ctx, fh, folder)
	if err != nil {
		return nil, apierror.Internal("Error while uploading image")
	}

	user, err := set(ctx, userID, asset.URL, asset.Key)
	if err != nil {
		log.Errorw("failed to persist image", "userId", userID.Hex(), "folder", folder, "error", err)
		if delErr := svc.uploader.Delete(ctx, asset.Key); delErr != nil {
			log.Warnw("failed to delete unused image", "key", asset.Key, "error", delErr)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apierror.NotFound("User does not exist")
		}
		return nil, err
	}

	if oldKey != "" && oldKey != asset.Key {
		if err := svc.uploader.Delete(ctx, oldKey); err != nil {
			log.Warnw("failed to delete previous image", "key", oldKey, "error", err)
		}
	}
	return user.Sanitized(), nil
}

// ChannelProfile returns the public profile of userName as seen by viewer.
func (svc *UserService) ChannelProfile(ctx context.Context, userName string, viewer primitive.ObjectID) (*models.ChannelProfile, error) {
	userName = strings.ToLower(strings.TrimSpace(userName))
	if userName == "" {
		return nil, apierror.BadRequest("username is missing")
	}

	profile, err := svc.users.ChannelProfile(ctx, userName, viewer)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apierror.NotFound("Channel does not exist")
		}
		return nil, err
	}
	return profile, nil
}

// WatchHistory lists watched videos with their owners. An empty history is not an error.
func (svc *UserService) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]models.VideoCard, error) {
	history, err := svc.users.WatchHistory(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return []models.VideoCard{}, nil
		}
		return nil, err
	}
	return history, nil
}

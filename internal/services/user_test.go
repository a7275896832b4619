package services_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/repositories"
	"github.com/sbilibin2017/gw-videotube/internal/services"
	"github.com/sbilibin2017/gw-videotube/internal/storage"
)

func TestUserService_UpdateAvatar(t *testing.T) {
	fh := &multipart.FileHeader{Filename: "new.png"}
	current := &models.User{ID: primitive.NewObjectID(), AvatarKey: "avatars/old.png"}

	t.Run("old asset deleted after persist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := services.NewMockUserStore(ctrl)
		up := services.NewMockAssetUploader(ctrl)

		gomock.InOrder(
			up.EXPECT().Upload(gomock.Any(), fh, "avatars").Return(&storage.Asset{URL: "http://cdn/new.png", Key: "avatars/new.png"}, nil),
			users.EXPECT().UpdateAvatar(gomock.Any(), current.ID, "http://cdn/new.png", "avatars/new.png").
				Return(&models.User{ID: current.ID, Avatar: "http://cdn/new.png", Password: "hash"}, nil),
			up.EXPECT().Delete(gomock.Any(), "avatars/old.png").Return(errors.New("remote down")),
		)

		svc := services.NewUserService(users, up)
		user, err := svc.UpdateAvatar(context.Background(), current, fh)
		require.NoError(t, err)
		assert.Equal(t, "http://cdn/new.png", user.Avatar)
		assert.Empty(t, user.Password)
	})

	t.Run("persist failure keeps old asset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		users := services.NewMockUserStore(ctrl)
		up := services.NewMockAssetUploader(ctrl)
		up.EXPECT().Upload(gomock.Any(), fh, "avatars").Return(&storage.Asset{URL: "u", Key: "avatars/new.png"}, nil)
		users.EXPECT().UpdateAvatar(gomock.Any(), current.ID, "u", "avatars/new.png").Return(nil, errors.New("db down"))
		up.EXPECT().Delete(gomock.Any(), "avatars/new.png").Return(nil)

		svc := services.NewUserService(users, up)
		_, err := svc.UpdateAvatar(context.Background(), current, fh)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		svc := services.NewUserService(nil, nil)
		_, err := svc.UpdateAvatar(context.Background(), current, nil)
		assert.Equal(t, http.StatusBadRequest, statusOf(err))
	})
}

func TestUserService_UpdateCoverImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fh := &multipart.FileHeader{Filename: "cover.jpg"}
	current := &models.User{ID: primitive.NewObjectID()}

	users := services.NewMockUserStore(ctrl)
	up := services.NewMockAssetUploader(ctrl)
	up.EXPECT().Upload(gomock.Any(), fh, "covers").Return(&storage.Asset{URL: "http://cdn/c.jpg", Key: "covers/c.jpg"}, nil)
	users.EXPECT().UpdateCoverImage(gomock.Any(), current.ID, "http://cdn/c.jpg", "covers/c.jpg").
		Return(&models.User{ID: current.ID, CoverImage: "http://cdn/c.jpg"}, nil)

	svc := services.NewUserService(users, up)
	user, err := svc.UpdateCoverImage(context.Background(), current, fh)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/c.jpg", user.CoverImage)
}

func TestUserService_UpdateAccount(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name       string
		req        models.UpdateAccountRequest
		repoErr    error
		callRepo   bool
		wantStatus int
	}{
		{name: "success", req: models.UpdateAccountRequest{FullName: "New", Email: "New@Example.com"}, callRepo: true},
		{name: "blank", req: models.UpdateAccountRequest{FullName: "New"}, wantStatus: http.StatusBadRequest},
		{name: "bad email", req: models.UpdateAccountRequest{FullName: "New", Email: "nope"}, wantStatus: http.StatusBadRequest},
		{name: "email taken", req: models.UpdateAccountRequest{FullName: "New", Email: "taken@example.com"}, callRepo: true, repoErr: repositories.ErrDuplicate, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := services.NewMockUserStore(ctrl)
			if tt.callRepo {
				var out *models.User
				if tt.repoErr == nil {
					out = &models.User{ID: id, FullName: "New", Email: "new@example.com"}
				}
				users.EXPECT().UpdateAccount(gomock.Any(), id, "New", gomock.Any()).Return(out, tt.repoErr)
			}

			svc := services.NewUserService(users, nil)
			user, err := svc.UpdateAccount(context.Background(), id, tt.req)
			if tt.wantStatus != 0 {
				assert.Equal(t, tt.wantStatus, statusOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "new@example.com", user.Email)
		})
	}
}

func TestUserService_ChannelProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	viewer := primitive.NewObjectID()
	users := services.NewMockUserStore(ctrl)
	users.EXPECT().ChannelProfile(gomock.Any(), "alice", viewer).Return(&models.ChannelProfile{UserName: "alice", SubscribersCount: 2}, nil)
	users.EXPECT().ChannelProfile(gomock.Any(), "ghost", viewer).Return(nil, repositories.ErrNotFound)

	svc := services.NewUserService(users, nil)

	profile, err := svc.ChannelProfile(context.Background(), "Alice", viewer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.SubscribersCount)

	_, err = svc.ChannelProfile(context.Background(), "ghost", viewer)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
	assert.Equal(t, "Channel does not exist", err.Error())

	_, err = svc.ChannelProfile(context.Background(), "  ", viewer)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestUserService_WatchHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := primitive.NewObjectID()
	users := services.NewMockUserStore(ctrl)
	users.EXPECT().WatchHistory(gomock.Any(), id).Return(nil, repositories.ErrNotFound)

	svc := services.NewUserService(users, nil)
	history, err := svc.WatchHistory(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

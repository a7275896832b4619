package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/repositories"
	"github.com/sbilibin2017/gw-videotube/internal/services"
)

func TestPlaylistService(t *testing.T) {
	owner := primitive.NewObjectID()
	id := primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	t.Run("create requires name", func(t *testing.T) {
		svc := services.NewPlaylistService(nil, nil)
		_, err := svc.Create(context.Background(), owner, models.PlaylistRequest{Name: "  "})
		assert.Equal(t, http.StatusBadRequest, statusOf(err))
	})

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockPlaylistStore(ctrl)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := services.NewPlaylistService(store, nil)
		p, err := svc.Create(context.Background(), owner, models.PlaylistRequest{Name: " Favs ", Description: "best"})
		require.NoError(t, err)
		assert.Equal(t, "Favs", p.Name)
		assert.Equal(t, owner, p.Owner)
	})

	t.Run("add missing video", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		videos := services.NewMockExistenceChecker(ctrl)
		videos.EXPECT().Exists(gomock.Any(), videoID).Return(false, nil)

		svc := services.NewPlaylistService(services.NewMockPlaylistStore(ctrl), videos)
		_, err := svc.AddVideo(context.Background(), id, owner, videoID)
		assert.Equal(t, http.StatusNotFound, statusOf(err))
	})

	t.Run("add to someone else's playlist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockPlaylistStore(ctrl)
		videos := services.NewMockExistenceChecker(ctrl)
		videos.EXPECT().Exists(gomock.Any(), videoID).Return(true, nil)
		store.EXPECT().AddVideoOwned(gomock.Any(), id, owner, videoID).Return(nil, repositories.ErrNotFound)

		svc := services.NewPlaylistService(store, videos)
		_, err := svc.AddVideo(context.Background(), id, owner, videoID)
		assert.Equal(t, http.StatusNotFound, statusOf(err))
		assert.Equal(t, "Playlist not found", err.Error())
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := services.NewMockPlaylistStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, repositories.ErrNotFound)

		svc := services.NewPlaylistService(store, nil)
		_, err := svc.Get(context.Background(), id)
		assert.Equal(t, http.StatusNotFound, statusOf(err))
	})
}

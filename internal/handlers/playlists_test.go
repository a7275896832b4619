package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

func TestPlaylistHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playlistID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()
	req := models.PlaylistRequest{Name: "Favs", Description: "best"}
	p := &models.Playlist{ID: playlistID, Name: "Favs", Owner: testUser.ID, Videos: []primitive.ObjectID{}}

	svc := NewMockPlaylistManager(ctrl)
	svc.EXPECT().Create(gomock.Any(), testUser.ID, req).Return(p, nil)
	svc.EXPECT().ListByUser(gomock.Any(), testUser.ID).Return([]models.Playlist{*p}, nil)
	svc.EXPECT().Get(gomock.Any(), playlistID).Return(nil, apierror.NotFound("Playlist not found"))
	svc.EXPECT().Update(gomock.Any(), playlistID, testUser.ID, req).Return(p, nil)
	svc.EXPECT().AddVideo(gomock.Any(), playlistID, testUser.ID, videoID).Return(p, nil)
	svc.EXPECT().RemoveVideo(gomock.Any(), playlistID, testUser.ID, videoID).Return(nil, apierror.NotFound("Playlist not found"))
	svc.EXPECT().Delete(gomock.Any(), playlistID, testUser.ID).Return(nil)

	byID := map[string]string{"playlistId": playlistID.Hex()}
	pair := map[string]string{"playlistId": playlistID.Hex(), "videoId": videoID.Hex()}

	tests := []struct {
		name         string
		handler      http.HandlerFunc
		req          *http.Request
		expectedCode int
	}{
		{"create", NewCreatePlaylistHandler(svc), newRequest(http.MethodPost, "/", jsonBody(t, req), testUser, nil), http.StatusCreated},
		{"list", NewUserPlaylistsHandler(svc), newRequest(http.MethodGet, "/", nil, testUser, map[string]string{"userId": testUser.ID.Hex()}), http.StatusOK},
		{"get missing", NewGetPlaylistHandler(svc), newRequest(http.MethodGet, "/", nil, testUser, byID), http.StatusNotFound},
		{"update", NewUpdatePlaylistHandler(svc), newRequest(http.MethodPatch, "/", jsonBody(t, req), testUser, byID), http.StatusOK},
		{"add video", NewAddToPlaylistHandler(svc), newRequest(http.MethodPatch, "/", nil, testUser, pair), http.StatusOK},
		{"remove from foreign playlist", NewRemoveFromPlaylistHandler(svc), newRequest(http.MethodPatch, "/", nil, testUser, pair), http.StatusNotFound},
		{"delete", NewDeletePlaylistHandler(svc), newRequest(http.MethodDelete, "/", nil, testUser, byID), http.StatusOK},
		{"bad video id", NewAddToPlaylistHandler(svc), newRequest(http.MethodPatch, "/", nil, testUser, map[string]string{"playlistId": playlistID.Hex(), "videoId": "x"}), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.handler.ServeHTTP(rr, tt.req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

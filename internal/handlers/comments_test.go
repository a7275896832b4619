package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

func TestVideoCommentsHandler(t *testing.T) {
	videoID := primitive.NewObjectID()
	params := map[string]string{"videoId": videoID.Hex()}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockCommentManager)
		expectedCode int
	}{
		{
			name:   "defaults to first page of ten",
			target: "/comments/getVideoComments/x",
			mockSetup: func(m *MockCommentManager) {
				page := models.NewPage(make([]models.CommentView, 10), 25, 1, 10)
				m.EXPECT().VideoComments(gomock.Any(), videoID, testUser.ID, models.PageQuery{Page: 1, Limit: 10}).
					Return(models.NewCommentPage(page), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "no comments",
			target: "/comments/getVideoComments/x?page=4",
			mockSetup: func(m *MockCommentManager) {
				m.EXPECT().VideoComments(gomock.Any(), videoID, testUser.ID, models.PageQuery{Page: 4, Limit: 10}).
					Return(nil, apierror.NotFound("No comments found"))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "bad limit",
			target:       "/comments/getVideoComments/x?limit=ten",
			mockSetup:    func(*MockCommentManager) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockCommentManager(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewVideoCommentsHandler(svc).ServeHTTP(rr, newRequest(http.MethodGet, tt.target, nil, testUser, params))

			require.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var page models.CommentPage
			require.NoError(t, unmarshal(decodeEnvelope(t, rr).Data, &page))
			assert.Equal(t, 10, page.Count)
			assert.Equal(t, int64(3), page.TotalPages)
			assert.True(t, page.HasNextPage)
			assert.Nil(t, page.PrevPage)
		})
	}
}

func TestCommentWriteHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	videoID := primitive.NewObjectID()
	commentID := primitive.NewObjectID()
	req := models.CommentRequest{Content: "nice"}

	svc := NewMockCommentManager(ctrl)
	svc.EXPECT().Add(gomock.Any(), videoID, testUser.ID, req).Return(&models.Comment{ID: commentID, Content: "nice"}, nil)
	svc.EXPECT().Update(gomock.Any(), commentID, testUser.ID, req).Return(nil, apierror.NotFound("Comment not found"))
	svc.EXPECT().Delete(gomock.Any(), commentID, testUser.ID).Return(nil)

	rr := httptest.NewRecorder()
	NewAddCommentHandler(svc).ServeHTTP(rr, newRequest(http.MethodPost, "/", jsonBody(t, req), testUser, map[string]string{"videoId": videoID.Hex()}))
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	NewUpdateCommentHandler(svc).ServeHTTP(rr, newRequest(http.MethodPut, "/", jsonBody(t, req), testUser, map[string]string{"commentId": commentID.Hex()}))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	NewDeleteCommentHandler(svc).ServeHTTP(rr, newRequest(http.MethodDelete, "/", nil, testUser, map[string]string{"commentId": commentID.Hex()}))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	NewDeleteCommentHandler(svc).ServeHTTP(rr, newRequest(http.MethodDelete, "/", nil, testUser, map[string]string{"commentId": "123"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

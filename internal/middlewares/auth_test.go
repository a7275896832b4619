package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/jwt"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	userID := primitive.NewObjectID()
	user := &models.User{ID: userID, UserName: "alice", Password: "hash", RefreshToken: "rt"}

	tests := []struct {
		name            string
		mockSetup       func(tokens *MockAccessVerifier, users *MockUserLoader)
		expectedStatus  int
		expectedMessage string
		expectNext      bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tokens *MockAccessVerifier, _ *MockUserLoader) {
				tokens.EXPECT().AccessTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrTokenMissing)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Unauthorized request",
		},
		{
			name: "InvalidToken",
			mockSetup: func(tokens *MockAccessVerifier, _ *MockUserLoader) {
				tokens.EXPECT().AccessTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad", nil)
				tokens.EXPECT().VerifyAccessToken(gomock.Any(), "bad").Return(nil, jwt.ErrTokenInvalid)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid access token",
		},
		{
			name: "UnknownUser",
			mockSetup: func(tokens *MockAccessVerifier, users *MockUserLoader) {
				tokens.EXPECT().AccessTokenFromRequest(gomock.Any(), gomock.Any()).Return("ok", nil)
				tokens.EXPECT().VerifyAccessToken(gomock.Any(), "ok").Return(&jwt.Claims{UserID: userID.Hex()}, nil)
				users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, errors.New("not found"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid access token",
		},
		{
			name: "ValidToken",
			mockSetup: func(tokens *MockAccessVerifier, users *MockUserLoader) {
				tokens.EXPECT().AccessTokenFromRequest(gomock.Any(), gomock.Any()).Return("ok", nil)
				tokens.EXPECT().VerifyAccessToken(gomock.Any(), "ok").Return(&jwt.Claims{UserID: userID.Hex()}, nil)
				users.EXPECT().FindByID(gomock.Any(), userID).Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			tokens := NewMockAccessVerifier(ctrl)
			users := NewMockUserLoader(ctrl)
			tt.mockSetup(tokens, users)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				current := UserFromContext(r.Context())
				require.NotNil(t, current)
				assert.Equal(t, userID, current.ID)
				assert.Empty(t, current.Password)
				assert.Empty(t, current.RefreshToken)
				w.WriteHeader(http.StatusOK)
			})

			rr := httptest.NewRecorder()
			AuthMiddleware(tokens, users)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectedMessage != "" {
				var body models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedMessage, body.Message)
				assert.False(t, body.Success)
				assert.Equal(t, []string{}, body.Errors)
			}
		})
	}

	assert.Equal(t, "hash", user.Password)
}

func TestUserFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, UserFromContext(req.Context()))
}

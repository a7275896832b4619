package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/jwt"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/services"
)

var testCookies = CookieOptions{Secure: true, AccessMaxAge: time.Hour, RefreshMaxAge: 24 * time.Hour}

func TestRegisterHandler(t *testing.T) {
	fields := map[string]string{
		"fullName": "Alice",
		"email":    "alice@example.com",
		"userName": "alice",
		"password": "secret",
	}

	tests := []struct {
		name            string
		withAvatar      bool
		mockSetup       func(m *MockRegisterer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name:       "success",
			withAvatar: true,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in services.RegisterInput) (*models.User, error) {
					assert.Equal(t, "alice", in.UserName)
					assert.Equal(t, "secret", in.Password)
					require.NotNil(t, in.Avatar)
					assert.Equal(t, "me.png", in.Avatar.Filename)
					assert.Nil(t, in.CoverImage)
					return testUser, nil
				})
			},
			expectedCode:    http.StatusCreated,
			expectedMessage: "User registered successfully",
		},
		{
			name: "duplicate",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, apierror.Conflict("User with email or username already exists"))
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: "User with email or username already exists",
		},
		{
			name: "unexpected error is hidden",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("mongo exploded"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockRegisterer(ctrl)
			tt.mockSetup(svc)

			var files []formFileSpec
			if tt.withAvatar {
				files = append(files, formFileSpec{field: "avatar", name: "me.png", content: []byte("png")})
			}
			body, contentType := multipartBody(t, fields, files...)
			req := newRequest(http.MethodPost, "/users/register", body, nil, nil)
			req.Header.Set("Content-Type", contentType)
			rr := httptest.NewRecorder()

			NewRegisterHandler(svc, 1<<20).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedMessage, env.Message)
			assert.Equal(t, tt.expectedCode < 400, env.Success)
		})
	}
}

func TestRegisterHandler_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := newRequest(http.MethodPost, "/users/register", jsonBody(t, `{"userName":"a"}`), nil, nil)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	NewRegisterHandler(NewMockRegisterer(ctrl), 1<<20).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name          string
		inputBody     any
		mockSetup     func(m *MockLoginer)
		expectedCode  int
		expectCookies bool
	}{
		{
			name:      "success",
			inputBody: models.LoginRequest{UserName: "alice", Password: "secret"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), models.LoginRequest{UserName: "alice", Password: "secret"}).
					Return(&models.LoginResult{User: testUser, AuthTokens: models.AuthTokens{AccessToken: "at", RefreshToken: "rt"}}, nil)
			},
			expectedCode:  http.StatusOK,
			expectCookies: true,
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func(*MockLoginer) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "wrong password sets no cookies",
			inputBody: models.LoginRequest{UserName: "alice", Password: "nope"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, apierror.Unauthorized("Invalid user credentials"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockLoginer(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewLoginHandler(svc, testCookies).ServeHTTP(rr, newRequest(http.MethodPost, "/users/login", jsonBody(t, tt.inputBody), nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			access := findCookie(rr, jwt.AccessTokenCookie)
			refresh := findCookie(rr, jwt.RefreshTokenCookie)
			if !tt.expectCookies {
				assert.Nil(t, access)
				assert.Nil(t, refresh)
				return
			}
			require.NotNil(t, access)
			require.NotNil(t, refresh)
			assert.Equal(t, "at", access.Value)
			assert.Equal(t, "rt", refresh.Value)
			assert.True(t, access.HttpOnly)
			assert.True(t, access.Secure)
			assert.Equal(t, 3600, access.MaxAge)

			env := decodeEnvelope(t, rr)
			var res models.LoginResult
			require.NoError(t, unmarshal(env.Data, &res))
			assert.Equal(t, "at", res.AccessToken)
			assert.Equal(t, testUser.ID, res.User.ID)
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockLogouter(ctrl)
	svc.EXPECT().Logout(gomock.Any(), testUser.ID).Return(nil)

	rr := httptest.NewRecorder()
	NewLogoutHandler(svc, testCookies).ServeHTTP(rr, newRequest(http.MethodPost, "/users/logout", nil, testUser, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	for _, name := range []string{jwt.AccessTokenCookie, jwt.RefreshTokenCookie} {
		c := findCookie(rr, name)
		require.NotNil(t, c, name)
		assert.Empty(t, c.Value)
		assert.Less(t, c.MaxAge, 0)
	}
	assert.JSONEq(t, `{}`, string(decodeEnvelope(t, rr).Data))
}

func TestLogoutHandler_NoUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	NewLogoutHandler(NewMockLogouter(ctrl), testCookies).ServeHTTP(rr, newRequest(http.MethodPost, "/users/logout", nil, nil, nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRefreshTokenHandler(t *testing.T) {
	tests := []struct {
		name         string
		mockSetup    func(svc *MockTokenRefresher, reader *MockRefreshTokenReader)
		expectedCode int
	}{
		{
			name: "rotates",
			mockSetup: func(svc *MockTokenRefresher, reader *MockRefreshTokenReader) {
				reader.EXPECT().RefreshTokenFromRequest(gomock.Any(), gomock.Any()).Return("old", nil)
				svc.EXPECT().RefreshTokens(gomock.Any(), "old").Return(&models.AuthTokens{AccessToken: "a2", RefreshToken: "r2"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing token",
			mockSetup: func(svc *MockTokenRefresher, reader *MockRefreshTokenReader) {
				reader.EXPECT().RefreshTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrTokenMissing)
				svc.EXPECT().RefreshTokens(gomock.Any(), "").Return(nil, apierror.Unauthorized("Unauthorized request"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "reused token",
			mockSetup: func(svc *MockTokenRefresher, reader *MockRefreshTokenReader) {
				reader.EXPECT().RefreshTokenFromRequest(gomock.Any(), gomock.Any()).Return("stale", nil)
				svc.EXPECT().RefreshTokens(gomock.Any(), "stale").Return(nil, apierror.Unauthorized("Refresh token is expired or used"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockTokenRefresher(ctrl)
			reader := NewMockRefreshTokenReader(ctrl)
			tt.mockSetup(svc, reader)

			rr := httptest.NewRecorder()
			NewRefreshTokenHandler(svc, reader, testCookies).ServeHTTP(rr, newRequest(http.MethodPost, "/users/refresh-token", nil, nil, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				require.NotNil(t, findCookie(rr, jwt.RefreshTokenCookie))
				assert.Equal(t, "r2", findCookie(rr, jwt.RefreshTokenCookie).Value)
			} else {
				assert.Nil(t, findCookie(rr, jwt.AccessTokenCookie))
			}
		})
	}
}

func TestRefreshTokenHandler_LogsReaderError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = prev }()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockTokenRefresher(ctrl)
	reader := NewMockRefreshTokenReader(ctrl)
	reader.EXPECT().RefreshTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrTokenMissing)
	svc.EXPECT().RefreshTokens(gomock.Any(), "").Return(nil, apierror.Unauthorized("Unauthorized request"))

	rr := httptest.NewRecorder()
	NewRefreshTokenHandler(svc, reader, testCookies).ServeHTTP(rr, newRequest(http.MethodPost, "/users/refresh-token", nil, nil, nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	entries := logs.FilterMessage("refresh token not presented").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, jwt.ErrTokenMissing.Error(), entries[0].ContextMap()["error"])
}

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockPasswordChanger(ctrl)
	req := models.ChangePasswordRequest{OldPassword: "old", NewPassword: "new"}
	gomock.InOrder(
		svc.EXPECT().ChangePassword(gomock.Any(), testUser.ID, req).Return(nil),
		svc.EXPECT().ChangePassword(gomock.Any(), testUser.ID, req).Return(apierror.BadRequest("Invalid old password")),
	)

	h := NewChangePasswordHandler(svc)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, newRequest(http.MethodPost, "/users/change-password", jsonBody(t, req), testUser, nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, newRequest(http.MethodPost, "/users/change-password", jsonBody(t, req), testUser, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid old password", decodeEnvelope(t, rr).Message)
}

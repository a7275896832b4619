package jwt

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       primitive.NewObjectID(),
		UserName: "alice",
		Email:    "alice@example.com",
		FullName: "Alice A",
	}
}

func TestJWT_AccessTokenRoundTrip(t *testing.T) {
	j := New(WithAccessSecret("a"), WithAccessExpiration(time.Minute))
	ctx := context.Background()
	user := testUser()

	token, err := j.IssueAccessToken(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.VerifyAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, "alice", claims.UserName)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "Alice A", claims.FullName)

	id, err := claims.ObjectID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestJWT_RefreshTokenCarriesOnlyID(t *testing.T) {
	j := New(WithRefreshSecret("r"))
	ctx := context.Background()
	user := testUser()

	token, err := j.IssueRefreshToken(ctx, user)
	require.NoError(t, err)

	claims, err := j.VerifyRefreshToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.UserName)
}

func TestJWT_TokensIssuedInSameSecondDiffer(t *testing.T) {
	j := New(WithAccessSecret("a"), WithRefreshSecret("r"))
	ctx := context.Background()
	user := testUser()

	first, err := j.IssueRefreshToken(ctx, user)
	require.NoError(t, err)
	second, err := j.IssueRefreshToken(ctx, user)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	firstClaims, err := j.VerifyRefreshToken(ctx, first)
	require.NoError(t, err)
	secondClaims, err := j.VerifyRefreshToken(ctx, second)
	require.NoError(t, err)
	assert.NotEmpty(t, firstClaims.ID)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)

	access1, err := j.IssueAccessToken(ctx, user)
	require.NoError(t, err)
	access2, err := j.IssueAccessToken(ctx, user)
	require.NoError(t, err)
	assert.NotEqual(t, access1, access2)
}

func TestJWT_SecretsAreNotInterchangeable(t *testing.T) {
	j := New(WithAccessSecret("a"), WithRefreshSecret("r"))
	ctx := context.Background()

	refresh, err := j.IssueRefreshToken(ctx, testUser())
	require.NoError(t, err)

	_, err = j.VerifyAccessToken(ctx, refresh)
	assert.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithAccessExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.IssueAccessToken(ctx, testUser())
	require.NoError(t, err)

	claims, err := j.VerifyAccessToken(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New()
	claims, err := j.VerifyAccessToken(context.Background(), "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_AccessTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		cookie        string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"Cookie", "cookietoken", "", "cookietoken", false},
		{"CookieWinsOverHeader", "cookietoken", "Bearer headertoken", "cookietoken", false},
		{"ValidBearer", "", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", "", true},
		{"InvalidFormat", "", "Token mytoken123", "", true},
		{"TooManyParts", "", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.AccessTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

func TestJWT_RefreshTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, "/", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "fromcookie"})
	token, err := j.RefreshTokenFromRequest(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "fromcookie", token)

	req, _ = http.NewRequestWithContext(ctx, http.MethodPost, "/", strings.NewReader(`{"refreshToken":" frombody "}`))
	token, err = j.RefreshTokenFromRequest(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "frombody", token)

	req, _ = http.NewRequestWithContext(ctx, http.MethodPost, "/", strings.NewReader(`{}`))
	_, err = j.RefreshTokenFromRequest(ctx, req)
	assert.ErrorIs(t, err, ErrTokenMissing)
}

package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// Cookie names shared by the issuer and the auth handlers.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

var (
	ErrTokenMissing = errors.New("token missing")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the payload of both token kinds. Refresh tokens only carry the id.
type Claims struct {
	UserID   string `json:"_id"`
	Email    string `json:"email,omitempty"`
	UserName string `json:"userName,omitempty"`
	FullName string `json:"fullName,omitempty"`
	jwt.RegisteredClaims
}

// ObjectID parses the subject id.
func (c *Claims) ObjectID() (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.UserID)
}

// JWT issues and verifies access and refresh tokens.
type JWT struct {
	AccessSecret  string        // Secret for access tokens
	AccessExp     time.Duration // Access token lifetime
	RefreshSecret string        // Secret for refresh tokens
	RefreshExp    time.Duration // Refresh token lifetime
}

// Opt configures a JWT.
type Opt func(*JWT)

func WithAccessSecret(secret string) Opt {
	return func(j *JWT) { j.AccessSecret = secret }
}

func WithAccessExpiration(d time.Duration) Opt {
	return func(j *JWT) { j.AccessExp = d }
}

func WithRefreshSecret(secret string) Opt {
	return func(j *JWT) { j.RefreshSecret = secret }
}

func WithRefreshExpiration(d time.Duration) Opt {
	return func(j *JWT) { j.RefreshExp = d }
}

// New creates a new JWT instance. Defaults suit local development only.
func New(opts ...Opt) *JWT {
	j := &JWT{
		AccessSecret:  "access_secret",
		AccessExp:     24 * time.Hour,
		RefreshSecret: "refresh_secret",
		RefreshExp:    10 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// IssueAccessToken signs a short-lived token with the user's public identity.
func (j *JWT) IssueAccessToken(ctx context.Context, user *models.User) (string, error) {
	claims := Claims{
		UserID:           user.ID.Hex(),
		Email:            user.Email,
		UserName:         user.UserName,
		FullName:         user.FullName,
		RegisteredClaims: registered(j.AccessExp),
	}
	return sign(claims, j.AccessSecret)
}

// IssueRefreshToken signs a long-lived token carrying only the user id.
func (j *JWT) IssueRefreshToken(ctx context.Context, user *models.User) (string, error) {
	claims := Claims{
		UserID:           user.ID.Hex(),
		RegisteredClaims: registered(j.RefreshExp),
	}
	return sign(claims, j.RefreshSecret)
}

// VerifyAccessToken checks signature and expiry of an access token.
func (j *JWT) VerifyAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	return verify(tokenString, j.AccessSecret)
}

// VerifyRefreshToken checks signature and expiry of a refresh token.
func (j *JWT) VerifyRefreshToken(ctx context.Context, tokenString string) (*Claims, error) {
	return verify(tokenString, j.RefreshSecret)
}

// AccessTokenFromRequest reads the access token from its cookie, falling back
// to the Authorization header.
func (j *JWT) AccessTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(AccessTokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrTokenMissing
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

// RefreshTokenFromRequest reads the refresh token from its cookie, falling
// back to a JSON body field named refreshToken.
func (j *JWT) RefreshTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if c, err := r.Cookie(RefreshTokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}

	if r.Body == nil {
		return "", ErrTokenMissing
	}
	var body models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.RefreshToken) == "" {
		return "", ErrTokenMissing
	}
	return strings.TrimSpace(body.RefreshToken), nil
}

func registered(exp time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func sign(claims Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func verify(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

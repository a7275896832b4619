package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/jwt"
	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/repositories"
	"github.com/sbilibin2017/gw-videotube/internal/storage"
	"github.com/sbilibin2017/gw-videotube/internal/validation"
)

// PasswordCost is the bcrypt cost used for every stored hash.
const PasswordCost = 10

// UserStore defines persistence operations on users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByUserNameOrEmail(ctx context.Context, userName, email string) (*models.User, error)
	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	UnsetRefreshToken(ctx context.Context, id primitive.ObjectID) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hash string) error
	UpdateAccount(ctx context.Context, id primitive.ObjectID, fullName, email string) (*models.User, error)
	UpdateAvatar(ctx context.Context, id primitive.ObjectID, url, key string) (*models.User, error)
	UpdateCoverImage(ctx context.Context, id primitive.ObjectID, url, key string) (*models.User, error)
	ChannelProfile(ctx context.Context, userName string, viewerID primitive.ObjectID) (*models.ChannelProfile, error)
	WatchHistory(ctx context.Context, id primitive.ObjectID) ([]models.VideoCard, error)
}

// TokenIssuer signs and verifies access/refresh tokens.
type TokenIssuer interface {
	IssueAccessToken(ctx context.Context, user *models.User) (string, error)
	IssueRefreshToken(ctx context.Context, user *models.User) (string, error)
	VerifyRefreshToken(ctx context.Context, token string) (*jwt.Claims, error)
}

// AssetUploader moves multipart files to remote storage.
type AssetUploader interface {
	Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (*storage.Asset, error)
	Delete(ctx context.Context, key string) error
}

// RegisterInput is the registration form.
type RegisterInput struct {
	FullName   string
	Email      string
	UserName   string
	Password   string
	Avatar     *multipart.FileHeader
	CoverImage *multipart.FileHeader
}

// AuthService handles registration, sessions and passwords.
type AuthService struct {
	users    UserStore
	tokens   TokenIssuer
	uploader AssetUploader
	events   EventSink
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserStore, tokens TokenIssuer, uploader AssetUploader, events EventSink) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		uploader: uploader,
		events:   events,
	}
}

// Register creates an account with an avatar and an optional cover image.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	log := logger.FromContext(ctx)

	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.UserName = strings.ToLower(strings.TrimSpace(in.UserName))
	if validation.Blank(in.FullName, in.Email, in.UserName, in.Password) {
		return nil, apierror.BadRequest("All fields are required")
	}
	req := models.RegisterRequest{FullName: in.FullName, Email: in.Email, UserName: in.UserName, Password: in.Password}
	if err := validation.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	existing, err := svc.users.FindByUserNameOrEmail(ctx, in.UserName, in.Email)
	switch {
	case err == nil && existing != nil:
		log.Warnw("user already exists", "userName", in.UserName, "email", in.Email)
		return nil, apierror.Conflict("User with email or username already exists")
	case err != nil && !errors.Is(err, repositories.ErrNotFound):
		log.Errorw("failed to check user exists", "error", err)
		return nil, err
	}

	if in.Avatar == nil {
		return nil, apierror.BadRequest("Avatar file is required")
	}
	avatar, err := svc.uploader.Upload(ctx, in.Avatar, "avatars")
	if err != nil {
		return nil, apierror.Internal("Error while uploading avatar")
	}

	user := &models.User{
		UserName:  in.UserName,
		Email:     in.Email,
		FullName:  in.FullName,
		Avatar:    avatar.URL,
		AvatarKey: avatar.Key,
	}
	if in.CoverImage != nil {
		cover, err := svc.uploader.Upload(ctx, in.CoverImage, "covers")
		if err != nil {
			svc.discardAsset(ctx, avatar.Key)
			return nil, apierror.Internal("Error while uploading cover image")
		}
		user.CoverImage, user.CoverImageKey = cover.URL, cover.Key
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
	if err != nil {
		log.Errorw("failed to hash password", "error", err)
		return nil, err
	}
	user.Password = string(hash)

	if err := svc.users.Create(ctx, user); err != nil {
		svc.discardAsset(ctx, avatar.Key)
		svc.discardAsset(ctx, user.CoverImageKey)
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apierror.Conflict("User with email or username already exists")
		}
		log.Errorw("failed to save user", "error", err)
		return nil, apierror.Internal("Something went wrong while registering the user")
	}

	publish(ctx, svc.events, newEvent(models.EventUserRegistered, user.ID, primitive.NilObjectID, ""))
	return user.Sanitized(), nil
}

// Login resolves the user by userName or email and issues a token pair.
func (svc *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error) {
	req.UserName = strings.ToLower(strings.TrimSpace(req.UserName))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.UserName == "" && req.Email == "" {
		return nil, apierror.BadRequest("username or email is required")
	}
	if err := validation.Struct(req); err != nil {
		return nil, invalidInput(err)
	}

	user, err := svc.users.FindByUserNameOrEmail(ctx, req.UserName, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apierror.NotFound("User does not exist")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.FromContext(ctx).Warnw("invalid credentials", "userId", user.ID.Hex())
		return nil, apierror.Unauthorized("Invalid user credentials")
	}

	tokens, err := svc.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}
	return &models.LoginResult{User: user.Sanitized(), AuthTokens: *tokens}, nil
}

// Logout clears the stored refresh token.
func (svc *AuthService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	if err := svc.users.UnsetRefreshToken(ctx, userID); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		logger.FromContext(ctx).Errorw("failed to clear refresh token", "userId", userID.Hex(), "error", err)
		return err
	}
	return nil
}

// RefreshTokens rotates the pair. Only the token currently stored on the
// user is accepted.
func (svc *AuthService) RefreshTokens(ctx context.Context, presented string) (*models.AuthTokens, error) {
	if presented == "" {
		return nil, apierror.Unauthorized("Unauthorized request")
	}

	claims, err := svc.tokens.VerifyRefreshToken(ctx, presented)
	if err != nil {
		return nil, apierror.Unauthorized("Invalid refresh token")
	}
	id, err := claims.ObjectID()
	if err != nil {
		return nil, apierror.Unauthorized("Invalid refresh token")
	}

	user, err := svc.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apierror.Unauthorized("Invalid refresh token")
		}
		return nil, err
	}
	if user.RefreshToken == "" || user.RefreshToken != presented {
		logger.FromContext(ctx).Warnw("stale refresh token presented", "userId", user.ID.Hex())
		return nil, apierror.Unauthorized("Refresh token is expired or used")
	}

	return svc.issuePair(ctx, user)
}

// ChangePassword verifies the old password and stores a hash of the new one.
func (svc *AuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, req models.ChangePasswordRequest) error {
	if validation.Blank(req.OldPassword, req.NewPassword) {
		return apierror.BadRequest("Old and new password are required")
	}

	user, err := svc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apierror.NotFound("User does not exist")
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return apierror.BadRequest("Invalid old password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), PasswordCost)
	if err != nil {
		return err
	}
	return svc.users.UpdatePassword(ctx, userID, string(hash))
}

func (svc *AuthService) issuePair(ctx context.Context, user *models.User) (*models.AuthTokens, error) {
	log := logger.FromContext(ctx)

	access, err := svc.tokens.IssueAccessToken(ctx, user)
	if err != nil {
		log.Errorw("failed to generate access token", "error", err)
		return nil, apierror.Internal("Something went wrong while generating refresh and access token")
	}
	refresh, err := svc.tokens.IssueRefreshToken(ctx, user)
	if err != nil {
		log.Errorw("failed to generate refresh token", "error", err)
		return nil, apierror.Internal("Something went wrong while generating refresh and access token")
	}

	if err := svc.users.SetRefreshToken(ctx, user.ID, refresh); err != nil {
		log.Errorw("failed to store refresh token", "userId", user.ID.Hex(), "error", err)
		return nil, apierror.Internal("Something went wrong while generating refresh and access token")
	}
	return &models.AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}

func (svc *AuthService) discardAsset(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := svc.uploader.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Warnw("failed to delete orphaned asset", "key", key, "error", err)
	}
}

// invalidInput converts validator failures into a 400.
func invalidInput(err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return apierror.BadRequest("Invalid input", verr.Messages()...)
	}
	return apierror.BadRequest("Invalid input")
}

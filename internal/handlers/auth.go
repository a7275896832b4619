package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/gw-videotube/internal/logger"
	"github.com/sbilibin2017/gw-videotube/internal/models"
	"github.com/sbilibin2017/gw-videotube/internal/services"
)

// Registerer creates accounts.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.User, error)
}

// Loginer authenticates users and issues a token pair.
type Loginer interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
}

// Logouter revokes the stored refresh token.
type Logouter interface {
	Logout(ctx context.Context, userID primitive.ObjectID) error
}

// TokenRefresher rotates a refresh token.
type TokenRefresher interface {
	RefreshTokens(ctx context.Context, presented string) (*models.AuthTokens, error)
}

// RefreshTokenReader extracts the presented refresh token.
type RefreshTokenReader interface {
	RefreshTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// PasswordChanger replaces a user's password.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID primitive.ObjectID, req models.ChangePasswordRequest) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account from a multipart form. The avatar is required, the cover image optional.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param userName formData string true "User name"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} models.ApiResponse "User registered"
// @Failure 400 {object} models.ErrorResponse "Missing fields or avatar"
// @Failure 409 {object} models.ErrorResponse "User with email or username already exists"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(w, r, maxBytes); err != nil {
			respondError(w, r, err)
			return
		}

		user, err := svc.Register(r.Context(), services.RegisterInput{
			FullName:   r.FormValue("fullName"),
			Email:      r.FormValue("email"),
			UserName:   r.FormValue("userName"),
			Password:   r.FormValue("password"),
			Avatar:     formFile(r, "avatar"),
			CoverImage: formFile(r, "coverImage"),
		})
		if err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, user, "User registered successfully")
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by user name or email and sets http-only token cookies
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.ApiResponse "User and token pair"
// @Failure 400 {object} models.ErrorResponse "Username or email is required"
// @Failure 401 {object} models.ErrorResponse "Invalid user credentials"
// @Failure 404 {object} models.ErrorResponse "User does not exist"
// @Router /users/login [post]
func NewLoginHandler(svc Loginer, cookies CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		res, err := svc.Login(r.Context(), req)
		if err != nil {
			respondError(w, r, err)
			return
		}

		setAuthCookies(w, cookies, res.AuthTokens)
		respondJSON(w, http.StatusOK, res, "User logged in successfully")
	}
}

// NewLogoutHandler returns an HTTP handler that ends the current session.
// @Summary User logout
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "User logged out"
// @Failure 401 {object} models.ErrorResponse "Unauthorized request"
// @Router /users/logout [post]
func NewLogoutHandler(svc Logouter, cookies CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		if err := svc.Logout(r.Context(), user.ID); err != nil {
			respondError(w, r, err)
			return
		}

		clearAuthCookies(w, cookies)
		respondJSON(w, http.StatusOK, struct{}{}, "User logged out")
	}
}

// NewRefreshTokenHandler returns an HTTP handler that rotates the token pair.
// @Summary Refresh access token
// @Description Reads the refresh token from the cookie or the JSON body
// @Tags users
// @Accept json
// @Produce json
// @Param refreshRequest body models.RefreshRequest false "Refresh token when no cookie is sent"
// @Success 200 {object} models.ApiResponse "New token pair"
// @Failure 401 {object} models.ErrorResponse "Invalid, expired or reused refresh token"
// @Router /users/refresh-token [post]
func NewRefreshTokenHandler(svc TokenRefresher, tokens RefreshTokenReader, cookies CookieOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A missing token is rejected by the service as unauthorized.
		presented, err := tokens.RefreshTokenFromRequest(r.Context(), r)
		if err != nil {
			logger.FromContext(r.Context()).Debugw("refresh token not presented", "error", err)
		}

		pair, err := svc.RefreshTokens(r.Context(), presented)
		if err != nil {
			respondError(w, r, err)
			return
		}

		setAuthCookies(w, cookies, *pair)
		respondJSON(w, http.StatusOK, pair, "Access token refreshed")
	}
}

// NewChangePasswordHandler returns an HTTP handler that changes the current user's password.
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body models.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} models.ApiResponse "Password changed"
// @Failure 400 {object} models.ErrorResponse "Invalid old password"
// @Router /users/change-password [post]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r)
		if err != nil {
			respondError(w, r, err)
			return
		}

		var req models.ChangePasswordRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, r, err)
			return
		}

		if err := svc.ChangePassword(r.Context(), user.ID, req); err != nil {
			respondError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, struct{}{}, "Password changed successfully")
	}
}

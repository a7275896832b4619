package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-videotube/internal/jwt"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

// CookieOptions controls the token cookies set on login and refresh.
type CookieOptions struct {
	Secure        bool
	AccessMaxAge  time.Duration
	RefreshMaxAge time.Duration
}

func setAuthCookies(w http.ResponseWriter, opts CookieOptions, tokens models.AuthTokens) {
	http.SetCookie(w, authCookie(jwt.AccessTokenCookie, tokens.AccessToken, opts.Secure, opts.AccessMaxAge))
	http.SetCookie(w, authCookie(jwt.RefreshTokenCookie, tokens.RefreshToken, opts.Secure, opts.RefreshMaxAge))
}

func clearAuthCookies(w http.ResponseWriter, opts CookieOptions) {
	for _, name := range []string{jwt.AccessTokenCookie, jwt.RefreshTokenCookie} {
		c := authCookie(name, "", opts.Secure, 0)
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
		http.SetCookie(w, c)
	}
}

func authCookie(name, value string, secure bool, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   int(maxAge.Seconds()),
	}
}

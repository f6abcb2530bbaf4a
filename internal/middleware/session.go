package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/Misha2007/smart-city-event-map/internal/domain"
	"github.com/Misha2007/smart-city-event-map/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	SessionCookie = "session"

	sessionKey = "session"
	tokenKey   = "session_token"

	loginPath = "/auth/login"
	homePath  = "/"
)

//go:generate mockery --name=SessionResolver --output=mocks --outpkg=mocks --with-expecter

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (domain.Session, error)
}

// Session resolves the bearer token or session cookie, if any, and stores the
// session for the handlers. Requests without a valid session pass through
// anonymously; the Require* middlewares decide whether that is enough.
func Session(resolver SessionResolver, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		token := requestToken(c)
		if token == "" {
			c.Next()
			return
		}
		c.Set(tokenKey, token)

		sess, err := resolver.Resolve(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(sessionKey, sess)
		case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionExpired):
			// signed out
		default:
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "resolve session",
				logger.String("error", err.Error()),
			)
		}
		c.Next()
	}
}

func RequireUser() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, ok := SessionFrom(c); !ok {
			deny(c, http.StatusUnauthorized, loginPath, domain.ErrUnauthorized)
			return
		}
		c.Next()
	}
}

// RequireRole admits signed-in callers holding one of roles. Browsers are
// redirected instead of receiving an error body.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			deny(c, http.StatusUnauthorized, loginPath, domain.ErrUnauthorized)
			return
		}
		if !slices.Contains(roles, sess.Role) {
			deny(c, http.StatusForbidden, homePath, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}

func SessionFrom(c *ginext.Context) (domain.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return domain.Session{}, false
	}
	sess, ok := v.(domain.Session)
	return sess, ok
}

// TokenFrom returns the raw token the caller presented, valid or not.
func TokenFrom(c *ginext.Context) string {
	return c.GetString(tokenKey)
}

func requestToken(c *ginext.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func deny(c *ginext.Context, status int, redirect string, err error) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, redirect)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
}

func wantsHTML(c *ginext.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

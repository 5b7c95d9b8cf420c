package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"etats/internal/apperrors"
	"etats/internal/authz"
	"etats/internal/session"
)

const userKey = "session_user"

// Session reads the session cookie and, when it verifies, stores the user
// snapshot in both the gin context and the request context. A missing or
// bad cookie is not an error here; RequireAuth decides.
func Session(codec *session.Codec, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			c.Next()
			return
		}
		u, err := codec.Parse(raw)
		if err != nil {
			c.Next()
			return
		}
		c.Set(userKey, u)
		c.Request = c.Request.WithContext(authz.WithUser(c.Request.Context(), u))
		c.Next()
	}
}

// CurrentUser returns the snapshot stored by Session, or nil.
func CurrentUser(c *gin.Context) *authz.SessionUser {
	if v, ok := c.Get(userKey); ok {
		if u, ok := v.(*authz.SessionUser); ok {
			return u
		}
	}
	return authz.UserFromContext(c.Request.Context())
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.CheckIdentity(CurrentUser(c)); err != nil {
			abort(c, err)
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperrors.HTTPStatus(err), gin.H{
		"message": apperrors.PublicMessage(err, http.StatusText(apperrors.HTTPStatus(err))),
	})
}

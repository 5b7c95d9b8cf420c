package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"etats/internal/apperrors"
	"etats/internal/config"
	"etats/internal/middleware"
	"etats/internal/models"
	"etats/internal/services"
	"etats/internal/session"
)

type AuthHandler struct {
	auth   services.AuthService
	codec  *session.Codec
	cookie config.SessionConfig
}

func NewAuthHandler(auth services.AuthService, codec *session.Codec, cookie config.SessionConfig) *AuthHandler {
	return &AuthHandler{auth: auth, codec: codec, cookie: cookie}
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}

// @Summary      Log in
// @Description  Verifies the credentials and sets the session cookie.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Email and password required")
		return
	}
	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}
	token, err := h.codec.Issue(*user)
	if err != nil {
		respondError(c, apperrors.Internal("Login failed", err), "Login failed")
		return
	}
	h.setCookie(c, token, int(h.codec.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// @Summary      Current session
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// @Summary      Log out
// @Description  Clears the session cookie.
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

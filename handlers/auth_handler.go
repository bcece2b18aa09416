package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"go-blog-api/helper"
	"go-blog-api/middleware"
	"go-blog-api/models"
	"go-blog-api/services"

	"github.com/gin-gonic/gin"
)

const stateCookie = "oauth_state"

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		Helper:      &helper.HTTPHelper{},
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity.IsAnonymous() {
		h.Helper.SendError(c, models.ErrUnauthorized)
		return
	}

	user, err := h.authService.GetUserByID(identity.ID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GithubLogin redirects the browser into the GitHub authorize flow with a
// one-shot state nonce pinned in a cookie.
func (h *AuthHandler) GithubLogin(c *gin.Context) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		h.Helper.SendError(c, err)
		return
	}
	state := hex.EncodeToString(buf)

	c.SetCookie(stateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.authService.GithubAuthURL(state))
}

func (h *AuthHandler) GithubCallback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		h.Helper.SendError(c, models.ErrUnauthorized)
		return
	}

	code := c.Query("code")
	if code == "" {
		h.Helper.SendError(c, models.ErrUnauthorized)
		return
	}

	response, err := h.authService.GithubCallback(c.Request.Context(), code)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

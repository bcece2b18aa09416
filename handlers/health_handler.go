package handlers

import (
	"net/http"

	"go-blog-api/config"
	"go-blog-api/repositories"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	userRepo repositories.UserRepository
}

func NewHealthHandler(userRepo repositories.UserRepository) *HealthHandler {
	return &HealthHandler{userRepo: userRepo}
}

// DB probes the store with a cheap count.
func (h *HealthHandler) DB(c *gin.Context) {
	if _, err := h.userRepo.Count(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Env reports which required variables are present, without their values.
func (h *HealthHandler) Env(c *gin.Context) {
	checks, ok := config.EnvChecks()
	c.JSON(http.StatusOK, gin.H{"ok": ok, "checks": checks})
}

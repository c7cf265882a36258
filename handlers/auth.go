package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"studiobook/config"
	"studiobook/utils"
)

// AdminLoginHandler checks the admin credentials against the configured
// bcrypt hash and issues a session JWT.
func AdminLoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	cfg := config.AppConfig
	if cfg.AdminPasswordHash == "" {
		getLogger(c).Error("Admin login attempted with no ADMIN_PASSWORD_HASH configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin login is not configured"})
		return
	}
	if req.Email != cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(req.Password)) != nil {
		getLogger(c).Warn("Failed admin login attempt", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken("admin", req.Email, 12*time.Hour)
	if err != nil {
		getLogger(c).Error("Failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// HealthHandler reports the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/midiiiwo/frozen-haven-api/auth"
	"github.com/midiiiwo/frozen-haven-api/config"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/admin/login", auth.AdminLoginHandler(db, cfg.Auth.JWTSecret))
	}
}

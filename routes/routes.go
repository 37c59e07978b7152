package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/midiiiwo/frozen-haven-api/config"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the Auth, Shop and
// Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)

	// Public storefront routes (catalog, cart, checkout)
	SetupShopRoutes(r, db, cfg)

	// Admin routes (JWT-protected)
	SetupAdminRoutes(r, db, cfg)
}

package cmd

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/midiiiwo/frozen-haven-api/jobs"
	"github.com/midiiiwo/frozen-haven-api/models"
	"github.com/midiiiwo/frozen-haven-api/routes"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		log.Println("✅ Starting Frozen Haven API...")

		cfg := loadConfig()
		db := openDatabase(cfg)

		if err := migrate(db); err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}

		r := gin.Default()

		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Cart-Session"},
			ExposeHeaders:    []string{"Content-Length", "X-Cart-Session"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))

		routes.SetupRoutes(r, db, cfg)

		// Nightly stale-order reminder for the back office.
		jobs.StartOrderReminder(db)

		log.Printf("🚀 Server running on port %s...", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	},
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Product{},
		&models.Category{},
		&models.Customer{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}

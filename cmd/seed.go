package cmd

import (
	"log"

	"github.com/midiiiwo/frozen-haven-api/auth"
	"github.com/midiiiwo/frozen-haven-api/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var seedCategories = []models.Category{
	{Name: "Poultry", Description: "Frozen chicken and turkey cuts"},
	{Name: "Seafood", Description: "Frozen fish, shrimp and shellfish"},
	{Name: "Meat", Description: "Frozen beef, goat and sausages"},
	{Name: "Vegetables", Description: "Frozen mixed and single vegetables"},
}

var seedProducts = []models.Product{
	{Name: "Whole Chicken", Category: "Poultry", Price: decimal.NewFromInt(85), Description: "Whole frozen broiler chicken, approx 1.5kg", ImageName: "whole-chicken.jpg", Stock: 40},
	{Name: "Chicken Wings 1kg", Category: "Poultry", Price: decimal.NewFromInt(55), Description: "Frozen chicken wings, 1kg pack", ImageName: "chicken-wings.jpg", Stock: 60},
	{Name: "Chicken Thighs 1kg", Category: "Poultry", Price: decimal.NewFromInt(48), Description: "Frozen chicken thighs, 1kg pack", ImageName: "chicken-thighs.jpg", Stock: 50},
	{Name: "Tilapia 1kg", Category: "Seafood", Price: decimal.NewFromInt(60), Description: "Fresh-frozen tilapia, 1kg", ImageName: "tilapia.jpg", Stock: 35},
	{Name: "Mackerel 1kg", Category: "Seafood", Price: decimal.NewFromInt(45), Description: "Frozen mackerel, 1kg", ImageName: "mackerel.jpg", Stock: 30},
	{Name: "Shrimp 500g", Category: "Seafood", Price: decimal.NewFromInt(95), Description: "Peeled frozen shrimp, 500g pack", ImageName: "shrimp.jpg", Stock: 20},
	{Name: "Beef Cubes 1kg", Category: "Meat", Price: decimal.NewFromInt(110), Description: "Frozen beef cubes, 1kg pack", ImageName: "beef-cubes.jpg", Stock: 25},
	{Name: "Sausages 500g", Category: "Meat", Price: decimal.NewFromInt(40), Description: "Frozen breakfast sausages, 500g pack", ImageName: "sausages.jpg", Stock: 70},
	{Name: "Mixed Vegetables 1kg", Category: "Vegetables", Price: decimal.NewFromInt(35), Description: "Frozen carrot, pea and corn mix, 1kg", ImageName: "mixed-veg.jpg", Stock: 45},
	{Name: "Green Peas 500g", Category: "Vegetables", Price: decimal.NewFromInt(22), Description: "Frozen green peas, 500g pack", ImageName: "green-peas.jpg", Stock: 55},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo categories and products",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		db := openDatabase(cfg)

		if err := migrate(db); err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}

		log.Println("Seeding categories...")
		for i := range seedCategories {
			if err := db.Create(&seedCategories[i]).Error; err != nil {
				log.Fatalf("❌ Failed to seed category %q: %v", seedCategories[i].Name, err)
			}
		}
		log.Printf("✅ Seeded %d categories", len(seedCategories))

		log.Println("Seeding products...")
		for i := range seedProducts {
			if err := db.Create(&seedProducts[i]).Error; err != nil {
				log.Fatalf("❌ Failed to seed product %q: %v", seedProducts[i].Name, err)
			}
		}
		log.Printf("✅ Seeded %d products", len(seedProducts))

		if cfg.Auth.SeedAdminEmail != "" && cfg.Auth.SeedAdminPIN != "" {
			if _, err := auth.CreateAdmin(db, cfg.Auth.SeedAdminEmail, "Administrator", cfg.Auth.SeedAdminPIN); err != nil {
				log.Fatalf("❌ Failed to seed admin: %v", err)
			}
			log.Printf("✅ Seeded admin %s", cfg.Auth.SeedAdminEmail)
		}

		log.Println("✅ Database seeding completed")
	},
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/midiiiwo/frozen-haven-api/config"
	cartControllers "github.com/midiiiwo/frozen-haven-api/controllers/cart"
	orderControllers "github.com/midiiiwo/frozen-haven-api/controllers/order"
	productcontroller "github.com/midiiiwo/frozen-haven-api/controllers/product"
	"gorm.io/gorm"
)

// SetupShopRoutes registers the public storefront endpoints: catalog
// browsing, the session cart and checkout.
func SetupShopRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	shop := r.Group("/shop")
	{
		// ──────────────── Browse catalog ────────────────
		shop.GET("/products", productcontroller.GetProducts(db))        // ?category= / ?search=
		shop.GET("/products/:id", productcontroller.GetProductByID(db))
		shop.GET("/categories", productcontroller.GetAllCategories(db))

		// ──────────────── Shopping cart ────────────────
		cartGroup := shop.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCartHandler(db))
			cartGroup.POST("/items", cartControllers.AddItemHandler(db))
			cartGroup.PUT("/items/:product_id", cartControllers.SetQuantityHandler(db))
			cartGroup.DELETE("/items/:product_id", cartControllers.RemoveItemHandler(db))
			cartGroup.DELETE("", cartControllers.ClearCartHandler(db))
		}

		// ──────────────── Checkout ────────────────
		shop.POST("/checkout", orderControllers.CheckoutHandler(db, cfg.Checkout))
		shop.POST("/checkout/:orderID/confirm-handoff", orderControllers.ConfirmHandoffHandler(db))
	}
}

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/midiiiwo/frozen-haven-api/config"
	customerControllers "github.com/midiiiwo/frozen-haven-api/controllers/customer"
	orderControllers "github.com/midiiiwo/frozen-haven-api/controllers/order"
	productcontroller "github.com/midiiiwo/frozen-haven-api/controllers/product"
	"github.com/midiiiwo/frozen-haven-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an admin JWT.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(cfg.Auth.JWTSecret))
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.GET("/:id", productcontroller.GetProductByID(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.PUT("/:id/stock", productcontroller.SetStockHandler(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Stock Report ───────────
		adminGroup.GET("/stock/report", productcontroller.StockReportHandler(db, cfg.Stock.LowThreshold))

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategoryHandler(db))
		}

		// ─────────── Customer Management ───────────
		customerAdmin := adminGroup.Group("/customers")
		{
			customerAdmin.POST("", customerControllers.CreateCustomer(db))
			customerAdmin.GET("", customerControllers.GetAllCustomers(db)) // ?search=
			customerAdmin.GET("/:id", customerControllers.GetCustomerByID(db))
			customerAdmin.PUT("/:id", customerControllers.UpdateCustomer(db))
			customerAdmin.DELETE("/:id", customerControllers.DeleteCustomer(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db)) // ?status= / ?customer_email=
			orderAdmin.GET("/statistics", orderControllers.OrderStatisticsHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderFeedHandler)
			orderAdmin.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
		}

		// ─────────── Analytics Overview ───────────
		adminGroup.GET("/analytics", orderControllers.AnalyticsHandler(db))
	}
}

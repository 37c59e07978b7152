package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/midiiiwo/frozen-haven-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatistics mirrors the back-office dashboard counters.
type OrderStatistics struct {
	Total        int64           `json:"total"`
	PayLater     int64           `json:"pay_later"`
	Pending      int64           `json:"pending"`
	Processing   int64           `json:"processing"`
	Completed    int64           `json:"completed"`
	Cancelled    int64           `json:"cancelled"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type Analytics struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalOrders       int64           `json:"total_orders"`
	TotalCustomers    int64           `json:"total_customers"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	OrdersByStatus    OrderStatistics `json:"orders_by_status"`
}

// GetOrderStatistics counts orders per status and sums revenue over completed
// orders only.
func GetOrderStatistics(db *gorm.DB) (*OrderStatistics, error) {
	var orders []models.Order
	if err := db.Find(&orders).Error; err != nil {
		return nil, err
	}

	stats := OrderStatistics{Total: int64(len(orders)), TotalRevenue: decimal.Zero}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusPayLater:
			stats.PayLater++
		case models.OrderStatusPending:
			stats.Pending++
		case models.OrderStatusProcessing:
			stats.Processing++
		case models.OrderStatusCompleted:
			stats.Completed++
			stats.TotalRevenue = stats.TotalRevenue.Add(o.Total)
		case models.OrderStatusCancelled:
			stats.Cancelled++
		}
	}
	return &stats, nil
}

// GetAnalytics aggregates the storefront overview numbers.
func GetAnalytics(db *gorm.DB) (*Analytics, error) {
	stats, err := GetOrderStatistics(db)
	if err != nil {
		return nil, err
	}

	var customerCount int64
	if err := db.Model(&models.Customer{}).Count(&customerCount).Error; err != nil {
		return nil, err
	}

	avg := decimal.Zero
	if stats.Completed > 0 {
		avg = stats.TotalRevenue.Div(decimal.NewFromInt(stats.Completed)).Round(2)
	}

	return &Analytics{
		TotalRevenue:      stats.TotalRevenue,
		TotalOrders:       stats.Total,
		TotalCustomers:    customerCount,
		AverageOrderValue: avg,
		OrdersByStatus:    *stats,
	}, nil
}

// GET /admin/orders/statistics
func OrderStatisticsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := GetOrderStatistics(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// GET /admin/analytics
func AnalyticsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		analytics, err := GetAnalytics(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
			return
		}
		c.JSON(http.StatusOK, analytics)
	}
}

package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/midiiiwo/frozen-haven-api/models"
	"gorm.io/gorm"
)

var ErrNegativeStock = errors.New("stock must not be negative")

type SetStockInput struct {
	Stock *int `json:"stock" binding:"required"`
}

// StockReport groups the catalog by stock level for the back-office inventory
// page.
type StockReport struct {
	InStock    []models.Product `json:"in_stock"`
	LowStock   []models.Product `json:"low_stock"`
	OutOfStock []models.Product `json:"out_of_stock"`
}

// SetStock writes an absolute stock level for a product. Negative values are
// rejected so the stock >= 0 invariant holds for admin writes too.
func SetStock(db *gorm.DB, productID string, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&product).Update("stock", stock).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// BuildStockReport splits products into in-stock, low-stock (at or below the
// threshold) and out-of-stock buckets.
func BuildStockReport(db *gorm.DB, lowThreshold int) (*StockReport, error) {
	var products []models.Product
	if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}

	report := StockReport{
		InStock:    []models.Product{},
		LowStock:   []models.Product{},
		OutOfStock: []models.Product{},
	}
	for _, p := range products {
		switch {
		case p.Stock == 0:
			report.OutOfStock = append(report.OutOfStock, p)
		case p.Stock <= lowThreshold:
			report.LowStock = append(report.LowStock, p)
		default:
			report.InStock = append(report.InStock, p)
		}
	}
	return &report, nil
}

// PUT /admin/products/:id/stock
func SetStockHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetStockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := SetStock(db, c.Param("id"), *input.Stock)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, ErrNegativeStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /admin/stock/report
func StockReportHandler(db *gorm.DB, lowThreshold int) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := BuildStockReport(db, lowThreshold)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build stock report"})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

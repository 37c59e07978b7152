package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/midiiiwo/frozen-haven-api/models"
	"gorm.io/gorm"
)

// SearchProducts does a case-insensitive substring match over name,
// description and category. The whole catalog is loaded and filtered in
// memory; the catalog is small enough that a text index is not worth it.
func SearchProducts(db *gorm.DB, term string) ([]models.Product, error) {
	var products []models.Product
	if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetProducts lists the catalog newest first.
// Query params: ?category= filters by category label ("All" is a no-op),
// ?search= runs the substring search instead.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if search := c.Query("search"); search != "" {
			products, err := SearchProducts(db, search)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search products"})
				return
			}
			c.JSON(http.StatusOK, products)
			return
		}

		query := db.Order("created_at DESC")
		if category := c.Query("category"); category != "" && category != "All" {
			query = query.Where("category = ?", category)
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

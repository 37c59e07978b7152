package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/midiiiwo/frozen-haven-api/config"
	cartControllers "github.com/midiiiwo/frozen-haven-api/controllers/cart"
	"github.com/midiiiwo/frozen-haven-api/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// UpdateStatus advances an order through the status state machine. Illegal
// steps, including any exit from a terminal state, are rejected.
func UpdateStatus(db *gorm.DB, orderID string, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, "id = ? OR reference = ?", orderID, orderID).Error; err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, models.ErrInvalidTransition
	}

	if err := db.Model(&order).Update("status", next).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /shop/checkout
func CheckoutHandler(db *gorm.DB, cfg config.CheckoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sessionID := c.GetHeader(cartControllers.SessionHeader)
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		result, err := PlaceOrder(db, cfg, sessionID, req)
		if err != nil {
			var notFound *ProductNotFoundError
			var insufficient *InsufficientStockError
			switch {
			case errors.As(err, &notFound), errors.As(err, &insufficient),
				errors.Is(err, ErrCartEmpty), errors.Is(err, ErrMissingFields),
				errors.Is(err, models.ErrInvalidPaymentMethod):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		BroadcastOrderCreated(*result.Order)
		c.JSON(http.StatusCreated, result)
	}
}

// POST /shop/checkout/:orderID/confirm-handoff
func ConfirmHandoffHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(cartControllers.SessionHeader)
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart session is required"})
			return
		}

		err := ConfirmPaymentHandoff(db, sessionID, c.Param("orderID"))
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, models.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "order is not awaiting payment"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm handoff"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment handoff confirmed, cart cleared"})
	}
}

// GET /admin/orders?status=&customer_email=
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Preload("Items").Order("created_at DESC")

		if status := c.Query("status"); status != "" {
			parsed, err := models.ParseOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", parsed)
		}
		if email := c.Query("customer_email"); email != "" {
			query = query.Where("customer_email = ?", email)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID — accepts the id or the human-readable reference.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").
			Where("id = ? OR reference = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		next, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := UpdateStatus(db, c.Param("orderID"), next)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			case errors.Is(err, models.ErrInvalidTransition):
				c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully", "order": order})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			result := tx.Where("id = ?", orderID).Delete(&models.Order{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

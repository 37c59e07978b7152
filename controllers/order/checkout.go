package orderControllers

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/midiiiwo/frozen-haven-api/config"
	"github.com/midiiiwo/frozen-haven-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCartEmpty     = errors.New("cart is empty")
	ErrMissingFields = errors.New("name, email, phone and address are required")
)

// ProductNotFoundError reports a cart line whose product no longer exists.
type ProductNotFoundError struct {
	ProductName string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product no longer available: %s", e.ProductName)
}

// InsufficientStockError reports a cart line asking for more units than the
// catalog currently holds.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %d available", e.ProductName, e.Available)
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerAddress string `json:"customer_address" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
}

// PaymentInstructions tells a mobile money shopper where to send the total and
// carries the messaging deep link used for manual confirmation.
type PaymentInstructions struct {
	PayeeName   string          `json:"payee_name"`
	PayeeNumber string          `json:"payee_number"`
	PayeeID     string          `json:"payee_id"`
	Amount      decimal.Decimal `json:"amount"`
	HandoffURL  string          `json:"handoff_url"`
}

type CheckoutResult struct {
	Order   *models.Order        `json:"order"`
	Payment *PaymentInstructions `json:"payment,omitempty"`
	// CartCleared is false for mobile money orders: the cart survives until
	// the shopper confirms the payment handoff.
	CartCleared bool `json:"cart_cleared"`
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// PlaceOrder turns the session's cart into a persisted order.
//
// Stock is validated per line before anything is written. The order row, the
// implicit customer record and every stock decrement then commit in a single
// transaction; each decrement is conditional (stock >= quantity), so two
// shoppers racing for the last unit cannot drive stock negative — the loser's
// whole checkout rolls back with InsufficientStockError.
func PlaceOrder(db *gorm.DB, cfg config.CheckoutConfig, sessionID string, req CheckoutRequest) (*CheckoutResult, error) {
	if hasBlankField(req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.CustomerAddress) {
		return nil, ErrMissingFields
	}

	method, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := db.Preload("Items").Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartEmpty
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	// Pre-order stock validation. Fails before any write.
	for _, item := range cart.Items {
		var product models.Product
		if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ProductNotFoundError{ProductName: item.ProductName}
			}
			return nil, err
		}
		if product.Stock < item.Quantity {
			return nil, &InsufficientStockError{ProductName: product.Name, Available: product.Stock}
		}
	}

	subtotal := cart.TotalPrice()
	deliveryFee := decimal.NewFromFloat(cfg.DeliveryFee)
	total := subtotal.Add(deliveryFee)

	status := models.OrderStatusPending
	if method == models.PaymentMethodMobileMoney {
		status = models.OrderStatusPayLater
	}

	orderItems := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ProductCategory: item.ProductCategory,
			ProductImage:    item.ProductImage,
			UnitPrice:       item.ProductPrice,
			Quantity:        item.Quantity,
		})
	}

	order := models.Order{
		Reference:       generateOrderRef(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Items:           orderItems,
		Subtotal:        subtotal,
		DeliveryFee:     deliveryFee,
		Total:           total,
		PaymentMethod:   method,
		Status:          status,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		customer, err := findOrCreateCustomer(tx, req)
		if err != nil {
			return err
		}
		order.CustomerID = customer.ID

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range cart.Items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// Lost a race since the pre-check; report what is left now.
				var product models.Product
				if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
					return &ProductNotFoundError{ProductName: item.ProductName}
				}
				return &InsufficientStockError{ProductName: product.Name, Available: product.Stock}
			}
		}

		// Cash and card orders release the basket right away. Mobile money
		// keeps it until the shopper confirms the payment handoff.
		if method != models.PaymentMethodMobileMoney {
			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &CheckoutResult{
		Order:       &order,
		CartCleared: method != models.PaymentMethodMobileMoney,
	}
	if method == models.PaymentMethodMobileMoney {
		result.Payment = &PaymentInstructions{
			PayeeName:   cfg.PayeeName,
			PayeeNumber: cfg.PayeeNumber,
			PayeeID:     cfg.PayeeID,
			Amount:      total,
			HandoffURL:  paymentHandoffURL(cfg.PayeeNumber, order.Reference, total),
		}
	}
	return result, nil
}

// ConfirmPaymentHandoff clears the session's cart after the shopper confirms
// the mobile money handoff for a pay_later order.
func ConfirmPaymentHandoff(db *gorm.DB, sessionID, orderID string) error {
	var order models.Order
	if err := db.First(&order, "id = ? OR reference = ?", orderID, orderID).Error; err != nil {
		return err
	}
	if order.Status != models.OrderStatusPayLater {
		return models.ErrInvalidTransition
	}

	var cart models.Cart
	if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}

// findOrCreateCustomer backs the implicit customer creation at checkout: the
// first record matching the email is refreshed, otherwise a new one is made.
func findOrCreateCustomer(tx *gorm.DB, req CheckoutRequest) (*models.Customer, error) {
	var customer models.Customer
	err := tx.Where("email = ?", req.CustomerEmail).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		customer = models.Customer{
			Name:    req.CustomerName,
			Email:   req.CustomerEmail,
			Phone:   req.CustomerPhone,
			Address: req.CustomerAddress,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return nil, err
		}
		return &customer, nil
	}
	if err != nil {
		return nil, err
	}

	updates := models.Customer{
		Name:    req.CustomerName,
		Phone:   req.CustomerPhone,
		Address: req.CustomerAddress,
	}
	if err := tx.Model(&customer).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// paymentHandoffURL builds the wa.me deep link with a pre-filled message
// carrying the order reference and amount for manual reconciliation.
func paymentHandoffURL(payeeNumber, orderRef string, amount decimal.Decimal) string {
	number := strings.TrimPrefix(strings.ReplaceAll(payeeNumber, " ", ""), "+")
	text := fmt.Sprintf("Payment for order %s, amount %s", orderRef, amount.StringFixed(2))
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(text))
}

func hasBlankField(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

package orderControllers

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/midiiiwo/frozen-haven-api/config"
	cartControllers "github.com/midiiiwo/frozen-haven-api/controllers/cart"
	"github.com/midiiiwo/frozen-haven-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testCheckoutConfig = config.CheckoutConfig{
	DeliveryFee: 20,
	PayeeName:   "Frozen Haven",
	PayeeNumber: "+233 55 000 0000",
	PayeeID:     "FROZENHVN",
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Customer{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func createProduct(t *testing.T, db *gorm.DB, id, name string, price int64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		ID:       id,
		Name:     name,
		Category: "Poultry",
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func fillCart(t *testing.T, db *gorm.DB, sessionID, productID string, quantity int) {
	t.Helper()
	for i := 0; i < quantity; i++ {
		_, err := cartControllers.AddItem(db, sessionID, productID)
		require.NoError(t, err)
	}
}

func checkoutRequest(method string) CheckoutRequest {
	return CheckoutRequest{
		CustomerName:    "Ama Mensah",
		CustomerEmail:   "ama@example.com",
		CustomerPhone:   "+233550000001",
		CustomerAddress: "12 Ring Road, Accra",
		PaymentMethod:   method,
	}
}

func TestPlaceOrderCash(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "p1", "Whole Chicken", 100, 5)
	fillCart(t, db, "sess", "p1", 2)

	result, err := PlaceOrder(db, testCheckoutConfig, "sess", checkoutRequest("cash"))
	require.NoError(t, err)

	order := result.Order
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal %s", order.Subtotal)
	assert.True(t, order.DeliveryFee.Equal(decimal.NewFromInt(20)))
	assert.True(t, order.Total.Equal(decimal.NewFromInt(220)), "total %s", order.Total)
	assert.True(t, order.Total.Equal(order.Subtotal.Add(order.DeliveryFee)))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.Reference)
	assert.Nil(t, result.Payment)
	assert.True(t, result.CartCleared)

	// Stock decremented by the ordered quantity.
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", "p1").Error)
	assert.Equal(t, 3, product.Stock)

	// Cart released immediately for cash.
	cart, err := cartControllers.GetCart(db, "sess")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Customer created implicitly.
	var customer models.Customer
	require.NoError(t, db.First(&customer, "email = ?", "ama@example.com").Error)
	assert.Equal(t, customer.ID, order.CustomerID)
}

func TestPlaceOrderMobileMoney(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "p1", "Whole Chicken", 100, 5)
	fillCart(t, db, "sess", "p1", 2)

	result, err := PlaceOrder(db, testCheckoutConfig, "sess", checkoutRequest("mobile_money"))
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPayLater, result.Order.Status)
	assert.False(t, result.CartCleared)

	require.NotNil(t, result.Payment)
	assert.Equal(t, "Frozen Haven", result.Payment.PayeeName)
	assert.True(t, result.Payment.Amount.Equal(decimal.NewFromInt(220)))
	assert.Contains(t, result.Payment.HandoffURL, "https://wa.me/233550000000")
	assert.Contains(t, result.Payment.HandoffURL, result.Order.Reference)

	// Cart survives until the handoff is confirmed.
	cart, err := cartControllers.GetCart(db, "sess")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	require.NoError(t, ConfirmPaymentHandoff(db, "sess", result.Order.ID))

	cart, err = cartControllers.GetCart(db, "sess")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "p1", "Shrimp 500g", 95, 1)
	fillCart(t, db, "sess", "p1", 2)

	_, err := PlaceOrder(db, testCheckoutConfig, "sess", checkoutRequest("cash"))

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Shrimp 500g", insufficient.ProductName)
	assert.Equal(t, 1, insufficient.Available)

	// No order persisted, stock untouched.
	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", "p1").Error)
	assert.Equal(t, 1, product.Stock)
}

func TestPlaceOrderProductRemoved(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "p1", "Mackerel 1kg", 45, 5)
	fillCart(t, db, "sess", "p1", 1)

	require.NoError(t, db.Delete(&models.Product{}, "id = ?", "p1").Error)

	_, err := PlaceOrder(db, testCheckoutConfig, "sess", checkoutRequest("cash"))

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Mackerel 1kg", notFound.ProductName)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := openTestDB(t)

	_, err := PlaceOrder(db, testCheckoutConfig, "sess", checkoutRequest("cash"))
	assert.ErrorIs(t, err, ErrCartEmpty)
}

func TestPlaceOrderMissingFields(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "p1", "Whole Chicken", 100, 5)
	fillCart(t, db, "sess", "p1", 1)

	req := checkoutRequest("cash")
	req.CustomerPhone = "   "

	_, err := PlaceOrder(db, testCheckoutConfig, "sess", req)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestPlaceOrderInvalidPaymentMethod(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "p1", "Whole Chicken", 100, 5)
	fillCart(t, db, "sess", "p1", 1)

	_, err := PlaceOrder(db, testCheckoutConfig, "sess", checkoutRequest("crypto"))
	assert.ErrorIs(t, err, models.ErrInvalidPaymentMethod)
}

func TestPlaceOrderSnapshotsPriceAtOrderTime(t *testing.T) {
	db := openTestDB(t)
	product := createProduct(t, db, "p1", "Beef Cubes 1kg", 110, 5)
	fillCart(t, db, "sess", "p1", 1)

	// Price change between add-to-cart and checkout: the order keeps the
	// price the shopper saw.
	require.NoError(t, db.Model(&product).Update("price", decimal.NewFromInt(150)).Error)

	result, err := PlaceOrder(db, testCheckoutConfig, "sess", checkoutRequest("cash"))
	require.NoError(t, err)

	require.Len(t, result.Order.Items, 1)
	assert.True(t, result.Order.Items[0].UnitPrice.Equal(decimal.NewFromInt(110)))
	assert.True(t, result.Order.Subtotal.Equal(decimal.NewFromInt(110)))
}

func TestUpdateStatusFollowsStateMachine(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "p1", "Whole Chicken", 100, 5)
	fillCart(t, db, "sess", "p1", 1)

	result, err := PlaceOrder(db, testCheckoutConfig, "sess", checkoutRequest("cash"))
	require.NoError(t, err)
	orderID := result.Order.ID

	order, err := UpdateStatus(db, orderID, models.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)

	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", orderID).Error)
	assert.Equal(t, models.OrderStatusProcessing, stored.Status)

	_, err = UpdateStatus(db, orderID, models.OrderStatusCompleted)
	require.NoError(t, err)

	// Terminal state refuses further transitions.
	_, err = UpdateStatus(db, orderID, models.OrderStatusProcessing)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	_, err = UpdateStatus(db, orderID, models.OrderStatusCancelled)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestPayLaterConfirmsToPending(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "p1", "Whole Chicken", 100, 5)
	fillCart(t, db, "sess", "p1", 1)

	result, err := PlaceOrder(db, testCheckoutConfig, "sess", checkoutRequest("mobile_money"))
	require.NoError(t, err)

	_, err = UpdateStatus(db, result.Order.ID, models.OrderStatusPending)
	require.NoError(t, err)

	// pay_later may not jump straight to processing.
	var stored models.Order
	require.NoError(t, db.First(&stored, "id = ?", result.Order.ID).Error)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestOrderStatistics(t *testing.T) {
	db := openTestDB(t)
	createProduct(t, db, "p1", "Whole Chicken", 100, 50)

	fillCart(t, db, "s1", "p1", 2)
	r1, err := PlaceOrder(db, testCheckoutConfig, "s1", checkoutRequest("cash"))
	require.NoError(t, err)

	fillCart(t, db, "s2", "p1", 1)
	_, err = PlaceOrder(db, testCheckoutConfig, "s2", checkoutRequest("mobile_money"))
	require.NoError(t, err)

	// Complete the first order: pending -> processing -> completed.
	_, err = UpdateStatus(db, r1.Order.ID, models.OrderStatusProcessing)
	require.NoError(t, err)
	_, err = UpdateStatus(db, r1.Order.ID, models.OrderStatusCompleted)
	require.NoError(t, err)

	stats, err := GetOrderStatistics(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.PayLater)
	// Revenue counts completed orders only: 2 x 100 + 20 fee.
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(220)), "revenue %s", stats.TotalRevenue)

	analytics, err := GetAnalytics(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), analytics.TotalOrders)
	assert.Equal(t, int64(1), analytics.TotalCustomers)
	assert.True(t, analytics.AverageOrderValue.Equal(decimal.NewFromInt(220)))
}

package cartControllers

import (
	"errors"
	"time"

	"github.com/midiiiwo/frozen-haven-api/models"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product does not exist")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// getOrCreateCart loads the session's cart with its items, creating an empty
// one on first use.
func getOrCreateCart(db *gorm.DB, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("session_id = ?", sessionID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{SessionID: sessionID}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCart returns the session's cart, creating it on first use.
func GetCart(db *gorm.DB, sessionID string) (*models.Cart, error) {
	return getOrCreateCart(db, sessionID)
}

// AddItem puts one unit of the product into the cart. An existing line is
// incremented by one; a new line snapshots the product fields with quantity 1.
// The basket is non-authoritative, so stock is not checked here.
func AddItem(db *gorm.DB, sessionID, productID string) (*models.CartItem, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	cart, err := getOrCreateCart(db, sessionID)
	if err != nil {
		return nil, err
	}

	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		item = models.CartItem{
			CartID:          cart.CartID,
			ProductID:       product.ID,
			ProductName:     product.Name,
			ProductCategory: product.Category,
			ProductImage:    product.ImageName,
			ProductPrice:    product.Price,
			Quantity:        1,
			AddedAt:         time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if err != nil {
		return nil, err
	}

	item.Quantity++
	item.AddedAt = time.Now()
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// SetItemQuantity sets the line's quantity. A quantity of zero or less removes
// the line entirely. Returns the updated line, or nil when it was removed.
func SetItemQuantity(db *gorm.DB, sessionID, productID string, quantity int) (*models.CartItem, error) {
	cart, err := findCart(db, sessionID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
			Delete(&models.CartItem{})
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrCartItemNotFound
		}
		return nil, nil
	}

	var item models.CartItem
	if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}

	item.Quantity = quantity
	if err := db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes the line unconditionally.
func RemoveItem(db *gorm.DB, sessionID, productID string) error {
	cart, err := findCart(db, sessionID)
	if err != nil {
		return err
	}

	result := db.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearCart empties the session's cart.
func ClearCart(db *gorm.DB, sessionID string) error {
	cart, err := findCart(db, sessionID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return nil
		}
		return err
	}
	return db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}

func findCart(db *gorm.DB, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

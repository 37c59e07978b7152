package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is a shopper's session basket, keyed by an opaque session token issued
// to the client. The basket is non-authoritative: no stock is reserved until
// checkout validates it.
type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	SessionID string     `gorm:"uniqueIndex" json:"session_id"` // one cart per session
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem snapshots the product fields at the time it was added. Later
// catalog edits do not change lines already in a basket.
type CartItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CartID          uint            `gorm:"index" json:"cart_id"`
	ProductID       string          `gorm:"index" json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductCategory string          `json:"product_category"`
	ProductImage    string          `json:"product_image"`
	ProductPrice    decimal.Decimal `gorm:"type:numeric" json:"product_price"`
	Quantity        int             `json:"quantity"`
	AddedAt         time.Time       `json:"added_at"`
}

// TotalPrice sums price x quantity over all lines. Zero for an empty cart.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.ProductPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// TotalItems sums quantities over all lines.
func (c *Cart) TotalItems() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string
type PaymentMethod string

const (
	// Order statuses
	OrderStatusPayLater   OrderStatus = "pay_later"  // Awaiting out-of-band mobile money payment
	OrderStatusPending    OrderStatus = "pending"    // Payment settled (or due on delivery), awaiting fulfilment
	OrderStatusProcessing OrderStatus = "processing" // Being packed
	OrderStatusCompleted  OrderStatus = "completed"  // Delivered
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before completion

	// Payment methods
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
	PaymentMethodCard        PaymentMethod = "card"
)

var (
	ErrInvalidOrderStatus   = errors.New("invalid order status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidTransition    = errors.New("invalid order status transition")
)

type Order struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"uniqueIndex" json:"reference"`

	// Customer contact snapshotted at order time.
	CustomerID      string `gorm:"index" json:"customer_id"`
	CustomerName    string `gorm:"not null" json:"customer_name"`
	CustomerEmail   string `gorm:"index" json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	Subtotal    decimal.Decimal `gorm:"type:numeric" json:"subtotal"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric" json:"delivery_fee"`
	Total       decimal.Decimal `gorm:"type:numeric" json:"total"`

	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20)" json:"payment_method"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderItem is a by-value snapshot of a cart line. Historical orders keep the
// name, category and price the shopper saw, regardless of later catalog edits.
type OrderItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderID         string          `gorm:"index" json:"order_id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductCategory string          `json:"product_category"`
	ProductImage    string          `json:"product_image"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric" json:"unit_price"`
	Quantity        int             `json:"quantity"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// ParseOrderStatus maps a request string to an OrderStatus.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(status)) {
	case OrderStatusPayLater:
		return OrderStatusPayLater, nil
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusCompleted:
		return OrderStatusCompleted, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// ParsePaymentMethod maps a request string to a PaymentMethod.
func ParsePaymentMethod(method string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(method)) {
	case PaymentMethodCash:
		return PaymentMethodCash, nil
	case PaymentMethodMobileMoney:
		return PaymentMethodMobileMoney, nil
	case PaymentMethodCard:
		return PaymentMethodCard, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// Order status flow:
//
//	pay_later -> pending -> processing -> completed
//	pay_later | pending | processing -> cancelled
//
// completed and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPayLater:   {OrderStatusPending, OrderStatusCancelled},
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

// CanTransitionTo reports whether moving from s to next is a legal step.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

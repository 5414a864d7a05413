package ordering

import (
	"time"

	"github.com/littlelemon/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Order is a placed order. The schema is registered for migration; no
// request-handling logic operates on orders yet.
type Order struct {
	shared.BaseEntity
	UserID         uint            `gorm:"not null;index"`
	DeliveryCrewID *uint           `gorm:"index"`
	Status         bool            `gorm:"not null;default:false;index"`
	Total          decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Date           time.Time       `gorm:"type:date;not null;index"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order, unique per (order, menu item).
type OrderItem struct {
	shared.BaseEntity
	OrderID    uint            `gorm:"not null;uniqueIndex:idx_order_item,priority:1"`
	MenuItemID uint            `gorm:"not null;uniqueIndex:idx_order_item,priority:2"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(6,2);not null"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

package cart

import (
	"time"

	"github.com/littlelemon/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item is one row in a user's cart. At most one row exists per
// (user, menu item) pair; repeat adds replace the quantity.
//
// UnitPrice is captured from the catalog at first insertion and never
// changes afterwards, so catalog price updates do not reprice carts
// mid-session. Price is always derived as Quantity * UnitPrice.
type Item struct {
	shared.BaseEntity
	UserID     uint            `gorm:"not null;uniqueIndex:idx_cart_user_item,priority:1"`
	MenuItemID uint            `gorm:"not null;uniqueIndex:idx_cart_user_item,priority:2"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(6,2);not null"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "cart_items"
}

// NewItem builds a cart row for first insertion, deriving Price from the
// quantity and the captured unit price.
func NewItem(userID, menuItemID uint, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Item{
		BaseEntity: shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
		UnitPrice:  unitPrice.Round(2),
		Price:      ComputePrice(quantity, unitPrice),
	}, nil
}

// ComputePrice derives the line price from quantity and unit price.
func ComputePrice(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// ValidateQuantity rejects non-positive quantities.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be a positive integer")
	}
	return nil
}

// Line is a read-time projection of a cart row joined with its menu item.
// It is never persisted.
type Line struct {
	ID                uint            `json:"id"`
	MenuItemID        uint            `json:"menuitem_id"`
	MenuItemTitle     string          `json:"menuitem_title"`
	MenuItemPrice     decimal.Decimal `json:"menuitem_price"`
	MenuItemInventory int             `json:"menuitem_inventory"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Price             decimal.Decimal `json:"price"`
}

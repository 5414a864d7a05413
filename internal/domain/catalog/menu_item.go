package catalog

import (
	"strings"
	"time"

	"github.com/littlelemon/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultCategoryID is assigned to menu items created without an explicit category.
const DefaultCategoryID uint = 1

// MinPrice is the lowest allowed menu item price.
var MinPrice = decimal.NewFromInt(2)

// MenuItem is a single orderable dish on the menu.
type MenuItem struct {
	shared.BaseEntity
	Title      string          `gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `gorm:"type:decimal(6,2);not null"`
	Inventory  int             `gorm:"not null;default:0"`
	CategoryID uint            `gorm:"not null;index;default:1"`
	Category   *Category       `gorm:"constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// NewMenuItem creates a new menu item. A zero categoryID falls back to the
// default category.
func NewMenuItem(title string, price decimal.Decimal, inventory int, categoryID uint) (*MenuItem, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateInventory(inventory); err != nil {
		return nil, err
	}
	if categoryID == 0 {
		categoryID = DefaultCategoryID
	}

	now := time.Now()
	return &MenuItem{
		BaseEntity: shared.BaseEntity{CreatedAt: now, UpdatedAt: now},
		Title:      title,
		Price:      price.Round(2),
		Inventory:  inventory,
		CategoryID: categoryID,
	}, nil
}

// Update replaces the item's mutable fields
func (m *MenuItem) Update(title string, price decimal.Decimal, inventory int, categoryID uint) error {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validatePrice(price); err != nil {
		return err
	}
	if err := validateInventory(inventory); err != nil {
		return err
	}

	m.Title = title
	m.Price = price.Round(2)
	m.Inventory = inventory
	if categoryID != 0 {
		m.CategoryID = categoryID
	}
	m.UpdatedAt = time.Now()
	return nil
}

// PriceAfterTax returns the price with the flat 10% tax applied.
func (m *MenuItem) PriceAfterTax() decimal.Decimal {
	return m.Price.Mul(decimal.NewFromFloat(1.1)).Round(2)
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThan(MinPrice) {
		return shared.NewDomainError("INVALID_PRICE", "Price must be at least 2")
	}
	return nil
}

func validateInventory(inventory int) error {
	if inventory < 0 {
		return shared.NewDomainError("INVALID_INVENTORY", "Inventory cannot be negative")
	}
	return nil
}

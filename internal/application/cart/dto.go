package cart

import (
	"github.com/littlelemon/backend/internal/domain/cart"
	"github.com/shopspring/decimal"
)

// AddItemRequest is the payload for putting a menu item into the cart.
// Posting an item already in the cart replaces its quantity.
type AddItemRequest struct {
	MenuItemID uint `json:"menuitem_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// ItemResponse is the read model for one cart line
type ItemResponse struct {
	ID                uint            `json:"id"`
	MenuItemID        uint            `json:"menuitem_id"`
	MenuItemTitle     string          `json:"menuitem_title"`
	MenuItemPrice     decimal.Decimal `json:"menuitem_price"`
	MenuItemInventory int             `json:"menuitem_inventory"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Price             decimal.Decimal `json:"price"`
}

// ClearResponse reports how many cart lines a flush removed
type ClearResponse struct {
	Deleted int64 `json:"deleted"`
}

func toItemResponse(it *cart.Item) ItemResponse {
	return ItemResponse{
		ID:         it.ID,
		MenuItemID: it.MenuItemID,
		Quantity:   it.Quantity,
		UnitPrice:  it.UnitPrice,
		Price:      it.Price,
	}
}

func toLineResponse(l *cart.Line) ItemResponse {
	return ItemResponse{
		ID:                l.ID,
		MenuItemID:        l.MenuItemID,
		MenuItemTitle:     l.MenuItemTitle,
		MenuItemPrice:     l.MenuItemPrice,
		MenuItemInventory: l.MenuItemInventory,
		Quantity:          l.Quantity,
		UnitPrice:         l.UnitPrice,
		Price:             l.Price,
	}
}

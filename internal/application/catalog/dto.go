package catalog

import (
	"github.com/littlelemon/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest is the payload for creating a menu item
type CreateMenuItemRequest struct {
	Title      string          `json:"title" binding:"required,max=255"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Inventory  int             `json:"inventory" binding:"gte=0"`
	CategoryID uint            `json:"category_id"`
}

// UpdateMenuItemRequest is the payload for a full update of a menu item
type UpdateMenuItemRequest struct {
	Title      string          `json:"title" binding:"required,max=255"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Inventory  int             `json:"inventory" binding:"gte=0"`
	CategoryID uint            `json:"category_id"`
}

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Slug  string `json:"slug" binding:"required,max=255,slug"`
	Title string `json:"title" binding:"required,max=255"`
}

// CategoryResponse is the read model for a category
type CategoryResponse struct {
	ID    uint   `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// MenuItemResponse is the read model for a menu item. Inventory is
// exposed as "stock", and the price with tax applied is derived on the
// way out rather than stored.
type MenuItemResponse struct {
	ID            uint              `json:"id"`
	Title         string            `json:"title"`
	Price         decimal.Decimal   `json:"price"`
	Stock         int               `json:"stock"`
	PriceAfterTax decimal.Decimal   `json:"price_after_tax"`
	Category      *CategoryResponse `json:"category,omitempty"`
	CategoryID    uint              `json:"category_id"`
}

// MenuPageResponse is one page of the menu collection
type MenuPageResponse struct {
	Items   []MenuItemResponse `json:"items"`
	Page    int                `json:"page"`
	PerPage int                `json:"perpage"`
}

func toCategoryResponse(c *catalog.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Slug: c.Slug, Title: c.Title}
}

func toMenuItemResponse(m *catalog.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:            m.ID,
		Title:         m.Title,
		Price:         m.Price,
		Stock:         m.Inventory,
		PriceAfterTax: m.PriceAfterTax(),
		Category:      toCategoryResponse(m.Category),
		CategoryID:    m.CategoryID,
	}
}

func toMenuItemResponses(items []catalog.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toMenuItemResponse(&items[i]))
	}
	return out
}

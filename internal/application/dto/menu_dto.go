package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest cria uma categoria do cardápio.
type CreateCategoryRequest struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// CategoryResponse categoria do cardápio.
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// CreateMenuItemRequest cria um item do cardápio.
type CreateMenuItemRequest struct {
	CategoryID      string          `json:"category_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url"`
	DiscountType    string          `json:"discount_type"`
	DiscountValue   decimal.Decimal `json:"discount_value"`
	DiscountMethods []string        `json:"discount_methods"`
	StockItemID     string          `json:"stock_item_id"`
	StockPerUnit    decimal.Decimal `json:"stock_per_unit"`
}

// UpdateMenuItemRequest atualização parcial de item do cardápio.
type UpdateMenuItemRequest struct {
	CategoryID      *string          `json:"category_id"`
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	ImageURL        *string          `json:"image_url"`
	DiscountType    *string          `json:"discount_type"`
	DiscountValue   *decimal.Decimal `json:"discount_value"`
	DiscountMethods []string         `json:"discount_methods"`
	StockItemID     *string          `json:"stock_item_id"`
	StockPerUnit    *decimal.Decimal `json:"stock_per_unit"`
	Active          *bool            `json:"active"`
}

// MenuItemResponse item do cardápio.
type MenuItemResponse struct {
	ID              string          `json:"id"`
	CategoryID      string          `json:"category_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url"`
	DiscountType    string          `json:"discount_type"`
	DiscountValue   decimal.Decimal `json:"discount_value"`
	DiscountMethods []string        `json:"discount_methods"`
	StockItemID     string          `json:"stock_item_id,omitempty"`
	StockPerUnit    decimal.Decimal `json:"stock_per_unit"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MenuItemListResponse listagem paginada de itens do cardápio.
type MenuItemListResponse struct {
	Items []MenuItemResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

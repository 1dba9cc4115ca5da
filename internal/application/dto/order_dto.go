package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenOrderRequest abre uma comanda (mesa ou balcão).
type OpenOrderRequest struct {
	TableID string `json:"table_id"` // vazio = venda de balcão
	Notes   string `json:"notes"`
}

// AddOrderItemRequest lança um item na comanda.
type AddOrderItemRequest struct {
	MenuItemID string          `json:"menu_item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Notes      string          `json:"notes"`
}

// CloseOrderRequest fecha a comanda no caixa.
// ManualDiscount* é o desconto discricionário digitado pelo operador,
// validado contra o teto configurado em settings.
type CloseOrderRequest struct {
	PaymentMethod       string           `json:"payment_method"`
	ManualDiscountType  string           `json:"manual_discount_type"`
	ManualDiscountValue *decimal.Decimal `json:"manual_discount_value"`
}

// OrderItemResponse linha da comanda.
type OrderItemResponse struct {
	ID         string          `json:"id"`
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Discount   decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes,omitempty"`
}

// OrderResponse comanda com itens.
type OrderResponse struct {
	ID            string              `json:"id"`
	TableID       string              `json:"table_id,omitempty"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	DiscountTotal decimal.Decimal     `json:"discount_total"`
	Total         decimal.Decimal     `json:"total"`
	Notes         string              `json:"notes,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	ClosedAt      *time.Time          `json:"closed_at,omitempty"`
}

// TableResponse mesa do salão.
type TableResponse struct {
	ID      string `json:"id"`
	Number  int    `json:"number"`
	Status  string `json:"status"`
	OrderID string `json:"order_id,omitempty"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockItemRequest cria um insumo de estoque.
type CreateStockItemRequest struct {
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	Cost        decimal.Decimal `json:"cost"`
}

// UpdateStockItemRequest atualização parcial de insumo. Quantity e Cost não
// entram aqui: mudam só via movimentações.
type UpdateStockItemRequest struct {
	Name        *string          `json:"name"`
	Unit        *string          `json:"unit"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
}

// StockItemResponse insumo de estoque.
type StockItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinQuantity decimal.Decimal `json:"min_quantity"`
	Cost        decimal.Decimal `json:"cost"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RegisterMovementRequest registra uma movimentação manual de estoque.
type RegisterMovementRequest struct {
	StockItemID string          `json:"stock_item_id"`
	Type        string          `json:"type"` // entrada | saida | ajuste
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Reason      string          `json:"reason"`
}

// MovementResponse movimentação registrada.
type MovementResponse struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stock_item_id"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Reason      string          `json:"reason,omitempty"`
	RefID       string          `json:"ref_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

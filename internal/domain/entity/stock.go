package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementEntrada = "entrada"
	MovementSaida   = "saida"
	MovementAjuste  = "ajuste"
)

// StockItem representa um insumo controlado em estoque.
// Cost é custo médio ponderado, recalculado a cada entrada com custo informado.
type StockItem struct {
	ID          string
	Name        string
	Unit        string // UN, KG, L, CX...
	Quantity    decimal.Decimal
	MinQuantity decimal.Decimal // abaixo disso o item entra no alerta de reposição
	Cost        decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockMovement registra uma movimentação de estoque (livro-razão, nunca editado).
type StockMovement struct {
	ID          string
	StockItemID string
	Type        string // entrada | saida | ajuste
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal // só em entradas
	Reason      string
	RefID       string // id da comanda ou da nota de compra que originou
	CreatedBy   string
	CreatedAt   time.Time
}

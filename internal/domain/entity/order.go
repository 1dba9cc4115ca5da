package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de uma comanda.
const (
	OrderStatusAberta    = "aberta"
	OrderStatusFechada   = "fechada"
	OrderStatusCancelada = "cancelada"
)

// Order representa uma comanda (pedido de mesa ou balcão).
// Subtotal/DiscountTotal/Total só são definitivos após o fechamento; enquanto
// aberta, o front recalcula a partir dos itens.
type Order struct {
	ID            string
	TableID       string // vazio para venda de balcão
	Status        string
	PaymentMethod string          // definido no fechamento
	Subtotal      decimal.Decimal // soma dos itens antes de descontos
	DiscountTotal decimal.Decimal // descontos por item + desconto de pagamento
	Total         decimal.Decimal
	Notes         string
	CreatedBy     string // usuário que abriu a comanda
	CreatedAt     time.Time
	ClosedAt      *time.Time
}

// OrderItem é uma linha da comanda. Name e UnitPrice são snapshot do item do
// cardápio no momento do lançamento (alterações posteriores de preço não afetam
// comandas abertas).
type OrderItem struct {
	ID         string
	OrderID    string
	MenuItemID string
	Name       string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Discount   decimal.Decimal // desconto aplicado a esta linha no fechamento
	Total      decimal.Decimal
	Notes      string
	CreatedAt  time.Time
}

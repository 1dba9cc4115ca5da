package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de desconto por forma de pagamento (regra automática por item).
const (
	DiscountTypeNone       = "none"
	DiscountTypeFixed      = "fixed"
	DiscountTypePercentage = "percentage"
)

// Formas de pagamento aceitas no caixa.
const (
	PaymentDinheiro = "Dinheiro"
	PaymentPix      = "PIX"
	PaymentCredito  = "Crédito"
	PaymentDebito   = "Débito"
)

// MenuItem representa um item do cardápio.
// O desconto anexado só é aplicado quando a forma de pagamento escolhida no
// fechamento está em DiscountMethods.
type MenuItem struct {
	ID              string
	CategoryID      string
	Name            string
	Description     string
	Price           decimal.Decimal
	ImageURL        string // URL pública no object storage; upload fica fora desta API
	DiscountType    string // none | fixed | percentage
	DiscountValue   decimal.Decimal
	DiscountMethods []string // formas de pagamento que ativam o desconto
	StockItemID     string   // insumo baixado a cada venda (opcional)
	StockPerUnit    decimal.Decimal
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Category agrupa itens do cardápio na ordem de exibição.
type Category struct {
	ID        string
	Name      string
	SortOrder int
	CreatedAt time.Time
}

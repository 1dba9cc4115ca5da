package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de limite do desconto discricionário de caixa.
const (
	LimitTypeNone       = "none"
	LimitTypeFixed      = "fixed"
	LimitTypePercentage = "percentage"
)

// DiscountLimit é o teto do desconto lançado manualmente no fechamento.
// Value nil significa limite não configurado (qualquer desconto passa).
// Não se aplica aos descontos automáticos por forma de pagamento.
type DiscountLimit struct {
	Type      string // none | fixed | percentage
	Value     *decimal.Decimal
	UpdatedAt time.Time
}

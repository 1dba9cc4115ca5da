package dto

import "github.com/shopspring/decimal"

// DiscountLimitRequest configura o teto do desconto de caixa.
// Value nulo remove o teto.
type DiscountLimitRequest struct {
	Type  string           `json:"type"` // none | fixed | percentage
	Value *decimal.Decimal `json:"value"`
}

// DiscountLimitResponse teto configurado.
type DiscountLimitResponse struct {
	Type  string           `json:"type"`
	Value *decimal.Decimal `json:"value,omitempty"`
}

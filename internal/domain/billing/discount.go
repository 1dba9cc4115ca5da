// Package billing concentra as regras puras de desconto do caixa:
// desconto automático por forma de pagamento (por item) e validação do
// desconto discricionário lançado no fechamento contra o teto configurado.
package billing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tipos de desconto e de limite. Espelham entity.DiscountType*/LimitType*; o
// pacote fica sem dependências para ser testável isolado.
const (
	TypeNone       = "none"
	TypeFixed      = "fixed"
	TypePercentage = "percentage"
)

var cem = decimal.NewFromInt(100)

// Validation é o resultado de ValidateDiscountLimit. Violação de limite não é
// erro: quem chama decide se bloqueia ou só avisa.
type Validation struct {
	Valid  bool
	Reason string
}

// ApplyDiscount calcula o preço final de base após o desconto configurado.
//
// O desconto é inerte (preço passa inalterado) quando o tipo é none/vazio, o
// valor não é positivo, ou a forma de pagamento escolhida não está em
// appliesTo. Nunca devolve preço negativo.
func ApplyDiscount(base decimal.Decimal, discountType string, discountValue decimal.Decimal, appliesTo []string, paymentMethod string) decimal.Decimal {
	if discountType == "" || discountType == TypeNone {
		return base
	}
	if !discountValue.IsPositive() {
		return base
	}
	if !contains(appliesTo, paymentMethod) {
		return base
	}

	var final decimal.Decimal
	switch discountType {
	case TypeFixed:
		final = base.Sub(discountValue)
	case TypePercentage:
		final = base.Sub(base.Mul(discountValue).Div(cem))
	default:
		return base
	}
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}

// ValidateDiscountLimit compara o desconto discricionário proposto com o teto
// configurado. limitValue nil significa teto não configurado.
//
// A comparação é sempre feita em termos absolutos de moeda, usando o subtotal
// como base comum: teto percentual vira teto em reais via toCurrency, e teto
// fixo vira percentual equivalente via toPercent apenas para compor a mensagem
// no mesmo tipo do desconto proposto.
func ValidateDiscountLimit(discountType string, discountValue decimal.Decimal, limitType string, limitValue *decimal.Decimal, subtotal decimal.Decimal) Validation {
	// Sem desconto sendo aplicado: válido trivialmente.
	if discountType == "" || discountType == TypeNone || !discountValue.IsPositive() {
		return Validation{Valid: true}
	}
	// Sem teto configurado: válido trivialmente.
	if limitType == "" || limitType == TypeNone || limitValue == nil {
		return Validation{Valid: true}
	}

	switch {
	case discountType == TypeFixed && limitType == TypeFixed:
		if discountValue.GreaterThan(*limitValue) {
			return violation(fmt.Sprintf("desconto máximo permitido: R$ %s", limitValue.StringFixed(2)))
		}

	case discountType == TypeFixed && limitType == TypePercentage:
		maxCurrency := toCurrency(*limitValue, subtotal)
		if discountValue.GreaterThan(maxCurrency) {
			return violation(fmt.Sprintf("desconto máximo permitido: R$ %s (%s%% do subtotal)",
				maxCurrency.StringFixed(2), limitValue.StringFixed(0)))
		}

	case discountType == TypePercentage && limitType == TypeFixed:
		// Compara em reais, mas reporta no tipo do desconto (percentual),
		// convertendo o teto para o percentual equivalente.
		proposed := toCurrency(discountValue, subtotal)
		if proposed.GreaterThan(*limitValue) {
			maxPercent := toPercent(*limitValue, subtotal)
			return violation(fmt.Sprintf("desconto máximo permitido: %s%% (equivalente a R$ %s)",
				maxPercent.StringFixed(2), limitValue.StringFixed(2)))
		}

	case discountType == TypePercentage && limitType == TypePercentage:
		if discountValue.GreaterThan(*limitValue) {
			return violation(fmt.Sprintf("desconto máximo permitido: %s%%", limitValue.StringFixed(0)))
		}
	}

	return Validation{Valid: true}
}

// toCurrency converte um percentual sobre base para valor em moeda.
func toCurrency(percent, base decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(cem)
}

// toPercent converte um valor em moeda para o percentual equivalente sobre base.
func toPercent(currency, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return currency.Div(base).Mul(cem)
}

func violation(reason string) Validation {
	return Validation{Valid: false, Reason: reason}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

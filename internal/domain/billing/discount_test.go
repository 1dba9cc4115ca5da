package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/comandaki/comanda-api/internal/domain/billing"
	"github.com/comandaki/comanda-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// ──────────────────────────────────────────────────────────────────────────────
// ApplyDiscount: desconto automático por forma de pagamento
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDiscount_FixoComMetodoAplicavel(t *testing.T) {
	final := billing.ApplyDiscount(dec("100"), billing.TypeFixed, dec("10"),
		[]string{entity.PaymentDinheiro}, entity.PaymentDinheiro)
	assert.True(t, final.Equal(dec("90")), "desconto fixo de 10 sobre 100 deve dar 90")
}

func TestApplyDiscount_MetodoForaDaLista(t *testing.T) {
	final := billing.ApplyDiscount(dec("100"), billing.TypeFixed, dec("10"),
		[]string{entity.PaymentDinheiro}, entity.PaymentPix)
	assert.True(t, final.Equal(dec("100")),
		"forma de pagamento fora de appliesTo deixa o preço intacto")
}

func TestApplyDiscount_Percentual(t *testing.T) {
	final := billing.ApplyDiscount(dec("80"), billing.TypePercentage, dec("25"),
		[]string{entity.PaymentPix}, entity.PaymentPix)
	assert.True(t, final.Equal(dec("60")), "25% sobre 80 deve dar 60")
}

func TestApplyDiscount_NuncaNegativo(t *testing.T) {
	fixo := billing.ApplyDiscount(dec("50"), billing.TypeFixed, dec("200"),
		[]string{entity.PaymentDinheiro}, entity.PaymentDinheiro)
	assert.True(t, fixo.IsZero(), "desconto fixo maior que o preço trava em zero")

	pct := billing.ApplyDiscount(dec("50"), billing.TypePercentage, dec("200"),
		[]string{entity.PaymentDinheiro}, entity.PaymentDinheiro)
	assert.True(t, pct.IsZero(), "desconto percentual acima de 100% trava em zero")
}

func TestApplyDiscount_Inerte(t *testing.T) {
	base := dec("42.90")
	aplicavel := []string{entity.PaymentCredito}

	assert.True(t, billing.ApplyDiscount(base, billing.TypeNone, dec("10"), aplicavel, entity.PaymentCredito).Equal(base),
		"tipo none é inerte")
	assert.True(t, billing.ApplyDiscount(base, "", dec("10"), aplicavel, entity.PaymentCredito).Equal(base),
		"tipo vazio é inerte")
	assert.True(t, billing.ApplyDiscount(base, billing.TypeFixed, decimal.Zero, aplicavel, entity.PaymentCredito).Equal(base),
		"valor zero é inerte")
	assert.True(t, billing.ApplyDiscount(base, billing.TypeFixed, dec("-5"), aplicavel, entity.PaymentCredito).Equal(base),
		"valor negativo é inerte")
	assert.True(t, billing.ApplyDiscount(base, "desconhecido", dec("10"), aplicavel, entity.PaymentCredito).Equal(base),
		"tipo desconhecido é inerte")
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateDiscountLimit: teto do desconto discricionário
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateDiscountLimit_SemTeto(t *testing.T) {
	v := billing.ValidateDiscountLimit(billing.TypeFixed, dec("999"), billing.TypeNone, nil, dec("100"))
	assert.True(t, v.Valid, "sem teto configurado qualquer desconto passa")

	v = billing.ValidateDiscountLimit(billing.TypeFixed, dec("999"), billing.TypeFixed, nil, dec("100"))
	assert.True(t, v.Valid, "teto com valor nil equivale a não configurado")
}

func TestValidateDiscountLimit_SemDesconto(t *testing.T) {
	limite := ptr(dec("10"))
	v := billing.ValidateDiscountLimit(billing.TypeNone, dec("50"), billing.TypeFixed, limite, dec("100"))
	assert.True(t, v.Valid, "sem desconto sendo aplicado a validação passa")

	v = billing.ValidateDiscountLimit(billing.TypeFixed, decimal.Zero, billing.TypeFixed, limite, dec("100"))
	assert.True(t, v.Valid, "desconto zero passa")
}

func TestValidateDiscountLimit_FixoContraFixo(t *testing.T) {
	limite := ptr(dec("20"))

	v := billing.ValidateDiscountLimit(billing.TypeFixed, dec("20"), billing.TypeFixed, limite, dec("100"))
	assert.True(t, v.Valid, "desconto igual ao teto passa")

	v = billing.ValidateDiscountLimit(billing.TypeFixed, dec("20.01"), billing.TypeFixed, limite, dec("100"))
	assert.False(t, v.Valid)
	assert.Equal(t, "desconto máximo permitido: R$ 20.00", v.Reason)
}

func TestValidateDiscountLimit_FixoContraPercentual(t *testing.T) {
	limite := ptr(dec("20"))

	// 20% de 100 = R$ 20; desconto fixo de 30 estoura.
	v := billing.ValidateDiscountLimit(billing.TypeFixed, dec("30"), billing.TypePercentage, limite, dec("100"))
	assert.False(t, v.Valid)
	assert.Equal(t, "desconto máximo permitido: R$ 20.00 (20% do subtotal)", v.Reason)

	v = billing.ValidateDiscountLimit(billing.TypeFixed, dec("15"), billing.TypePercentage, limite, dec("100"))
	assert.True(t, v.Valid)
}

func TestValidateDiscountLimit_PercentualContraFixo(t *testing.T) {
	limite := ptr(dec("50"))

	// 10% de 100 = R$ 10, dentro do teto de R$ 50.
	v := billing.ValidateDiscountLimit(billing.TypePercentage, dec("10"), billing.TypeFixed, limite, dec("100"))
	assert.True(t, v.Valid)

	// 60% de 100 = R$ 60, estoura o teto de R$ 50 (equivalente a 50%).
	v = billing.ValidateDiscountLimit(billing.TypePercentage, dec("60"), billing.TypeFixed, limite, dec("100"))
	assert.False(t, v.Valid)
	assert.Equal(t, "desconto máximo permitido: 50.00% (equivalente a R$ 50.00)", v.Reason)
}

func TestValidateDiscountLimit_PercentualContraPercentual(t *testing.T) {
	limite := ptr(dec("15"))

	v := billing.ValidateDiscountLimit(billing.TypePercentage, dec("15"), billing.TypePercentage, limite, dec("100"))
	assert.True(t, v.Valid)

	v = billing.ValidateDiscountLimit(billing.TypePercentage, dec("16"), billing.TypePercentage, limite, dec("100"))
	assert.False(t, v.Valid)
	assert.Equal(t, "desconto máximo permitido: 15%", v.Reason)
}

func TestValidateDiscountLimit_SubtotalZero(t *testing.T) {
	limite := ptr(dec("10"))
	// Subtotal zero: 5% propostos valem R$ 0, dentro de qualquer teto fixo.
	v := billing.ValidateDiscountLimit(billing.TypePercentage, dec("5"), billing.TypeFixed, limite, decimal.Zero)
	assert.True(t, v.Valid, "percentual sobre subtotal zero não estoura teto fixo")
}

package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/comandaki/comanda-api/internal/domain/stock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAverageCost_MediaPonderada(t *testing.T) {
	// 10 un a R$ 5 em estoque + entrada de 10 un a R$ 7 = custo médio R$ 6.
	got := stock.AverageCost(dec("10"), dec("5"), dec("10"), dec("7"))
	assert.True(t, got.Equal(dec("6")), "custo médio deve ponderar saldo e entrada")
}

func TestAverageCost_EstoqueZerado(t *testing.T) {
	// Sem saldo anterior o custo médio é o custo da entrada.
	got := stock.AverageCost(decimal.Zero, decimal.Zero, dec("4"), dec("12.50"))
	assert.True(t, got.Equal(dec("12.50")))
}

func TestAverageCost_SomaNaoPositiva(t *testing.T) {
	got := stock.AverageCost(decimal.Zero, dec("5"), decimal.Zero, dec("7"))
	assert.True(t, got.IsZero(), "soma não positiva devolve zero em vez de dividir por zero")
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodSales agrega vendas de um período por forma de pagamento.
type PaymentMethodSales struct {
	PaymentMethod string
	OrderCount    int64
	GrossTotal    decimal.Decimal
	DiscountTotal decimal.Decimal
	NetTotal      decimal.Decimal
}

// SalesSummary totais consolidados de um período.
type SalesSummary struct {
	OrderCount    int64
	GrossTotal    decimal.Decimal
	DiscountTotal decimal.Decimal
	NetTotal      decimal.Decimal
}

// ReportRepository consultas de leitura para o relatório financeiro.
// Só comandas fechadas entram na conta.
type ReportRepository interface {
	GetSalesSummary(ctx context.Context, start, end time.Time) (*SalesSummary, error)
	GetSalesByPaymentMethod(ctx context.Context, start, end time.Time) ([]PaymentMethodSales, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de leitura para o relatório financeiro.
// Agrega direto no banco; só comandas fechadas entram na conta.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de relatórios.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesSummary consolida os totais do período [start, end).
func (r *ReportRepo) GetSalesSummary(ctx context.Context, start, end time.Time) (*repository.SalesSummary, error) {
	const query = `
	SELECT
	    COUNT(*)                         AS order_count,
	    COALESCE(SUM(subtotal), 0)       AS gross_total,
	    COALESCE(SUM(discount_total), 0) AS discount_total,
	    COALESCE(SUM(total), 0)          AS net_total
	FROM orders
	WHERE status = $1 AND closed_at >= $2 AND closed_at < $3`

	var s repository.SalesSummary
	err := r.pool.QueryRow(ctx, query, entity.OrderStatusFechada, start, end).Scan(
		&s.OrderCount, &s.GrossTotal, &s.DiscountTotal, &s.NetTotal,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &repository.SalesSummary{
				GrossTotal:    decimal.Zero,
				DiscountTotal: decimal.Zero,
				NetTotal:      decimal.Zero,
			}, nil
		}
		return nil, fmt.Errorf("report.GetSalesSummary: %w", err)
	}
	return &s, nil
}

// GetSalesByPaymentMethod agrupa os totais do período por forma de pagamento.
func (r *ReportRepo) GetSalesByPaymentMethod(ctx context.Context, start, end time.Time) ([]repository.PaymentMethodSales, error) {
	const query = `
	SELECT
	    payment_method,
	    COUNT(*)            AS order_count,
	    SUM(subtotal)       AS gross_total,
	    SUM(discount_total) AS discount_total,
	    SUM(total)          AS net_total
	FROM orders
	WHERE status = $1 AND closed_at >= $2 AND closed_at < $3
	GROUP BY payment_method
	ORDER BY net_total DESC`

	rows, err := r.pool.Query(ctx, query, entity.OrderStatusFechada, start, end)
	if err != nil {
		return nil, fmt.Errorf("report.GetSalesByPaymentMethod: %w", err)
	}
	defer rows.Close()

	var results []repository.PaymentMethodSales
	for rows.Next() {
		var row repository.PaymentMethodSales
		if err := rows.Scan(
			&row.PaymentMethod, &row.OrderCount, &row.GrossTotal, &row.DiscountTotal, &row.NetTotal,
		); err != nil {
			return nil, fmt.Errorf("report.GetSalesByPaymentMethod scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

package dto

import "github.com/shopspring/decimal"

// SalesReportRequest período do relatório (datas YYYY-MM-DD, inclusivas).
type SalesReportRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
}

// PaymentMethodSalesResponse vendas por forma de pagamento.
type PaymentMethodSalesResponse struct {
	PaymentMethod string          `json:"payment_method"`
	OrderCount    int64           `json:"order_count"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	NetTotal      decimal.Decimal `json:"net_total"`
}

// SalesReportResponse relatório financeiro do período.
type SalesReportResponse struct {
	StartDate     string                       `json:"start_date"`
	EndDate       string                       `json:"end_date"`
	OrderCount    int64                        `json:"order_count"`
	GrossTotal    decimal.Decimal              `json:"gross_total"`
	DiscountTotal decimal.Decimal              `json:"discount_total"`
	NetTotal      decimal.Decimal              `json:"net_total"`
	ByMethod      []PaymentMethodSalesResponse `json:"by_method"`
}

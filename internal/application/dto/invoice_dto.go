package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInvoiceItemResponse linha de uma nota de compra importada.
type PurchaseInvoiceItemResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	StockItemID string          `json:"stock_item_id,omitempty"`
}

// PurchaseInvoiceResponse nota de compra importada.
type PurchaseInvoiceResponse struct {
	ID              string                        `json:"id"`
	Number          string                        `json:"number"`
	Series          string                        `json:"series,omitempty"`
	AccessKey       string                        `json:"access_key,omitempty"`
	SupplierName    string                        `json:"supplier_name"`
	SupplierTaxID   string                        `json:"supplier_tax_id,omitempty"`
	SupplierAddress string                        `json:"supplier_address,omitempty"`
	IssueDate       string                        `json:"issue_date,omitempty"`
	Subtotal        decimal.Decimal               `json:"subtotal"`
	Taxes           decimal.Decimal               `json:"taxes"`
	Total           decimal.Decimal               `json:"total"`
	Items           []PurchaseInvoiceItemResponse `json:"items"`
	CreatedAt       time.Time                     `json:"created_at"`
}

// ImportInvoiceResponse resultado da importação: nota persistida + quantas
// linhas entraram automaticamente no estoque.
type ImportInvoiceResponse struct {
	Invoice        PurchaseInvoiceResponse `json:"invoice"`
	StockedItems   int                     `json:"stocked_items"`
	UnmatchedItems int                     `json:"unmatched_items"`
}

// PurchaseInvoiceListResponse listagem paginada de notas de compra.
type PurchaseInvoiceListResponse struct {
	Items []PurchaseInvoiceResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInvoice representa uma nota fiscal de compra importada de um XML NF-e.
type PurchaseInvoice struct {
	ID              string
	Number          string
	Series          string
	AccessKey       string // chave de acesso de 44 dígitos (Id do infNFe sem o prefixo "NFe")
	SupplierName    string
	SupplierTaxID   string // CNPJ ou CPF do emitente
	SupplierAddress string
	IssueDate       string // YYYY-MM-DD normalizado pelo parser
	Subtotal        decimal.Decimal
	Taxes           decimal.Decimal
	Total           decimal.Decimal
	CreatedBy       string
	CreatedAt       time.Time
}

// PurchaseInvoiceItem é uma linha da nota de compra (um det/prod do XML).
type PurchaseInvoiceItem struct {
	ID          string
	InvoiceID   string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	StockItemID string // preenchido quando a linha casa com um insumo existente
}

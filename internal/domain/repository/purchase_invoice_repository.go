package repository

import "github.com/comandaki/comanda-api/internal/domain/entity"

// PurchaseInvoiceRepository porta de persistência para notas de compra importadas.
type PurchaseInvoiceRepository interface {
	Create(inv *entity.PurchaseInvoice, items []*entity.PurchaseInvoiceItem) error
	GetByID(id string) (*entity.PurchaseInvoice, error)
	// GetByAccessKey evita importar a mesma nota duas vezes.
	GetByAccessKey(accessKey string) (*entity.PurchaseInvoice, error)
	List(limit, offset int) ([]*entity.PurchaseInvoice, error)
	ListItems(invoiceID string) ([]*entity.PurchaseInvoiceItem, error)
}

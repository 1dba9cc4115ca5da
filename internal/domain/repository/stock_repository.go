package repository

import (
	"github.com/shopspring/decimal"

	"github.com/comandaki/comanda-api/internal/domain/entity"
)

// StockItemRepository porta de persistência para insumos de estoque.
type StockItemRepository interface {
	Create(item *entity.StockItem) error
	GetByID(id string) (*entity.StockItem, error)
	// GetByNormalizedName casa por nome sem acentos e sem caixa (importação NF-e).
	GetByNormalizedName(name string) (*entity.StockItem, error)
	List(limit, offset int) ([]*entity.StockItem, error)
	ListBelowMinimum() ([]*entity.StockItem, error)
	Update(item *entity.StockItem) error
	UpdateQuantityAndCost(id string, quantity, cost decimal.Decimal) error
	Delete(id string) error
}

// StockMovementRepository porta de persistência para o livro de movimentações.
type StockMovementRepository interface {
	Create(m *entity.StockMovement) error
	ListByItem(stockItemID string, limit, offset int) ([]*entity.StockMovement, error)
}

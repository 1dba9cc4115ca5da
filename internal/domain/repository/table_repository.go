package repository

import "github.com/comandaki/comanda-api/internal/domain/entity"

// TableRepository porta de persistência para mesas.
type TableRepository interface {
	Create(t *entity.Table) error
	GetByID(id string) (*entity.Table, error)
	List() ([]*entity.Table, error)
	// UpdateStatus muda status e comanda vinculada de forma atômica.
	UpdateStatus(id, status, orderID string) error
}

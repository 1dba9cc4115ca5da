package repository

import (
	"time"

	"github.com/comandaki/comanda-api/internal/domain/entity"
)

// OrderRepository porta de persistência para comandas e seus itens.
type OrderRepository interface {
	Create(o *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListOpen() ([]*entity.Order, error)
	ListClosedBetween(start, end time.Time) ([]*entity.Order, error)
	Update(o *entity.Order) error

	AddItem(item *entity.OrderItem) error
	ListItems(orderID string) ([]*entity.OrderItem, error)
	UpdateItem(item *entity.OrderItem) error
	RemoveItem(itemID string) error
}

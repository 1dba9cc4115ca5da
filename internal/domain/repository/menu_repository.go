package repository

import "github.com/comandaki/comanda-api/internal/domain/entity"

// CategoryRepository porta de persistência para categorias do cardápio.
type CategoryRepository interface {
	Create(c *entity.Category) error
	List() ([]*entity.Category, error)
	Delete(id string) error
}

// MenuItemRepository porta de persistência para itens do cardápio.
// search vazio lista tudo; senão filtra por nome normalizado (sem acentos).
type MenuItemRepository interface {
	Create(item *entity.MenuItem) error
	GetByID(id string) (*entity.MenuItem, error)
	List(search string, onlyActive bool, limit, offset int) ([]*entity.MenuItem, error)
	Update(item *entity.MenuItem) error
	Delete(id string) error
}

package repository

import "github.com/comandaki/comanda-api/internal/domain/entity"

// UserRepository porta de persistência para funcionários.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}

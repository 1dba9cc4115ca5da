package repository

import (
	"time"

	"github.com/comandaki/comanda-api/internal/domain/entity"
)

// PromotionRepository porta de persistência para promoções do carrossel.
type PromotionRepository interface {
	Create(p *entity.Promotion) error
	GetByID(id string) (*entity.Promotion, error)
	List(limit, offset int) ([]*entity.Promotion, error)
	ListActiveAt(now time.Time) ([]*entity.Promotion, error)
	Update(p *entity.Promotion) error
	Delete(id string) error
}

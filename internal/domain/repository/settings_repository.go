package repository

import "github.com/comandaki/comanda-api/internal/domain/entity"

// SettingsRepository porta de persistência para configurações do deployment.
// Por ora só o teto de desconto discricionário; linha única na tabela settings.
type SettingsRepository interface {
	GetDiscountLimit() (*entity.DiscountLimit, error)
	SaveDiscountLimit(limit *entity.DiscountLimit) error
}

package usecase

import (
	"time"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
)

// SettingsUseCase lê e grava o teto do desconto discricionário de caixa.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase constrói o caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// GetDiscountLimit devolve o teto configurado (none quando nunca configurado).
func (uc *SettingsUseCase) GetDiscountLimit() (*dto.DiscountLimitResponse, error) {
	limit, err := uc.repo.GetDiscountLimit()
	if err != nil {
		return nil, err
	}
	if limit == nil {
		return &dto.DiscountLimitResponse{Type: entity.LimitTypeNone}, nil
	}
	return &dto.DiscountLimitResponse{Type: limit.Type, Value: limit.Value}, nil
}

// SetDiscountLimit grava o teto. Tipo fixed/percentage exige valor positivo.
func (uc *SettingsUseCase) SetDiscountLimit(in dto.DiscountLimitRequest) (*dto.DiscountLimitResponse, error) {
	switch in.Type {
	case entity.LimitTypeNone:
		in.Value = nil
	case entity.LimitTypeFixed, entity.LimitTypePercentage:
		if in.Value == nil || !in.Value.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	limit := &entity.DiscountLimit{
		Type:      in.Type,
		Value:     in.Value,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.SaveDiscountLimit(limit); err != nil {
		return nil, err
	}
	return &dto.DiscountLimitResponse{Type: limit.Type, Value: limit.Value}, nil
}

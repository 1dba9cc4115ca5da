package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
)

// PromotionUseCase casos de uso de promoções do carrossel.
type PromotionUseCase struct {
	repo repository.PromotionRepository
}

// NewPromotionUseCase constrói o caso de uso.
func NewPromotionUseCase(repo repository.PromotionRepository) *PromotionUseCase {
	return &PromotionUseCase{repo: repo}
}

// Create cria uma promoção já ativa.
func (uc *PromotionUseCase) Create(in dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	if in.Title == "" || !in.EndsAt.After(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Promotion{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Price:       in.Price,
		StartsAt:    in.StartsAt,
		EndsAt:      in.EndsAt,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toPromotionResponse(p), nil
}

// List lista promoções com paginação.
func (uc *PromotionUseCase) List(limit, offset int) ([]dto.PromotionResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromotionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPromotionResponse(p))
	}
	return out, nil
}

// ListActive lista promoções vigentes agora (carrossel do cardápio digital).
func (uc *PromotionUseCase) ListActive() ([]dto.PromotionResponse, error) {
	list, err := uc.repo.ListActiveAt(time.Now())
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromotionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPromotionResponse(p))
	}
	return out, nil
}

// Update atualização parcial de promoção.
func (uc *PromotionUseCase) Update(id string, in dto.UpdatePromotionRequest) (*dto.PromotionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.StartsAt != nil {
		p.StartsAt = *in.StartsAt
	}
	if in.EndsAt != nil {
		p.EndsAt = *in.EndsAt
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if !p.EndsAt.After(p.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toPromotionResponse(p), nil
}

// Delete remove uma promoção.
func (uc *PromotionUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPromotionResponse(p *entity.Promotion) *dto.PromotionResponse {
	return &dto.PromotionResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
		StartsAt:    p.StartsAt,
		EndsAt:      p.EndsAt,
		Active:      p.Active,
	}
}

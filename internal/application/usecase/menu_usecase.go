package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
	"github.com/comandaki/comanda-api/pkg/textnorm"
)

// MenuUseCase casos de uso do cardápio: categorias e itens.
type MenuUseCase struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.MenuItemRepository
}

// NewMenuUseCase constrói o caso de uso.
func NewMenuUseCase(categoryRepo repository.CategoryRepository, itemRepo repository.MenuItemRepository) *MenuUseCase {
	return &MenuUseCase{categoryRepo: categoryRepo, itemRepo: itemRepo}
}

// CreateCategory cria uma categoria.
func (uc *MenuUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		SortOrder: in.SortOrder,
		CreatedAt: time.Now(),
	}
	if err := uc.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, SortOrder: c.SortOrder}, nil
}

// ListCategories lista categorias na ordem de exibição.
func (uc *MenuUseCase) ListCategories() ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, SortOrder: c.SortOrder})
	}
	return out, nil
}

// DeleteCategory remove uma categoria.
func (uc *MenuUseCase) DeleteCategory(id string) error {
	return uc.categoryRepo.Delete(id)
}

// CreateItem cria um item do cardápio. Desconto default: none.
func (uc *MenuUseCase) CreateItem(in dto.CreateMenuItemRequest) (*dto.MenuItemResponse, error) {
	if in.Name == "" || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.DiscountType == "" {
		in.DiscountType = entity.DiscountTypeNone
	}
	if !validDiscountType(in.DiscountType) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.MenuItem{
		ID:              uuid.New().String(),
		CategoryID:      in.CategoryID,
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		ImageURL:        in.ImageURL,
		DiscountType:    in.DiscountType,
		DiscountValue:   in.DiscountValue,
		DiscountMethods: in.DiscountMethods,
		StockItemID:     in.StockItemID,
		StockPerUnit:    in.StockPerUnit,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// GetItem busca um item por ID.
func (uc *MenuUseCase) GetItem(id string) (*dto.MenuItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toMenuItemResponse(item), nil
}

// ListItems lista itens; search é casado sem acentos e sem caixa.
func (uc *MenuUseCase) ListItems(search string, onlyActive bool, limit, offset int) (*dto.MenuItemListResponse, error) {
	list, err := uc.itemRepo.List(textnorm.Normalize(search), onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MenuItemResponse, 0, len(list))
	for _, item := range list {
		items = append(items, *toMenuItemResponse(item))
	}
	return &dto.MenuItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateItem atualização parcial de item do cardápio.
func (uc *MenuUseCase) UpdateItem(id string, in dto.UpdateMenuItemRequest) (*dto.MenuItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.CategoryID != nil {
		item.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.DiscountType != nil {
		if !validDiscountType(*in.DiscountType) {
			return nil, domain.ErrInvalidInput
		}
		item.DiscountType = *in.DiscountType
	}
	if in.DiscountValue != nil {
		item.DiscountValue = *in.DiscountValue
	}
	if in.DiscountMethods != nil {
		item.DiscountMethods = in.DiscountMethods
	}
	if in.StockItemID != nil {
		item.StockItemID = *in.StockItemID
	}
	if in.StockPerUnit != nil {
		item.StockPerUnit = *in.StockPerUnit
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toMenuItemResponse(item), nil
}

// DeleteItem remove um item do cardápio.
func (uc *MenuUseCase) DeleteItem(id string) error {
	return uc.itemRepo.Delete(id)
}

func validDiscountType(t string) bool {
	return t == entity.DiscountTypeNone || t == entity.DiscountTypeFixed || t == entity.DiscountTypePercentage
}

func toMenuItemResponse(item *entity.MenuItem) *dto.MenuItemResponse {
	return &dto.MenuItemResponse{
		ID:              item.ID,
		CategoryID:      item.CategoryID,
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		ImageURL:        item.ImageURL,
		DiscountType:    item.DiscountType,
		DiscountValue:   item.DiscountValue,
		DiscountMethods: item.DiscountMethods,
		StockItemID:     item.StockItemID,
		StockPerUnit:    item.StockPerUnit,
		Active:          item.Active,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

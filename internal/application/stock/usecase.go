package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
	domstock "github.com/comandaki/comanda-api/internal/domain/stock"
)

// UseCase casos de uso de estoque: CRUD de insumos e registro transacional de
// movimentações (entrada/saída/ajuste) com recálculo de custo médio ponderado.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.StockItemRepository
	movRepo  repository.StockMovementRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(txRunner TxRunner, itemRepo repository.StockItemRepository, movRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// CreateItem cria um insumo de estoque.
func (uc *UseCase) CreateItem(in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Unit == "" {
		in.Unit = "UN"
	}
	now := time.Now()
	item := &entity.StockItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Unit:        in.Unit,
		Quantity:    in.Quantity,
		MinQuantity: in.MinQuantity,
		Cost:        in.Cost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// GetItem busca um insumo por ID.
func (uc *UseCase) GetItem(id string) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toStockItemResponse(item), nil
}

// ListItems lista insumos com paginação.
func (uc *UseCase) ListItems(limit, offset int) ([]dto.StockItemResponse, error) {
	list, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, *toStockItemResponse(item))
	}
	return out, nil
}

// ListBelowMinimum lista insumos abaixo do mínimo (alerta de reposição).
func (uc *UseCase) ListBelowMinimum() ([]dto.StockItemResponse, error) {
	list, err := uc.itemRepo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockItemResponse, 0, len(list))
	for _, item := range list {
		out = append(out, *toStockItemResponse(item))
	}
	return out, nil
}

// UpdateItem atualização parcial. Quantity e Cost mudam só via movimentações.
func (uc *UseCase) UpdateItem(id string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.MinQuantity != nil {
		item.MinQuantity = *in.MinQuantity
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// DeleteItem remove um insumo.
func (uc *UseCase) DeleteItem(id string) error {
	return uc.itemRepo.Delete(id)
}

// RegisterMovement registra uma movimentação dentro de uma transação:
// grava a linha no livro e atualiza quantidade (e custo médio, em entradas).
// Saída que deixaria o estoque negativo falha com ErrInsufficientStock.
func (uc *UseCase) RegisterMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) error {
	switch in.Type {
	case entity.MovementEntrada, entity.MovementSaida:
		if !in.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.MovementAjuste:
		if in.Quantity.IsZero() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	if in.Type == entity.MovementEntrada && in.UnitCost.IsNegative() {
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		itemRepo repository.StockItemRepository,
	) error {
		item, err := itemRepo.GetByID(in.StockItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		newQty := item.Quantity
		newCost := item.Cost
		switch in.Type {
		case entity.MovementEntrada:
			newCost = domstock.AverageCost(item.Quantity, item.Cost, in.Quantity, in.UnitCost)
			newQty = item.Quantity.Add(in.Quantity)
		case entity.MovementSaida:
			newQty = item.Quantity.Sub(in.Quantity)
			if newQty.IsNegative() {
				return domain.ErrInsufficientStock
			}
		case entity.MovementAjuste:
			newQty = item.Quantity.Add(in.Quantity)
			if newQty.IsNegative() {
				newQty = decimal.Zero
			}
		}

		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			StockItemID: item.ID,
			Type:        in.Type,
			Quantity:    in.Quantity,
			UnitCost:    in.UnitCost,
			Reason:      in.Reason,
			CreatedBy:   userID,
			CreatedAt:   time.Now(),
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return itemRepo.UpdateQuantityAndCost(item.ID, newQty, newCost)
	})
}

// ListMovements lista o livro de movimentações de um insumo.
func (uc *UseCase) ListMovements(stockItemID string, limit, offset int) ([]dto.MovementResponse, error) {
	item, err := uc.itemRepo.GetByID(stockItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByItem(stockItemID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			StockItemID: m.StockItemID,
			Type:        m.Type,
			Quantity:    m.Quantity,
			UnitCost:    m.UnitCost,
			Reason:      m.Reason,
			RefID:       m.RefID,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out, nil
}

func toStockItemResponse(item *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Unit:        item.Unit,
		Quantity:    item.Quantity,
		MinQuantity: item.MinQuantity,
		Cost:        item.Cost,
		UpdatedAt:   item.UpdatedAt,
	}
}

// Package orders cobre o ciclo da comanda enquanto aberta: abertura (ocupando
// a mesa), lançamento e remoção de itens. O fechamento com pagamento fica em
// application/billing, que é quem conhece descontos.
package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
)

// UseCase casos de uso de comandas abertas.
type UseCase struct {
	orderRepo repository.OrderRepository
	tableRepo repository.TableRepository
	menuRepo  repository.MenuItemRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(orderRepo repository.OrderRepository, tableRepo repository.TableRepository, menuRepo repository.MenuItemRepository) *UseCase {
	return &UseCase{orderRepo: orderRepo, tableRepo: tableRepo, menuRepo: menuRepo}
}

// Open abre uma comanda. Com TableID, a mesa precisa estar livre e passa a
// ocupada apontando para a comanda; sem TableID é venda de balcão.
func (uc *UseCase) Open(userID string, in dto.OpenOrderRequest) (*dto.OrderResponse, error) {
	order := &entity.Order{
		ID:        uuid.New().String(),
		TableID:   in.TableID,
		Status:    entity.OrderStatusAberta,
		Notes:     in.Notes,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	if in.TableID != "" {
		table, err := uc.tableRepo.GetByID(in.TableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, domain.ErrNotFound
		}
		if table.Status != entity.TableStatusLivre {
			return nil, domain.ErrTableOccupied
		}
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	if in.TableID != "" {
		if err := uc.tableRepo.UpdateStatus(in.TableID, entity.TableStatusOcupada, order.ID); err != nil {
			return nil, err
		}
	}
	return uc.toOrderResponse(order, nil), nil
}

// AddItem lança um item na comanda, com snapshot de nome e preço do cardápio.
func (uc *UseCase) AddItem(orderID string, in dto.AddOrderItemRequest) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusAberta {
		return nil, domain.ErrOrderClosed
	}
	if !in.Quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	menuItem, err := uc.menuRepo.GetByID(in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil || !menuItem.Active {
		return nil, domain.ErrNotFound
	}

	item := &entity.OrderItem{
		ID:         uuid.New().String(),
		OrderID:    order.ID,
		MenuItemID: menuItem.ID,
		Name:       menuItem.Name,
		Quantity:   in.Quantity,
		UnitPrice:  menuItem.Price,
		Total:      menuItem.Price.Mul(in.Quantity),
		Notes:      in.Notes,
		CreatedAt:  time.Now(),
	}
	if err := uc.orderRepo.AddItem(item); err != nil {
		return nil, err
	}
	return uc.Get(order.ID)
}

// RemoveItem tira um item de uma comanda ainda aberta.
func (uc *UseCase) RemoveItem(orderID, itemID string) error {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusAberta {
		return domain.ErrOrderClosed
	}
	return uc.orderRepo.RemoveItem(itemID)
}

// Get devolve a comanda com itens.
func (uc *UseCase) Get(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.orderRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return uc.toOrderResponse(order, items), nil
}

// ListOpen lista as comandas abertas (painel do salão).
func (uc *UseCase) ListOpen() ([]dto.OrderResponse, error) {
	list, err := uc.orderRepo.ListOpen()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, order := range list {
		items, err := uc.orderRepo.ListItems(order.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *uc.toOrderResponse(order, items))
	}
	return out, nil
}

// Cancel cancela uma comanda aberta e libera a mesa.
func (uc *UseCase) Cancel(id string) error {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusAberta {
		return domain.ErrOrderClosed
	}
	order.Status = entity.OrderStatusCancelada
	now := time.Now()
	order.ClosedAt = &now
	if err := uc.orderRepo.Update(order); err != nil {
		return err
	}
	if order.TableID != "" {
		return uc.tableRepo.UpdateStatus(order.TableID, entity.TableStatusLivre, "")
	}
	return nil
}

func (uc *UseCase) toOrderResponse(order *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	out := &dto.OrderResponse{
		ID:            order.ID,
		TableID:       order.TableID,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod,
		Subtotal:      order.Subtotal,
		DiscountTotal: order.DiscountTotal,
		Total:         order.Total,
		Notes:         order.Notes,
		Items:         make([]dto.OrderItemResponse, 0, len(items)),
		CreatedAt:     order.CreatedAt,
		ClosedAt:      order.ClosedAt,
	}
	// Enquanto aberta, subtotal corrente = soma dos itens lançados.
	if order.Status == entity.OrderStatusAberta {
		sum := decimal.Zero
		for _, item := range items {
			sum = sum.Add(item.Total)
		}
		out.Subtotal = sum
		out.Total = sum
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.OrderItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Discount:   item.Discount,
			Total:      item.Total,
			Notes:      item.Notes,
		})
	}
	return out
}

package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	dombilling "github.com/comandaki/comanda-api/internal/domain/billing"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
	"github.com/comandaki/comanda-api/pkg/logger"
)

// CheckoutUseCase fecha a comanda no caixa: aplica os descontos automáticos
// por forma de pagamento, valida e aplica o desconto discricionário contra o
// teto configurado, baixa o estoque dos insumos vinculados e libera a mesa,
// tudo em uma transação. Por fim dispara a impressão do recibo — falha de
// impressora não desfaz o fechamento.
type CheckoutUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.OrderRepository
	menuRepo     repository.MenuItemRepository
	settingsRepo repository.SettingsRepository
	printer      Printer
	log          *logger.Logger
}

// NewCheckoutUseCase constrói o caso de uso.
func NewCheckoutUseCase(
	txRunner TxRunner,
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuItemRepository,
	settingsRepo repository.SettingsRepository,
	printer Printer,
	log *logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		menuRepo:     menuRepo,
		settingsRepo: settingsRepo,
		printer:      printer,
		log:          log,
	}
}

// Close fecha a comanda com a forma de pagamento escolhida.
//
// Desconto por item: a regra anexada ao item do cardápio só ativa se a forma
// de pagamento estiver em DiscountMethods. Desconto manual: validado contra o
// teto em settings sobre o subtotal já com descontos por item; violação
// devolve ErrDiscountOverLimit com o motivo calculado pelo motor.
func (uc *CheckoutUseCase) Close(ctx context.Context, orderID string, in dto.CloseOrderRequest) (*dto.OrderResponse, error) {
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

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
	items, err := uc.orderRepo.ListItems(orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Preço por item com o desconto automático da forma de pagamento.
	subtotal := decimal.Zero
	afterItemDiscounts := decimal.Zero
	menuByID := map[string]*entity.MenuItem{}
	for _, item := range items {
		gross := item.UnitPrice.Mul(item.Quantity)
		subtotal = subtotal.Add(gross)

		menuItem := menuByID[item.MenuItemID]
		if menuItem == nil {
			menuItem, err = uc.menuRepo.GetByID(item.MenuItemID)
			if err != nil {
				return nil, err
			}
			menuByID[item.MenuItemID] = menuItem
		}

		unitFinal := item.UnitPrice
		if menuItem != nil {
			unitFinal = dombilling.ApplyDiscount(
				item.UnitPrice,
				menuItem.DiscountType,
				menuItem.DiscountValue,
				menuItem.DiscountMethods,
				in.PaymentMethod,
			)
		}
		lineTotal := unitFinal.Mul(item.Quantity)
		item.Discount = gross.Sub(lineTotal)
		item.Total = lineTotal
		afterItemDiscounts = afterItemDiscounts.Add(lineTotal)
	}

	// Desconto discricionário do operador, limitado pelo teto configurado.
	total := afterItemDiscounts
	if in.ManualDiscountType != "" && in.ManualDiscountType != entity.DiscountTypeNone && in.ManualDiscountValue != nil {
		limit, err := uc.settingsRepo.GetDiscountLimit()
		if err != nil {
			return nil, err
		}
		limitType := entity.LimitTypeNone
		var limitValue *decimal.Decimal
		if limit != nil {
			limitType = limit.Type
			limitValue = limit.Value
		}
		check := dombilling.ValidateDiscountLimit(
			in.ManualDiscountType, *in.ManualDiscountValue,
			limitType, limitValue, afterItemDiscounts,
		)
		if !check.Valid {
			return nil, fmt.Errorf("%w: %s", domain.ErrDiscountOverLimit, check.Reason)
		}
		total = dombilling.ApplyDiscount(
			afterItemDiscounts,
			in.ManualDiscountType,
			*in.ManualDiscountValue,
			[]string{in.PaymentMethod},
			in.PaymentMethod,
		)
	}

	now := time.Now()
	order.Status = entity.OrderStatusFechada
	order.PaymentMethod = in.PaymentMethod
	order.Subtotal = subtotal
	order.DiscountTotal = subtotal.Sub(total)
	order.Total = total
	order.ClosedAt = &now

	err = uc.txRunner.RunCheckout(ctx, func(
		orderRepo repository.OrderRepository,
		tableRepo repository.TableRepository,
		movRepo repository.StockMovementRepository,
		itemRepo repository.StockItemRepository,
	) error {
		for _, item := range items {
			if err := orderRepo.UpdateItem(item); err != nil {
				return err
			}
		}
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		if order.TableID != "" {
			if err := tableRepo.UpdateStatus(order.TableID, entity.TableStatusLivre, ""); err != nil {
				return err
			}
		}
		return uc.consumeStock(movRepo, itemRepo, order, items, menuByID, now)
	})
	if err != nil {
		return nil, err
	}

	// Impressão é melhor esforço: o stub LPR sempre falha enquanto a
	// integração de hardware não sai do papel.
	if uc.printer != nil {
		if perr := uc.printer.Print(ctx, uc.receiptText(order, items)); perr != nil {
			uc.log.Warn().Err(perr).Str("order_id", order.ID).Msg("falha ao imprimir recibo")
		}
	}

	return uc.toOrderResponse(order, items), nil
}

// consumeStock baixa os insumos vinculados aos itens vendidos. Estoque
// insuficiente não bloqueia a venda: baixa até zero e registra o ajuste.
func (uc *CheckoutUseCase) consumeStock(
	movRepo repository.StockMovementRepository,
	itemRepo repository.StockItemRepository,
	order *entity.Order,
	items []*entity.OrderItem,
	menuByID map[string]*entity.MenuItem,
	now time.Time,
) error {
	for _, item := range items {
		menuItem := menuByID[item.MenuItemID]
		if menuItem == nil || menuItem.StockItemID == "" || !menuItem.StockPerUnit.IsPositive() {
			continue
		}
		stockItem, err := itemRepo.GetByID(menuItem.StockItemID)
		if err != nil {
			return err
		}
		if stockItem == nil {
			continue
		}
		consumed := menuItem.StockPerUnit.Mul(item.Quantity)
		newQty := stockItem.Quantity.Sub(consumed)
		if newQty.IsNegative() {
			newQty = decimal.Zero
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			StockItemID: stockItem.ID,
			Type:        entity.MovementSaida,
			Quantity:    consumed,
			Reason:      "venda",
			RefID:       order.ID,
			CreatedBy:   order.CreatedBy,
			CreatedAt:   now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantityAndCost(stockItem.ID, newQty, stockItem.Cost); err != nil {
			return err
		}
	}
	return nil
}

// receiptText monta o recibo em texto simples para a impressora térmica.
func (uc *CheckoutUseCase) receiptText(order *entity.Order, items []*entity.OrderItem) string {
	short := order.ID
	if len(short) > 8 {
		short = short[:8]
	}
	var b strings.Builder
	b.WriteString("*** COMANDA " + short + " ***\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s x%s  R$ %s\n", item.Name, item.Quantity.String(), item.Total.StringFixed(2))
	}
	fmt.Fprintf(&b, "SUBTOTAL  R$ %s\n", order.Subtotal.StringFixed(2))
	if order.DiscountTotal.IsPositive() {
		fmt.Fprintf(&b, "DESCONTO  R$ %s\n", order.DiscountTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "TOTAL     R$ %s\n", order.Total.StringFixed(2))
	fmt.Fprintf(&b, "PAGAMENTO %s\n", order.PaymentMethod)
	return b.String()
}

func (uc *CheckoutUseCase) toOrderResponse(order *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
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

func validPaymentMethod(m string) bool {
	switch m {
	case entity.PaymentDinheiro, entity.PaymentPix, entity.PaymentCredito, entity.PaymentDebito:
		return true
	}
	return false
}

package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comandaki/comanda-api/internal/application/billing"
	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
	"github.com/comandaki/comanda-api/pkg/logger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	items  map[string][]*entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}, items: map[string][]*entity.OrderItem{}}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error { r.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
func (r *fakeOrderRepo) ListOpen() ([]*entity.Order, error) { return nil, nil }
func (r *fakeOrderRepo) ListClosedBetween(start, end time.Time) ([]*entity.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) Update(o *entity.Order) error { r.orders[o.ID] = o; return nil }
func (r *fakeOrderRepo) AddItem(item *entity.OrderItem) error {
	r.items[item.OrderID] = append(r.items[item.OrderID], item)
	return nil
}
func (r *fakeOrderRepo) ListItems(orderID string) ([]*entity.OrderItem, error) {
	return r.items[orderID], nil
}
func (r *fakeOrderRepo) UpdateItem(item *entity.OrderItem) error {
	for i, it := range r.items[item.OrderID] {
		if it.ID == item.ID {
			r.items[item.OrderID][i] = item
		}
	}
	return nil
}
func (r *fakeOrderRepo) RemoveItem(itemID string) error { return nil }

type fakeTableRepo struct {
	statuses map[string]string
	orderIDs map[string]string
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{statuses: map[string]string{}, orderIDs: map[string]string{}}
}

func (r *fakeTableRepo) Create(t *entity.Table) error { return nil }
func (r *fakeTableRepo) GetByID(id string) (*entity.Table, error) { return nil, nil }
func (r *fakeTableRepo) List() ([]*entity.Table, error) { return nil, nil }
func (r *fakeTableRepo) UpdateStatus(id, status, orderID string) error {
	r.statuses[id] = status
	r.orderIDs[id] = orderID
	return nil
}

type fakeMenuRepo struct {
	byID map[string]*entity.MenuItem
}

func (r *fakeMenuRepo) Create(item *entity.MenuItem) error { return nil }
func (r *fakeMenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	return r.byID[id], nil
}
func (r *fakeMenuRepo) List(search string, onlyActive bool, limit, offset int) ([]*entity.MenuItem, error) {
	return nil, nil
}
func (r *fakeMenuRepo) Update(item *entity.MenuItem) error { return nil }
func (r *fakeMenuRepo) Delete(id string) error             { return nil }

type fakeSettingsRepo struct {
	limit *entity.DiscountLimit
}

func (r *fakeSettingsRepo) GetDiscountLimit() (*entity.DiscountLimit, error) { return r.limit, nil }
func (r *fakeSettingsRepo) SaveDiscountLimit(limit *entity.DiscountLimit) error {
	r.limit = limit
	return nil
}

type fakeStockItemRepo struct {
	byID   map[string]*entity.StockItem
	byNorm map[string]*entity.StockItem
}

func (r *fakeStockItemRepo) Create(item *entity.StockItem) error { return nil }
func (r *fakeStockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	it, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}
func (r *fakeStockItemRepo) GetByNormalizedName(name string) (*entity.StockItem, error) {
	it, ok := r.byNorm[name]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}
func (r *fakeStockItemRepo) List(limit, offset int) ([]*entity.StockItem, error) { return nil, nil }
func (r *fakeStockItemRepo) ListBelowMinimum() ([]*entity.StockItem, error) { return nil, nil }
func (r *fakeStockItemRepo) Update(item *entity.StockItem) error { return nil }
func (r *fakeStockItemRepo) UpdateQuantityAndCost(id string, quantity, cost decimal.Decimal) error {
	if it, ok := r.byID[id]; ok {
		it.Quantity = quantity
		it.Cost = cost
	}
	return nil
}
func (r *fakeStockItemRepo) Delete(id string) error { return nil }

type fakeMovementRepo struct {
	created []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.created = append(r.created, m)
	return nil
}
func (r *fakeMovementRepo) ListByItem(stockItemID string, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}

type fakeInvoiceRepo struct {
	byID    map[string]*entity.PurchaseInvoice
	byKey   map[string]*entity.PurchaseInvoice
	items   map[string][]*entity.PurchaseInvoiceItem
	created int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		byID:  map[string]*entity.PurchaseInvoice{},
		byKey: map[string]*entity.PurchaseInvoice{},
		items: map[string][]*entity.PurchaseInvoiceItem{},
	}
}

func (r *fakeInvoiceRepo) Create(inv *entity.PurchaseInvoice, items []*entity.PurchaseInvoiceItem) error {
	r.byID[inv.ID] = inv
	if inv.AccessKey != "" {
		r.byKey[inv.AccessKey] = inv
	}
	r.items[inv.ID] = items
	r.created++
	return nil
}
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.PurchaseInvoice, error) {
	return r.byID[id], nil
}
func (r *fakeInvoiceRepo) GetByAccessKey(accessKey string) (*entity.PurchaseInvoice, error) {
	return r.byKey[accessKey], nil
}
func (r *fakeInvoiceRepo) List(limit, offset int) ([]*entity.PurchaseInvoice, error) {
	out := make([]*entity.PurchaseInvoice, 0, len(r.byID))
	for _, inv := range r.byID {
		out = append(out, inv)
	}
	return out, nil
}
func (r *fakeInvoiceRepo) ListItems(invoiceID string) ([]*entity.PurchaseInvoiceItem, error) {
	return r.items[invoiceID], nil
}

// fakeTxRunner executa os callbacks direto, sem transação.
type fakeTxRunner struct {
	orderRepo   *fakeOrderRepo
	tableRepo   *fakeTableRepo
	movRepo     *fakeMovementRepo
	itemRepo    *fakeStockItemRepo
	invoiceRepo *fakeInvoiceRepo
}

func (r *fakeTxRunner) RunCheckout(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	tableRepo repository.TableRepository,
	movRepo repository.StockMovementRepository,
	itemRepo repository.StockItemRepository,
) error) error {
	return fn(r.orderRepo, r.tableRepo, r.movRepo, r.itemRepo)
}

func (r *fakeTxRunner) RunImport(ctx context.Context, fn func(
	invoiceRepo repository.PurchaseInvoiceRepository,
	movRepo repository.StockMovementRepository,
	itemRepo repository.StockItemRepository,
) error) error {
	return fn(r.invoiceRepo, r.movRepo, r.itemRepo)
}

type fakePrinter struct {
	err     error
	printed []string
}

func (p *fakePrinter) Print(ctx context.Context, text string) error {
	if p.err != nil {
		return p.err
	}
	p.printed = append(p.printed, text)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenário base: mesa 1 ocupada, comanda aberta com 2x hambúrguer (R$ 30, 10%
// de desconto no Dinheiro) e 1x refrigerante (R$ 8, sem desconto).
// ──────────────────────────────────────────────────────────────────────────────

type checkoutFixture struct {
	uc        *billing.CheckoutUseCase
	orderRepo *fakeOrderRepo
	tableRepo *fakeTableRepo
	movRepo   *fakeMovementRepo
	itemRepo  *fakeStockItemRepo
	settings  *fakeSettingsRepo
	printer   *fakePrinter
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	orderRepo := newFakeOrderRepo()
	orderRepo.Create(&entity.Order{
		ID: "order-1", TableID: "table-1", Status: entity.OrderStatusAberta,
		CreatedBy: "user-1", CreatedAt: time.Now(),
	})
	orderRepo.AddItem(&entity.OrderItem{
		ID: "line-1", OrderID: "order-1", MenuItemID: "burger",
		Name: "Hambúrguer", Quantity: dec("2"), UnitPrice: dec("30"),
	})
	orderRepo.AddItem(&entity.OrderItem{
		ID: "line-2", OrderID: "order-1", MenuItemID: "refri",
		Name: "Refrigerante", Quantity: dec("1"), UnitPrice: dec("8"),
	})

	menuRepo := &fakeMenuRepo{byID: map[string]*entity.MenuItem{
		"burger": {
			ID: "burger", Name: "Hambúrguer", Price: dec("30"),
			DiscountType: entity.DiscountTypePercentage, DiscountValue: dec("10"),
			DiscountMethods: []string{entity.PaymentDinheiro},
			StockItemID:     "pao", StockPerUnit: dec("2"),
		},
		"refri": {ID: "refri", Name: "Refrigerante", Price: dec("8")},
	}}

	itemRepo := &fakeStockItemRepo{byID: map[string]*entity.StockItem{
		"pao": {ID: "pao", Name: "Pão de hambúrguer", Unit: "UN", Quantity: dec("10"), Cost: dec("1.50")},
	}}
	tableRepo := newFakeTableRepo()
	movRepo := &fakeMovementRepo{}
	settings := &fakeSettingsRepo{}
	printer := &fakePrinter{}

	txRunner := &fakeTxRunner{orderRepo: orderRepo, tableRepo: tableRepo, movRepo: movRepo, itemRepo: itemRepo}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := billing.NewCheckoutUseCase(txRunner, orderRepo, menuRepo, settings, printer, log)

	return &checkoutFixture{
		uc: uc, orderRepo: orderRepo, tableRepo: tableRepo,
		movRepo: movRepo, itemRepo: itemRepo, settings: settings, printer: printer,
	}
}

func TestClose_DescontoPorFormaDePagamento(t *testing.T) {
	f := newCheckoutFixture(t)

	out, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{
		PaymentMethod: entity.PaymentDinheiro,
	})
	require.NoError(t, err)

	// 2x30 com 10% = 54; refrigerante 8 sem desconto. Subtotal 68, total 62.
	assert.True(t, out.Subtotal.Equal(dec("68")), "subtotal bruto: %s", out.Subtotal)
	assert.True(t, out.Total.Equal(dec("62")), "total com desconto do Dinheiro: %s", out.Total)
	assert.True(t, out.DiscountTotal.Equal(dec("6")))
	assert.Equal(t, entity.OrderStatusFechada, out.Status)
	require.NotNil(t, out.ClosedAt)

	// Mesa liberada.
	assert.Equal(t, entity.TableStatusLivre, f.tableRepo.statuses["table-1"])
	assert.Empty(t, f.tableRepo.orderIDs["table-1"])
}

func TestClose_DescontoNaoAtivaEmOutraForma(t *testing.T) {
	f := newCheckoutFixture(t)

	out, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{
		PaymentMethod: entity.PaymentPix,
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(dec("68")), "PIX não está em DiscountMethods do hambúrguer")
}

func TestClose_BaixaDeEstoque(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{
		PaymentMethod: entity.PaymentDinheiro,
	})
	require.NoError(t, err)

	// 2 hambúrgueres x 2 pães = 4 pães baixados de 10.
	require.Len(t, f.movRepo.created, 1, "só o hambúrguer tem insumo vinculado")
	mov := f.movRepo.created[0]
	assert.Equal(t, entity.MovementSaida, mov.Type)
	assert.True(t, mov.Quantity.Equal(dec("4")))
	assert.Equal(t, "venda", mov.Reason)
	assert.Equal(t, "order-1", mov.RefID)
	assert.True(t, f.itemRepo.byID["pao"].Quantity.Equal(dec("6")))
}

func TestClose_EstoqueInsuficienteNaoBloqueiaVenda(t *testing.T) {
	f := newCheckoutFixture(t)
	f.itemRepo.byID["pao"].Quantity = dec("3") // precisa de 4

	_, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{
		PaymentMethod: entity.PaymentDinheiro,
	})
	require.NoError(t, err, "venda nunca é bloqueada por falta de insumo")
	assert.True(t, f.itemRepo.byID["pao"].Quantity.IsZero(), "saldo trava em zero")
}

func TestClose_DescontoManualDentroDoTeto(t *testing.T) {
	f := newCheckoutFixture(t)
	f.settings.limit = &entity.DiscountLimit{Type: entity.LimitTypeFixed, Value: ptr(dec("10"))}

	out, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{
		PaymentMethod:       entity.PaymentPix,
		ManualDiscountType:  entity.DiscountTypeFixed,
		ManualDiscountValue: ptr(dec("8")),
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(dec("60")), "68 - 8 de desconto manual")
	assert.True(t, out.DiscountTotal.Equal(dec("8")))
}

func TestClose_DescontoManualAcimaDoTeto(t *testing.T) {
	f := newCheckoutFixture(t)
	f.settings.limit = &entity.DiscountLimit{Type: entity.LimitTypeFixed, Value: ptr(dec("10"))}

	_, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{
		PaymentMethod:       entity.PaymentPix,
		ManualDiscountType:  entity.DiscountTypeFixed,
		ManualDiscountValue: ptr(dec("20")),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDiscountOverLimit)
	assert.Contains(t, err.Error(), "R$ 10.00", "a mensagem deve trazer o teto calculado")

	// Nada foi persistido: comanda segue aberta.
	order, _ := f.orderRepo.GetByID("order-1")
	assert.Equal(t, entity.OrderStatusAberta, order.Status)
}

func TestClose_FormaDePagamentoInvalida(t *testing.T) {
	f := newCheckoutFixture(t)
	_, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{PaymentMethod: "Cheque"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClose_ComandaJaFechada(t *testing.T) {
	f := newCheckoutFixture(t)
	f.orderRepo.orders["order-1"].Status = entity.OrderStatusFechada

	_, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{PaymentMethod: entity.PaymentPix})
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestClose_ComandaInexistente(t *testing.T) {
	f := newCheckoutFixture(t)
	_, err := f.uc.Close(context.Background(), "ghost", dto.CloseOrderRequest{PaymentMethod: entity.PaymentPix})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClose_FalhaDeImpressoraNaoDesfazFechamento(t *testing.T) {
	f := newCheckoutFixture(t)
	f.printer.err = errors.New("impressora não configurada")

	out, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{
		PaymentMethod: entity.PaymentDinheiro,
	})
	require.NoError(t, err, "impressão é melhor esforço")
	assert.Equal(t, entity.OrderStatusFechada, out.Status)
}

func TestClose_ImprimeRecibo(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.uc.Close(context.Background(), "order-1", dto.CloseOrderRequest{
		PaymentMethod: entity.PaymentDinheiro,
	})
	require.NoError(t, err)
	require.Len(t, f.printer.printed, 1)
	assert.Contains(t, f.printer.printed[0], "Hambúrguer")
	assert.Contains(t, f.printer.printed[0], "TOTAL")
	assert.Contains(t, f.printer.printed[0], entity.PaymentDinheiro)
}

package billing

import (
	"context"

	"github.com/comandaki/comanda-api/internal/domain/repository"
)

// TxRunner executa funções dentro de uma transação de BD com repositórios
// atados a essa tx. Fechamento e importação de nota são tudo-ou-nada.
type TxRunner interface {
	// RunCheckout: comanda + mesa + baixa de estoque em uma transação.
	RunCheckout(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		tableRepo repository.TableRepository,
		movRepo repository.StockMovementRepository,
		itemRepo repository.StockItemRepository,
	) error) error

	// RunImport: nota de compra + entradas de estoque em uma transação.
	RunImport(ctx context.Context, fn func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		movRepo repository.StockMovementRepository,
		itemRepo repository.StockItemRepository,
	) error) error
}

// Printer porta para a impressora térmica de recibos/cozinha.
// A implementação atual é um stub que sempre falha (integração pendente);
// o fechamento degrada para log e segue.
type Printer interface {
	Print(ctx context.Context, text string) error
}

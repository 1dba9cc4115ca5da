package billing

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/comandaki/comanda-api/internal/application/dto"
	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/nfe"
	"github.com/comandaki/comanda-api/internal/domain/repository"
	domstock "github.com/comandaki/comanda-api/internal/domain/stock"
	"github.com/comandaki/comanda-api/pkg/logger"
	"github.com/comandaki/comanda-api/pkg/textnorm"
)

// MaxInvoiceFileSize teto de tamanho do XML aceito no upload (10 MB).
const MaxInvoiceFileSize = 10 << 20

var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ImportInvoiceUseCase importa o XML de uma NF-e de compra: valida o arquivo,
// faz o parse e persiste nota + itens, dando entrada no estoque das linhas que
// casam com insumos existentes.
type ImportInvoiceUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.PurchaseInvoiceRepository
	log         *logger.Logger
}

// NewImportInvoiceUseCase constrói o caso de uso.
func NewImportInvoiceUseCase(txRunner TxRunner, invoiceRepo repository.PurchaseInvoiceRepository, log *logger.Logger) *ImportInvoiceUseCase {
	return &ImportInvoiceUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo, log: log}
}

// Import processa o upload de um XML NF-e.
//
// A validação de arquivo acontece aqui, antes do parser: extensão .xml,
// conteúdo não vazio, no máximo 10 MB. Nota com chave de acesso já importada
// devolve ErrDuplicate. Falha de parse volta como erro com o motivo do parser.
func (uc *ImportInvoiceUseCase) Import(ctx context.Context, userID, filename string, content []byte) (*dto.ImportInvoiceResponse, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".xml") {
		return nil, fmt.Errorf("%w: o arquivo deve ter extensão .xml", domain.ErrInvalidInput)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: arquivo vazio", domain.ErrInvalidInput)
	}
	if len(content) > MaxInvoiceFileSize {
		return nil, fmt.Errorf("%w: arquivo acima de 10 MB", domain.ErrInvalidInput)
	}

	parsed, err := nfe.Parse(string(content))
	if err != nil {
		return nil, err
	}

	// Formato de data fora do esperado não bloqueia a importação, mas fica
	// registrado: é inconsistência da exportação, não vamos "corrigir" às cegas.
	if parsed.IssueDate != "" && !isoDate.MatchString(parsed.IssueDate) {
		uc.log.Warn().Str("issue_date", parsed.IssueDate).Msg("data de emissão em formato não reconhecido")
	}

	if parsed.AccessKey != "" {
		existing, err := uc.invoiceRepo.GetByAccessKey(parsed.AccessKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	now := time.Now()
	inv := &entity.PurchaseInvoice{
		ID:              uuid.New().String(),
		Number:          parsed.Number,
		Series:          parsed.Series,
		AccessKey:       parsed.AccessKey,
		SupplierName:    parsed.SupplierName,
		SupplierTaxID:   parsed.SupplierTaxID,
		SupplierAddress: parsed.SupplierAddress,
		IssueDate:       parsed.IssueDate,
		Subtotal:        parsed.Subtotal,
		Taxes:           parsed.Taxes,
		Total:           parsed.Total,
		CreatedBy:       userID,
		CreatedAt:       now,
	}
	items := make([]*entity.PurchaseInvoiceItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		items = append(items, &entity.PurchaseInvoiceItem{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}

	stocked := 0
	err = uc.txRunner.RunImport(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		movRepo repository.StockMovementRepository,
		itemRepo repository.StockItemRepository,
	) error {
		// Entrada de estoque para as linhas que casam com insumo existente.
		// Linha sem casamento fica só na nota (conciliação manual depois).
		for _, item := range items {
			stockItem, err := itemRepo.GetByNormalizedName(textnorm.Normalize(item.ProductName))
			if err != nil {
				return err
			}
			if stockItem == nil {
				continue
			}
			item.StockItemID = stockItem.ID
			newCost := domstock.AverageCost(stockItem.Quantity, stockItem.Cost, item.Quantity, item.UnitPrice)
			newQty := stockItem.Quantity.Add(item.Quantity)
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				StockItemID: stockItem.ID,
				Type:        entity.MovementEntrada,
				Quantity:    item.Quantity,
				UnitCost:    item.UnitPrice,
				Reason:      "compra NF-e " + inv.Number,
				RefID:       inv.ID,
				CreatedBy:   userID,
				CreatedAt:   now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			if err := itemRepo.UpdateQuantityAndCost(stockItem.ID, newQty, newCost); err != nil {
				return err
			}
			stocked++
		}
		return invoiceRepo.Create(inv, items)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ImportInvoiceResponse{
		Invoice:        *toInvoiceResponse(inv, items),
		StockedItems:   stocked,
		UnmatchedItems: len(items) - stocked,
	}, nil
}

// Get devolve uma nota importada com itens.
func (uc *ImportInvoiceUseCase) Get(id string) (*dto.PurchaseInvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	items, err := uc.invoiceRepo.ListItems(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv, items), nil
}

// List lista notas importadas (sem itens, por página).
func (uc *ImportInvoiceUseCase) List(limit, offset int) (*dto.PurchaseInvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseInvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInvoiceResponse(inv, nil))
	}
	return &dto.PurchaseInvoiceListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toInvoiceResponse(inv *entity.PurchaseInvoice, items []*entity.PurchaseInvoiceItem) *dto.PurchaseInvoiceResponse {
	out := &dto.PurchaseInvoiceResponse{
		ID:              inv.ID,
		Number:          inv.Number,
		Series:          inv.Series,
		AccessKey:       inv.AccessKey,
		SupplierName:    inv.SupplierName,
		SupplierTaxID:   inv.SupplierTaxID,
		SupplierAddress: inv.SupplierAddress,
		IssueDate:       inv.IssueDate,
		Subtotal:        inv.Subtotal,
		Taxes:           inv.Taxes,
		Total:           inv.Total,
		Items:           make([]dto.PurchaseInvoiceItemResponse, 0, len(items)),
		CreatedAt:       inv.CreatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.PurchaseInvoiceItemResponse{
			ID:          it.ID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			StockItemID: it.StockItemID,
		})
	}
	return out
}

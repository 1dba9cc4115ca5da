package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
)

var _ repository.PurchaseInvoiceRepository = (*PurchaseInvoiceRepo)(nil)

// PurchaseInvoiceRepo implementação do porto PurchaseInvoiceRepository sobre PostgreSQL.
type PurchaseInvoiceRepo struct {
	q Querier
}

// NewPurchaseInvoiceRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPurchaseInvoiceRepository(q Querier) *PurchaseInvoiceRepo {
	return &PurchaseInvoiceRepo{q: q}
}

const invoiceColumns = `id, number, series, access_key, supplier_name, supplier_tax_id, supplier_address, issue_date, subtotal, taxes, total, created_by, created_at`

// Create persiste a nota e seus itens. Chamar dentro de uma transação.
func (r *PurchaseInvoiceRepo) Create(inv *entity.PurchaseInvoice, items []*entity.PurchaseInvoiceItem) error {
	query := `
		INSERT INTO purchase_invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Number, inv.Series, inv.AccessKey, inv.SupplierName, inv.SupplierTaxID,
		inv.SupplierAddress, inv.IssueDate, inv.Subtotal, inv.Taxes, inv.Total,
		inv.CreatedBy, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO purchase_invoice_items (id, invoice_id, product_name, quantity, unit, unit_price, total_price, stock_item_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), itemQuery,
			item.ID, item.InvoiceID, item.ProductName, item.Quantity, item.Unit,
			item.UnitPrice, item.TotalPrice, item.StockItemID,
		)
		if err != nil {
			return fmt.Errorf("insert purchase invoice item: %w", err)
		}
	}
	return nil
}

// GetByID busca uma nota pelo ID.
func (r *PurchaseInvoiceRepo) GetByID(id string) (*entity.PurchaseInvoice, error) {
	return r.getBy(`id = $1`, id)
}

// GetByAccessKey busca uma nota pela chave de acesso.
func (r *PurchaseInvoiceRepo) GetByAccessKey(accessKey string) (*entity.PurchaseInvoice, error) {
	return r.getBy(`access_key = $1`, accessKey)
}

func (r *PurchaseInvoiceRepo) getBy(where string, arg any) (*entity.PurchaseInvoice, error) {
	var inv entity.PurchaseInvoice
	err := r.q.QueryRow(context.Background(),
		`SELECT `+invoiceColumns+` FROM purchase_invoices WHERE `+where, arg).Scan(
		&inv.ID, &inv.Number, &inv.Series, &inv.AccessKey, &inv.SupplierName, &inv.SupplierTaxID,
		&inv.SupplierAddress, &inv.IssueDate, &inv.Subtotal, &inv.Taxes, &inv.Total,
		&inv.CreatedBy, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase invoice: %w", err)
	}
	return &inv, nil
}

// List lista notas importadas, mais recentes primeiro.
func (r *PurchaseInvoiceRepo) List(limit, offset int) ([]*entity.PurchaseInvoice, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+invoiceColumns+` FROM purchase_invoices ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list purchase invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseInvoice
	for rows.Next() {
		var inv entity.PurchaseInvoice
		if err := rows.Scan(
			&inv.ID, &inv.Number, &inv.Series, &inv.AccessKey, &inv.SupplierName, &inv.SupplierTaxID,
			&inv.SupplierAddress, &inv.IssueDate, &inv.Subtotal, &inv.Taxes, &inv.Total,
			&inv.CreatedBy, &inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase invoice: %w", err)
		}
		out = append(out, &inv)
	}
	return out, rows.Err()
}

// ListItems lista as linhas de uma nota na ordem do documento.
func (r *PurchaseInvoiceRepo) ListItems(invoiceID string) ([]*entity.PurchaseInvoiceItem, error) {
	query := `
		SELECT id, invoice_id, product_name, quantity, unit, unit_price, total_price, stock_item_id
		FROM purchase_invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list purchase invoice items: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseInvoiceItem
	for rows.Next() {
		var item entity.PurchaseInvoiceItem
		if err := rows.Scan(
			&item.ID, &item.InvoiceID, &item.ProductName, &item.Quantity, &item.Unit,
			&item.UnitPrice, &item.TotalPrice, &item.StockItemID,
		); err != nil {
			return nil, fmt.Errorf("scan purchase invoice item: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

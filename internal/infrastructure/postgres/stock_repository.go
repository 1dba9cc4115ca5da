package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
	"github.com/comandaki/comanda-api/pkg/textnorm"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)
var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockItemRepo implementação do porto StockItemRepository sobre PostgreSQL.
// name_normalized sustenta o casamento de linhas de NF-e com insumos.
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `id, name, unit, quantity, min_quantity, cost, created_at, updated_at`

// Create persiste um insumo novo.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (id, name, name_normalized, unit, quantity, min_quantity, cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, textnorm.Normalize(item.Name), item.Unit,
		item.Quantity, item.MinQuantity, item.Cost, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// GetByID busca um insumo pelo ID.
func (r *StockItemRepo) GetByID(id string) (*entity.StockItem, error) {
	var item entity.StockItem
	err := r.q.QueryRow(context.Background(),
		`SELECT `+stockItemColumns+` FROM stock_items WHERE id = $1`, id).Scan(
		&item.ID, &item.Name, &item.Unit, &item.Quantity, &item.MinQuantity, &item.Cost,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &item, nil
}

// GetByNormalizedName busca pelo nome normalizado (já sem acentos e minúsculo).
func (r *StockItemRepo) GetByNormalizedName(name string) (*entity.StockItem, error) {
	var item entity.StockItem
	err := r.q.QueryRow(context.Background(),
		`SELECT `+stockItemColumns+` FROM stock_items WHERE name_normalized = $1`, name).Scan(
		&item.ID, &item.Name, &item.Unit, &item.Quantity, &item.MinQuantity, &item.Cost,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item by name: %w", err)
	}
	return &item, nil
}

// List lista insumos por nome com paginação.
func (r *StockItemRepo) List(limit, offset int) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+stockItemColumns+` FROM stock_items ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	return scanStockItems(rows)
}

// ListBelowMinimum lista os insumos no alerta de reposição.
func (r *StockItemRepo) ListBelowMinimum() ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+stockItemColumns+` FROM stock_items WHERE quantity < min_quantity ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list stock items below minimum: %w", err)
	}
	return scanStockItems(rows)
}

// Update atualiza os dados cadastrais do insumo. Quantidade e custo só mudam
// via UpdateQuantityAndCost, sempre acompanhados de uma movimentação.
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items SET name = $2, name_normalized = $3, unit = $4, min_quantity = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, textnorm.Normalize(item.Name), item.Unit, item.MinQuantity, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantityAndCost grava o novo saldo e custo médio do insumo.
func (r *StockItemRepo) UpdateQuantityAndCost(id string, quantity, cost decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE stock_items SET quantity = $2, cost = $3, updated_at = now() WHERE id = $1`,
		id, quantity, cost,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um insumo. O histórico de movimentações é preservado.
func (r *StockItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanStockItems(rows pgx.Rows) ([]*entity.StockItem, error) {
	defer rows.Close()
	var out []*entity.StockItem
	for rows.Next() {
		var item entity.StockItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Unit, &item.Quantity, &item.MinQuantity, &item.Cost,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

// StockMovementRepo implementação do porto StockMovementRepository (livro-razão, só insert).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create registra uma movimentação. Movimentações nunca são editadas nem apagadas.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, stock_item_id, type, quantity, unit_cost, reason, ref_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.StockItemID, m.Type, m.Quantity, m.UnitCost, m.Reason, m.RefID, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByItem lista as movimentações de um insumo, mais recentes primeiro.
func (r *StockMovementRepo) ListByItem(stockItemID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, stock_item_id, type, quantity, unit_cost, reason, ref_id, created_by, created_at
		FROM stock_movements WHERE stock_item_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, stockItemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.StockItemID, &m.Type, &m.Quantity, &m.UnitCost, &m.Reason, &m.RefID,
			&m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

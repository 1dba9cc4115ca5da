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

var _ repository.TableRepository = (*TableRepo)(nil)

// TableRepo implementação do porto TableRepository sobre PostgreSQL.
type TableRepo struct {
	q Querier
}

// NewTableRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

// Create persiste uma mesa nova. Número repetido devolve ErrDuplicate.
func (r *TableRepo) Create(t *entity.Table) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO tables (id, number, status, order_id, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		t.ID, t.Number, t.Status, t.OrderID, t.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert table: %w", err)
	}
	return nil
}

// GetByID busca uma mesa pelo ID.
func (r *TableRepo) GetByID(id string) (*entity.Table, error) {
	var t entity.Table
	err := r.q.QueryRow(context.Background(),
		`SELECT id, number, status, order_id, updated_at FROM tables WHERE id = $1`, id).Scan(
		&t.ID, &t.Number, &t.Status, &t.OrderID, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get table: %w", err)
	}
	return &t, nil
}

// List lista as mesas por número.
func (r *TableRepo) List() ([]*entity.Table, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, number, status, order_id, updated_at FROM tables ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var out []*entity.Table
	for rows.Next() {
		var t entity.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Status, &t.OrderID, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// UpdateStatus muda status e comanda vinculada em uma única instrução.
func (r *TableRepo) UpdateStatus(id, status, orderID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE tables SET status = $2, order_id = $3, updated_at = now() WHERE id = $1`,
		id, status, orderID,
	)
	if err != nil {
		return fmt.Errorf("update table status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

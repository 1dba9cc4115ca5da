package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementação do porto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, table_id, status, payment_method, subtotal, discount_total, total, notes, created_by, created_at, closed_at`

// Create persiste uma comanda nova.
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, o.TableID, o.Status, o.PaymentMethod, o.Subtotal, o.DiscountTotal, o.Total,
		o.Notes, o.CreatedBy, o.CreatedAt, o.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID busca uma comanda pelo ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id).Scan(
		&o.ID, &o.TableID, &o.Status, &o.PaymentMethod, &o.Subtotal, &o.DiscountTotal, &o.Total,
		&o.Notes, &o.CreatedBy, &o.CreatedAt, &o.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// ListOpen lista comandas abertas, mais antigas primeiro.
func (r *OrderRepo) ListOpen() ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 ORDER BY created_at`,
		entity.OrderStatusAberta,
	)
	if err != nil {
		return nil, fmt.Errorf("list open orders: %w", err)
	}
	return scanOrders(rows)
}

// ListClosedBetween lista comandas fechadas no intervalo [start, end).
func (r *OrderRepo) ListClosedBetween(start, end time.Time) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+orderColumns+` FROM orders WHERE status = $1 AND closed_at >= $2 AND closed_at < $3 ORDER BY closed_at`,
		entity.OrderStatusFechada, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("list closed orders: %w", err)
	}
	return scanOrders(rows)
}

// Update atualiza uma comanda (status, totais, fechamento).
func (r *OrderRepo) Update(o *entity.Order) error {
	query := `
		UPDATE orders SET table_id = $2, status = $3, payment_method = $4, subtotal = $5, discount_total = $6, total = $7, notes = $8, closed_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		o.ID, o.TableID, o.Status, o.PaymentMethod, o.Subtotal, o.DiscountTotal, o.Total,
		o.Notes, o.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	defer rows.Close()
	var out []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.TableID, &o.Status, &o.PaymentMethod, &o.Subtotal, &o.DiscountTotal, &o.Total,
			&o.Notes, &o.CreatedBy, &o.CreatedAt, &o.ClosedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, &o)
	}
	return out, rows.Err()
}

const orderItemColumns = `id, order_id, menu_item_id, name, quantity, unit_price, discount, total, notes, created_at`

// AddItem persiste uma linha da comanda.
func (r *OrderRepo) AddItem(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (` + orderItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.MenuItemID, item.Name, item.Quantity, item.UnitPrice,
		item.Discount, item.Total, item.Notes, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// ListItems lista as linhas de uma comanda na ordem de lançamento.
func (r *OrderRepo) ListItems(orderID string) ([]*entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY created_at`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var out []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.MenuItemID, &item.Name, &item.Quantity,
			&item.UnitPrice, &item.Discount, &item.Total, &item.Notes, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

// UpdateItem atualiza uma linha (quantidade, desconto e total do fechamento).
func (r *OrderRepo) UpdateItem(item *entity.OrderItem) error {
	query := `
		UPDATE order_items SET quantity = $2, unit_price = $3, discount = $4, total = $5, notes = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Quantity, item.UnitPrice, item.Discount, item.Total, item.Notes,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveItem apaga uma linha da comanda.
func (r *OrderRepo) RemoveItem(itemID string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

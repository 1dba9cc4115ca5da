package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/comandaki/comanda-api/internal/domain"
	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
	"github.com/comandaki/comanda-api/pkg/textnorm"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.MenuItemRepository = (*MenuItemRepo)(nil)

// CategoryRepo implementação do porto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste uma categoria nova.
func (r *CategoryRepo) Create(c *entity.Category) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categories (id, name, sort_order, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.SortOrder, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// List lista as categorias na ordem de exibição.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, sort_order, created_at FROM categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// Delete remove uma categoria. Itens ficam sem categoria (category_id vazio).
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE menu_items SET category_id = '' WHERE category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("detach menu items: %w", err)
	}
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MenuItemRepo implementação do porto MenuItemRepository sobre PostgreSQL.
// name_normalized guarda o nome sem acentos e em minúsculas para a busca.
type MenuItemRepo struct {
	q Querier
}

// NewMenuItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMenuItemRepository(q Querier) *MenuItemRepo {
	return &MenuItemRepo{q: q}
}

const menuItemColumns = `id, category_id, name, description, price, image_url, discount_type, discount_value, discount_methods, stock_item_id, stock_per_unit, active, created_at, updated_at`

// Create persiste um item de cardápio novo.
func (r *MenuItemRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, category_id, name, name_normalized, description, price, image_url, discount_type, discount_value, discount_methods, stock_item_id, stock_per_unit, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.CategoryID, item.Name, textnorm.Normalize(item.Name), item.Description,
		item.Price, item.ImageURL, item.DiscountType, item.DiscountValue, item.DiscountMethods,
		item.StockItemID, item.StockPerUnit, item.Active, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID busca um item pelo ID.
func (r *MenuItemRepo) GetByID(id string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.q.QueryRow(context.Background(),
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id).Scan(
		&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.Price, &item.ImageURL,
		&item.DiscountType, &item.DiscountValue, &item.DiscountMethods, &item.StockItemID,
		&item.StockPerUnit, &item.Active, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &item, nil
}

// List lista itens com busca por nome normalizado e paginação.
// search deve chegar já normalizado pelo caso de uso.
func (r *MenuItemRepo) List(search string, onlyActive bool, limit, offset int) ([]*entity.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE ($1 = '' OR name_normalized LIKE '%' || $1 || '%') AND (NOT $2 OR active) ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, search, onlyActive, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var out []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		if err := rows.Scan(
			&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.Price, &item.ImageURL,
			&item.DiscountType, &item.DiscountValue, &item.DiscountMethods, &item.StockItemID,
			&item.StockPerUnit, &item.Active, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		out = append(out, &item)
	}
	return out, rows.Err()
}

// Update atualiza um item existente (inclusive o nome normalizado).
func (r *MenuItemRepo) Update(item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET category_id = $2, name = $3, name_normalized = $4, description = $5, price = $6, image_url = $7, discount_type = $8, discount_value = $9, discount_methods = $10, stock_item_id = $11, stock_per_unit = $12, active = $13, updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.CategoryID, item.Name, textnorm.Normalize(item.Name), item.Description,
		item.Price, item.ImageURL, item.DiscountType, item.DiscountValue, item.DiscountMethods,
		item.StockItemID, item.StockPerUnit, item.Active, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um item do cardápio.
func (r *MenuItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

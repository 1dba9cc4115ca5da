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

var _ repository.PromotionRepository = (*PromotionRepo)(nil)

// PromotionRepo implementação do porto PromotionRepository sobre PostgreSQL.
type PromotionRepo struct {
	q Querier
}

// NewPromotionRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPromotionRepository(q Querier) *PromotionRepo {
	return &PromotionRepo{q: q}
}

const promotionColumns = `id, title, description, image_url, price, starts_at, ends_at, active, created_at, updated_at`

// Create persiste uma promoção nova.
func (r *PromotionRepo) Create(p *entity.Promotion) error {
	query := `
		INSERT INTO promotions (` + promotionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Title, p.Description, p.ImageURL, p.Price, p.StartsAt, p.EndsAt,
		p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

// GetByID busca uma promoção pelo ID.
func (r *PromotionRepo) GetByID(id string) (*entity.Promotion, error) {
	var p entity.Promotion
	err := r.q.QueryRow(context.Background(),
		`SELECT `+promotionColumns+` FROM promotions WHERE id = $1`, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Price, &p.StartsAt, &p.EndsAt,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return &p, nil
}

// List lista promoções com paginação, mais recentes primeiro.
func (r *PromotionRepo) List(limit, offset int) ([]*entity.Promotion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+promotionColumns+` FROM promotions ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}
	return scanPromotions(rows)
}

// ListActiveAt lista promoções ativas e dentro da janela no instante dado.
func (r *PromotionRepo) ListActiveAt(now time.Time) ([]*entity.Promotion, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+promotionColumns+` FROM promotions WHERE active AND starts_at <= $1 AND ends_at > $1 ORDER BY starts_at`,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("list active promotions: %w", err)
	}
	return scanPromotions(rows)
}

// Update atualiza uma promoção existente.
func (r *PromotionRepo) Update(p *entity.Promotion) error {
	query := `
		UPDATE promotions SET title = $2, description = $3, image_url = $4, price = $5, starts_at = $6, ends_at = $7, active = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Title, p.Description, p.ImageURL, p.Price, p.StartsAt, p.EndsAt,
		p.Active, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update promotion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma promoção.
func (r *PromotionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPromotions(rows pgx.Rows) ([]*entity.Promotion, error) {
	defer rows.Close()
	var out []*entity.Promotion
	for rows.Next() {
		var p entity.Promotion
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Price, &p.StartsAt, &p.EndsAt,
			&p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan promotion: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

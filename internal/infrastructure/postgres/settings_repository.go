package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/comandaki/comanda-api/internal/domain/entity"
	"github.com/comandaki/comanda-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementação do porto SettingsRepository sobre PostgreSQL.
// A tabela settings tem no máximo uma linha (id fixo).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

const settingsRowID = "default"

// GetDiscountLimit devolve o teto configurado ou nil se nunca foi salvo.
func (r *SettingsRepo) GetDiscountLimit() (*entity.DiscountLimit, error) {
	var limit entity.DiscountLimit
	err := r.q.QueryRow(context.Background(),
		`SELECT discount_limit_type, discount_limit_value, updated_at FROM settings WHERE id = $1`,
		settingsRowID).Scan(&limit.Type, &limit.Value, &limit.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount limit: %w", err)
	}
	return &limit, nil
}

// SaveDiscountLimit grava o teto (upsert na linha única).
func (r *SettingsRepo) SaveDiscountLimit(limit *entity.DiscountLimit) error {
	query := `
		INSERT INTO settings (id, discount_limit_type, discount_limit_value, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET discount_limit_type = $2, discount_limit_value = $3, updated_at = $4`
	_, err := r.q.Exec(context.Background(), query,
		settingsRowID, limit.Type, limit.Value, limit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save discount limit: %w", err)
	}
	return nil
}

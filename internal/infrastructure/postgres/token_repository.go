package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.APITokenRepository = (*APITokenRepo)(nil)

// APITokenRepo implementación de APITokenRepository sobre PostgreSQL.
type APITokenRepo struct {
	q Querier
}

// NewAPITokenRepository construye el adaptador de tokens. Pasar pool o tx (Querier).
func NewAPITokenRepository(q Querier) *APITokenRepo {
	return &APITokenRepo{q: q}
}

// Create persiste un token nuevo. El valor del token es único.
func (r *APITokenRepo) Create(token *entity.APIToken) error {
	query := `
		INSERT INTO api_tokens (id, name, token, active, usage_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		token.ID, token.Name, token.Token, token.Active, token.UsageCount, token.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert api token: %w", err)
	}
	return nil
}

// GetActiveByToken busca un token activo por su valor.
func (r *APITokenRepo) GetActiveByToken(token string) (*entity.APIToken, error) {
	query := `
		SELECT id, name, token, active, last_used, usage_count, created_at
		FROM api_tokens WHERE token = $1 AND active = true`
	var t entity.APIToken
	err := r.q.QueryRow(context.Background(), query, token).Scan(
		&t.ID, &t.Name, &t.Token, &t.Active, &t.LastUsed, &t.UsageCount, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get api token: %w", err)
	}
	return &t, nil
}

// TouchUsage actualiza last_used y suma uno al contador de uso.
func (r *APITokenRepo) TouchUsage(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE api_tokens SET last_used = now(), usage_count = usage_count + 1 WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("touch api token: %w", err)
	}
	return nil
}

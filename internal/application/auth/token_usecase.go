package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
	"github.com/jhoicas/Bodega-api/pkg/apitoken"
)

// TokenUseCase valida y emite tokens opacos de API para clientes externos (app móvil, POS).
type TokenUseCase struct {
	tokenRepo repository.APITokenRepository
}

// NewTokenUseCase construye el caso de uso.
func NewTokenUseCase(tokenRepo repository.APITokenRepository) *TokenUseCase {
	return &TokenUseCase{tokenRepo: tokenRepo}
}

// Validate busca un token activo y registra su uso (last_used, usage_count).
// Token vacío, desconocido o inactivo es ErrUnauthorized.
func (uc *TokenUseCase) Validate(ctx context.Context, token string) (*entity.APIToken, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	record, err := uc.tokenRepo.GetActiveByToken(token)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.tokenRepo.TouchUsage(record.ID); err != nil {
		return nil, err
	}
	return record, nil
}

// Issue genera y persiste un token nuevo con nombre descriptivo.
func (uc *TokenUseCase) Issue(ctx context.Context, name string) (*entity.APIToken, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	value, err := apitoken.Generate()
	if err != nil {
		return nil, err
	}
	record := &entity.APIToken{
		ID:        uuid.New().String(),
		Name:      name,
		Token:     value,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.tokenRepo.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

type fakeTokenRepo struct {
	tokens  map[string]*entity.APIToken
	touched map[string]int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*entity.APIToken{}, touched: map[string]int{}}
}

func (r *fakeTokenRepo) Create(t *entity.APIToken) error {
	cp := *t
	r.tokens[t.Token] = &cp
	return nil
}

func (r *fakeTokenRepo) GetActiveByToken(token string) (*entity.APIToken, error) {
	t, ok := r.tokens[token]
	if !ok || !t.Active {
		return nil, nil
	}
	return t, nil
}

func (r *fakeTokenRepo) TouchUsage(id string) error {
	r.touched[id]++
	return nil
}

func TestIssueYValidate(t *testing.T) {
	repo := newFakeTokenRepo()
	uc := auth.NewTokenUseCase(repo)
	ctx := context.Background()

	issued, err := uc.Issue(ctx, "app-movil")
	require.NoError(t, err)
	assert.Equal(t, "app-movil", issued.Name)
	assert.Len(t, issued.Token, 64)
	assert.True(t, issued.Active)

	record, err := uc.Validate(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, record.ID)
	assert.Equal(t, 1, repo.touched[issued.ID])
}

func TestValidateRechazados(t *testing.T) {
	repo := newFakeTokenRepo()
	uc := auth.NewTokenUseCase(repo)
	ctx := context.Background()

	_, err := uc.Validate(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Validate(ctx, "token-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.tokens["inactivo"] = &entity.APIToken{ID: "tok-1", Name: "viejo", Token: "inactivo", Active: false}
	_, err = uc.Validate(ctx, "inactivo")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, repo.touched["tok-1"])
}

func TestIssueSinNombre(t *testing.T) {
	uc := auth.NewTokenUseCase(newFakeTokenRepo())

	_, err := uc.Issue(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

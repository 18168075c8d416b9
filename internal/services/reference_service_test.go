package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gemvault_backend/internal/appErrors"
	"gemvault_backend/internal/services/dto"
)

func TestReferenceService_FamilyLifecycle(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	family, err := env.referenceService.CreateFamily(ctx, dto.CreateGemstoneFamilyRequest{
		Name:            "Corundum",
		Category:        strPtr("Oxide"),
		ChemicalFormula: strPtr("Al2O3"),
	})
	require.NoError(t, err)
	require.NotZero(t, family.ID)

	updated, err := env.referenceService.UpdateFamily(ctx, family.ID, dto.UpdateGemstoneFamilyRequest{
		RarityLevel: strPtr("Rare"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rare", *updated.RarityLevel)
	assert.Equal(t, "Al2O3", *updated.ChemicalFormula)

	families, err := env.referenceService.ListFamilies(ctx)
	require.NoError(t, err)
	assert.Len(t, families, 1)

	require.NoError(t, env.referenceService.DeleteFamily(ctx, family.ID))

	_, err = env.referenceService.GetFamily(ctx, family.ID)
	assert.ErrorIs(t, err, appErrors.ErrFamilyNotFound)
}

func TestReferenceService_DuplicateName(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	first, err := env.referenceService.CreateFamily(ctx, dto.CreateGemstoneFamilyRequest{Name: "Beryl"})
	require.NoError(t, err)

	_, err = env.referenceService.CreateFamily(ctx, dto.CreateGemstoneFamilyRequest{Name: "Beryl"})
	assert.ErrorIs(t, err, appErrors.ErrFamilyAlreadyExists)

	second, err := env.referenceService.CreateFamily(ctx, dto.CreateGemstoneFamilyRequest{Name: "Quartz"})
	require.NoError(t, err)

	// Переименование в занятое имя тоже конфликт
	_, err = env.referenceService.UpdateFamily(ctx, second.ID, dto.UpdateGemstoneFamilyRequest{
		Name: strPtr("Beryl"),
	})
	assert.ErrorIs(t, err, appErrors.ErrFamilyAlreadyExists)

	// Обновление без смены имени проходит
	_, err = env.referenceService.UpdateFamily(ctx, first.ID, dto.UpdateGemstoneFamilyRequest{
		Name:        strPtr("Beryl"),
		Description: strPtr("Beryllium aluminium silicate"),
	})
	assert.NoError(t, err)
}

func TestReferenceService_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	_, err := env.referenceService.GetFamily(ctx, 404)
	assert.ErrorIs(t, err, appErrors.ErrFamilyNotFound)

	_, err = env.referenceService.UpdateFamily(ctx, 404, dto.UpdateGemstoneFamilyRequest{})
	assert.ErrorIs(t, err, appErrors.ErrFamilyNotFound)

	err = env.referenceService.DeleteFamily(ctx, 404)
	assert.ErrorIs(t, err, appErrors.ErrFamilyNotFound)
}

func TestReferenceService_ListSkills(t *testing.T) {
	env := setupTestEnv(t)

	skills, err := env.referenceService.ListSkills(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, skills)
}

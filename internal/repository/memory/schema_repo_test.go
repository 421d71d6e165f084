package memory_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skema/internal/domain"
	"skema/internal/repository/memory"
)

func record(name string) *domain.SchemaRecord {
	return &domain.SchemaRecord{
		Name:        name,
		Description: "build failure report",
		Fields:      json.RawMessage(`[{"name":"errorCount","type":"number","required":true}]`),
	}
}

func TestSchemaRepo_CreateAndGetByName(t *testing.T) {
	repo := memory.NewSchemaRepo()
	ctx := context.Background()

	rec := record("build_report")
	require.NoError(t, repo.Create(ctx, rec))
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := repo.GetByName(ctx, "build_report")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "build failure report", got.Description)
	assert.JSONEq(t, string(rec.Fields), string(got.Fields))
}

func TestSchemaRepo_Create_DuplicateName(t *testing.T) {
	repo := memory.NewSchemaRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, record("build_report")))

	err := repo.Create(ctx, record("build_report"))
	assert.ErrorIs(t, err, domain.ErrDuplicateSchemaName)
}

func TestSchemaRepo_GetByName_NotFound(t *testing.T) {
	repo := memory.NewSchemaRepo()

	got, err := repo.GetByName(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSchemaRepo_GetByName_ReturnsCopy(t *testing.T) {
	repo := memory.NewSchemaRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, record("build_report")))

	got, err := repo.GetByName(ctx, "build_report")
	require.NoError(t, err)
	got.Description = "mutated"

	again, err := repo.GetByName(ctx, "build_report")
	require.NoError(t, err)
	assert.Equal(t, "build failure report", again.Description)
}

func TestSchemaRepo_List_NewestFirstWithPagination(t *testing.T) {
	repo := memory.NewSchemaRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, record("alpha")))
	require.NoError(t, repo.Create(ctx, record("beta")))
	require.NoError(t, repo.Create(ctx, record("gamma")))

	all, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, all, 3)
	assert.Equal(t, "gamma", all[0].Name)
	assert.Equal(t, "alpha", all[2].Name)

	page, total, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "beta", page[0].Name)
}

func TestSchemaRepo_List_OffsetPastEnd(t *testing.T) {
	repo := memory.NewSchemaRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, record("alpha")))

	page, total, err := repo.List(ctx, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Empty(t, page)
}

func TestSchemaRepo_Delete(t *testing.T) {
	repo := memory.NewSchemaRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, record("build_report")))
	require.NoError(t, repo.Delete(ctx, "build_report"))

	_, err := repo.GetByName(ctx, "build_report")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSchemaRepo_Delete_NotFound(t *testing.T) {
	repo := memory.NewSchemaRepo()

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

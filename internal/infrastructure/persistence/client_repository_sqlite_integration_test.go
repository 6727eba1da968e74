//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/StianAK82/regnskapsky/internal/domain/clients"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)

	err := ctx.ClientRepo.Create(context.Background(), client)
	require.NoError(t, err)

	// Verify using GORM model (infrastructure concern)
	var createdClientModel models.ClientModel
	err = ctx.DB.First(&createdClientModel, "id = ?", client.ID).Error
	require.NoError(t, err)
	assert.Equal(t, client.ID, createdClientModel.ID)
	assert.Equal(t, client.Name, createdClientModel.Name)
	assert.Equal(t, client.OrgNumber, createdClientModel.OrgNumber)
}

func TestClientSqliteRepository_Create_InvalidClient(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	client := &clients.Client{} // Invalid - missing required fields

	err := ctx.ClientRepo.Create(context.Background(), client)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestClientSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))

	fetchedClient, err := ctx.ClientRepo.GetByID(context.Background(), license.ID, client.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetchedClient)
	assert.Equal(t, client.ID, fetchedClient.ID)
	assert.Equal(t, client.AccountingSystem, fetchedClient.AccountingSystem)
}

func TestClientSqliteRepository_GetByID_OtherLicense(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))

	fetchedClient, err := ctx.ClientRepo.GetByID(context.Background(), uuid.NewString(), client.ID)
	assert.Nil(t, fetchedClient)
	assert.True(t, errors.Is(err, clients.ErrNotFound))
}

func TestClientSqliteRepository_GetByOrgNumber(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))

	fetchedClient, err := ctx.ClientRepo.GetByOrgNumber(context.Background(), license.ID, client.OrgNumber)
	require.NoError(t, err)
	assert.Equal(t, client.ID, fetchedClient.ID)
}

func TestClientSqliteRepository_List_StatusFilter(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))

	active := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), active))

	archived := CreateTestClient(t, license.ID)
	archived.OrgNumber = TestOrgNumber
	archived.Status = clients.StatusArchived
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), archived))

	query := clients.NewClientQuery()
	query.Status = clients.StatusActive

	listed, err := ctx.ClientRepo.List(context.Background(), license.ID, query)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, active.ID, listed[0].ID)
}

func TestClientSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))

	client.Name = "Omdøpt Kunde AS"
	client.Status = clients.StatusArchived
	err := ctx.ClientRepo.UpdateByID(context.Background(), client)
	require.NoError(t, err)

	fetchedClient, err := ctx.ClientRepo.GetByID(context.Background(), license.ID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Omdøpt Kunde AS", fetchedClient.Name)
	assert.Equal(t, clients.StatusArchived, fetchedClient.Status)
}

func TestClientSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))

	err := ctx.ClientRepo.DeleteByID(context.Background(), license.ID, client.ID)
	require.NoError(t, err)

	fetchedClient, err := ctx.ClientRepo.GetByID(context.Background(), license.ID, client.ID)
	assert.Nil(t, fetchedClient)
	assert.True(t, errors.Is(err, clients.ErrNotFound))
}

func TestClientSqliteRepository_CountReferences(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))

	count, err := ctx.ClientRepo.CountReferences(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	task := CreateTestTask(t, license.ID, client.ID)
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), task))

	count, err = ctx.ClientRepo.CountReferences(context.Background(), client.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/infrastructure/persistence/models"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))
	task := CreateTestTask(t, license.ID, client.ID)

	err := ctx.TaskRepo.Create(context.Background(), task)
	require.NoError(t, err)

	// Verify using GORM model (infrastructure concern)
	var createdTaskModel models.TaskModel
	err = ctx.DB.First(&createdTaskModel, "id = ?", task.ID).Error
	require.NoError(t, err)
	assert.Equal(t, task.ID, createdTaskModel.ID)
	assert.Equal(t, task.Title, createdTaskModel.Title)
}

func TestTaskSqliteRepository_Create_InvalidTask(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	task := &tasks.Task{} // Invalid - missing required fields

	err := ctx.TaskRepo.Create(context.Background(), task)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestTaskSqliteRepository_GetByID_OtherLicense(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))
	task := CreateTestTask(t, license.ID, client.ID)
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), task))

	fetchedTask, err := ctx.TaskRepo.GetByID(context.Background(), uuid.NewString(), task.ID)
	assert.Nil(t, fetchedTask)
	assert.True(t, errors.Is(err, tasks.ErrNotFound))
}

func TestTaskSqliteRepository_List_StatusFilter(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))

	open := CreateTestTask(t, license.ID, client.ID)
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), open))

	now := time.Now()
	done := CreateTestTask(t, license.ID, client.ID)
	done.Status = tasks.StatusDone
	done.CompletedAt = &now
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), done))

	query := tasks.NewTaskQuery()
	query.Status = tasks.StatusOpen

	listed, err := ctx.TaskRepo.List(context.Background(), license.ID, query)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, open.ID, listed[0].ID)
}

func TestTaskSqliteRepository_ListDueBefore(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))

	longOverdue := CreateTestTask(t, license.ID, client.ID)
	dueLongAgo := time.Now().AddDate(0, -2, 0)
	longOverdue.DueDate = &dueLongAgo
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), longOverdue))

	soon := CreateTestTask(t, license.ID, client.ID)
	dueSoon := time.Now().AddDate(0, 0, 2)
	soon.DueDate = &dueSoon
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), soon))

	later := CreateTestTask(t, license.ID, client.ID)
	dueLater := time.Now().AddDate(0, 2, 0)
	later.DueDate = &dueLater
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), later))

	listed, err := ctx.TaskRepo.ListDueBefore(context.Background(), license.ID, time.Now().AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, longOverdue.ID, listed[0].ID)
	assert.Equal(t, soon.ID, listed[1].ID)
}

func TestTaskSqliteRepository_ChecklistLifecycle(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))
	task := CreateTestTask(t, license.ID, client.ID)
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), task))

	item := &tasks.ChecklistItem{
		ID:       uuid.NewString(),
		TaskID:   task.ID,
		Label:    "Avstemt bank",
		Position: 0,
	}
	require.NoError(t, ctx.TaskRepo.CreateChecklistItem(context.Background(), item))

	openCount, err := ctx.TaskRepo.CountOpenChecklistItems(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), openCount)

	now := time.Now()
	userID := uuid.NewString()
	item.Done = true
	item.DoneByUserID = &userID
	item.DoneAt = &now
	require.NoError(t, ctx.TaskRepo.UpdateChecklistItemByID(context.Background(), item))

	openCount, err = ctx.TaskRepo.CountOpenChecklistItems(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), openCount)

	items, err := ctx.TaskRepo.ListChecklistItems(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Done)
}

func TestTaskSqliteRepository_DeleteByID_CascadesChecklist(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	license := CreateTestLicense(t)
	require.NoError(t, ctx.LicenseRepo.Create(context.Background(), license))
	client := CreateTestClient(t, license.ID)
	require.NoError(t, ctx.ClientRepo.Create(context.Background(), client))
	task := CreateTestTask(t, license.ID, client.ID)
	require.NoError(t, ctx.TaskRepo.Create(context.Background(), task))

	item := &tasks.ChecklistItem{
		ID:     uuid.NewString(),
		TaskID: task.ID,
		Label:  "Levert aksjonærregisteroppgave",
	}
	require.NoError(t, ctx.TaskRepo.CreateChecklistItem(context.Background(), item))

	err := ctx.TaskRepo.DeleteByID(context.Background(), license.ID, task.ID)
	require.NoError(t, err)

	var itemCount int64
	err = ctx.DB.Model(&models.ChecklistItemModel{}).Where("task_id = ?", task.ID).Count(&itemCount).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), itemCount)
}

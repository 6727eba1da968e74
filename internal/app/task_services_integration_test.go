//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/tasks"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_Complete_BlockedByChecklist(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	task := NewDueTask(t, services, license.ID, client.ID, 14)
	ctx := context.Background()

	item, err := services.TaskService.AddChecklistItem(ctx, license.ID, task.ID, "Avstemt bank")
	require.NoError(t, err)

	_, err = services.TaskService.Complete(ctx, license.ID, task.ID, admin.ID)
	assert.True(t, errors.Is(err, tasks.ErrChecklistIncomplete))

	_, err = services.TaskService.ToggleChecklistItem(ctx, license.ID, task.ID, item.ID, admin.ID, true)
	require.NoError(t, err)

	completed, err := services.TaskService.Complete(ctx, license.ID, task.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, tasks.StatusDone, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
}

func TestTaskService_Complete_AlreadyDone(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	task := NewDueTask(t, services, license.ID, client.ID, 14)
	ctx := context.Background()

	_, err := services.TaskService.Complete(ctx, license.ID, task.ID, admin.ID)
	require.NoError(t, err)

	again, err := services.TaskService.Complete(ctx, license.ID, task.ID, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, tasks.StatusDone, again.Status)
}

func TestTaskService_Complete_SpawnsRecurrence(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	ctx := context.Background()

	due := time.Now().AddDate(0, 0, 7)
	task, err := services.TaskService.Create(ctx, license.ID, &tasks.Task{
		ClientID:       client.ID,
		Title:          "MVA-melding",
		DueDate:        &due,
		RecurrenceRule: tasks.RecurrenceQuarterly,
	})
	require.NoError(t, err)

	_, err = services.TaskService.AddChecklistItem(ctx, license.ID, task.ID, "Kontrollert grunnlag")
	require.NoError(t, err)
	items, err := services.TaskService.List(ctx, license.ID, nil)
	require.NoError(t, err)
	require.Len(t, items, 1)

	task2, checklist, err := services.TaskService.GetByID(ctx, license.ID, task.ID)
	require.NoError(t, err)
	_, err = services.TaskService.ToggleChecklistItem(ctx, license.ID, task2.ID, checklist[0].ID, admin.ID, true)
	require.NoError(t, err)

	_, err = services.TaskService.Complete(ctx, license.ID, task.ID, admin.ID)
	require.NoError(t, err)

	query := tasks.NewTaskQuery()
	query.Status = tasks.StatusOpen
	spawned, err := services.TaskService.List(ctx, license.ID, query)
	require.NoError(t, err)
	require.Len(t, spawned, 1)

	next := spawned[0]
	assert.Equal(t, task.Title, next.Title)
	assert.Equal(t, tasks.RecurrenceQuarterly, next.RecurrenceRule)
	expectedDue := due.AddDate(0, 3, 0)
	assert.WithinDuration(t, expectedDue, *next.DueDate, time.Hour)

	_, nextChecklist, err := services.TaskService.GetByID(ctx, license.ID, next.ID)
	require.NoError(t, err)
	require.Len(t, nextChecklist, 1)
	assert.Equal(t, "Kontrollert grunnlag", nextChecklist[0].Label)
	assert.False(t, nextChecklist[0].Done)
}

func TestTaskService_UpdateByID_RejectsDoneTransition(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, _, client := SetupTestTenant(t, services)
	task := NewDueTask(t, services, license.ID, client.ID, 14)
	ctx := context.Background()

	task.Status = tasks.StatusDone
	_, err := services.TaskService.UpdateByID(ctx, license.ID, task)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "complete")
}

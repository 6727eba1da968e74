//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/StianAK82/regnskapsky/internal/domain/aml"
	"github.com/StianAK82/regnskapsky/internal/domain/notifications"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T, services *TestServices) *NotificationScheduler {
	t.Helper()

	scheduler, err := NewNotificationScheduler(
		services.DBContext.LicenseRepo,
		services.DBContext.UserRepo,
		services.DBContext.ClientRepo,
		services.DBContext.TaskRepo,
		services.DBContext.AmlRepo,
		services.DBContext.NotificationRepo,
		services.NotificationService,
		"0 6 * * *",
		3,
		testutil.SetupTestLogger(t),
	)
	require.NoError(t, err)
	return scheduler
}

func TestNotificationScheduler_DueTask(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	NewDueTask(t, services, license.ID, client.ID, 2)
	ctx := context.Background()

	scheduler := newTestScheduler(t, services)
	scheduler.RunOnce(ctx)

	listed, err := services.NotificationService.ListForUser(ctx, license.ID, admin.ID, true)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, notifications.TypeTaskDue, listed[0].Type)
	assert.Contains(t, listed[0].Title, "Levere MVA-melding")
}

func TestNotificationScheduler_LongOverdueTask(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	NewDueTask(t, services, license.ID, client.ID, -60)
	ctx := context.Background()

	scheduler := newTestScheduler(t, services)
	scheduler.RunOnce(ctx)

	listed, err := services.NotificationService.ListForUser(ctx, license.ID, admin.ID, true)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, notifications.TypeTaskDue, listed[0].Type)
	assert.Contains(t, listed[0].Title, "forfalt")
}

func TestNotificationScheduler_Idempotent(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	NewDueTask(t, services, license.ID, client.ID, 2)
	ctx := context.Background()

	scheduler := newTestScheduler(t, services)
	scheduler.RunOnce(ctx)
	scheduler.RunOnce(ctx)

	listed, err := services.NotificationService.ListForUser(ctx, license.ID, admin.ID, true)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestNotificationScheduler_NotifiesAgainAfterRead(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	NewDueTask(t, services, license.ID, client.ID, 2)
	ctx := context.Background()

	scheduler := newTestScheduler(t, services)
	scheduler.RunOnce(ctx)

	require.NoError(t, services.NotificationService.MarkAllRead(ctx, license.ID, admin.ID))

	scheduler.RunOnce(ctx)

	unread, err := services.NotificationService.ListForUser(ctx, license.ID, admin.ID, true)
	require.NoError(t, err)
	assert.Len(t, unread, 1)
}

func TestNotificationScheduler_SeatLimit(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	license, err := services.LicenseService.Create(ctx, "Fullt Byrå AS", "974761076", "basic", 1)
	require.NoError(t, err)
	admin, err := services.UserService.Create(ctx, license.ID, "admin@fullt.no", "Admin", "admin", "passord-admin")
	require.NoError(t, err)

	scheduler := newTestScheduler(t, services)
	scheduler.RunOnce(ctx)

	listed, err := services.NotificationService.ListForUser(ctx, license.ID, admin.ID, true)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, notifications.TypeSeatLimit, listed[0].Type)
}

func TestNotificationScheduler_OverdueAmlReview(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	ctx := context.Background()

	status, err := services.AmlService.Assess(ctx, license.ID, client.ID, admin.ID, aml.Assessment{
		GeographyRisk:    5,
		IndustryRisk:     5,
		OwnershipRisk:    5,
		TransactionRisk:  5,
		IdentityVerified: true,
	})
	require.NoError(t, err)

	// Push the review deadline into the past
	err = services.DBContext.DB.Exec("UPDATE aml_statuses SET next_review_at = datetime('now', '-1 day') WHERE id = ?", status.ID).Error
	require.NoError(t, err)

	scheduler := newTestScheduler(t, services)
	scheduler.RunOnce(ctx)

	listed, err := services.NotificationService.ListForUser(ctx, license.ID, admin.ID, true)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, notifications.TypeAmlReview, listed[0].Type)
	assert.Contains(t, listed[0].Title, client.Name)
}

//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/StianAK82/regnskapsky/internal/domain/timetracking"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntryService_Create(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	ctx := context.Background()

	entry, err := services.TimeEntryService.Create(ctx, license.ID, &timetracking.TimeEntry{
		UserID:      admin.ID,
		ClientID:    client.ID,
		Date:        time.Now(),
		Minutes:     90,
		Billable:    true,
		Description: "Bokføring januar",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, license.ID, entry.LicenseID)
}

func TestTimeEntryService_Create_FutureDateRejected(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	ctx := context.Background()

	_, err := services.TimeEntryService.Create(ctx, license.ID, &timetracking.TimeEntry{
		UserID:   admin.ID,
		ClientID: client.ID,
		Date:     time.Now().AddDate(0, 0, 2),
		Minutes:  60,
	})
	assert.True(t, errors.Is(err, timetracking.ErrFutureDate))
}

func TestTimeEntryService_Create_MinutesOutOfRange(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	ctx := context.Background()

	for _, minutes := range []int{0, 1441} {
		_, err := services.TimeEntryService.Create(ctx, license.ID, &timetracking.TimeEntry{
			UserID:   admin.ID,
			ClientID: client.ID,
			Date:     time.Now(),
			Minutes:  minutes,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Minutes")
	}
}

func TestTimeEntryService_UpdateByID_FutureDateRejected(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	ctx := context.Background()

	entry, err := services.TimeEntryService.Create(ctx, license.ID, &timetracking.TimeEntry{
		UserID:   admin.ID,
		ClientID: client.ID,
		Date:     time.Now(),
		Minutes:  60,
	})
	require.NoError(t, err)

	entry.Date = time.Now().AddDate(0, 0, 7)
	_, err = services.TimeEntryService.UpdateByID(ctx, license.ID, entry)
	assert.True(t, errors.Is(err, timetracking.ErrFutureDate))
}

func TestTimeEntryService_TotalsForQuery(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, client := SetupTestTenant(t, services)
	ctx := context.Background()

	_, err := services.TimeEntryService.Create(ctx, license.ID, &timetracking.TimeEntry{
		UserID:   admin.ID,
		ClientID: client.ID,
		Date:     time.Now(),
		Minutes:  60,
		Billable: true,
	})
	require.NoError(t, err)
	_, err = services.TimeEntryService.Create(ctx, license.ID, &timetracking.TimeEntry{
		UserID:   admin.ID,
		ClientID: client.ID,
		Date:     time.Now(),
		Minutes:  30,
	})
	require.NoError(t, err)

	totals, err := services.TimeEntryService.TotalsForQuery(ctx, license.ID, timetracking.NewTimeEntryQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(90), totals.TotalMinutes)
	assert.Equal(t, int64(60), totals.BillableMinutes)
	assert.Equal(t, int64(2), totals.EntryCount)
	assert.InDelta(t, 0.667, totals.BillableShare(), 0.001)
}

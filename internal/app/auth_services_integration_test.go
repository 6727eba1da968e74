//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/StianAK82/regnskapsky/internal/domain/licensing"
	"github.com/StianAK82/regnskapsky/internal/domain/users"
	"github.com/StianAK82/regnskapsky/internal/pkg/config"
	"github.com/StianAK82/regnskapsky/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_SeatLimit(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	license, err := services.LicenseService.Create(ctx, "Lite Byrå AS", "974761076", licensing.PlanBasic, 2)
	require.NoError(t, err)

	_, err = services.UserService.Create(ctx, license.ID, "en@byraa.no", "Bruker En", users.RoleAdmin, "passord-en1")
	require.NoError(t, err)
	_, err = services.UserService.Create(ctx, license.ID, "to@byraa.no", "Bruker To", users.RoleEmployee, "passord-to2")
	require.NoError(t, err)

	_, err = services.UserService.Create(ctx, license.ID, "tre@byraa.no", "Bruker Tre", users.RoleEmployee, "passord-tre3")
	assert.True(t, errors.Is(err, licensing.ErrSeatLimitReached))
}

func TestAuthService_LoginAndAuthenticate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	_, admin, _ := SetupTestTenant(t, services)
	ctx := context.Background()

	plainToken, token, err := services.AuthService.Login(ctx, admin.Email, "hemmelig-passord", "cli")
	require.NoError(t, err)
	assert.NotEmpty(t, plainToken)
	assert.NotEqual(t, plainToken, token.TokenHash)

	identity, err := services.AuthService.Authenticate(ctx, plainToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, identity.UserID)
	assert.Equal(t, admin.LicenseID, identity.LicenseID)
	assert.True(t, identity.IsAdmin())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	_, admin, _ := SetupTestTenant(t, services)

	_, _, err := services.AuthService.Login(context.Background(), admin.Email, "feil-passord", "cli")
	assert.True(t, errors.Is(err, users.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	SetupTestTenant(t, services)

	_, _, err := services.AuthService.Login(context.Background(), "ukjent@byraa.no", "passord123", "cli")
	assert.True(t, errors.Is(err, users.ErrInvalidCredentials))
}

func TestAuthService_RevokeToken(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, admin, _ := SetupTestTenant(t, services)
	ctx := context.Background()

	plainToken, token, err := services.AuthService.IssueToken(ctx, license.ID, admin.ID, "ci")
	require.NoError(t, err)

	require.NoError(t, services.AuthService.RevokeToken(ctx, license.ID, token.ID))

	_, err = services.AuthService.Authenticate(ctx, plainToken)
	assert.True(t, errors.Is(err, users.ErrInvalidCredentials))
}

func TestUserService_Deactivate_RevokesTokens(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	license, _, _ := SetupTestTenant(t, services)
	ctx := context.Background()

	employee, err := services.UserService.Create(ctx, license.ID, "ansatt@testbyraa.no", "Ansatt Bruker", users.RoleEmployee, "passord-ansatt")
	require.NoError(t, err)

	plainToken, _, err := services.AuthService.IssueToken(ctx, license.ID, employee.ID, "mobil")
	require.NoError(t, err)

	_, err = services.UserService.SetActive(ctx, license.ID, employee.ID, false)
	require.NoError(t, err)

	_, err = services.AuthService.Authenticate(ctx, plainToken)
	assert.True(t, errors.Is(err, users.ErrInvalidCredentials))
}

func TestNewAuthService_InvalidTTL(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	_, err := NewAuthService(nil, nil, 0, log)
	assert.Error(t, err)
}

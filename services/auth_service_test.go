package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/table-order/database"
	"github.com/yeremiapane/table-order/models"
	"github.com/yeremiapane/table-order/utils"
)

func newAuthService(t *testing.T) (*AuthService, *utils.TokenManager) {
	t.Helper()
	store := newTestStore(t)
	require.NoError(t, database.SeedBootstrapAdmin(store.DB, "admin", "admin12345"))
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(store, tokens), tokens
}

func TestAuthenticate(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	assert.True(t, auth.Authenticate(ctx, "admin", "admin12345"))
	assert.False(t, auth.Authenticate(ctx, "admin", "wrong"))
	assert.False(t, auth.Authenticate(ctx, "nobody", "admin12345"))
}

func TestLoginAndLogout(t *testing.T) {
	auth, tokens := newAuthService(t)
	ctx := context.Background()

	token, admin, err := auth.Login(ctx, "admin", "admin12345")
	require.NoError(t, err)
	assert.Equal(t, models.BootstrapAdminID, admin.ID)

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)

	auth.Logout(token)
	_, err = tokens.Parse(token)
	assert.ErrorIs(t, err, utils.ErrRevokedToken)

	_, _, err = auth.Login(ctx, "admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminRoster(t *testing.T) {
	auth, _ := newAuthService(t)
	ctx := context.Background()

	staff, err := auth.AddAdmin(ctx, "manager", "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", staff.Password)
	assert.True(t, auth.Authenticate(ctx, "manager", "secret123"))

	_, err = auth.AddAdmin(ctx, "manager", "secret123")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	_, err = auth.AddAdmin(ctx, "short", "12345")
	assert.True(t, IsValidation(err))
	shortest, err := auth.AddAdmin(ctx, "shortest", "123456")
	require.NoError(t, err)
	require.NoError(t, auth.RemoveAdmin(ctx, shortest.ID))

	assert.ErrorIs(t, auth.RemoveAdmin(ctx, models.BootstrapAdminID), ErrProtectedAdmin)
	require.NoError(t, auth.RemoveAdmin(ctx, staff.ID))
	assert.ErrorIs(t, auth.RemoveAdmin(ctx, staff.ID), ErrAdminNotFound)

	admins, err := auth.ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.True(t, admins[0].IsBootstrap())
}

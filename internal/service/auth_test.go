package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalplan/backend/internal/service"
	"github.com/vitalplan/backend/internal/testhelpers"
)

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret")
	ctx := context.Background()

	user, token, err := auth.Register(ctx, "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.SubscriptionActive)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	_, loginToken, err := auth.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
}

func TestRegisterDuplicate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "bob", "bob@example.com", "password123")
	require.NoError(t, err)

	_, _, err = auth.Register(ctx, "bob", "other@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrUserExists)

	_, _, err = auth.Register(ctx, "bobby", "bob@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrUserExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret")
	ctx := context.Background()

	_, _, err := auth.Register(ctx, "carol", "carol@example.com", "password123")
	require.NoError(t, err)

	// Wrong password and unknown user look the same.
	_, _, err = auth.Login(ctx, "carol", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, err = auth.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	auth := service.NewAuthService(db, "test-secret")
	other := service.NewAuthService(db, "different-secret")
	ctx := context.Background()

	_, token, err := auth.Register(ctx, "dave", "dave@example.com", "password123")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

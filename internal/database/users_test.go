package database

import (
	"context"
	"testing"

	"magazyn-plikow/internal/auth"

	"github.com/stretchr/testify/require"
)

func createRandomUser(t *testing.T, username string) {
	hashedPassword, err := auth.HashPassword("secretpassword")
	require.NoError(t, err)

	_, err = testStore.CreateUser(context.Background(), username, hashedPassword)
	require.NoError(t, err)
}

func TestGetUserByUsername(t *testing.T) {
	createRandomUser(t, "testuser")

	foundUser, err := testStore.GetUserByUsername(context.Background(), "testuser")

	require.NoError(t, err)
	require.NotNil(t, foundUser)

	require.Equal(t, "testuser", foundUser.Username)
	require.NotEmpty(t, foundUser.PasswordHash)
	require.NotZero(t, foundUser.ID)
	require.NotZero(t, foundUser.CreatedAt)

	nonExistentUser, err := testStore.GetUserByUsername(context.Background(), "nonexistent")
	require.NoError(t, err)
	require.Nil(t, nonExistentUser)
}

func TestCreateUser_Duplicate(t *testing.T) {
	createRandomUser(t, "duplicate_user")

	_, err := testStore.CreateUser(context.Background(), "duplicate_user", "hash")
	require.ErrorIs(t, err, ErrUserExists)
}

func TestPing(t *testing.T) {
	require.NoError(t, testStore.Ping(context.Background()))
}

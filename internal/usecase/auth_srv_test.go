package usecase

import (
	"context"
	"testing"

	"moviehub/internal/dto/request"
	"moviehub/pkg/apperrors"
	"moviehub/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	repo := newTestRepository()
	service := NewAuthService(repo, testJWTConfig(), testLogger())

	registered, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", registered.User.Username)
	assert.NotEmpty(t, registered.Token, "register issues a token")

	// The stored hash is not the raw password
	stored, err := repo.User.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct-horse-battery", stored.PasswordHash)

	loggedIn, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loggedIn.Token)

	// The token carries the registered identity
	userID, err := utils.VerifyToken(loggedIn.Token, testJWTConfig().JWT)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, userID.String())
}

func TestRegisterDuplicate(t *testing.T) {
	repo := newTestRepository()
	service := NewAuthService(repo, testJWTConfig(), testLogger())

	req := &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse-battery",
	}

	_, err := service.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)

	// Same username under a different email is also rejected
	_, err = service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice2@example.com",
		Password: "correct-horse-battery",
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUser)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := newTestRepository()
	service := NewAuthService(repo, testJWTConfig(), testLogger())

	_, err := service.Register(context.Background(), &request.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error kind
	_, err = service.Login(context.Background(), &request.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse-battery",
	})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

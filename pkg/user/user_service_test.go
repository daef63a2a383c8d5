package user

import (
	"Planta-Backend/domain"
	"Planta-Backend/internal/localstore"
	"Planta-Backend/pkg/jwt"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) (UserService, UserRepository, jwt.JWTService) {
	t.Helper()
	store, err := localstore.New(t.TempDir())
	require.NoError(t, err)
	repo := NewFileRepository(store)
	jwtService := jwt.NewJWTService()
	return NewUserService(repo, jwtService), repo, jwtService
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "Linh",
		Email:    "linh@example.com",
		Password: "s3cret-password",
	}
}

func TestRegister(t *testing.T) {
	service, repo, _ := newTestUserService(t)

	res, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "linh@example.com", res.Email)

	stored, err := repo.GetUserByEmail(context.Background(), "linh@example.com")
	require.NoError(t, err)
	// Passwords are stored hashed.
	assert.NotEqual(t, "s3cret-password", stored.Password)
	assert.False(t, stored.IsVerified)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _, _ := newTestUserService(t)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginRequiresVerifiedEmail(t *testing.T) {
	service, repo, _ := newTestUserService(t)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "linh@example.com",
		Password: "s3cret-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)

	stored, err := repo.GetUserByEmail(context.Background(), "linh@example.com")
	require.NoError(t, err)
	stored.IsVerified = true
	require.NoError(t, repo.UpdateUser(context.Background(), stored))

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "linh@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service, _, _ := newTestUserService(t)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "linh@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyEmail(t *testing.T) {
	service, _, jwtService := newTestUserService(t)

	created, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	token, err := jwtService.GenerateTokenVerifyEmail(map[string]any{"email": "linh@example.com"}, time.Hour)
	require.NoError(t, err)

	require.NoError(t, service.VerifyEmail(context.Background(), token))

	me, err := service.GetMe(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, me.IsVerified)
}

func TestVerifyEmailRejectsGarbageToken(t *testing.T) {
	service, _, _ := newTestUserService(t)

	err := service.VerifyEmail(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

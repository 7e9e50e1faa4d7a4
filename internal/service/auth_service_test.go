package service

import (
	"context"
	"testing"
	"time"

	"educonexa_backend/internal/config"
	"educonexa_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(f *fixture) *AuthService {
	return NewAuthService(f.users, &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	})
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{Name: "Ana", Email: "Ana@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	require.NotNil(t, u.Profile)

	_, err = svc.Register(ctx, RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	logged, err := svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)

	_, err = svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestCurrentUserCollapsesFailures(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{Name: "Ben", Email: "ben@example.com", Password: "secret1"})
	require.NoError(t, err)

	token, err := svc.IssueSession(u.ID)
	require.NoError(t, err)
	current := svc.CurrentUser(ctx, token)
	require.NotNil(t, current)
	assert.Equal(t, u.ID, current.ID)

	assert.Nil(t, svc.CurrentUser(ctx, ""))
	assert.Nil(t, svc.CurrentUser(ctx, "garbage"))

	other, err := util.GenerateSessionToken(u.ID, "another-secret", time.Hour)
	require.NoError(t, err)
	assert.Nil(t, svc.CurrentUser(ctx, other))

	ghost, err := svc.IssueSession("deleted-user")
	require.NoError(t, err)
	assert.Nil(t, svc.CurrentUser(ctx, ghost))
}

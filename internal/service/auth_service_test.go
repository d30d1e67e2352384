package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/ops-console/internal/config"
	"github.com/spec-kit/ops-console/internal/domain"
	apperrors "github.com/spec-kit/ops-console/pkg/util"
)

func testAuthConfig() config.Config {
	return config.Config{Auth: config.AuthConfig{
		JWTSecret:         "test-secret",
		SessionTTLMinutes: 30,
		BcryptCost:        bcrypt.MinCost,
	}}
}

func seedOperator(t *testing.T, repo *fakeOperatorRepo, username, password string, role domain.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &domain.Operator{
		Username:     username,
		DisplayName:  username,
		PasswordHash: string(hash),
		Role:         role,
	}))
}

func TestLogin(t *testing.T) {
	repo := &fakeOperatorRepo{}
	seedOperator(t, repo, "mgr1", "s3cret", domain.RoleManager)
	store := newFakeSessionStore()
	svc := NewAuthService(testAuthConfig(), AuthDependencies{OperatorRepo: repo, SessionStore: store})

	sess, token, expiresAt, err := svc.Login(context.Background(), "mgr1", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "mgr1", sess.Identity)
	assert.Equal(t, domain.RoleManager, sess.Role)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	stored, err := store.Load(context.Background(), sess.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "a fresh session is persisted on login")
	assert.Equal(t, sess.Identity, stored.Identity)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, claims.SessionID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	repo := &fakeOperatorRepo{}
	seedOperator(t, repo, "mgr1", "s3cret", domain.RoleManager)
	svc := NewAuthService(testAuthConfig(), AuthDependencies{OperatorRepo: repo, SessionStore: newFakeSessionStore()})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "unknown username", username: "ghost", password: "s3cret"},
		{name: "wrong password", username: "mgr1", password: "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := svc.Login(context.Background(), tt.username, tt.password)
			require.Error(t, err)
			domainErr := apperrors.ToDomainError(err)
			// both paths produce the same code so callers cannot probe usernames
			assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
		})
	}
}

func TestLogoutDeletesSession(t *testing.T) {
	repo := &fakeOperatorRepo{}
	seedOperator(t, repo, "mgr1", "s3cret", domain.RoleManager)
	store := newFakeSessionStore()
	svc := NewAuthService(testAuthConfig(), AuthDependencies{OperatorRepo: repo, SessionStore: store})

	sess, _, _, err := svc.Login(context.Background(), "mgr1", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.ID))
	gone, err := store.Load(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestRegisterOperator(t *testing.T) {
	repo := &fakeOperatorRepo{}
	svc := NewAuthService(testAuthConfig(), AuthDependencies{OperatorRepo: repo, SessionStore: newFakeSessionStore()})

	operator, err := svc.RegisterOperator(context.Background(), "agent1", "Agent One", "s3cret", domain.RoleAgent)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", operator.PasswordHash, "the secret is never stored in clear")

	_, _, _, err = svc.Login(context.Background(), "agent1", "s3cret")
	require.NoError(t, err)
}

func TestRegisterOperatorDuplicateUsername(t *testing.T) {
	repo := &fakeOperatorRepo{}
	seedOperator(t, repo, "agent1", "s3cret", domain.RoleAgent)
	svc := NewAuthService(testAuthConfig(), AuthDependencies{OperatorRepo: repo, SessionStore: newFakeSessionStore()})

	_, err := svc.RegisterOperator(context.Background(), "agent1", "Agent One", "s3cret", domain.RoleAgent)
	require.Error(t, err)
}

func TestRegisterOperatorUnknownRole(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), AuthDependencies{OperatorRepo: &fakeOperatorRepo{}, SessionStore: newFakeSessionStore()})
	_, err := svc.RegisterOperator(context.Background(), "agent1", "Agent One", "s3cret", domain.Role("owner"))
	require.Error(t, err)
}

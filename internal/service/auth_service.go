package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/ops-console/internal/auth"
	"github.com/spec-kit/ops-console/internal/config"
	"github.com/spec-kit/ops-console/internal/domain"
	"github.com/spec-kit/ops-console/internal/repository"
	"github.com/spec-kit/ops-console/internal/session"
	apperrors "github.com/spec-kit/ops-console/pkg/util"
)

// AuthService coordinates login and logout flows. Credentials are verified
// against bcrypt hashes; an unknown username and a wrong password are not
// distinguished in the result.
type AuthService struct {
	operators  repository.OperatorRepository
	sessions   session.Store
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	OperatorRepo repository.OperatorRepository
	SessionStore session.Store
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		operators:  deps.OperatorRepo,
		sessions:   deps.SessionStore,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login verifies credentials, stores a fresh Session and issues its token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, string, time.Time, error) {
	operator, err := s.operators.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(operator.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	sess := domain.Session{
		ID:          uuid.NewString(),
		Identity:    operator.Username,
		Role:        operator.Role,
		DisplayName: operator.DisplayName,
	}
	if err := s.sessions.Save(ctx, sess, s.tokenMgr.SessionTTL()); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(sess)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return &sess, token, exp, nil
}

// Logout deletes the stored session. The bearer token becomes useless once
// its session is gone.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// RegisterOperator creates a console account with a hashed secret.
func (s *AuthService) RegisterOperator(ctx context.Context, username, displayName, password string, role domain.Role) (*domain.Operator, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	if _, err := s.operators.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewValidationError("username already taken", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	operator := &domain.Operator{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.operators.Create(ctx, operator); err != nil {
		return nil, err
	}
	return operator, nil
}

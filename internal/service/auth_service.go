package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/investor-insight/internal/auth"
	"github.com/spec-kit/investor-insight/internal/config"
	"github.com/spec-kit/investor-insight/internal/domain"
	"github.com/spec-kit/investor-insight/internal/repository"
	apperrors "github.com/spec-kit/investor-insight/pkg/util"
)

// TokenIssuer abstracts credential issuance so flows can be tested without
// a real signing key.
type TokenIssuer interface {
	Issue(userID string, email string, role domain.Role) (string, time.Time, error)
}

// AuthService coordinates sign-in and sign-up flows. The store is injected;
// the service owns the token codec and the bcrypt cost.
type AuthService struct {
	users      repository.UserRepository
	codec      *auth.TokenCodec
	issuer     TokenIssuer
	bcryptCost int
	logger     *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service. Issuer
// defaults to the service's own codec when nil.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Logger   *zap.Logger
	Issuer   TokenIssuer
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	codec := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	issuer := deps.Issuer
	if issuer == nil {
		issuer = codec
	}
	return &AuthService{
		users:      deps.UserRepo,
		codec:      codec,
		issuer:     issuer,
		bcryptCost: cfg.Auth.BcryptCost,
		logger:     deps.Logger,
	}
}

// SignIn authenticates an account by email and password. A missing account
// and a wrong password produce the same error so callers cannot enumerate
// registered emails.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// SignUp creates a new account and issues its first credential. If anything
// fails after the row was inserted, the row is deleted again so no orphaned
// account survives a partial sign-up.
func (s *AuthService) SignUp(ctx context.Context, email, password string, role domain.Role) (*domain.User, string, time.Time, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, "", time.Time{}, apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewDuplicateUser()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", time.Time{}, apperrors.NewDuplicateUser()
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			s.logger.Error("compensating delete failed",
				zap.String("user_id", user.ID),
				zap.Error(delErr),
			)
		}
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Codec exposes the token codec for middleware and handler wiring.
func (s *AuthService) Codec() *auth.TokenCodec {
	return s.codec
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/litreview/internal/auth"
	"github.com/spec-kit/litreview/internal/config"
	"github.com/spec-kit/litreview/internal/domain"
	"github.com/spec-kit/litreview/internal/repository"
	"github.com/spec-kit/litreview/internal/validation"
	"github.com/spec-kit/litreview/pkg/util/errorutil"
)

const msgInvalidCredentials = "invalid username or password"

// Session is the result of a successful signup or login.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	blocklist  auth.TokenBlocklist
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo  repository.UserRepository
	Blocklist auth.TokenBlocklist
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		blocklist:  deps.Blocklist,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates an account and signs the new user in.
func (s *AuthService) Register(ctx context.Context, creds domain.Credentials) (*Session, error) {
	creds, err := validation.Credentials(creds)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByUsername(ctx, creds.Username); err == nil {
		return nil, usernameTaken(creds.Username)
	} else if !errorutil.IsNoRows(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(creds.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Username: creds.Username, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, usernameTaken(creds.Username)
		}
		return nil, err
	}
	return s.session(user)
}

// Login authenticates a user by username and password. Unknown usernames
// and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return nil, errorutil.NewUnauthorized(msgInvalidCredentials)
	}

	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errorutil.IsNoRows(err) {
			auth.BurnCompare(creds.Password)
			return nil, errorutil.NewUnauthorized(msgInvalidCredentials)
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, creds.Password); err != nil {
		return nil, errorutil.NewUnauthorized(msgInvalidCredentials)
	}
	return s.session(user)
}

// Logout revokes the presented token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || s.blocklist == nil {
		return nil
	}
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.blocklist.Revoke(ctx, claims.ID, expiresAt)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) session(user *domain.User) (*Session, error) {
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token, ExpiresAt: exp}, nil
}

func usernameTaken(username string) error {
	return errorutil.NewConflict("username already taken", map[string]any{"username": username})
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"request-portal/internal/data/entity"
	"request-portal/internal/data/repository"
	"request-portal/internal/dto/request"
	"request-portal/internal/dto/response"
	"request-portal/pkg/token"
	"request-portal/pkg/utils"

	"go.uber.org/zap"
)

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	Issue(identity token.Identity) (string, time.Time, error)
	Parse(tokenString string) (*token.Claims, error)
}

type AuthService interface {
	// Authenticate returns nil, nil when the credentials do not match.
	Authenticate(ctx context.Context, username, password string) (*token.Identity, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.SessionResponse, error)
	// GetSession returns nil, nil when tokenString is empty or not valid.
	GetSession(ctx context.Context, tokenString string) (*response.SessionResponse, error)
	// SafeRedirect picks the post sign-in destination.
	SafeRedirect(callbackURL string) string
	SignInErrorPage() string
}

type authService struct {
	userRepo  repository.UserRepository
	tokens    TokenIssuer
	config    *utils.Config
	log       *zap.Logger
	dummyHash string
}

func NewAuthService(
	userRepo repository.UserRepository,
	tokens TokenIssuer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	// Compared against when the username is unknown so both failure paths cost the same.
	dummyHash, _ := utils.HashPassword("request-portal-timing-guard")

	return &authService{
		userRepo:  userRepo,
		tokens:    tokens,
		config:    config,
		log:       log.With(zap.String("service", "auth")),
		dummyHash: dummyHash,
	}
}

func (s *authService) Authenticate(ctx context.Context, username, password string) (*token.Identity, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("look up user for sign-in: %w", err)
	}

	if user == nil {
		utils.CheckPasswordHash(password, s.dummyHash)
		s.log.Info("Sign-in rejected")
		return nil, nil
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Info("Sign-in rejected", zap.Int64("user_id", user.ID))
		return nil, nil
	}

	identity := identityFromUser(user)
	return &identity, nil
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.SessionResponse, error) {
	// 1. Validasi
	if err := validate(req); err != nil {
		return nil, err
	}

	// 2. Check credentials
	identity, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		s.log.Error("Sign-in lookup failed", zap.Error(err))
		return nil, err
	}
	if identity == nil {
		return nil, ErrInvalidCredentials
	}

	// 3. Issue session token
	signed, expiresAt, err := s.tokens.Issue(*identity)
	if err != nil {
		s.log.Error("Failed to issue session token", zap.Error(err), zap.Int64("user_id", identity.ID))
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	s.log.Info("User signed in",
		zap.Int64("user_id", identity.ID),
		zap.String("role", identity.Role.Name))

	return &response.SessionResponse{
		User:      *identity,
		Token:     signed,
		ExpiresAt: expiresAt,
		Redirect:  s.SafeRedirect(req.CallbackURL),
	}, nil
}

func (s *authService) GetSession(ctx context.Context, tokenString string) (*response.SessionResponse, error) {
	if tokenString == "" {
		return nil, nil
	}

	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		s.log.Debug("Session token rejected", zap.Error(err))
		return nil, nil
	}

	// Renewal re-reads the user so a deleted account loses its session and a
	// role change takes effect on the next lookup.
	user, err := s.userRepo.FindByID(ctx, claims.ID)
	if err != nil {
		s.log.Error("Failed to load session user", zap.Error(err), zap.Int64("user_id", claims.ID))
		return nil, fmt.Errorf("load session user %d: %w", claims.ID, err)
	}
	if user == nil {
		s.log.Info("Session user no longer exists", zap.Int64("user_id", claims.ID))
		return nil, nil
	}

	identity := identityFromUser(user)
	renewed, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		s.log.Error("Failed to renew session token", zap.Error(err), zap.Int64("user_id", claims.ID))
		return nil, fmt.Errorf("renew session token: %w", err)
	}

	return &response.SessionResponse{
		User:      identity,
		Token:     renewed,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authService) SafeRedirect(callbackURL string) string {
	return utils.SafeRedirect(callbackURL, s.config.App.BaseURL, s.config.Auth.DefaultRedirect)
}

func (s *authService) SignInErrorPage() string {
	return s.config.Auth.SignInPage + "?error=CredentialsSignin"
}

// ==================== HELPER METHODS ====================

func identityFromUser(user *entity.User) token.Identity {
	identity := token.Identity{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     token.Role{Permissions: []string{}},
	}
	if user.Role != nil {
		identity.Role.Name = string(user.Role.Name)
		if user.Role.Permissions != nil {
			identity.Role.Permissions = user.Role.Permissions
		}
	}
	return identity
}

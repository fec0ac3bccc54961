package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/loja/backend/internal/domain/identity"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/infrastructure/auth"
	"github.com/loja/backend/internal/infrastructure/logger"
	"github.com/loja/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// LoginRecorder counts login outcomes
type LoginRecorder interface {
	RecordLogin(ctx context.Context, success bool)
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	hasher     identity.PasswordHasher
	jwtService *auth.JWTService
	recorder   LoginRecorder
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service. recorder may be nil.
func NewAuthService(
	userRepo identity.UserRepository,
	hasher identity.PasswordHasher,
	jwtService *auth.JWTService,
	recorder LoginRecorder,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		recorder:   recorder,
		logger:     logger,
	}
}

// Login checks the email and password against the stored hash and issues a
// token for the account's email.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (pair *auth.TokenPair, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", "login",
		attribute.String("auth.username", req.Username))
	defer func() {
		telemetry.EndSpan(span, err)
		s.record(ctx, err == nil)
	}()

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" || req.Senha == "" {
		return nil, identity.ErrMalformedRequest
	}

	log := logger.WithLogger(ctx, s.logger)
	log.Info("Login attempt",
		zap.String("username", req.Username),
		zap.String("email", shared.NormalizeEmail(req.Email)))

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			log.Warn("User not found during login", zap.String("email", req.Email))
			return nil, identity.ErrInvalidCredentials
		}
		log.Error("Failed to load user during login", zap.Error(err))
		return nil, err
	}

	if !user.VerifyPassword(req.Senha, s.hasher) {
		log.Warn("Invalid password attempt",
			zap.String("username", req.Username),
			zap.String("user_id", user.ID.String()))
		return nil, identity.ErrInvalidCredentials
	}

	pair, err = s.jwtService.IssueToken(user.Email)
	if err != nil {
		log.Error("Failed to issue token", zap.Error(err))
		return nil, err
	}

	log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return pair, nil
}

// Authorize builds the probe response for a verified email
func (s *AuthService) Authorize(email string) AccessResponse {
	return AccessResponse{Email: email, Message: "Acesso autorizado"}
}

// WhoAmI builds the authenticated-user probe response
func (s *AuthService) WhoAmI(email string) AccessResponse {
	return AccessResponse{Email: email, Message: "Usuário autenticado: " + email}
}

func (s *AuthService) record(ctx context.Context, success bool) {
	if s.recorder != nil {
		s.recorder.RecordLogin(ctx, success)
	}
}

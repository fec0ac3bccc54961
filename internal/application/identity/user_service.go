package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/identity"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// ErrEmailTaken is returned when registering or renaming to an email in use
var ErrEmailTaken = shared.NewDomainError(shared.ErrAlreadyExists.Code, "Email is already registered")

// UserService handles user management
type UserService struct {
	userRepo       identity.UserRepository
	hasher         identity.PasswordHasher
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, hasher identity.PasswordHasher, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// SetEventPublisher sets the publisher for user events
func (s *UserService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new user with a hashed password
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	user, err := identity.NewUser(req.Nome, req.Email, req.Senha, s.hasher)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	logger.WithLogger(ctx, s.logger).Info("User registered", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))
	if err := shared.PublishAndClear(ctx, s.eventPublisher, user); err != nil {
		logger.WithLogger(ctx, s.logger).Warn("Failed to publish user events", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users
func (s *UserService) List(ctx context.Context, filter UserListFilter) ([]UserResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir, filter.Search)

	users, err := s.userRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, total, nil
}

// Update replaces a user's profile and, when given, the password
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	if req.ID != nil && *req.ID != id {
		return nil, shared.ErrIDMismatch
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if shared.NormalizeEmail(req.Email) != user.Email {
		other, err := s.userRepo.FindByEmail(ctx, req.Email)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, ErrEmailTaken
		case err != nil && !errors.Is(err, shared.ErrNotFound):
			return nil, err
		}
	}

	if err := user.UpdateProfile(req.Nome, req.Email); err != nil {
		return nil, err
	}
	if req.Senha != "" {
		if err := user.SetPassword(req.Senha, s.hasher); err != nil {
			return nil, err
		}
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Delete deletes a user
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/loja/backend/internal/domain/identity"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/loja/backend/internal/infrastructure/auth"
	"github.com/loja/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testSecret = "test-secret-key-at-least-32-chars-long"

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                testSecret,
		AccessTokenExpiration: time.Hour,
		Issuer:                "loja-test",
	})
}

func newTestHasher() *auth.BcryptHasher {
	return auth.NewBcryptHasher(4)
}

func newTestUser(t *testing.T, hasher identity.PasswordHasher) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Ana", "ana@loja.com", "senha1234", hasher)
	require.NoError(t, err)
	user.ClearDomainEvents()
	return user
}

func setupAuthService(t *testing.T) (*AuthService, *MockUserRepository, *MockLoginRecorder, *observer.ObservedLogs) {
	t.Helper()
	userRepo := new(MockUserRepository)
	recorder := new(MockLoginRecorder)
	core, logs := observer.New(zapcore.InfoLevel)
	service := NewAuthService(userRepo, newTestHasher(), newTestJWTService(), recorder, zap.New(core))
	return service, userRepo, recorder, logs
}

func TestAuthService_Login_Success(t *testing.T) {
	service, userRepo, recorder, _ := setupAuthService(t)
	ctx := context.Background()
	user := newTestUser(t, newTestHasher())

	userRepo.On("FindByEmail", mock.Anything, "ana@loja.com").Return(user, nil)
	recorder.On("RecordLogin", mock.Anything, true).Return()

	pair, err := service.Login(ctx, LoginRequest{Username: "ana", Email: "ana@loja.com", Senha: "senha1234"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.WithinDuration(t, time.Now().Add(time.Hour), pair.ExpiresAt, 5*time.Second)

	email, err := newTestJWTService().VerifyToken(pair.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@loja.com", email)
	recorder.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, userRepo, recorder, logs := setupAuthService(t)
	user := newTestUser(t, newTestHasher())

	userRepo.On("FindByEmail", mock.Anything, "ana@loja.com").Return(user, nil)
	recorder.On("RecordLogin", mock.Anything, false).Return()

	pair, err := service.Login(context.Background(), LoginRequest{Username: "ana", Email: "ana@loja.com", Senha: "1029"})

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	assert.Equal(t, 1, logs.FilterMessage("Invalid password attempt").Len())
	recorder.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, userRepo, recorder, _ := setupAuthService(t)

	userRepo.On("FindByEmail", mock.Anything, "ghost@loja.com").Return(nil, shared.ErrNotFound)
	recorder.On("RecordLogin", mock.Anything, false).Return()

	_, err := service.Login(context.Background(), LoginRequest{Username: "ghost", Email: "ghost@loja.com", Senha: "senha1234"})

	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		req  LoginRequest
	}{
		{"missing username", LoginRequest{Email: "ana@loja.com", Senha: "senha1234"}},
		{"missing email", LoginRequest{Username: "ana", Senha: "senha1234"}},
		{"missing senha", LoginRequest{Username: "ana", Email: "ana@loja.com"}},
		{"blank username", LoginRequest{Username: "  ", Email: "ana@loja.com", Senha: "senha1234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, recorder, _ := setupAuthService(t)
			recorder.On("RecordLogin", mock.Anything, false).Return()

			_, err := service.Login(context.Background(), tt.req)

			assert.ErrorIs(t, err, identity.ErrMalformedRequest)
			userRepo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login_StorageError(t *testing.T) {
	service, userRepo, recorder, logs := setupAuthService(t)

	userRepo.On("FindByEmail", mock.Anything, "ana@loja.com").Return(nil, errors.New("find user: connection refused"))
	recorder.On("RecordLogin", mock.Anything, false).Return()

	_, err := service.Login(context.Background(), LoginRequest{Username: "ana", Email: "ana@loja.com", Senha: "senha1234"})

	assert.EqualError(t, err, "find user: connection refused")
	assert.False(t, errors.Is(err, identity.ErrInvalidCredentials))
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestAuthService_Login_NilRecorder(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewAuthService(userRepo, newTestHasher(), newTestJWTService(), nil, nil)
	user := newTestUser(t, newTestHasher())
	userRepo.On("FindByEmail", mock.Anything, "ana@loja.com").Return(user, nil)

	_, err := service.Login(context.Background(), LoginRequest{Username: "ana", Email: "ana@loja.com", Senha: "senha1234"})
	assert.NoError(t, err)
}

func TestAuthService_ProbeResponses(t *testing.T) {
	service, _, _, _ := setupAuthService(t)

	assert.Equal(t, AccessResponse{Email: "ana@loja.com", Message: "Acesso autorizado"}, service.Authorize("ana@loja.com"))
	assert.Equal(t, "Usuário autenticado: ana@loja.com", service.WhoAmI("ana@loja.com").Message)
}

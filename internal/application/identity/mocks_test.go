package identity

import (
	"context"

	"github.com/loja/backend/internal/domain/identity"
	"github.com/loja/backend/tests/testutil"
	"github.com/stretchr/testify/mock"
)

type MockEventPublisher = testutil.MockEventPublisher

// MockUserRepository adds the email lookups to the generic store mock.
type MockUserRepository struct {
	testutil.MockRepository[identity.User]
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.MethodCalled("FindByEmail", ctx, email)
	user, _ := args.Get(0).(*identity.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.MethodCalled("ExistsByEmail", ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockLoginRecorder struct {
	mock.Mock
}

func (m *MockLoginRecorder) RecordLogin(ctx context.Context, success bool) {
	m.Called(ctx, success)
}

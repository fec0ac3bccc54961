package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a testify mock for any aggregate store: it satisfies
// shared.Repository[T] plus ExistsByID, which covers the product, client
// and supplier repositories. Method names are passed explicitly because
// testify cannot always recover them from generic frames.
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.MethodCalled("FindByID", ctx, id)
	entity, _ := args.Get(0).(*T)
	return entity, args.Error(1)
}

func (m *MockRepository[T]) FindAll(ctx context.Context, filter shared.Filter) ([]T, error) {
	args := m.MethodCalled("FindAll", ctx, filter)
	items, _ := args.Get(0).([]T)
	return items, args.Error(1)
}

func (m *MockRepository[T]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.MethodCalled("Count", ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository[T]) Save(ctx context.Context, entity *T) error {
	return m.MethodCalled("Save", ctx, entity).Error(0)
}

func (m *MockRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.MethodCalled("Delete", ctx, id).Error(0)
}

func (m *MockRepository[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.MethodCalled("ExistsByID", ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockEventPublisher expects Publish with the events as one slice argument.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	return m.Called(ctx, events).Error(0)
}

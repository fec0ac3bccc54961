package identity

import (
	"github.com/google/uuid"
	"github.com/loja/backend/internal/domain/shared"
)

// Aggregate type constant for User
const AggregateTypeUser = "User"

// EventTypeUserRegistered is the event type published when a user is created
const EventTypeUserRegistered = "UserRegistered"

// UserRegisteredEvent is published when a user is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(user *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, user.ID),
		UserID:          user.ID,
		Email:           user.Email,
	}
}

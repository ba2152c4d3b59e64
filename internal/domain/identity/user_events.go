package identity

import (
	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeUser = "User"

// Event type constants
const (
	EventTypeUserCreated = "UserCreated"
	EventTypeUserDeleted = "UserDeleted"
)

// UserCreatedEvent is published when a new user is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Role   Role      `json:"role"`
}

// NewUserCreatedEvent creates a new UserCreatedEvent
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, AggregateTypeUser, user.ID, user.TenantID),
		UserID:          user.ID,
		Email:           user.Email,
		Role:            user.Role,
	}
}

// UserDeletedEvent is published when a user is deleted
type UserDeletedEvent struct {
	shared.BaseDomainEvent
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// NewUserDeletedEvent creates a new UserDeletedEvent
func NewUserDeletedEvent(user *User) *UserDeletedEvent {
	return &UserDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserDeleted, AggregateTypeUser, user.ID, user.TenantID),
		UserID:          user.ID,
		Email:           user.Email,
	}
}

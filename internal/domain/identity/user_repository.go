package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/mdm/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email within a tenant
	FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*User, error)

	// FindAllForTenant finds all users for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]User, error)

	// CountForTenant counts users for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete deletes a user. Pending domain events on the aggregate are
	// written to the outbox in the same transaction.
	Delete(ctx context.Context, user *User) error

	// ExistsByEmail checks if a user with the given email exists in the tenant
	ExistsByEmail(ctx context.Context, tenantID uuid.UUID, email string) (bool, error)
}

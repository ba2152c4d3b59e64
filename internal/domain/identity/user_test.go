package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates active user", func(t *testing.T) {
		user, err := NewUser(tenantID, "Alice@Example.com", "Alice", "s3cret-pass", RoleEditor)
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, RoleEditor, user.Role)
		assert.True(t, user.Active)
		assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

		events := user.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeUserCreated, events[0].EventType())
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser(tenantID, "not-an-email", "Alice", "s3cret-pass", RoleViewer)
		require.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser(tenantID, "a@b.co", "Alice", "s3cret-pass", Role("owner"))
		require.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser(tenantID, "a@b.co", "Alice", "short", RoleViewer)
		require.Error(t, err)
	})
}

func TestUserVerifyPassword(t *testing.T) {
	user, err := NewUser(uuid.New(), "a@b.co", "Alice", "s3cret-pass", RoleViewer)
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("s3cret-pass"))
	assert.False(t, user.VerifyPassword("wrong-pass"))

	require.NoError(t, user.SetPassword("new-s3cret-pass"))
	assert.True(t, user.VerifyPassword("new-s3cret-pass"))
	assert.False(t, user.VerifyPassword("s3cret-pass"))
}

func TestUserRoles(t *testing.T) {
	tests := []struct {
		role     Role
		isAdmin  bool
		canWrite bool
	}{
		{RoleAdmin, true, true},
		{RoleEditor, false, true},
		{RoleViewer, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			user, err := NewUser(uuid.New(), "a@b.co", "Alice", "s3cret-pass", tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.isAdmin, user.IsAdmin())
			assert.Equal(t, tt.canWrite, user.CanWrite())
		})
	}
}

func TestUserActivation(t *testing.T) {
	user, err := NewUser(uuid.New(), "a@b.co", "Alice", "s3cret-pass", RoleViewer)
	require.NoError(t, err)

	user.Deactivate()
	assert.False(t, user.Active)

	v := user.GetVersion()
	user.Deactivate()
	assert.Equal(t, v, user.GetVersion())

	user.Activate()
	assert.True(t, user.Active)
}

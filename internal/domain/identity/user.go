package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mdm/backend/internal/domain/shared"
)

// Role represents the permission level of a user
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// User represents an account that can sign in to the service
type User struct {
	shared.TenantAggregateRoot
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_tenant_email,priority:2"`
	Name         string     `gorm:"type:varchar(200);not null"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'viewer'"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Active       bool       `gorm:"not null;default:true"`
	LastLoginAt  *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new active user
func NewUser(tenantID uuid.UUID, email, name, password string, role Role) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "User name cannot be empty")
	}
	if !IsValidRole(role) {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Email:               strings.ToLower(strings.TrimSpace(email)),
		Name:                name,
		Role:                role,
		PasswordHash:        hash,
		Active:              true,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))

	return user, nil
}

// Update updates the user's name and role
func (u *User) Update(name string, role Role) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "User name cannot be empty")
	}
	if !IsValidRole(role) {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role: "+string(role))
	}

	u.Name = name
	u.Role = role
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetEmail changes the user's email. Callers must re-check uniqueness.
func (u *User) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	u.Email = strings.ToLower(strings.TrimSpace(email))
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// SetPassword sets a new password
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RecordLogin stamps a successful sign-in
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Activate re-enables a deactivated user
func (u *User) Activate() {
	if u.Active {
		return
	}
	u.Active = true
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// Deactivate disables the user without deleting the row
func (u *User) Deactivate() {
	if !u.Active {
		return
	}
	u.Active = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// IsAdmin reports whether the user may perform administrative mutations
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanWrite reports whether the user may mutate master data
func (u *User) CanWrite() bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor
}

// IsValidRole reports whether the role is a known value
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	default:
		return false
	}
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 255 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 255 characters")
	}
	if !emailPattern.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Email format is invalid")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mdm/backend/internal/domain/identity"
	"github.com/mdm/backend/internal/domain/shared"
)

// UserService handles user management operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// Create creates a new user
func (s *UserService) Create(ctx context.Context, tenantID uuid.UUID, req CreateUserRequest) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, tenantID, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
	}

	user, err := identity.NewUser(tenantID, email, req.Name, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := ToUserResponse(user)
	return &resp, nil
}

// Get returns a single user
func (s *UserService) Get(ctx context.Context, tenantID, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Update applies a partial update to a user
func (s *UserService) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, tenantID, email)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
			}
			if err := user.SetEmail(email); err != nil {
				return nil, err
			}
		}
	}

	name := user.Name
	role := user.Role
	if req.Name != nil {
		name = *req.Name
	}
	if req.Role != nil {
		role = identity.Role(*req.Role)
	}
	if req.Name != nil || req.Role != nil {
		if err := user.Update(name, role); err != nil {
			return nil, err
		}
	}

	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if req.Active != nil {
		if *req.Active {
			user.Activate()
		} else {
			user.Deactivate()
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Delete removes a user. A deletion event is recorded for auditing.
func (s *UserService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return err
	}

	user.AddDomainEvent(identity.NewUserDeletedEvent(user))

	if err := s.userRepo.Delete(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}

// List returns a paginated user listing
func (s *UserService) List(ctx context.Context, tenantID uuid.UUID, filter UserListFilter) (*shared.Paginated[UserResponse], error) {
	f := shared.Filter{
		Page:    filter.Page,
		Limit:   filter.Limit,
		Search:  filter.Search,
		SortBy:  filter.SortBy,
		SortDir: filter.SortDir,
		Filters: map[string]any{},
	}
	if f.SortBy == "" {
		f.SortBy = "email"
		f.SortDir = "asc"
	}
	f.Normalize()

	if filter.Role != "" {
		f.Filters["role"] = filter.Role
	}

	users, err := s.userRepo.FindAllForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.CountForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	page := shared.NewPaginated(responses, total, f.Page, f.Limit)
	return &page, nil
}

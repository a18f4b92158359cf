package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
)

type UserCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UserUpdateInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
	Active   *bool
}

// UserService manages a tenant's staff accounts. Every operation takes the
// effective tenant scope; SUPERADMIN rows are invisible here even when the
// super-admin is impersonating a tenant.
type UserService struct {
	repo      repository.Repository
	admission *AdmissionService
}

func NewUserService(repo repository.Repository, admission *AdmissionService) *UserService {
	return &UserService{
		repo:      repo,
		admission: admission,
	}
}

// Create adds a staff account, gated by the plan's seat limit over active
// users.
func (s *UserService) Create(ctx context.Context, scope domain.TenantScope, input UserCreateInput) (*domain.User, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	if !domain.IsAssignableRole(input.Role) {
		return nil, ErrInvalidRole
	}

	if err := s.admission.CheckUserCreate(ctx, tenantID); err != nil {
		return nil, err
	}

	exists, err := s.repo.User().EmailExists(ctx, tenantID, input.Email, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordHashCost)
	if err != nil {
		return nil, err
	}

	return s.repo.User().Create(ctx, &domain.User{
		TenantID:     &tenantID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.Role(input.Role),
		Active:       true,
	})
}

func (s *UserService) Get(ctx context.Context, scope domain.TenantScope, id string) (*domain.User, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}
	return s.getScoped(ctx, tenantID, id)
}

func (s *UserService) List(ctx context.Context, scope domain.TenantScope) ([]domain.User, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}
	return s.repo.User().List(ctx, tenantID)
}

func (s *UserService) Update(ctx context.Context, scope domain.TenantScope, id string, input UserUpdateInput) (*domain.User, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	user, err := s.getScoped(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.repo.User().EmailExists(ctx, tenantID, *input.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailAlreadyExists
		}
		user.Email = *input.Email
	}

	if input.Role != nil {
		if !domain.IsAssignableRole(*input.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = domain.Role(*input.Role)
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), passwordHashCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.repo.User().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a staff account. Deleting your own account is refused so
// a tenant cannot lock itself out of its last admin.
func (s *UserService) Delete(ctx context.Context, scope domain.TenantScope, id, actingUserID string) error {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return err
	}

	if id == actingUserID {
		return ErrSelfDelete
	}

	if _, err := s.getScoped(ctx, tenantID, id); err != nil {
		return err
	}

	return s.repo.User().Delete(ctx, tenantID, id)
}

func (s *UserService) getScoped(ctx context.Context, tenantID, id string) (*domain.User, error) {
	user, err := s.repo.User().GetScoped(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

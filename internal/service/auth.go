package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
	"github.com/oficinapro/workshop-api/internal/utils"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

const passwordHashCost = 12

// AuthClaims is the signed token payload. Claims identify the user only;
// role and tenant are reloaded from storage on every request, so a stale
// token cannot outlive a deactivation or role change.
type AuthClaims struct {
	Email    string `json:"email"`
	Role     string `json:"papel"`
	TenantID string `json:"empresa_id,omitempty"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	TenantName string
	Phone      string
	UserName   string
	Email      string
	Password   string
}

type AuthService struct {
	repo          repository.Repository
	subscriptions *SubscriptionService
	config        *config.Config
	logger        *logger.Logger
	now           func() time.Time
}

func NewAuthService(repo repository.Repository, subscriptions *SubscriptionService, config *config.Config, logger *logger.Logger) *AuthService {
	return &AuthService{
		repo:          repo,
		subscriptions: subscriptions,
		config:        config,
		logger:        logger,
		now:           time.Now,
	}
}

// Login verifies credentials against the live user record and issues a
// signed token. Every failure collapses into ErrInvalidCredentials so the
// response does not reveal whether the email exists or the account is
// deactivated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.User().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !user.Active {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// A user of a suspended or cancelled workshop is locked out at login,
	// not just at the per-request guard. Fail closed on lookup errors.
	if user.TenantID != nil {
		tenant, err := s.repo.Tenant().GetByID(ctx, *user.TenantID)
		if err != nil || tenant.Status != domain.TenantStatusActive {
			return nil, "", ErrForbidden
		}
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Register provisions a new workshop: the tenant, its first ADMIN user and
// the trial subscription. The slug is derived from the workshop name and
// suffixed when taken.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.Tenant, *domain.User, string, error) {
	if _, err := s.repo.User().FindByEmail(ctx, input.Email); err == nil {
		return nil, nil, "", ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, "", err
	}

	slug, err := s.availableSlug(ctx, input.TenantName)
	if err != nil {
		return nil, nil, "", err
	}

	tenant, err := s.repo.Tenant().Create(ctx, &domain.Tenant{
		Slug:   slug,
		Name:   input.TenantName,
		Status: domain.TenantStatusActive,
		Phone:  input.Phone,
		Email:  input.Email,
	})
	if err != nil {
		return nil, nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordHashCost)
	if err != nil {
		return nil, nil, "", err
	}

	user, err := s.repo.User().Create(ctx, &domain.User{
		TenantID:     &tenant.ID,
		Name:         input.UserName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		return nil, nil, "", err
	}

	if _, err := s.subscriptions.StartTrial(ctx, tenant.ID); err != nil {
		return nil, nil, "", err
	}

	s.logger.Infof("Registered workshop %s (%s)", tenant.Name, tenant.Slug)

	token, err := s.issueToken(user)
	if err != nil {
		return nil, nil, "", err
	}

	return tenant, user, token, nil
}

// Profile reloads the authenticated user.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		Email:    user.Email,
		Role:     string(user.Role),
		TenantID: user.HomeTenantID(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.JWTExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecretKey))
}

func (s *AuthService) availableSlug(ctx context.Context, name string) (string, error) {
	base := utils.Slugify(name)
	if base == "" {
		base = "oficina"
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := s.repo.Tenant().SlugExists(ctx, slug, "")
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		if i > 50 {
			return "", ErrSlugInUse
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/mocks"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo         *mocks.Repository
	mockUser         *mocks.UserRepository
	mockTenant       *mocks.TenantRepository
	mockSubscription *mocks.SubscriptionRepository
	mockPlan         *mocks.PlanRepository
	service          *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUser = new(mocks.UserRepository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockSubscription = new(mocks.SubscriptionRepository)
	s.mockPlan = new(mocks.PlanRepository)

	s.mockRepo.On("User").Return(s.mockUser)
	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Subscription").Return(s.mockSubscription)
	s.mockRepo.On("Plan").Return(s.mockPlan)

	cfg := &config.Config{
		JWTSecretKey:       "test-secret",
		JWTExpirationHours: 24,
		TrialDays:          domain.TrialDays,
	}
	appLogger := logger.NewLogger("test")
	subscriptions := NewSubscriptionService(s.mockRepo, appLogger, cfg.TrialDays)
	s.service = NewAuthService(s.mockRepo, subscriptions, cfg, appLogger)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) activeUser(password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)

	tenantID := "tenant1"
	return &domain.User{
		ID:           "user1",
		TenantID:     &tenantID,
		Email:        "dono@oficina.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
	}
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	// Arrange
	ctx := context.Background()
	user := s.activeUser("senha-forte")
	s.mockUser.On("FindByEmail", ctx, user.Email).Return(user, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").
		Return(&domain.Tenant{ID: "tenant1", Status: domain.TenantStatusActive}, nil)

	// Act
	got, token, err := s.service.Login(ctx, user.Email, "senha-forte")

	// Assert
	s.NoError(err)
	s.Equal(user.ID, got.ID)
	s.NotEmpty(token)

	claims := &AuthClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	s.NoError(err)
	s.Equal(user.ID, claims.Subject)
	s.Equal("tenant1", claims.TenantID)
	s.Equal(string(domain.RoleAdmin), claims.Role)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("FindByEmail", ctx, "ninguem@oficina.com").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, _, err := s.service.Login(ctx, "ninguem@oficina.com", "senha")

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	// Arrange
	ctx := context.Background()
	user := s.activeUser("senha-forte")
	s.mockUser.On("FindByEmail", ctx, user.Email).Return(user, nil)

	// Act
	_, _, err := s.service.Login(ctx, user.Email, "senha-errada")

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_DeactivatedAccount() {
	// Deactivation must look exactly like a bad password from the outside.
	// Arrange
	ctx := context.Background()
	user := s.activeUser("senha-forte")
	user.Active = false
	s.mockUser.On("FindByEmail", ctx, user.Email).Return(user, nil)

	// Act
	_, _, err := s.service.Login(ctx, user.Email, "senha-forte")

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_SuspendedWorkshop() {
	// Arrange
	ctx := context.Background()
	user := s.activeUser("senha-forte")
	s.mockUser.On("FindByEmail", ctx, user.Email).Return(user, nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").
		Return(&domain.Tenant{ID: "tenant1", Status: domain.TenantStatusSuspended}, nil)

	// Act
	_, _, err := s.service.Login(ctx, user.Email, "senha-forte")

	// Assert
	s.ErrorIs(err, ErrForbidden)
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	// Arrange
	ctx := context.Background()
	input := RegisterInput{
		TenantName: "Oficina do Zé",
		Phone:      "11999990000",
		UserName:   "José Santos",
		Email:      "ze@oficina.com",
		Password:   "senha-forte",
	}

	s.mockUser.On("FindByEmail", ctx, input.Email).Return(nil, gorm.ErrRecordNotFound)
	s.mockTenant.On("SlugExists", ctx, "oficina-do-ze", "").Return(false, nil)

	var createdTenant *domain.Tenant
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Run(func(args mock.Arguments) {
			createdTenant = args.Get(1).(*domain.Tenant)
		}).
		Return(&domain.Tenant{ID: "tenant1", Slug: "oficina-do-ze", Name: input.TenantName}, nil)

	var createdUser *domain.User
	s.mockUser.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			createdUser = args.Get(1).(*domain.User)
		}).
		Return(s.activeUser(input.Password), nil)

	s.mockPlan.On("GetBySlug", ctx, "trial").Return(&domain.Plan{ID: "plan-trial"}, nil)
	s.mockSubscription.On("Create", ctx, mock.AnythingOfType("*domain.Subscription")).
		Return(&domain.Subscription{ID: "sub1"}, nil)

	// Act
	tenant, user, token, err := s.service.Register(ctx, input)

	// Assert
	s.NoError(err)
	s.NotNil(tenant)
	s.NotNil(user)
	s.NotEmpty(token)

	s.Require().NotNil(createdTenant)
	s.Equal("oficina-do-ze", createdTenant.Slug)
	s.Equal(domain.TenantStatusActive, createdTenant.Status)

	s.Require().NotNil(createdUser)
	s.Equal(domain.RoleAdmin, createdUser.Role)
	s.Equal("tenant1", *createdUser.TenantID)

	s.mockSubscription.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestRegister_SlugTakenGetsSuffix() {
	// Arrange
	ctx := context.Background()
	input := RegisterInput{
		TenantName: "Oficina do Zé",
		UserName:   "José Santos",
		Email:      "ze@oficina.com",
		Password:   "senha-forte",
	}

	s.mockUser.On("FindByEmail", ctx, input.Email).Return(nil, gorm.ErrRecordNotFound)
	s.mockTenant.On("SlugExists", ctx, "oficina-do-ze", "").Return(true, nil)
	s.mockTenant.On("SlugExists", ctx, "oficina-do-ze-2", "").Return(false, nil)

	var createdTenant *domain.Tenant
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Run(func(args mock.Arguments) {
			createdTenant = args.Get(1).(*domain.Tenant)
		}).
		Return(&domain.Tenant{ID: "tenant2", Slug: "oficina-do-ze-2"}, nil)
	s.mockUser.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Return(s.activeUser(input.Password), nil)
	s.mockPlan.On("GetBySlug", ctx, "trial").Return(&domain.Plan{ID: "plan-trial"}, nil)
	s.mockSubscription.On("Create", ctx, mock.AnythingOfType("*domain.Subscription")).
		Return(&domain.Subscription{ID: "sub1"}, nil)

	// Act
	_, _, _, err := s.service.Register(ctx, input)

	// Assert
	s.NoError(err)
	s.Require().NotNil(createdTenant)
	s.Equal("oficina-do-ze-2", createdTenant.Slug)
}

func (s *AuthServiceTestSuite) TestRegister_EmailAlreadyRegistered() {
	// Arrange
	ctx := context.Background()
	input := RegisterInput{TenantName: "Oficina do Zé", Email: "ze@oficina.com", Password: "senha"}
	s.mockUser.On("FindByEmail", ctx, input.Email).Return(s.activeUser("x"), nil)

	// Act
	_, _, _, err := s.service.Register(ctx, input)

	// Assert
	s.ErrorIs(err, ErrEmailAlreadyExists)
	s.mockTenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

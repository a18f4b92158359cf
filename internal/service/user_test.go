package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo         *mocks.Repository
	mockUser         *mocks.UserRepository
	mockSubscription *mocks.SubscriptionRepository
	service          *UserService
	scope            domain.TenantScope
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUser = new(mocks.UserRepository)
	s.mockSubscription = new(mocks.SubscriptionRepository)

	s.mockRepo.On("User").Return(s.mockUser)
	s.mockRepo.On("Subscription").Return(s.mockSubscription)

	s.service = NewUserService(s.mockRepo, NewAdmissionService(s.mockRepo))
	s.scope = domain.OperatingAsTenant("tenant1")
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	input := UserCreateInput{
		Name:     "Maria Silva",
		Email:    "maria@oficina.com",
		Password: "senha-forte",
		Role:     string(domain.RoleAttendant),
	}

	var created *domain.User
	s.mockSubscription.On("Current", ctx, "tenant1").Return(nil, nil)
	s.mockUser.On("EmailExists", ctx, "tenant1", input.Email, "").Return(false, nil)
	s.mockUser.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		}).
		Return(&domain.User{ID: "user1"}, nil)

	// Act
	_, err := s.service.Create(ctx, s.scope, input)

	// Assert
	s.NoError(err)
	s.Require().NotNil(created)
	s.Equal("tenant1", *created.TenantID)
	s.Equal(domain.RoleAttendant, created.Role)
	s.True(created.Active)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte(input.Password)))
	s.mockUser.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreate_SeatLimitReached() {
	// Arrange
	ctx := context.Background()
	maxUsers := 2
	sub := &domain.Subscription{
		Status: domain.SubscriptionStatusActive,
		Plan:   &domain.Plan{MaxUsers: &maxUsers},
	}
	s.mockSubscription.On("Current", ctx, "tenant1").Return(sub, nil)
	s.mockUser.On("CountActive", ctx, "tenant1").Return(int64(2), nil)

	// Act
	user, err := s.service.Create(ctx, s.scope, UserCreateInput{
		Name:     "Maria Silva",
		Email:    "maria@oficina.com",
		Password: "senha-forte",
		Role:     string(domain.RoleAttendant),
	})

	// Assert
	s.ErrorIs(err, ErrForbidden)
	s.Nil(user)
	s.mockUser.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestCreate_InvalidRole() {
	// Act
	user, err := s.service.Create(context.Background(), s.scope, UserCreateInput{
		Name:     "Maria Silva",
		Email:    "maria@oficina.com",
		Password: "senha-forte",
		Role:     "SUPERADMIN",
	})

	// Assert
	s.ErrorIs(err, ErrInvalidRole)
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestCreate_EmailTaken() {
	// Arrange
	ctx := context.Background()
	s.mockSubscription.On("Current", ctx, "tenant1").Return(nil, nil)
	s.mockUser.On("EmailExists", ctx, "tenant1", "maria@oficina.com", "").Return(true, nil)

	// Act
	user, err := s.service.Create(ctx, s.scope, UserCreateInput{
		Name:     "Maria Silva",
		Email:    "maria@oficina.com",
		Password: "senha-forte",
		Role:     string(domain.RoleAttendant),
	})

	// Assert
	s.ErrorIs(err, ErrEmailAlreadyExists)
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestCreate_RequiresTenant() {
	// A SUPERADMIN with no tenant selected cannot create staff accounts.
	// Act
	user, err := s.service.Create(context.Background(), domain.OperatingWithoutTenant(), UserCreateInput{
		Name:     "Maria Silva",
		Email:    "maria@oficina.com",
		Password: "senha-forte",
		Role:     string(domain.RoleAttendant),
	})

	// Assert
	s.ErrorIs(err, ErrForbidden)
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestGet_NotFoundInTenant() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("GetScoped", ctx, "tenant1", "user-other").Return(nil, gorm.ErrRecordNotFound)

	// Act
	user, err := s.service.Get(ctx, s.scope, "user-other")

	// Assert
	s.ErrorIs(err, ErrUserNotFound)
	s.Nil(user)
}

func (s *UserServiceTestSuite) TestDelete_Self() {
	// Act
	err := s.service.Delete(context.Background(), s.scope, "user1", "user1")

	// Assert
	s.ErrorIs(err, ErrSelfDelete)
	s.mockUser.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDelete_Success() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("GetScoped", ctx, "tenant1", "user2").Return(&domain.User{ID: "user2"}, nil)
	s.mockUser.On("Delete", ctx, "tenant1", "user2").Return(nil)

	// Act
	err := s.service.Delete(ctx, s.scope, "user2", "user1")

	// Assert
	s.NoError(err)
	s.mockUser.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestUpdate_EmailChangeRechecked() {
	// Arrange
	ctx := context.Background()
	existing := &domain.User{ID: "user2", Email: "old@oficina.com", Role: domain.RoleAttendant}
	newEmail := "novo@oficina.com"

	s.mockUser.On("GetScoped", ctx, "tenant1", "user2").Return(existing, nil)
	s.mockUser.On("EmailExists", ctx, "tenant1", newEmail, "user2").Return(true, nil)

	// Act
	user, err := s.service.Update(ctx, s.scope, "user2", UserUpdateInput{Email: &newEmail})

	// Assert
	s.ErrorIs(err, ErrEmailAlreadyExists)
	s.Nil(user)
	s.mockUser.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

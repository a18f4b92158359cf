package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/mocks"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockRepo         *mocks.Repository
	mockSubscription *mocks.SubscriptionRepository
	mockPlan         *mocks.PlanRepository
	service          *SubscriptionService
	now              time.Time
}

func (s *SubscriptionServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockSubscription = new(mocks.SubscriptionRepository)
	s.mockPlan = new(mocks.PlanRepository)

	s.mockRepo.On("Subscription").Return(s.mockSubscription)
	s.mockRepo.On("Plan").Return(s.mockPlan)

	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.service = NewSubscriptionService(s.mockRepo, logger.NewLogger("test"), domain.TrialDays)
	s.service.now = func() time.Time { return s.now }
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}

func (s *SubscriptionServiceTestSuite) TestStartTrial_EndsFourteenDaysOut() {
	// Arrange
	ctx := context.Background()
	trialPlan := &domain.Plan{ID: "plan-trial", Slug: "trial"}

	var created *domain.Subscription
	s.mockPlan.On("GetBySlug", ctx, "trial").Return(trialPlan, nil)
	s.mockSubscription.On("Create", ctx, mock.AnythingOfType("*domain.Subscription")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Subscription)
		}).
		Return(&domain.Subscription{ID: "sub1"}, nil)

	// Act
	_, err := s.service.StartTrial(ctx, "tenant1")

	// Assert
	s.NoError(err)
	s.Require().NotNil(created)
	s.Equal(domain.SubscriptionStatusTrial, created.Status)
	s.Equal("plan-trial", created.PlanID)
	s.Equal("tenant1", created.TenantID)
	s.Equal(s.now, created.StartsAt)
	s.Equal(s.now.AddDate(0, 0, 14), created.EndsAt)
	s.mockSubscription.AssertExpectations(s.T())
}

func (s *SubscriptionServiceTestSuite) TestStartTrial_TrialPlanMissing() {
	// Arrange
	ctx := context.Background()
	s.mockPlan.On("GetBySlug", ctx, "trial").Return(nil, gorm.ErrRecordNotFound)

	// Act
	sub, err := s.service.StartTrial(ctx, "tenant1")

	// Assert
	s.ErrorIs(err, ErrPlanNotFound)
	s.Nil(sub)
}

func (s *SubscriptionServiceTestSuite) TestRenew_ReplacesLiveSubscription() {
	// Arrange
	ctx := context.Background()
	plan := &domain.Plan{ID: "plan-pro", Slug: "pro"}

	var created *domain.Subscription
	s.mockPlan.On("GetByID", ctx, "plan-pro").Return(plan, nil)
	s.mockSubscription.On("CancelLiveAndCreate", ctx, mock.AnythingOfType("*domain.Subscription")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Subscription)
		}).
		Return(&domain.Subscription{ID: "sub2"}, nil)

	// Act
	_, err := s.service.Renew(ctx, "tenant1", "plan-pro", 3)

	// Assert
	s.NoError(err)
	s.Require().NotNil(created)
	s.Equal(domain.SubscriptionStatusActive, created.Status)
	s.Equal(s.now, created.StartsAt)
	s.Equal(s.now.AddDate(0, 3, 0), created.EndsAt)
	s.mockSubscription.AssertExpectations(s.T())
}

func (s *SubscriptionServiceTestSuite) TestRenew_RejectsZeroMonths() {
	// Act
	sub, err := s.service.Renew(context.Background(), "tenant1", "plan-pro", 0)

	// Assert
	s.ErrorIs(err, ErrInvalidPeriod)
	s.Nil(sub)
	s.mockSubscription.AssertNotCalled(s.T(), "CancelLiveAndCreate", mock.Anything, mock.Anything)
}

func (s *SubscriptionServiceTestSuite) TestRenew_UnknownPlan() {
	// Arrange
	ctx := context.Background()
	s.mockPlan.On("GetByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	// Act
	sub, err := s.service.Renew(ctx, "tenant1", "missing", 1)

	// Assert
	s.ErrorIs(err, ErrPlanNotFound)
	s.Nil(sub)
}

func (s *SubscriptionServiceTestSuite) TestCancel_Success() {
	// Arrange
	ctx := context.Background()
	existing := &domain.Subscription{ID: "sub1", Status: domain.SubscriptionStatusActive}

	s.mockSubscription.On("GetByID", ctx, "sub1").Return(existing, nil)
	s.mockSubscription.On("UpdateStatus", ctx, "sub1", domain.SubscriptionStatusCancelled).Return(nil)

	// Act
	err := s.service.Cancel(ctx, "sub1")

	// Assert
	s.NoError(err)
	s.mockSubscription.AssertExpectations(s.T())
}

func (s *SubscriptionServiceTestSuite) TestCancel_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockSubscription.On("GetByID", ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

	// Act
	err := s.service.Cancel(ctx, "missing")

	// Assert
	s.ErrorIs(err, ErrSubscriptionNotFound)
	s.mockSubscription.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SubscriptionServiceTestSuite) TestSweepExpired_ReturnsCount() {
	// Arrange
	ctx := context.Background()
	s.mockSubscription.On("ExpireLapsed", ctx, s.now).Return(int64(3), nil)

	// Act
	count, err := s.service.SweepExpired(ctx)

	// Assert
	s.NoError(err)
	s.Equal(int64(3), count)
}

func (s *SubscriptionServiceTestSuite) TestSweepExpired_NothingLapsed() {
	// Arrange
	ctx := context.Background()
	s.mockSubscription.On("ExpireLapsed", ctx, s.now).Return(int64(0), nil)

	// Act
	count, err := s.service.SweepExpired(ctx)

	// Assert
	s.NoError(err)
	s.Zero(count)
}

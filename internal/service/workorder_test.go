package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/mocks"
	"github.com/oficinapro/workshop-api/internal/service/pubsub"
	"github.com/oficinapro/workshop-api/internal/service/queue"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

type WorkOrderServiceTestSuite struct {
	suite.Suite
	mockRepo         *mocks.Repository
	mockWorkOrder    *mocks.WorkOrderRepository
	mockClient       *mocks.ClientRepository
	mockTenant       *mocks.TenantRepository
	mockSubscription *mocks.SubscriptionRepository
	mockEmailQueue   *mocks.EmailQueue
	mockEvents       *mocks.OrderEventPublisher
	mockStorage      *mocks.PhotoStorage
	service          *WorkOrderService
	scope            domain.TenantScope
	now              time.Time
}

func (s *WorkOrderServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockWorkOrder = new(mocks.WorkOrderRepository)
	s.mockClient = new(mocks.ClientRepository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockSubscription = new(mocks.SubscriptionRepository)
	s.mockEmailQueue = new(mocks.EmailQueue)
	s.mockEvents = new(mocks.OrderEventPublisher)
	s.mockStorage = new(mocks.PhotoStorage)

	s.mockRepo.On("WorkOrder").Return(s.mockWorkOrder)
	s.mockRepo.On("Client").Return(s.mockClient)
	s.mockRepo.On("Tenant").Return(s.mockTenant)
	s.mockRepo.On("Subscription").Return(s.mockSubscription)

	cfg := &config.Config{FrontendURL: "https://app.oficinapro.com"}
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.service = NewWorkOrderService(
		s.mockRepo,
		NewAdmissionService(s.mockRepo),
		s.mockEmailQueue,
		s.mockEvents,
		s.mockStorage,
		cfg,
		logger.NewLogger("test"),
	)
	s.service.now = func() time.Time { return s.now }
	s.scope = domain.OperatingAsTenant("tenant1")
}

func TestWorkOrderService(t *testing.T) {
	suite.Run(t, new(WorkOrderServiceTestSuite))
}

func (s *WorkOrderServiceTestSuite) activeSubscription() *domain.Subscription {
	return &domain.Subscription{
		Status: domain.SubscriptionStatusActive,
		EndsAt: s.now.AddDate(0, 1, 0),
	}
}

func (s *WorkOrderServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := context.Background()
	input := WorkOrderCreateInput{
		VehicleID: "vehicle1",
		Items: []WorkOrderItemInput{
			{ServiceName: "Troca de óleo", Price: 150},
			{ServiceName: "Alinhamento", Price: 120.50},
		},
	}

	s.mockSubscription.On("Current", ctx, "tenant1").Return(s.activeSubscription(), nil)
	s.mockClient.On("GetVehicle", ctx, "tenant1", "vehicle1").Return(&domain.Vehicle{ID: "vehicle1"}, nil)

	var created *domain.WorkOrder
	s.mockWorkOrder.On("Create", ctx, mock.AnythingOfType("*domain.WorkOrder")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.WorkOrder)
		}).
		Return(&domain.WorkOrder{
			ID:       "order1",
			TenantID: "tenant1",
			Token:    uuid.NewString(),
			Status:   domain.WorkOrderStatusWaiting,
			Total:    270.50,
		}, nil)
	s.mockWorkOrder.On("AddHistory", ctx, mock.AnythingOfType("*domain.StatusHistory")).Return(nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1", Name: "Oficina"}, nil)
	s.mockEvents.On("Publish", ctx, mock.AnythingOfType("*pubsub.OrderEvent")).Return(nil)

	// Act
	order, err := s.service.Create(ctx, s.scope, "user1", input)

	// Assert
	s.NoError(err)
	s.NotNil(order)
	s.Require().NotNil(created)
	s.Equal("tenant1", created.TenantID)
	s.Equal(domain.WorkOrderStatusWaiting, created.Status)
	s.InDelta(270.50, created.Total, 0.001)
	s.NotEmpty(created.Token)
	s.Len(created.Items, 2)
	// No client email on the stored order, so no message is enqueued.
	s.mockEmailQueue.AssertNotCalled(s.T(), "SendEmailMessage", mock.Anything, mock.Anything)
	s.mockWorkOrder.AssertExpectations(s.T())
}

func (s *WorkOrderServiceTestSuite) TestCreate_DeniedWithoutSubscription() {
	// Arrange
	ctx := context.Background()
	s.mockSubscription.On("Current", ctx, "tenant1").Return(nil, nil)

	// Act
	order, err := s.service.Create(ctx, s.scope, "user1", WorkOrderCreateInput{VehicleID: "vehicle1"})

	// Assert
	s.ErrorIs(err, ErrForbidden)
	s.Nil(order)
	s.mockWorkOrder.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *WorkOrderServiceTestSuite) TestCreate_VehicleFromAnotherTenant() {
	// Arrange
	ctx := context.Background()
	s.mockSubscription.On("Current", ctx, "tenant1").Return(s.activeSubscription(), nil)
	s.mockClient.On("GetVehicle", ctx, "tenant1", "vehicle-other").Return(nil, gorm.ErrRecordNotFound)

	// Act
	order, err := s.service.Create(ctx, s.scope, "user1", WorkOrderCreateInput{VehicleID: "vehicle-other"})

	// Assert
	s.ErrorIs(err, ErrVehicleNotFound)
	s.Nil(order)
}

func (s *WorkOrderServiceTestSuite) TestUpdateStatus_RecordsTransitionAndNotifies() {
	// Arrange
	ctx := context.Background()
	order := &domain.WorkOrder{
		ID:       "order1",
		TenantID: "tenant1",
		Status:   domain.WorkOrderStatusInProgress,
		Total:    300,
		Vehicle: &domain.Vehicle{
			Plate:  "ABC1D23",
			Client: &domain.Client{Name: "João", Email: "joao@example.com"},
		},
	}

	s.mockWorkOrder.On("GetByID", ctx, "tenant1", "order1").Return(order, nil)
	s.mockWorkOrder.On("Update", ctx, order).Return(nil)

	var history *domain.StatusHistory
	s.mockWorkOrder.On("AddHistory", ctx, mock.AnythingOfType("*domain.StatusHistory")).
		Run(func(args mock.Arguments) {
			history = args.Get(1).(*domain.StatusHistory)
		}).
		Return(nil)

	var msg queue.Message
	s.mockEmailQueue.On("SendEmailMessage", ctx, mock.AnythingOfType("queue.Message")).
		Run(func(args mock.Arguments) {
			msg = args.Get(1).(queue.Message)
		}).
		Return(nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").Return(&domain.Tenant{ID: "tenant1", Name: "Oficina"}, nil)

	var event *pubsub.OrderEvent
	s.mockEvents.On("Publish", ctx, mock.AnythingOfType("*pubsub.OrderEvent")).
		Run(func(args mock.Arguments) {
			event = args.Get(1).(*pubsub.OrderEvent)
		}).
		Return(nil)

	// Act
	updated, err := s.service.UpdateStatus(ctx, s.scope, "order1", string(domain.WorkOrderStatusFinished), "user1")

	// Assert
	s.NoError(err)
	s.Equal(domain.WorkOrderStatusFinished, updated.Status)

	s.Require().NotNil(history)
	s.Equal(domain.WorkOrderStatusInProgress, *history.From)
	s.Equal(domain.WorkOrderStatusFinished, history.To)
	s.Require().NotNil(history.UserID)
	s.Equal("user1", *history.UserID)

	s.Equal(queue.MessageTypeOrderFinished, msg.Type)
	s.Equal("joao@example.com", msg.Recipient)

	s.Require().NotNil(event)
	s.Equal("FINALIZADO", event.Status)
	s.Equal("ABC1D23", event.Plate)
}

func (s *WorkOrderServiceTestSuite) TestUpdateStatus_SameStatusIsNoOp() {
	// Arrange
	ctx := context.Background()
	order := &domain.WorkOrder{ID: "order1", TenantID: "tenant1", Status: domain.WorkOrderStatusWaiting}
	s.mockWorkOrder.On("GetByID", ctx, "tenant1", "order1").Return(order, nil)

	// Act
	updated, err := s.service.UpdateStatus(ctx, s.scope, "order1", string(domain.WorkOrderStatusWaiting), "user1")

	// Assert
	s.NoError(err)
	s.Equal(order, updated)
	s.mockWorkOrder.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *WorkOrderServiceTestSuite) TestUpdateStatus_InvalidStatus() {
	// Act
	updated, err := s.service.UpdateStatus(context.Background(), s.scope, "order1", "INEXISTENTE", "user1")

	// Assert
	s.ErrorIs(err, ErrInvalidOrderStatus)
	s.Nil(updated)
}

func (s *WorkOrderServiceTestSuite) TestPortalApprove_Success() {
	// Arrange
	ctx := context.Background()
	token := uuid.NewString()
	order := &domain.WorkOrder{
		ID:       "order1",
		TenantID: "tenant1",
		Token:    token,
		Status:   domain.WorkOrderStatusWaiting,
	}

	s.mockWorkOrder.On("GetByToken", ctx, token).Return(order, nil)
	s.mockWorkOrder.On("Update", ctx, order).Return(nil)

	var history *domain.StatusHistory
	s.mockWorkOrder.On("AddHistory", ctx, mock.AnythingOfType("*domain.StatusHistory")).
		Run(func(args mock.Arguments) {
			history = args.Get(1).(*domain.StatusHistory)
		}).
		Return(nil)

	var msg queue.Message
	s.mockEmailQueue.On("SendEmailMessage", ctx, mock.AnythingOfType("queue.Message")).
		Run(func(args mock.Arguments) {
			msg = args.Get(1).(queue.Message)
		}).
		Return(nil)
	s.mockTenant.On("GetByID", ctx, "tenant1").
		Return(&domain.Tenant{ID: "tenant1", Name: "Oficina", Email: "oficina@example.com"}, nil)
	s.mockEvents.On("Publish", ctx, mock.AnythingOfType("*pubsub.OrderEvent")).Return(nil)

	// Act
	approved, err := s.service.PortalApprove(ctx, token)

	// Assert
	s.NoError(err)
	s.Equal(domain.WorkOrderStatusApproved, approved.Status)
	s.Require().NotNil(approved.ApprovedAt)
	s.Equal(s.now, *approved.ApprovedAt)

	// The portal approval has no acting user behind it.
	s.Require().NotNil(history)
	s.Nil(history.UserID)

	// The workshop, not the client, is told about the approval.
	s.Equal(queue.MessageTypeOrderApproved, msg.Type)
	s.Equal("oficina@example.com", msg.Recipient)
}

func (s *WorkOrderServiceTestSuite) TestPortalApprove_AlreadyHandled() {
	// Arrange
	ctx := context.Background()
	token := uuid.NewString()
	order := &domain.WorkOrder{ID: "order1", TenantID: "tenant1", Token: token, Status: domain.WorkOrderStatusApproved}
	s.mockWorkOrder.On("GetByToken", ctx, token).Return(order, nil)

	// Act
	approved, err := s.service.PortalApprove(ctx, token)

	// Assert
	s.ErrorIs(err, ErrOrderAlreadyHandled)
	s.Nil(approved)
	s.mockWorkOrder.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *WorkOrderServiceTestSuite) TestPortalGet_MalformedToken() {
	// Act
	order, err := s.service.PortalGet(context.Background(), "not-a-uuid")

	// Assert
	s.ErrorIs(err, ErrInvalidPortalToken)
	s.Nil(order)
	s.mockWorkOrder.AssertNotCalled(s.T(), "GetByToken", mock.Anything, mock.Anything)
}

func (s *WorkOrderServiceTestSuite) TestAddPhoto_KeyScopedToTenantAndOrder() {
	// Arrange
	ctx := context.Background()
	order := &domain.WorkOrder{ID: "order1", TenantID: "tenant1"}
	s.mockWorkOrder.On("GetByID", ctx, "tenant1", "order1").Return(order, nil)

	var uploadedKey string
	s.mockStorage.On("Upload", ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Run(func(args mock.Arguments) {
			uploadedKey = args.Get(1).(string)
		}).
		Return("https://bucket.s3.amazonaws.com/key", nil)

	var saved *domain.Photo
	s.mockWorkOrder.On("AddPhoto", ctx, mock.AnythingOfType("*domain.Photo")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.Photo)
		}).
		Return(&domain.Photo{ID: "photo1"}, nil)

	// Act
	_, err := s.service.AddPhoto(ctx, s.scope, "order1", "ANTES", "image/jpeg", strings.NewReader("fake image"))

	// Assert
	s.NoError(err)
	s.True(strings.HasPrefix(uploadedKey, "tenant1/ordens/order1/"))
	s.Require().NotNil(saved)
	s.Equal(uploadedKey, saved.Key)
	s.Equal("ANTES", saved.Kind)
}

func (s *WorkOrderServiceTestSuite) TestRemovePhoto_DeletesFromStorageFirst() {
	// Arrange
	ctx := context.Background()
	photo := &domain.Photo{ID: "photo1", Key: "tenant1/ordens/order1/abc"}
	s.mockWorkOrder.On("GetPhoto", ctx, "tenant1", "photo1").Return(photo, nil)
	s.mockStorage.On("Delete", ctx, photo.Key).Return(nil)
	s.mockWorkOrder.On("DeletePhoto", ctx, "tenant1", "photo1").Return(nil)

	// Act
	err := s.service.RemovePhoto(ctx, s.scope, "photo1")

	// Assert
	s.NoError(err)
	s.mockStorage.AssertExpectations(s.T())
	s.mockWorkOrder.AssertExpectations(s.T())
}

func (s *WorkOrderServiceTestSuite) TestRemovePhoto_NotFound() {
	// Arrange
	ctx := context.Background()
	s.mockWorkOrder.On("GetPhoto", ctx, "tenant1", "missing").Return(nil, gorm.ErrRecordNotFound)

	// Act
	err := s.service.RemovePhoto(ctx, s.scope, "missing")

	// Assert
	s.ErrorIs(err, ErrPhotoNotFound)
	s.mockStorage.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *WorkOrderServiceTestSuite) TestList_RequiresTenant() {
	// Act
	_, _, err := s.service.List(context.Background(), domain.OperatingWithoutTenant(), domain.WorkOrderFilter{})

	// Assert
	s.ErrorIs(err, ErrForbidden)
}

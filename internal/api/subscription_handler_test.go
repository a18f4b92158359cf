package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oficinapro/workshop-api/internal/api/dto"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/service"
	"github.com/oficinapro/workshop-api/internal/utils"
)

type SubscriptionHandlerTestSuite struct {
	suite.Suite
	mockSubscriptions *MockSubscriptionService
	mockPlans         *MockPlanService
	handler           *SubscriptionHandler
}

type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) Current(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) Renew(ctx context.Context, tenantID, planID string, months int) (*domain.Subscription, error) {
	args := m.Called(ctx, tenantID, planID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) Cancel(ctx context.Context, subscriptionID string) error {
	args := m.Called(ctx, subscriptionID)
	return args.Error(0)
}

type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanService) Get(ctx context.Context, id string) (*domain.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanService) Update(ctx context.Context, id string, input service.PlanUpdateInput) (*domain.Plan, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanService) List(ctx context.Context, onlyActive bool) ([]domain.Plan, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (s *SubscriptionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockSubscriptions = new(MockSubscriptionService)
	s.mockPlans = new(MockPlanService)
	s.handler = NewSubscriptionHandler(s.mockSubscriptions, s.mockPlans)
}

func TestSubscriptionHandler(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}

// tenantContext builds a gin context carrying a resolved tenant scope, as
// the middleware chain would.
func (s *SubscriptionHandlerTestSuite) tenantContext(w *httptest.ResponseRecorder, tenantID string) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/assinatura", nil)
	c.Set(string(utils.TenantScopeKey), domain.OperatingAsTenant(tenantID))
	return c
}

func (s *SubscriptionHandlerTestSuite) TestGetCurrent_Success() {
	// Arrange
	sub := &domain.Subscription{ID: "sub1", TenantID: "tenant1", Status: domain.SubscriptionStatusActive}
	s.mockSubscriptions.On("Current", mock.Anything, "tenant1").Return(sub, nil)

	w := httptest.NewRecorder()
	c := s.tenantContext(w, "tenant1")

	// Act
	s.handler.GetCurrent(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response domain.Subscription
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("sub1", response.ID)
}

func (s *SubscriptionHandlerTestSuite) TestGetCurrent_NoneLive() {
	// Arrange
	s.mockSubscriptions.On("Current", mock.Anything, "tenant1").Return(nil, nil)

	w := httptest.NewRecorder()
	c := s.tenantContext(w, "tenant1")

	// Act
	s.handler.GetCurrent(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *SubscriptionHandlerTestSuite) TestGetCurrent_NoTenantSelected() {
	// A SUPERADMIN without a selector header has no effective tenant here.
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/assinatura", nil)
	c.Set(string(utils.TenantScopeKey), domain.OperatingWithoutTenant())

	// Act
	s.handler.GetCurrent(c)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
	s.JSONEq(`{"error": "Access denied"}`, w.Body.String())
	s.mockSubscriptions.AssertNotCalled(s.T(), "Current", mock.Anything, mock.Anything)
}

func (s *SubscriptionHandlerTestSuite) TestRenew_Success() {
	// Arrange
	req := dto.RenewSubscriptionRequest{PlanID: "plan-pro", Months: 12}
	sub := &domain.Subscription{ID: "sub2", Status: domain.SubscriptionStatusActive}
	s.mockSubscriptions.On("Renew", mock.Anything, "tenant1", "plan-pro", 12).Return(sub, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := s.tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/assinatura/trocar-plano", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Renew(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	s.mockSubscriptions.AssertExpectations(s.T())
}

func (s *SubscriptionHandlerTestSuite) TestRenew_UnknownPlan() {
	// Arrange
	req := dto.RenewSubscriptionRequest{PlanID: "missing", Months: 1}
	s.mockSubscriptions.On("Renew", mock.Anything, "tenant1", "missing", 1).
		Return(nil, service.ErrPlanNotFound)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := s.tenantContext(w, "tenant1")
	c.Request, _ = http.NewRequest(http.MethodPost, "/assinatura/trocar-plano", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.Renew(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *SubscriptionHandlerTestSuite) TestListPlans_ActiveOnly() {
	// Arrange
	plans := []domain.Plan{{ID: "plan-basic", Active: true}}
	s.mockPlans.On("List", mock.Anything, true).Return(plans, nil)

	w := httptest.NewRecorder()
	c := s.tenantContext(w, "tenant1")

	// Act
	s.handler.ListPlans(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockPlans.AssertExpectations(s.T())
}

func (s *SubscriptionHandlerTestSuite) TestCancelSubscription_Success() {
	// Arrange
	s.mockSubscriptions.On("Cancel", mock.Anything, "sub1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/admin/assinaturas/sub1", nil)
	c.Params = gin.Params{{Key: "id", Value: "sub1"}}

	// Act
	s.handler.CancelSubscription(c)
	c.Writer.WriteHeaderNow() // flush deferred status, as the engine does after the handler chain

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
	s.mockSubscriptions.AssertExpectations(s.T())
}

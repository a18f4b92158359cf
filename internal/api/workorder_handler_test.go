package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
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

type WorkOrderHandlerTestSuite struct {
	suite.Suite
	mockService *MockWorkOrderService
	handler     *WorkOrderHandler
}

type MockWorkOrderService struct {
	mock.Mock
}

func (m *MockWorkOrderService) Create(ctx context.Context, scope domain.TenantScope, userID string, input service.WorkOrderCreateInput) (*domain.WorkOrder, error) {
	args := m.Called(ctx, scope, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderService) Get(ctx context.Context, scope domain.TenantScope, id string) (*domain.WorkOrder, error) {
	args := m.Called(ctx, scope, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderService) List(ctx context.Context, scope domain.TenantScope, filter domain.WorkOrderFilter) ([]domain.WorkOrder, int64, error) {
	args := m.Called(ctx, scope, filter)
	var orders []domain.WorkOrder
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.WorkOrder)
	}
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *MockWorkOrderService) UpdateStatus(ctx context.Context, scope domain.TenantScope, id, status, userID string) (*domain.WorkOrder, error) {
	args := m.Called(ctx, scope, id, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderService) History(ctx context.Context, scope domain.TenantScope, orderID string) ([]domain.StatusHistory, error) {
	args := m.Called(ctx, scope, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StatusHistory), args.Error(1)
}

func (m *MockWorkOrderService) AddPhoto(ctx context.Context, scope domain.TenantScope, orderID, kind, contentType string, body io.Reader) (*domain.Photo, error) {
	args := m.Called(ctx, scope, orderID, kind, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Photo), args.Error(1)
}

func (m *MockWorkOrderService) RemovePhoto(ctx context.Context, scope domain.TenantScope, photoID string) error {
	args := m.Called(ctx, scope, photoID)
	return args.Error(0)
}

func (m *MockWorkOrderService) PortalGet(ctx context.Context, token string) (*domain.WorkOrder, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderService) PortalApprove(ctx context.Context, token string) (*domain.WorkOrder, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkOrder), args.Error(1)
}

func (s *WorkOrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockWorkOrderService)
	s.handler = NewWorkOrderHandler(s.mockService)
}

func TestWorkOrderHandler(t *testing.T) {
	suite.Run(t, new(WorkOrderHandlerTestSuite))
}

// authedContext builds a gin context with the scope and identity that the
// middleware chain would have resolved.
func (s *WorkOrderHandlerTestSuite) authedContext(w *httptest.ResponseRecorder) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Set(string(utils.TenantScopeKey), domain.OperatingAsTenant("tenant1"))
	c.Set(string(utils.IdentityKey), &domain.Identity{
		UserID:   "user1",
		Role:     domain.RoleAttendant,
		TenantID: "tenant1",
	})
	return c
}

func (s *WorkOrderHandlerTestSuite) TestCreateOrder_Success() {
	// Arrange
	req := dto.CreateWorkOrderRequest{
		VehicleID: "vehicle1",
		Items: []dto.WorkOrderItemRequest{
			{ServiceName: "Troca de óleo", Price: 150},
		},
	}
	order := &domain.WorkOrder{ID: "order1", TenantID: "tenant1", Status: domain.WorkOrderStatusWaiting, Total: 150}

	scope := domain.OperatingAsTenant("tenant1")
	s.mockService.On("Create", mock.Anything, scope, "user1", mock.AnythingOfType("service.WorkOrderCreateInput")).
		Return(order, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := s.authedContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/ordens", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateOrder(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response domain.WorkOrder
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("order1", response.ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *WorkOrderHandlerTestSuite) TestCreateOrder_AdmissionDenied() {
	// Arrange
	req := dto.CreateWorkOrderRequest{
		VehicleID: "vehicle1",
		Items:     []dto.WorkOrderItemRequest{{ServiceName: "Revisão", Price: 200}},
	}
	s.mockService.On("Create", mock.Anything, mock.Anything, "user1", mock.Anything).
		Return(nil, service.ErrForbidden)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c := s.authedContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/ordens", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateOrder(c)

	// Assert
	s.Equal(http.StatusForbidden, w.Code)
	s.JSONEq(`{"error": "Access denied"}`, w.Body.String())
}

func (s *WorkOrderHandlerTestSuite) TestCreateOrder_MissingItems() {
	// Arrange
	body := []byte(`{"veiculoId": "vehicle1", "itens": []}`)
	w := httptest.NewRecorder()
	c := s.authedContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/ordens", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateOrder(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *WorkOrderHandlerTestSuite) TestListOrders_PaginationDefaults() {
	// Arrange
	orders := []domain.WorkOrder{{ID: "order1"}}
	s.mockService.On("List", mock.Anything, mock.Anything, mock.AnythingOfType("domain.WorkOrderFilter")).
		Return(orders, int64(1), nil)

	w := httptest.NewRecorder()
	c := s.authedContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/ordens", nil)

	// Act
	s.handler.ListOrders(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.ListWorkOrdersResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(1, response.Page)
	s.Equal(20, response.PageSize)
	s.Equal(int64(1), response.Total)
	s.Len(response.Data, 1)
}

func (s *WorkOrderHandlerTestSuite) TestGetOrder_CrossTenantLooksLikeMissing() {
	// Arrange
	s.mockService.On("Get", mock.Anything, mock.Anything, "order-other").
		Return(nil, service.ErrOrderNotFound)

	w := httptest.NewRecorder()
	c := s.authedContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/ordens/order-other", nil)
	c.Params = gin.Params{{Key: "id", Value: "order-other"}}

	// Act
	s.handler.GetOrder(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *WorkOrderHandlerTestSuite) TestUpdateOrderStatus_Success() {
	// Arrange
	order := &domain.WorkOrder{ID: "order1", Status: domain.WorkOrderStatusInProgress}
	s.mockService.On("UpdateStatus", mock.Anything, mock.Anything, "order1", "EM_ANDAMENTO", "user1").
		Return(order, nil)

	body := []byte(`{"status": "EM_ANDAMENTO"}`)
	w := httptest.NewRecorder()
	c := s.authedContext(w)
	c.Request, _ = http.NewRequest(http.MethodPatch, "/ordens/order1/status", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "order1"}}

	// Act
	s.handler.UpdateOrderStatus(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *WorkOrderHandlerTestSuite) TestRemoveOrderPhoto_Success() {
	// Arrange
	s.mockService.On("RemovePhoto", mock.Anything, mock.Anything, "photo1").Return(nil)

	w := httptest.NewRecorder()
	c := s.authedContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/ordens/order1/fotos/photo1", nil)
	c.Params = gin.Params{{Key: "id", Value: "order1"}, {Key: "photoId", Value: "photo1"}}

	// Act
	s.handler.RemoveOrderPhoto(c)
	c.Writer.WriteHeaderNow() // flush deferred status, as the engine does after the handler chain

	// Assert
	s.Equal(http.StatusNoContent, w.Code)
	s.mockService.AssertExpectations(s.T())
}

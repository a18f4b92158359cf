package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
	"github.com/oficinapro/workshop-api/internal/service/pubsub"
	"github.com/oficinapro/workshop-api/internal/service/queue"
	"github.com/oficinapro/workshop-api/pkg/logger"
)

//go:generate mockery --name EmailQueue --output ../mocks
type EmailQueue interface {
	SendEmailMessage(ctx context.Context, msg queue.Message) error
}

//go:generate mockery --name OrderEventPublisher --output ../mocks
type OrderEventPublisher interface {
	Publish(ctx context.Context, event *pubsub.OrderEvent) error
}

//go:generate mockery --name PhotoStorage --output ../mocks
type PhotoStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

type WorkOrderItemInput struct {
	ServiceName string
	Price       float64
}

type WorkOrderCreateInput struct {
	VehicleID   string
	ScheduledAt *time.Time
	Items       []WorkOrderItemInput
}

// WorkOrderService owns the quote/service order flow: creation behind
// admission control, the status machine with its audit trail, photos and
// the public client portal.
type WorkOrderService struct {
	repo       repository.Repository
	admission  *AdmissionService
	emailQueue EmailQueue
	events     OrderEventPublisher
	storage    PhotoStorage
	config     *config.Config
	logger     *logger.Logger
	now        func() time.Time
}

func NewWorkOrderService(
	repo repository.Repository,
	admission *AdmissionService,
	emailQueue EmailQueue,
	events OrderEventPublisher,
	storage PhotoStorage,
	config *config.Config,
	logger *logger.Logger,
) *WorkOrderService {
	return &WorkOrderService{
		repo:       repo,
		admission:  admission,
		emailQueue: emailQueue,
		events:     events,
		storage:    storage,
		config:     config,
		logger:     logger,
		now:        time.Now,
	}
}

// Create opens a new work order. Admission control runs first: a tenant
// without a usable subscription cannot create orders no matter what the
// request contains.
func (s *WorkOrderService) Create(ctx context.Context, scope domain.TenantScope, userID string, input WorkOrderCreateInput) (*domain.WorkOrder, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	if err := s.admission.CheckWorkOrderCreate(ctx, tenantID); err != nil {
		return nil, err
	}

	if _, err := s.repo.Client().GetVehicle(ctx, tenantID, input.VehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	var total float64
	items := make([]domain.WorkOrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		total += item.Price
		items = append(items, domain.WorkOrderItem{
			ServiceName: item.ServiceName,
			Price:       item.Price,
		})
	}

	order, err := s.repo.WorkOrder().Create(ctx, &domain.WorkOrder{
		TenantID:    tenantID,
		VehicleID:   input.VehicleID,
		UserID:      userID,
		Token:       uuid.NewString(),
		Status:      domain.WorkOrderStatusWaiting,
		Total:       total,
		ScheduledAt: input.ScheduledAt,
		Items:       items,
	})
	if err != nil {
		return nil, err
	}

	s.recordHistory(ctx, order, nil, domain.WorkOrderStatusWaiting, &userID)
	s.notify(ctx, order, queue.MessageTypeQuoteCreated)
	s.publishEvent(ctx, order)

	return order, nil
}

func (s *WorkOrderService) Get(ctx context.Context, scope domain.TenantScope, id string) (*domain.WorkOrder, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}
	return s.getScoped(ctx, tenantID, id)
}

func (s *WorkOrderService) List(ctx context.Context, scope domain.TenantScope, filter domain.WorkOrderFilter) ([]domain.WorkOrder, int64, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, 0, err
	}
	return s.repo.WorkOrder().List(ctx, tenantID, filter)
}

// UpdateStatus moves an order through the status machine and records the
// transition. Finishing an order notifies the client by email.
func (s *WorkOrderService) UpdateStatus(ctx context.Context, scope domain.TenantScope, id, status, userID string) (*domain.WorkOrder, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	if !domain.IsValidWorkOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.getScoped(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	from := order.Status
	to := domain.WorkOrderStatus(status)
	if from == to {
		return order, nil
	}

	order.Status = to
	if to == domain.WorkOrderStatusApproved && order.ApprovedAt == nil {
		now := s.now()
		order.ApprovedAt = &now
	}

	if err := s.repo.WorkOrder().Update(ctx, order); err != nil {
		return nil, err
	}

	s.recordHistory(ctx, order, &from, to, &userID)
	if to == domain.WorkOrderStatusFinished {
		s.notify(ctx, order, queue.MessageTypeOrderFinished)
	}
	s.publishEvent(ctx, order)

	return order, nil
}

func (s *WorkOrderService) History(ctx context.Context, scope domain.TenantScope, orderID string) ([]domain.StatusHistory, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	if _, err := s.getScoped(ctx, tenantID, orderID); err != nil {
		return nil, err
	}

	return s.repo.WorkOrder().ListHistory(ctx, tenantID, orderID)
}

// AddPhoto uploads the image and links it to the order.
func (s *WorkOrderService) AddPhoto(ctx context.Context, scope domain.TenantScope, orderID, kind, contentType string, body io.Reader) (*domain.Photo, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	if _, err := s.getScoped(ctx, tenantID, orderID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/ordens/%s/%s", tenantID, orderID, uuid.NewString())
	url, err := s.storage.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}

	return s.repo.WorkOrder().AddPhoto(ctx, &domain.Photo{
		OrderID:  orderID,
		TenantID: tenantID,
		Key:      key,
		URL:      url,
		Kind:     kind,
	})
}

func (s *WorkOrderService) RemovePhoto(ctx context.Context, scope domain.TenantScope, photoID string) error {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return err
	}

	photo, err := s.repo.WorkOrder().GetPhoto(ctx, tenantID, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}

	if err := s.storage.Delete(ctx, photo.Key); err != nil {
		return err
	}

	return s.repo.WorkOrder().DeletePhoto(ctx, tenantID, photoID)
}

// PortalGet is the unauthenticated portal lookup. The token is the whole
// capability; there is no tenant scope here.
func (s *WorkOrderService) PortalGet(ctx context.Context, token string) (*domain.WorkOrder, error) {
	return s.getByToken(ctx, token)
}

// PortalApprove is the client-facing approval. Only an AGUARDANDO order can
// be approved, and the transition is recorded with no acting user.
func (s *WorkOrderService) PortalApprove(ctx context.Context, token string) (*domain.WorkOrder, error) {
	order, err := s.getByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.WorkOrderStatusWaiting {
		return nil, ErrOrderAlreadyHandled
	}

	from := order.Status
	now := s.now()
	order.Status = domain.WorkOrderStatusApproved
	order.ApprovedAt = &now

	if err := s.repo.WorkOrder().Update(ctx, order); err != nil {
		return nil, err
	}

	s.recordHistory(ctx, order, &from, domain.WorkOrderStatusApproved, nil)
	s.notify(ctx, order, queue.MessageTypeOrderApproved)
	s.publishEvent(ctx, order)

	return order, nil
}

func (s *WorkOrderService) getScoped(ctx context.Context, tenantID, id string) (*domain.WorkOrder, error) {
	order, err := s.repo.WorkOrder().GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *WorkOrderService) getByToken(ctx context.Context, token string) (*domain.WorkOrder, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, ErrInvalidPortalToken
	}

	order, err := s.repo.WorkOrder().GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *WorkOrderService) recordHistory(ctx context.Context, order *domain.WorkOrder, from *domain.WorkOrderStatus, to domain.WorkOrderStatus, userID *string) {
	entry := &domain.StatusHistory{
		OrderID:  order.ID,
		TenantID: order.TenantID,
		From:     from,
		To:       to,
		UserID:   userID,
	}
	if err := s.repo.WorkOrder().AddHistory(ctx, entry); err != nil {
		s.logger.Errorf("Failed to record status history for order %s: %v", order.ID, err)
	}
}

// notify enqueues the email event fire-and-forget. A queue outage must not
// fail the order operation.
func (s *WorkOrderService) notify(ctx context.Context, order *domain.WorkOrder, msgType queue.MessageType) {
	msg := queue.Message{
		Type:      msgType,
		TenantID:  order.TenantID,
		OrderID:   order.ID,
		Total:     order.Total,
		Timestamp: s.now(),
	}

	if order.Vehicle != nil {
		msg.Plate = order.Vehicle.Plate
		if order.Vehicle.Client != nil {
			msg.ClientName = order.Vehicle.Client.Name
			msg.Recipient = order.Vehicle.Client.Email
		}
	}

	if tenant, err := s.repo.Tenant().GetByID(ctx, order.TenantID); err == nil {
		msg.TenantName = tenant.Name
		// Approval notifications go to the workshop, not the client.
		if msgType == queue.MessageTypeOrderApproved {
			msg.Recipient = tenant.Email
		}
	}

	if msgType == queue.MessageTypeQuoteCreated {
		msg.PortalURL = fmt.Sprintf("%s/portal/%s", s.config.FrontendURL, order.Token)
	}

	if msg.Recipient == "" {
		return
	}

	if err := s.emailQueue.SendEmailMessage(ctx, msg); err != nil {
		s.logger.Errorf("Failed to enqueue %s email for order %s: %v", msgType, order.ID, err)
	}
}

func (s *WorkOrderService) publishEvent(ctx context.Context, order *domain.WorkOrder) {
	event := &pubsub.OrderEvent{
		TenantID:  order.TenantID,
		OrderID:   order.ID,
		Status:    string(order.Status),
		Total:     order.Total,
		Timestamp: s.now(),
	}
	if order.Vehicle != nil {
		event.Plate = order.Vehicle.Plate
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Errorf("Failed to publish order event for order %s: %v", order.ID, err)
	}
}

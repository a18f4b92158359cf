package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
	"github.com/oficinapro/workshop-api/internal/repository"
)

// ClientService manages a tenant's customers and their vehicles.
type ClientService struct {
	repo repository.Repository
}

func NewClientService(repo repository.Repository) *ClientService {
	return &ClientService{
		repo: repo,
	}
}

func (s *ClientService) Create(ctx context.Context, scope domain.TenantScope, client *domain.Client) (*domain.Client, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	client.TenantID = tenantID
	return s.repo.Client().Create(ctx, client)
}

func (s *ClientService) Get(ctx context.Context, scope domain.TenantScope, id string) (*domain.Client, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	client, err := s.repo.Client().GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, scope domain.TenantScope, search string) ([]domain.Client, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}
	return s.repo.Client().List(ctx, tenantID, search)
}

// AddVehicle attaches a vehicle to one of the tenant's clients. The client
// lookup is scoped, so a foreign client id reads as not found.
func (s *ClientService) AddVehicle(ctx context.Context, scope domain.TenantScope, clientID string, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Client().GetByID(ctx, tenantID, clientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	vehicle.TenantID = tenantID
	vehicle.ClientID = clientID
	return s.repo.Client().CreateVehicle(ctx, vehicle)
}

func (s *ClientService) GetVehicle(ctx context.Context, scope domain.TenantScope, id string) (*domain.Vehicle, error) {
	tenantID, err := requireTenant(scope)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.repo.Client().GetVehicle(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

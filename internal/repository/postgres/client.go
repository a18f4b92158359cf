package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
)

type ClientRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewClientRepository(writerDB, readerDB *gorm.DB) *ClientRepository {
	return &ClientRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if err := r.writerDB.WithContext(ctx).Create(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Client, error) {
	var client domain.Client
	err := tenantScoped(r.readerDB, ctx, tenantID).
		Preload("Vehicles").
		Where("id = ?", id).
		First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context, tenantID, search string) ([]domain.Client, error) {
	q := tenantScoped(r.readerDB, ctx, tenantID).Order("nome ASC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("nome ILIKE ? OR telefone ILIKE ?", like, like)
	}

	var clients []domain.Client
	if err := q.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if err := r.writerDB.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *ClientRepository) GetVehicle(ctx context.Context, tenantID, id string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := tenantScoped(r.readerDB, ctx, tenantID).
		Preload("Client").
		Where("id = ?", id).
		First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/domain"
)

type WorkOrderRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewWorkOrderRepository(writerDB, readerDB *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *WorkOrderRepository) Create(ctx context.Context, order *domain.WorkOrder) (*domain.WorkOrder, error) {
	if err := r.writerDB.WithContext(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return r.reload(ctx, order.ID)
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.WorkOrder, error) {
	var order domain.WorkOrder
	err := tenantScoped(r.readerDB, ctx, tenantID).
		Preload("Vehicle.Client").
		Preload("Items").
		Preload("Photos").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *WorkOrderRepository) GetByToken(ctx context.Context, token string) (*domain.WorkOrder, error) {
	var order domain.WorkOrder
	err := r.readerDB.WithContext(ctx).
		Preload("Vehicle.Client").
		Preload("Items").
		Preload("Photos").
		Where("token = ?", token).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *WorkOrderRepository) List(ctx context.Context, tenantID string, filter domain.WorkOrderFilter) ([]domain.WorkOrder, int64, error) {
	q := tenantScoped(r.readerDB, ctx, tenantID).Model(&domain.WorkOrder{})

	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}
	if filter.From != nil {
		q = q.Where("ordens_servico.criado_em >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("ordens_servico.criado_em <= ?", *filter.To)
	}
	if filter.ClientID != "" || filter.Search != "" {
		q = q.Joins("JOIN veiculos ON veiculos.id = ordens_servico.veiculo_id").
			Joins("JOIN clientes ON clientes.id = veiculos.cliente_id")
	}
	if filter.ClientID != "" {
		q = q.Where("veiculos.cliente_id = ?", filter.ClientID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("veiculos.placa ILIKE ? OR clientes.nome ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var orders []domain.WorkOrder
	err := q.Preload("Vehicle.Client").
		Preload("Items").
		Preload("Photos").
		Order("ordens_servico.criado_em DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *WorkOrderRepository) Update(ctx context.Context, order *domain.WorkOrder) error {
	return r.writerDB.WithContext(ctx).Save(order).Error
}

func (r *WorkOrderRepository) AddHistory(ctx context.Context, entry *domain.StatusHistory) error {
	return r.writerDB.WithContext(ctx).Create(entry).Error
}

func (r *WorkOrderRepository) ListHistory(ctx context.Context, tenantID, orderID string) ([]domain.StatusHistory, error) {
	var entries []domain.StatusHistory
	err := tenantScoped(r.readerDB, ctx, tenantID).
		Where("ordem_id = ?", orderID).
		Order("criado_em DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *WorkOrderRepository) SumFinishedTotal(ctx context.Context, tenantID string) (float64, error) {
	var total float64
	err := tenantScoped(r.readerDB, ctx, tenantID).
		Model(&domain.WorkOrder{}).
		Select("COALESCE(SUM(valor_total), 0)").
		Where("status = ?", domain.WorkOrderStatusFinished).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *WorkOrderRepository) AddPhoto(ctx context.Context, photo *domain.Photo) (*domain.Photo, error) {
	if err := r.writerDB.WithContext(ctx).Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

func (r *WorkOrderRepository) GetPhoto(ctx context.Context, tenantID, photoID string) (*domain.Photo, error) {
	var photo domain.Photo
	err := tenantScoped(r.readerDB, ctx, tenantID).
		Where("id = ?", photoID).
		First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *WorkOrderRepository) DeletePhoto(ctx context.Context, tenantID, photoID string) error {
	result := tenantScoped(r.writerDB, ctx, tenantID).
		Where("id = ?", photoID).
		Delete(&domain.Photo{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkOrderRepository) reload(ctx context.Context, id string) (*domain.WorkOrder, error) {
	var order domain.WorkOrder
	err := r.writerDB.WithContext(ctx).
		Preload("Vehicle.Client").
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

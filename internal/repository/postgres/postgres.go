package postgres

import (
	"gorm.io/gorm"

	"github.com/oficinapro/workshop-api/internal/config"
	"github.com/oficinapro/workshop-api/internal/repository"
)

type postgresRepository struct {
	writerDB         *gorm.DB
	readerDB         *gorm.DB
	tenantRepo       repository.TenantRepository
	subscriptionRepo repository.SubscriptionRepository
	planRepo         repository.PlanRepository
	userRepo         repository.UserRepository
	clientRepo       repository.ClientRepository
	workOrderRepo    repository.WorkOrderRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		writerDB:         dbConnections.Writer,
		readerDB:         dbConnections.Reader,
		tenantRepo:       NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		subscriptionRepo: NewSubscriptionRepository(dbConnections.Writer, dbConnections.Reader),
		planRepo:         NewPlanRepository(dbConnections.Writer, dbConnections.Reader),
		userRepo:         NewUserRepository(dbConnections.Writer, dbConnections.Reader),
		clientRepo:       NewClientRepository(dbConnections.Writer, dbConnections.Reader),
		workOrderRepo:    NewWorkOrderRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Subscription() repository.SubscriptionRepository {
	return r.subscriptionRepo
}

func (r *postgresRepository) Plan() repository.PlanRepository {
	return r.planRepo
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Client() repository.ClientRepository {
	return r.clientRepo
}

func (r *postgresRepository) WorkOrder() repository.WorkOrderRepository {
	return r.workOrderRepo
}

package dto

import (
	"time"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

// RegisterRequest provisions a workshop with its first admin account.
type RegisterRequest struct {
	TenantName string `json:"nomeOficina" binding:"required"`
	Phone      string `json:"telefone"`
	UserName   string `json:"nome" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"senha" binding:"required,min=6"`
}

type CreateTenantRequest struct {
	Name    string `json:"nome" binding:"required"`
	Slug    string `json:"slug"`
	Phone   string `json:"telefone"`
	Email   string `json:"email"`
	Address string `json:"endereco"`
}

type UpdateTenantRequest struct {
	Name    *string    `json:"nome"`
	Phone   *string    `json:"telefone"`
	Email   *string    `json:"email"`
	Address *string    `json:"endereco"`
	LogoURL *string    `json:"logoUrl"`
	DueDate *time.Time `json:"dataVencimento"`
}

type UpdateTenantStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreatePlanRequest struct {
	Name     string  `json:"nome" binding:"required"`
	Slug     string  `json:"slug"`
	MaxUsers *int    `json:"maxUsuarios"`
	Price    float64 `json:"preco" binding:"gte=0"`
}

type UpdatePlanRequest struct {
	Name     *string  `json:"nome"`
	MaxUsers *int     `json:"maxUsuarios"`
	Price    *float64 `json:"preco"`
	Active   *bool    `json:"ativo"`
}

type RenewSubscriptionRequest struct {
	PlanID string `json:"planoId" binding:"required"`
	Months int    `json:"meses" binding:"required,min=1"`
}

type CreateUserRequest struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required,min=6"`
	Role     string `json:"papel" binding:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"nome"`
	Email    *string `json:"email"`
	Password *string `json:"senha"`
	Role     *string `json:"papel"`
	Active   *bool   `json:"ativo"`
}

type CreateClientRequest struct {
	Name  string `json:"nome" binding:"required"`
	Phone string `json:"telefone"`
	Email string `json:"email"`
}

type CreateVehicleRequest struct {
	Plate string `json:"placa" binding:"required"`
	Model string `json:"modelo"`
	Color string `json:"cor"`
	Year  int    `json:"ano"`
}

type WorkOrderItemRequest struct {
	ServiceName string  `json:"servico" binding:"required"`
	Price       float64 `json:"valor" binding:"gte=0"`
}

type CreateWorkOrderRequest struct {
	VehicleID   string                 `json:"veiculoId" binding:"required"`
	ScheduledAt *time.Time             `json:"dataAgendada"`
	Items       []WorkOrderItemRequest `json:"itens" binding:"required,min=1,dive"`
}

type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListWorkOrdersQuery narrows the tenant-scoped order listing.
type ListWorkOrdersQuery struct {
	Status   string `form:"status"`
	ClientID string `form:"clienteId"`
	Search   string `form:"busca"`
	From     string `form:"de"`
	To       string `form:"ate"`
	Page     int    `form:"pagina"`
	PageSize int    `form:"porPagina"`
}

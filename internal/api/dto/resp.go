package dto

import (
	"time"

	"github.com/oficinapro/workshop-api/internal/domain"
)

type UserResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"empresaId,omitempty"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Role      string    `json:"papel"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"criadoEm"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

type RegisterResponse struct {
	Token  string        `json:"token"`
	Tenant domain.Tenant `json:"empresa"`
	User   UserResponse  `json:"usuario"`
}

// ListWorkOrdersResponse is a paginated order listing.
type ListWorkOrdersResponse struct {
	Data     []domain.WorkOrder `json:"dados"`
	Total    int64              `json:"total"`
	Page     int                `json:"pagina"`
	PageSize int                `json:"porPagina"`
}

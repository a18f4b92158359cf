package domain

import (
	"time"
)

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "ATIVA"
	TenantStatusSuspended TenantStatus = "SUSPENSA"
	TenantStatusCancelled TenantStatus = "CANCELADA"
)

// Tenant is one workshop account (empresa). Every business entity carries
// its id as a foreign key, stamped at creation and never reassigned.
type Tenant struct {
	ID      string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Slug    string       `gorm:"type:text;not null;unique" json:"slug"`
	Name    string       `gorm:"column:nome;type:text;not null" json:"nome"`
	Status  TenantStatus `gorm:"type:text;not null;default:'ATIVA'" json:"status"`
	LogoURL string       `gorm:"column:logo_url;type:text" json:"logoUrl,omitempty"`
	Phone   string       `gorm:"column:telefone;type:text" json:"telefone,omitempty"`
	Email   string       `gorm:"type:text" json:"email,omitempty"`
	Address string       `gorm:"column:endereco;type:text" json:"endereco,omitempty"`

	// DueDate is the legacy empresa-level expiry kept for display only.
	// Time-based gating is owned by the subscription lifecycle.
	DueDate *time.Time `gorm:"column:data_vencimento;type:timestamp with time zone" json:"dataVencimento,omitempty"`

	CreatedAt time.Time `gorm:"column:criado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"criadoEm"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"atualizadoEm"`
}

func (Tenant) TableName() string {
	return "empresas"
}

// TenantCounts carries the linked-entity counts shown on the super-admin
// empresa views and consulted before deletion.
type TenantCounts struct {
	Users      int64 `json:"usuarios"`
	Clients    int64 `json:"clientes"`
	Vehicles   int64 `json:"veiculos"`
	WorkOrders int64 `json:"ordens"`
}

package domain

import (
	"time"
)

// Client is a workshop customer. Tenant-owned.
type Client struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID string `gorm:"column:empresa_id;type:uuid;not null;index" json:"empresaId"`
	Name     string `gorm:"column:nome;type:text;not null" json:"nome"`
	Phone    string `gorm:"column:telefone;type:text" json:"telefone,omitempty"`
	Email    string `gorm:"type:text" json:"email,omitempty"`

	CreatedAt time.Time `gorm:"column:criado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"criadoEm"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"atualizadoEm"`

	Vehicles []Vehicle `gorm:"foreignKey:ClientID" json:"veiculos,omitempty"`
}

func (Client) TableName() string {
	return "clientes"
}

// Vehicle belongs to a client. Manufacturer/model names are denormalized
// strings; the catalog tables are global reference data and out of scope.
type Vehicle struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID string `gorm:"column:empresa_id;type:uuid;not null;index" json:"empresaId"`
	ClientID string `gorm:"column:cliente_id;type:uuid;not null;index" json:"clienteId"`
	Plate    string `gorm:"column:placa;type:text;not null" json:"placa"`
	Model    string `gorm:"column:modelo;type:text" json:"modelo,omitempty"`
	Color    string `gorm:"column:cor;type:text" json:"cor,omitempty"`
	Year     int    `gorm:"column:ano" json:"ano,omitempty"`

	CreatedAt time.Time `gorm:"column:criado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"criadoEm"`

	Client *Client `gorm:"foreignKey:ClientID" json:"cliente,omitempty"`
}

func (Vehicle) TableName() string {
	return "veiculos"
}

package domain

import (
	"time"
)

type WorkOrderStatus string

const (
	WorkOrderStatusWaiting    WorkOrderStatus = "AGUARDANDO"
	WorkOrderStatusApproved   WorkOrderStatus = "APROVADO"
	WorkOrderStatusScheduled  WorkOrderStatus = "AGENDADO"
	WorkOrderStatusInProgress WorkOrderStatus = "EM_ANDAMENTO"
	WorkOrderStatusFinished   WorkOrderStatus = "FINALIZADO"
)

var validWorkOrderStatuses = map[WorkOrderStatus]bool{
	WorkOrderStatusWaiting:    true,
	WorkOrderStatusApproved:   true,
	WorkOrderStatusScheduled:  true,
	WorkOrderStatusInProgress: true,
	WorkOrderStatusFinished:   true,
}

func IsValidWorkOrderStatus(status string) bool {
	return validWorkOrderStatuses[WorkOrderStatus(status)]
}

// WorkOrder is a quote/service order. The Token is the capability for the
// public client portal (fetch + approval without authentication).
type WorkOrder struct {
	ID          string          `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID    string          `gorm:"column:empresa_id;type:uuid;not null;index" json:"empresaId"`
	VehicleID   string          `gorm:"column:veiculo_id;type:uuid;not null" json:"veiculoId"`
	UserID      string          `gorm:"column:usuario_id;type:uuid;not null" json:"usuarioId"`
	Token       string          `gorm:"type:uuid;not null;unique" json:"token"`
	Status      WorkOrderStatus `gorm:"type:text;not null;default:'AGUARDANDO'" json:"status"`
	Total       float64         `gorm:"column:valor_total;type:numeric(10,2);not null" json:"valorTotal"`
	ScheduledAt *time.Time      `gorm:"column:data_agendada;type:timestamp with time zone" json:"dataAgendada,omitempty"`
	ApprovedAt  *time.Time      `gorm:"column:aprovado_em;type:timestamp with time zone" json:"aprovadoEm,omitempty"`

	CreatedAt time.Time `gorm:"column:criado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"criadoEm"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"atualizadoEm"`

	Vehicle *Vehicle        `gorm:"foreignKey:VehicleID" json:"veiculo,omitempty"`
	Items   []WorkOrderItem `gorm:"foreignKey:OrderID" json:"itens,omitempty"`
	Photos  []Photo         `gorm:"foreignKey:OrderID" json:"fotos,omitempty"`
}

func (WorkOrder) TableName() string {
	return "ordens_servico"
}

// WorkOrderItem is one quoted service line.
type WorkOrderItem struct {
	ID          string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrderID     string  `gorm:"column:ordem_id;type:uuid;not null;index" json:"ordemId"`
	ServiceName string  `gorm:"column:servico;type:text;not null" json:"servico"`
	Price       float64 `gorm:"column:valor;type:numeric(10,2);not null" json:"valor"`
}

func (WorkOrderItem) TableName() string {
	return "itens_orcamento"
}

// Photo is an S3-backed image attached to a work order.
type Photo struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrderID  string `gorm:"column:ordem_id;type:uuid;not null;index" json:"ordemId"`
	TenantID string `gorm:"column:empresa_id;type:uuid;not null;index" json:"empresaId"`
	Key      string `gorm:"column:chave;type:text;not null" json:"-"`
	URL      string `gorm:"type:text;not null" json:"url"`
	Kind     string `gorm:"column:tipo;type:text" json:"tipo,omitempty"`

	CreatedAt time.Time `gorm:"column:criado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"criadoEm"`
}

func (Photo) TableName() string {
	return "fotos"
}

// StatusHistory records every status transition of a work order. UserID is
// nil when the client approved through the portal.
type StatusHistory struct {
	ID       string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	OrderID  string           `gorm:"column:ordem_id;type:uuid;not null;index" json:"ordemId"`
	TenantID string           `gorm:"column:empresa_id;type:uuid;not null;index" json:"empresaId"`
	From     *WorkOrderStatus `gorm:"column:status_de;type:text" json:"statusDe,omitempty"`
	To       WorkOrderStatus  `gorm:"column:status_para;type:text;not null" json:"statusPara"`
	UserID   *string          `gorm:"column:usuario_id;type:uuid" json:"usuarioId,omitempty"`

	CreatedAt time.Time `gorm:"column:criado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"criadoEm"`
}

func (StatusHistory) TableName() string {
	return "historico_status"
}

// WorkOrderFilter narrows tenant-scoped listings. Search matches vehicle
// plate or client name, case-insensitive.
type WorkOrderFilter struct {
	Statuses []WorkOrderStatus
	From     *time.Time
	To       *time.Time
	ClientID string
	Search   string
	Page     int
	PageSize int
}

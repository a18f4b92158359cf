package domain

import (
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionStatusTrial     SubscriptionStatus = "TRIAL"
	SubscriptionStatusActive    SubscriptionStatus = "ATIVA"
	SubscriptionStatusExpired   SubscriptionStatus = "VENCIDA"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELADA"
)

// liveStatuses are the states that count as a current subscription. A tenant
// has at most one row in a live state; renewal cancels the old row and
// creates the new one in a single transaction.
var liveStatuses = []SubscriptionStatus{SubscriptionStatusTrial, SubscriptionStatusActive}

func LiveStatuses() []SubscriptionStatus {
	return liveStatuses
}

// Subscription is one billing period for a tenant. Rows are never deleted;
// history is retained for the super-admin dashboard.
type Subscription struct {
	ID       string             `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID string             `gorm:"column:empresa_id;type:uuid;not null;index" json:"empresaId"`
	PlanID   string             `gorm:"column:plano_id;type:uuid;not null" json:"planoId"`
	Status   SubscriptionStatus `gorm:"type:text;not null" json:"status"`
	StartsAt time.Time          `gorm:"column:data_inicio;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"dataInicio"`
	EndsAt   time.Time          `gorm:"column:data_fim;type:timestamp with time zone;not null" json:"dataFim"`

	CreatedAt time.Time `gorm:"column:criado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"criadoEm"`

	Plan *Plan `gorm:"foreignKey:PlanID" json:"plano,omitempty"`
}

func (Subscription) TableName() string {
	return "assinaturas"
}

// IsLive reports whether the row counts as current billing state.
func (s *Subscription) IsLive() bool {
	return s.Status == SubscriptionStatusTrial || s.Status == SubscriptionStatusActive
}

// IsLapsed reports whether the row's period ended before now. The daily
// sweep eventually flips lapsed rows to VENCIDA; admission control calls
// this to stay authoritative in the window before the sweep runs.
func (s *Subscription) IsLapsed(now time.Time) bool {
	return s.EndsAt.Before(now)
}

// TrialDays is the length of the trial created at tenant registration.
const TrialDays = 14

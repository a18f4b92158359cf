package domain

import (
	"time"
)

// User belongs to exactly one tenant, except SUPERADMIN accounts which are
// tenant-less. Email uniqueness is scoped per tenant, enforced at creation.
type User struct {
	ID           string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID     *string `gorm:"column:empresa_id;type:uuid;index" json:"empresaId,omitempty"`
	Name         string  `gorm:"column:nome;type:text;not null" json:"nome"`
	Email        string  `gorm:"type:text;not null" json:"email"`
	PasswordHash string  `gorm:"column:senha;type:text;not null" json:"-"`
	Role         Role    `gorm:"column:papel;type:text;not null" json:"papel"`
	Active       bool    `gorm:"column:ativo;not null;default:true" json:"ativo"`

	CreatedAt time.Time `gorm:"column:criado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"criadoEm"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"atualizadoEm"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "usuarios"
}

// HomeTenantID returns the user's home tenant id, empty for SUPERADMIN.
func (u *User) HomeTenantID() string {
	if u.TenantID == nil {
		return ""
	}
	return *u.TenantID
}

// Identity is the per-request identity established by token verification:
// the live user record reloaded from storage, never the raw token claims.
type Identity struct {
	UserID   string
	Name     string
	Email    string
	Role     Role
	TenantID string // home tenant id, empty for SUPERADMIN
}

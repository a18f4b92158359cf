package domain

import (
	"time"
)

// Plan is a named billing tier. MaxUsers nil means unlimited seats.
type Plan struct {
	ID       string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name     string  `gorm:"column:nome;type:text;not null" json:"nome"`
	Slug     string  `gorm:"type:text;not null;unique" json:"slug"`
	MaxUsers *int    `gorm:"column:max_usuarios" json:"maxUsuarios"`
	Price    float64 `gorm:"column:preco;type:numeric(10,2);not null" json:"preco"`
	Active   bool    `gorm:"column:ativo;not null;default:true" json:"ativo"`

	CreatedAt time.Time `gorm:"column:criado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"criadoEm"`
	UpdatedAt time.Time `gorm:"column:atualizado_em;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"atualizadoEm"`
}

func (Plan) TableName() string {
	return "planos"
}

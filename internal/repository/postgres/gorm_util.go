package postgres

import (
	"context"

	"gorm.io/gorm"
)

// tenantScoped narrows a query to one tenant. Every read and write on a
// tenant-owned table goes through this helper so the empresa_id filter can
// never be forgotten.
func tenantScoped(db *gorm.DB, ctx context.Context, tenantID string) *gorm.DB {
	return db.WithContext(ctx).Where("empresa_id = ?", tenantID)
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/codedjade003/photobook-server/internal/domain"
)

// MaintenanceRepository performs destructive environment operations. Only the
// dev-override path reaches it.
type MaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new maintenance repository
func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// WipeResult reports what an environment wipe truncated
type WipeResult struct {
	TruncatedTables int
	Tables          []string
}

// WipeData truncates every table in the public schema inside a single
// transaction, so a partial wipe never leaves the store inconsistent.
func (r *MaintenanceRepository) WipeData(ctx context.Context) (*WipeResult, error) {
	result := &WipeResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tables []string
		if err := tx.Raw(
			`SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename ASC`,
		).Scan(&tables).Error; err != nil {
			return err
		}

		if len(tables) > 0 {
			quoted := make([]string, 0, len(tables))
			for _, t := range tables {
				quoted = append(quoted, fmt.Sprintf(`"public".%q`, t))
			}
			stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(quoted, ", "))
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}

		result.TruncatedTables = len(tables)
		result.Tables = tables
		return nil
	})

	if err != nil {
		return nil, &domain.InternalError{Message: "failed to wipe data", Err: err}
	}
	return result, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/codedjade003/photobook-server/internal/domain"
)

// ProfileRepository bootstraps role-specific profile rows
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// EnsureProfile idempotently creates the profile row for the given role.
// Insert-if-absent: re-running never duplicates a row and never touches the
// other role's profile data.
func (r *ProfileRepository) EnsureProfile(ctx context.Context, accountID uuid.UUID, role domain.Role) error {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true})

	var err error
	if role == domain.RolePhotographer {
		err = tx.Create(&domain.PhotographerProfile{AccountID: accountID}).Error
	} else {
		err = tx.Create(&domain.ClientProfile{AccountID: accountID}).Error
	}

	if err != nil {
		return &domain.InternalError{Message: "failed to ensure profile", Err: err}
	}
	return nil
}

package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/codedjade003/photobook-server/internal/domain"
)

// AccountRepository handles account-related database operations. All email
// lookups and writes are case-insensitive: emails are normalized to lowercase
// before they touch the store.
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create inserts a new account. The unique index on email is the authority
// for signup races: a duplicate insert surfaces as a ConflictError, never as
// a stale not-found read.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.Email = strings.ToLower(account.Email)

	err := r.db.WithContext(ctx).Create(account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &domain.ConflictError{Message: "email already registered"}
		}
		return &domain.InternalError{Message: "failed to create account", Err: err}
	}
	return nil
}

// GetByEmail retrieves an account by email (case-insensitive)
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Message: "account not found"}
		}
		return nil, &domain.InternalError{Message: "failed to get account", Err: err}
	}

	return &account, nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).
		Where("id = ?", accountID).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Message: "account not found"}
		}
		return nil, &domain.InternalError{Message: "failed to get account", Err: err}
	}

	return &account, nil
}

// GetByProviderID retrieves an account by federation provider identity
func (r *AccountRepository) GetByProviderID(ctx context.Context, provider domain.Provider, providerID string) (*domain.Account, error) {
	var account domain.Account
	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_id = ?", provider, providerID).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Message: "account not found"}
		}
		return nil, &domain.InternalError{Message: "failed to get account", Err: err}
	}

	return &account, nil
}

// ExistsEmail checks if an email is already registered (case-insensitive)
func (r *AccountRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error

	if err != nil {
		return false, &domain.InternalError{Message: "failed to check email", Err: err}
	}

	return count > 0, nil
}

// SetEmailVerification stores a fresh verification code and its expiry
func (r *AccountRepository) SetEmailVerification(ctx context.Context, accountID uuid.UUID, code string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"verification_code":            code,
			"verification_code_expires_at": expiresAt,
		}).Error
}

// MarkVerified flips the verified flag and clears the verification code pair
// in a single update, so a consumed code can never be replayed.
func (r *AccountRepository) MarkVerified(ctx context.Context, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"email_verified":               true,
			"verification_code":            nil,
			"verification_code_expires_at": nil,
		}).Error
}

// SetPasswordReset stores a fresh reset code and its expiry
func (r *AccountRepository) SetPasswordReset(ctx context.Context, accountID uuid.UUID, code string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"reset_code":            code,
			"reset_code_expires_at": expiresAt,
		}).Error
}

// UpdatePassword replaces the password hash and clears the reset code pair in
// the same update
func (r *AccountRepository) UpdatePassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"password_hash":         passwordHash,
			"reset_code":            nil,
			"reset_code_expires_at": nil,
		}).Error
}

// UpdateRole persists a new role. Returns NotFoundError when the account
// vanished between authentication and update.
func (r *AccountRepository) UpdateRole(ctx context.Context, accountID uuid.UUID, role domain.Role) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Account{}).
		Where("id = ?", accountID).
		Update("role", role)

	if res.Error != nil {
		return &domain.InternalError{Message: "failed to update role", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Message: "account not found"}
	}
	return nil
}

// Delete removes an account; profile rows cascade
func (r *AccountRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", accountID).
		Delete(&domain.Account{})

	if res.Error != nil {
		return &domain.InternalError{Message: "failed to delete account", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &domain.NotFoundError{Message: "account not found"}
	}
	return nil
}

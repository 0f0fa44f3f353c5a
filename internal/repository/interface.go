package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/codedjade003/photobook-server/internal/domain"
)

// IAccountRepository defines the interface for account repository operations
type IAccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	GetByProviderID(ctx context.Context, provider domain.Provider, providerID string) (*domain.Account, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	SetEmailVerification(ctx context.Context, accountID uuid.UUID, code string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, accountID uuid.UUID) error
	SetPasswordReset(ctx context.Context, accountID uuid.UUID, code string, expiresAt time.Time) error
	UpdatePassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error
	UpdateRole(ctx context.Context, accountID uuid.UUID, role domain.Role) error
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// IProfileRepository defines the interface for profile bootstrap operations
type IProfileRepository interface {
	EnsureProfile(ctx context.Context, accountID uuid.UUID, role domain.Role) error
}

// IMaintenanceRepository defines the interface for destructive environment operations
type IMaintenanceRepository interface {
	WipeData(ctx context.Context) (*WipeResult, error)
}

// Compile-time checks to ensure structs implement their interfaces
var (
	_ IAccountRepository     = (*AccountRepository)(nil)
	_ IProfileRepository     = (*ProfileRepository)(nil)
	_ IMaintenanceRepository = (*MaintenanceRepository)(nil)
)

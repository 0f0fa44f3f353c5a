package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/codedjade003/photobook-server/internal/domain"
	"github.com/codedjade003/photobook-server/internal/repository"
)

// MockAccountRepository is a mock implementation of IAccountRepository
type MockAccountRepository struct {
	CreateFunc               func(ctx context.Context, account *domain.Account) error
	GetByEmailFunc           func(ctx context.Context, email string) (*domain.Account, error)
	GetByIDFunc              func(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	GetByProviderIDFunc      func(ctx context.Context, provider domain.Provider, providerID string) (*domain.Account, error)
	ExistsEmailFunc          func(ctx context.Context, email string) (bool, error)
	SetEmailVerificationFunc func(ctx context.Context, accountID uuid.UUID, code string, expiresAt time.Time) error
	MarkVerifiedFunc         func(ctx context.Context, accountID uuid.UUID) error
	SetPasswordResetFunc     func(ctx context.Context, accountID uuid.UUID, code string, expiresAt time.Time) error
	UpdatePasswordFunc       func(ctx context.Context, accountID uuid.UUID, passwordHash string) error
	UpdateRoleFunc           func(ctx context.Context, accountID uuid.UUID, role domain.Role) error
	DeleteFunc               func(ctx context.Context, accountID uuid.UUID) error
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockAccountRepository) GetByProviderID(ctx context.Context, provider domain.Provider, providerID string) (*domain.Account, error) {
	if m.GetByProviderIDFunc != nil {
		return m.GetByProviderIDFunc(ctx, provider, providerID)
	}
	return nil, nil
}

func (m *MockAccountRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsEmailFunc != nil {
		return m.ExistsEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockAccountRepository) SetEmailVerification(ctx context.Context, accountID uuid.UUID, code string, expiresAt time.Time) error {
	if m.SetEmailVerificationFunc != nil {
		return m.SetEmailVerificationFunc(ctx, accountID, code, expiresAt)
	}
	return nil
}

func (m *MockAccountRepository) MarkVerified(ctx context.Context, accountID uuid.UUID) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, accountID)
	}
	return nil
}

func (m *MockAccountRepository) SetPasswordReset(ctx context.Context, accountID uuid.UUID, code string, expiresAt time.Time) error {
	if m.SetPasswordResetFunc != nil {
		return m.SetPasswordResetFunc(ctx, accountID, code, expiresAt)
	}
	return nil
}

func (m *MockAccountRepository) UpdatePassword(ctx context.Context, accountID uuid.UUID, passwordHash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, accountID, passwordHash)
	}
	return nil
}

func (m *MockAccountRepository) UpdateRole(ctx context.Context, accountID uuid.UUID, role domain.Role) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, accountID, role)
	}
	return nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, accountID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, accountID)
	}
	return nil
}

// MockProfileRepository is a mock implementation of IProfileRepository
type MockProfileRepository struct {
	EnsureProfileFunc func(ctx context.Context, accountID uuid.UUID, role domain.Role) error
}

func (m *MockProfileRepository) EnsureProfile(ctx context.Context, accountID uuid.UUID, role domain.Role) error {
	if m.EnsureProfileFunc != nil {
		return m.EnsureProfileFunc(ctx, accountID, role)
	}
	return nil
}

// MockMaintenanceRepository is a mock implementation of IMaintenanceRepository
type MockMaintenanceRepository struct {
	WipeDataFunc func(ctx context.Context) (*repository.WipeResult, error)
}

func (m *MockMaintenanceRepository) WipeData(ctx context.Context) (*repository.WipeResult, error) {
	if m.WipeDataFunc != nil {
		return m.WipeDataFunc(ctx)
	}
	return &repository.WipeResult{}, nil
}

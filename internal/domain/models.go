package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the marketplace side an account belongs to.
type Role string

const (
	RoleClient       Role = "client"
	RolePhotographer Role = "photographer"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleClient || r == RolePhotographer
}

// Provider identifies how an account authenticates.
type Provider string

const (
	ProviderLocal    Provider = "local"
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
	ProviderApple    Provider = "apple"
)

// Account represents the accounts table. A password hash is present iff the
// provider is local; the verification and reset code/expiry pairs are always
// set or cleared together.
type Account struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:varchar(255)"`
	Role         Role      `gorm:"type:varchar(32);not null;default:client"`
	Provider     Provider  `gorm:"type:varchar(32);not null;default:local"`
	ProviderID   *string   `gorm:"type:varchar(255);index"`

	EmailVerified             bool `gorm:"not null;default:false"`
	VerificationCode          *string
	VerificationCodeExpiresAt *time.Time
	ResetCode                 *string
	ResetCodeExpiresAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	ClientProfile       *ClientProfile       `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
	PhotographerProfile *PhotographerProfile `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}

// ClientProfile represents the client_profiles table (one-to-one)
type ClientProfile struct {
	AccountID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	JoinedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	BookingsCount int       `gorm:"not null;default:0"`
}

// TableName specifies the table name for the ClientProfile model
func (ClientProfile) TableName() string {
	return "client_profiles"
}

// PhotographerProfile represents the photographer_profiles table (one-to-one)
type PhotographerProfile struct {
	AccountID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	BusinessName *string   `gorm:"type:varchar(255)"`
	AboutMe      *string   `gorm:"type:text"`
	GalleryCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for the PhotographerProfile model
func (PhotographerProfile) TableName() string {
	return "photographer_profiles"
}

// AccountView is the sanitized representation of an account. It carries no
// password hash and no one-time codes and is the only account shape that
// leaves the service.
type AccountView struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Role          Role
	Provider      Provider
	EmailVerified bool
	CreatedAt     time.Time
}

// View returns the sanitized egress view of the account.
func (a *Account) View() AccountView {
	return AccountView{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Role:          a.Role,
		Provider:      a.Provider,
		EmailVerified: a.EmailVerified,
		CreatedAt:     a.CreatedAt,
	}
}

// AutoMigrate runs auto migrations (dev convenience - production schemas are
// managed manually)
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Account{},
		&ClientProfile{},
		&PhotographerProfile{},
	)
}

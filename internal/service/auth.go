package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/codedjade003/photobook-server/internal/domain"
	"github.com/codedjade003/photobook-server/internal/repository"
	"github.com/codedjade003/photobook-server/internal/token"
	"github.com/codedjade003/photobook-server/internal/utils"
	"github.com/codedjade003/photobook-server/internal/worker"
)

// One-time codes are 6-digit numeric strings valid for 15 minutes.
const (
	codeLength = 6
	codeTTL    = 15 * time.Minute
)

// AuthService orchestrates the credential lifecycle: signup, login, email
// verification, password reset, role transitions and session issuance.
type AuthService struct {
	accountRepo     repository.IAccountRepository
	profileRepo     repository.IProfileRepository
	maintenanceRepo repository.IMaintenanceRepository
	hasher          *utils.PasswordHasher
	validator       *utils.Validator
	issuer          *token.Issuer
	devGuard        *DevOverrideGuard
	config          AuthServiceConfig
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	// VerificationEnabled gates the email-verification feature. Off by
	// default: accounts are created pre-verified and the verify call is a
	// no-op success.
	VerificationEnabled bool

	// NotifierEnabled controls out-of-band code delivery. When off, codes
	// are returned in-band in operation results for operator/testing use.
	NotifierEnabled bool

	EmailPool *worker.EmailWorkerPool

	// Now is the clock used for code expiry stamps and checks; tests
	// override it.
	Now func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo repository.IAccountRepository,
	profileRepo repository.IProfileRepository,
	maintenanceRepo repository.IMaintenanceRepository,
	hasher *utils.PasswordHasher,
	validator *utils.Validator,
	issuer *token.Issuer,
	devGuard *DevOverrideGuard,
	config AuthServiceConfig,
) *AuthService {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &AuthService{
		accountRepo:     accountRepo,
		profileRepo:     profileRepo,
		maintenanceRepo: maintenanceRepo,
		hasher:          hasher,
		validator:       validator,
		issuer:          issuer,
		devGuard:        devGuard,
		config:          config,
	}
}

func (s *AuthService) now() time.Time {
	return s.config.Now()
}

// dispatch enqueues an email when the notifier is enabled. Returns whether
// the code was handed to the notifier; callers return the code in-band
// otherwise. Delivery is best-effort and never rolls back the committed
// account mutation.
func (s *AuthService) dispatch(recipient, subject, body string) bool {
	if !s.config.NotifierEnabled || s.config.EmailPool == nil {
		return false
	}
	s.config.EmailPool.Enqueue(worker.EmailTask{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
	return true
}

// SignupRequest represents signup input
type SignupRequest struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// SignupResponse represents signup output. VerificationCode is populated only
// when verification is on and the notifier is disabled.
type SignupResponse struct {
	Account          domain.AccountView
	Token            string
	VerificationCode string
}

// Signup registers a local account, bootstraps its role profile and issues a
// session token. When the verification feature is on the account starts
// unverified with a pending code; the returned token is still usable before
// verification completes (deliberate product behavior, not an oversight).
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	if req.Role == "" {
		req.Role = domain.RoleClient
	}
	payload := utils.SignupPayload{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     string(req.Role),
	}
	if err := s.validator.Validate(payload); err != nil {
		return nil, &domain.ValidationError{Message: "invalid signup input"}
	}

	exists, err := s.accountRepo.ExistsEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.ConflictError{Message: "email already registered"}
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to process password", Err: err}
	}

	account := &domain.Account{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  &passwordHash,
		Role:          req.Role,
		Provider:      domain.ProviderLocal,
		EmailVerified: !s.config.VerificationEnabled,
	}

	// A losing racer on the same email observes the unique-constraint
	// violation here as a conflict, not a stale not-found.
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	resp := &SignupResponse{}

	if s.config.VerificationEnabled {
		code, err := utils.GenerateCode(codeLength)
		if err != nil {
			return nil, &domain.InternalError{Message: "failed to generate code", Err: err}
		}
		expiresAt := s.now().Add(codeTTL)
		if err := s.accountRepo.SetEmailVerification(ctx, account.ID, code, expiresAt); err != nil {
			return nil, &domain.InternalError{Message: "failed to store verification code", Err: err}
		}

		body := fmt.Sprintf("Your verification code is: %s\n\nThis code expires in 15 minutes.", code)
		if !s.dispatch(account.Email, "Verify your email", body) {
			resp.VerificationCode = code
		}
	}

	if err := s.profileRepo.EnsureProfile(ctx, account.ID, account.Role); err != nil {
		return nil, err
	}

	sessionToken, err := s.issuer.Issue(account.ID, account.Role)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to issue token", Err: err}
	}

	resp.Account = account.View()
	resp.Token = sessionToken
	return resp, nil
}

// LoginRequest represents login input
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse represents login output
type LoginResponse struct {
	Account domain.AccountView
	Token   string
}

// Login authenticates an account with email and password. Unknown email and
// wrong password return the identical error; the unverified gate fires only
// after the secret is proven.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := s.validator.ValidateEmail(req.Email); err != nil {
		return nil, &domain.ValidationError{Message: "invalid email", Field: "email"}
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, &domain.InvalidCredentialsError{}
		}
		return nil, err
	}

	if account.PasswordHash == nil || !s.hasher.Verify(*account.PasswordHash, req.Password) {
		return nil, &domain.InvalidCredentialsError{}
	}

	if s.config.VerificationEnabled && !account.EmailVerified {
		return nil, &domain.EmailNotVerifiedError{}
	}

	sessionToken, err := s.issuer.Issue(account.ID, account.Role)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to issue token", Err: err}
	}

	return &LoginResponse{
		Account: account.View(),
		Token:   sessionToken,
	}, nil
}

// VerifyEmailRequest represents email verification input
type VerifyEmailRequest struct {
	Email string
	Code  string
}

// VerifyEmailResponse represents email verification output
type VerifyEmailResponse struct {
	Account domain.AccountView
	Token   string
}

// VerifyEmail consumes a pending verification code and marks the account
// verified. With the feature globally off the call is a no-op success that
// still issues a fresh token. Verification is terminal: once verified, the
// flag never reverts through this service.
func (s *AuthService) VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*VerifyEmailResponse, error) {
	if err := s.validator.ValidateEmail(req.Email); err != nil {
		return nil, &domain.ValidationError{Message: "invalid email", Field: "email"}
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if !s.config.VerificationEnabled {
		sessionToken, err := s.issuer.Issue(account.ID, account.Role)
		if err != nil {
			return nil, &domain.InternalError{Message: "failed to issue token", Err: err}
		}
		return &VerifyEmailResponse{Account: account.View(), Token: sessionToken}, nil
	}

	if account.EmailVerified {
		return nil, &domain.AlreadyVerifiedError{}
	}

	// A code consumed by a racing verification is already cleared, so the
	// replay observes a mismatch here.
	if account.VerificationCode == nil || *account.VerificationCode != req.Code {
		return nil, &domain.InvalidCodeError{}
	}
	if account.VerificationCodeExpiresAt != nil && s.now().After(*account.VerificationCodeExpiresAt) {
		return nil, &domain.CodeExpiredError{}
	}

	if err := s.accountRepo.MarkVerified(ctx, account.ID); err != nil {
		return nil, &domain.InternalError{Message: "failed to mark verified", Err: err}
	}
	account.EmailVerified = true
	account.VerificationCode = nil
	account.VerificationCodeExpiresAt = nil

	sessionToken, err := s.issuer.Issue(account.ID, account.Role)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to issue token", Err: err}
	}

	return &VerifyEmailResponse{Account: account.View(), Token: sessionToken}, nil
}

// ResendVerificationRequest represents resend input
type ResendVerificationRequest struct {
	Email string
}

// ResendVerificationResponse represents resend output. Code is populated only
// when the notifier is disabled.
type ResendVerificationResponse struct {
	Code string
}

// ResendVerification refreshes the pending verification code and expiry for
// an unverified account and dispatches it again.
func (s *AuthService) ResendVerification(ctx context.Context, req ResendVerificationRequest) (*ResendVerificationResponse, error) {
	if err := s.validator.ValidateEmail(req.Email); err != nil {
		return nil, &domain.ValidationError{Message: "invalid email", Field: "email"}
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if account.EmailVerified {
		return nil, &domain.AlreadyVerifiedError{}
	}

	code, err := utils.GenerateCode(codeLength)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to generate code", Err: err}
	}
	expiresAt := s.now().Add(codeTTL)
	if err := s.accountRepo.SetEmailVerification(ctx, account.ID, code, expiresAt); err != nil {
		return nil, &domain.InternalError{Message: "failed to store verification code", Err: err}
	}

	resp := &ResendVerificationResponse{}
	body := fmt.Sprintf("Your verification code is: %s\n\nThis code expires in 15 minutes.", code)
	if !s.dispatch(account.Email, "Verify your email", body) {
		resp.Code = code
	}
	return resp, nil
}

// RequestPasswordResetRequest represents reset phase 1 input
type RequestPasswordResetRequest struct {
	Email string
}

// RequestPasswordResetResponse represents reset phase 1 output. Code is
// populated only when the notifier is disabled.
type RequestPasswordResetResponse struct {
	Code string
}

// RequestPasswordReset generates and stores a reset code for the account.
// The account does not need to be verified to reset its password.
func (s *AuthService) RequestPasswordReset(ctx context.Context, req RequestPasswordResetRequest) (*RequestPasswordResetResponse, error) {
	if err := s.validator.ValidateEmail(req.Email); err != nil {
		return nil, &domain.ValidationError{Message: "invalid email", Field: "email"}
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	code, err := utils.GenerateCode(codeLength)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to generate code", Err: err}
	}
	expiresAt := s.now().Add(codeTTL)
	if err := s.accountRepo.SetPasswordReset(ctx, account.ID, code, expiresAt); err != nil {
		return nil, &domain.InternalError{Message: "failed to store reset code", Err: err}
	}

	resp := &RequestPasswordResetResponse{}
	body := fmt.Sprintf("Your password reset code is: %s\n\nThis code expires in 15 minutes.", code)
	if !s.dispatch(account.Email, "Password reset code", body) {
		resp.Code = code
	}
	return resp, nil
}

// ConfirmPasswordResetRequest represents reset phase 2 input
type ConfirmPasswordResetRequest struct {
	Email       string
	Code        string
	NewPassword string
}

// ConfirmPasswordResetResponse represents reset phase 2 output
type ConfirmPasswordResetResponse struct {
	Account domain.AccountView
	Token   string
}

// ConfirmPasswordReset consumes a reset code and installs the new password.
// The code is single-use: the hash update and the code clear happen in the
// same store write, leaving no replay window. Success auto-logs-in.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, req ConfirmPasswordResetRequest) (*ConfirmPasswordResetResponse, error) {
	payload := utils.ConfirmResetPayload{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	}
	if err := s.validator.Validate(payload); err != nil {
		return nil, &domain.ValidationError{Message: "invalid reset input"}
	}

	account, err := s.accountRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if account.ResetCode == nil || *account.ResetCode != req.Code {
		return nil, &domain.InvalidCodeError{}
	}
	if account.ResetCodeExpiresAt != nil && s.now().After(*account.ResetCodeExpiresAt) {
		return nil, &domain.CodeExpiredError{}
	}

	passwordHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to process password", Err: err}
	}
	if err := s.accountRepo.UpdatePassword(ctx, account.ID, passwordHash); err != nil {
		return nil, &domain.InternalError{Message: "failed to update password", Err: err}
	}
	account.ResetCode = nil
	account.ResetCodeExpiresAt = nil

	sessionToken, err := s.issuer.Issue(account.ID, account.Role)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to issue token", Err: err}
	}

	return &ConfirmPasswordResetResponse{Account: account.View(), Token: sessionToken}, nil
}

// UpdateRoleRequest represents role update input
type UpdateRoleRequest struct {
	AccountID uuid.UUID
	Role      domain.Role
}

// UpdateRoleResponse represents role update output
type UpdateRoleResponse struct {
	Account domain.AccountView
	Token   string
}

// UpdateRole persists the new role, re-runs the profile bootstrapper for it
// and re-issues a token carrying the new role claim. Callers must adopt the
// fresh token: outstanding tokens keep the stale role claim until expiry.
func (s *AuthService) UpdateRole(ctx context.Context, req UpdateRoleRequest) (*UpdateRoleResponse, error) {
	if !req.Role.Valid() {
		return nil, &domain.ValidationError{Message: "role must be client or photographer", Field: "role"}
	}

	account, err := s.accountRepo.GetByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.UpdateRole(ctx, req.AccountID, req.Role); err != nil {
		return nil, err
	}
	account.Role = req.Role

	if err := s.profileRepo.EnsureProfile(ctx, req.AccountID, req.Role); err != nil {
		return nil, err
	}

	sessionToken, err := s.issuer.Issue(account.ID, account.Role)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to issue token", Err: err}
	}

	return &UpdateRoleResponse{Account: account.View(), Token: sessionToken}, nil
}

// FederatedLoginRequest represents a federated identity assertion already
// validated by the provider layer.
type FederatedLoginRequest struct {
	Provider   domain.Provider
	ProviderID string
	Email      string
	Name       string
}

// FederatedLoginResponse represents federated login output
type FederatedLoginResponse struct {
	Account domain.AccountView
	Token   string
}

// FederatedLogin looks up the account by provider identity, creating it on
// first login. Federated accounts carry no password hash and are considered
// verified by their provider. Email uniqueness holds across providers: a
// federated first login on a locally-registered email is a conflict.
func (s *AuthService) FederatedLogin(ctx context.Context, req FederatedLoginRequest) (*FederatedLoginResponse, error) {
	if req.ProviderID == "" {
		return nil, &domain.ValidationError{Message: "provider id is required", Field: "provider_id"}
	}
	if err := s.validator.ValidateEmail(req.Email); err != nil {
		return nil, &domain.ValidationError{Message: "invalid email", Field: "email"}
	}

	account, err := s.accountRepo.GetByProviderID(ctx, req.Provider, req.ProviderID)
	if err != nil {
		if !domain.IsNotFound(err) {
			return nil, err
		}

		providerID := req.ProviderID
		account = &domain.Account{
			Name:          req.Name,
			Email:         req.Email,
			Role:          domain.RoleClient,
			Provider:      req.Provider,
			ProviderID:    &providerID,
			EmailVerified: true,
		}
		if err := s.accountRepo.Create(ctx, account); err != nil {
			return nil, err
		}
		if err := s.profileRepo.EnsureProfile(ctx, account.ID, account.Role); err != nil {
			return nil, err
		}
	}

	sessionToken, err := s.issuer.Issue(account.ID, account.Role)
	if err != nil {
		return nil, &domain.InternalError{Message: "failed to issue token", Err: err}
	}

	return &FederatedLoginResponse{Account: account.View(), Token: sessionToken}, nil
}

package service

import "context"

// IAuthService defines the interface for the credential and session service
type IAuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	VerifyEmail(ctx context.Context, req VerifyEmailRequest) (*VerifyEmailResponse, error)
	ResendVerification(ctx context.Context, req ResendVerificationRequest) (*ResendVerificationResponse, error)
	RequestPasswordReset(ctx context.Context, req RequestPasswordResetRequest) (*RequestPasswordResetResponse, error)
	ConfirmPasswordReset(ctx context.Context, req ConfirmPasswordResetRequest) (*ConfirmPasswordResetResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (*UpdateRoleResponse, error)
	FederatedLogin(ctx context.Context, req FederatedLoginRequest) (*FederatedLoginResponse, error)
	GetCurrentAccount(ctx context.Context, req GetCurrentAccountRequest) (*GetCurrentAccountResponse, error)
	DeleteAccount(ctx context.Context, req DeleteAccountRequest) (*DeleteAccountResponse, error)
	ResetEnvironment(ctx context.Context, req ResetEnvironmentRequest) (*ResetEnvironmentResponse, error)
}

var _ IAuthService = (*AuthService)(nil)

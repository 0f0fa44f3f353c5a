package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/codedjade003/photobook-server/internal/domain"
)

// GetCurrentAccountRequest represents current-account lookup input
type GetCurrentAccountRequest struct {
	Token string
}

// GetCurrentAccountResponse represents current-account lookup output
type GetCurrentAccountResponse struct {
	Account domain.AccountView
}

// GetCurrentAccount resolves a session token to its sanitized account view.
func (s *AuthService) GetCurrentAccount(ctx context.Context, req GetCurrentAccountRequest) (*GetCurrentAccountResponse, error) {
	if req.Token == "" {
		return nil, &domain.InvalidCredentialsError{}
	}

	claims, err := s.issuer.Verify(req.Token)
	if err != nil {
		return nil, err
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return nil, &domain.InvalidCredentialsError{}
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return &GetCurrentAccountResponse{Account: account.View()}, nil
}

// DeleteAccountRequest represents account deletion input. DevSecret is the
// optional dev-override plaintext from a request header or body field.
type DeleteAccountRequest struct {
	RequesterID uuid.UUID
	TargetID    uuid.UUID
	DevSecret   string
}

// DeleteAccountResponse represents account deletion output
type DeleteAccountResponse struct {
	Message string
}

// DeleteAccount removes an account and its cascading profile rows. Authorized
// for the owner or the dev override: isOwner || isDevOverride.
func (s *AuthService) DeleteAccount(ctx context.Context, req DeleteAccountRequest) (*DeleteAccountResponse, error) {
	if req.TargetID == uuid.Nil {
		return nil, &domain.ValidationError{Message: "target account id is required", Field: "account_id"}
	}

	isOwner := req.RequesterID != uuid.Nil && req.RequesterID == req.TargetID
	if !isOwner && !s.devGuard.HasDevOverride(req.DevSecret) {
		return nil, &domain.ForbiddenError{Message: "not authorized to delete this account"}
	}

	if err := s.accountRepo.Delete(ctx, req.TargetID); err != nil {
		return nil, err
	}

	return &DeleteAccountResponse{Message: "account deleted"}, nil
}

// ResetEnvironmentRequest represents environment reset input
type ResetEnvironmentRequest struct {
	DevSecret string
}

// ResetEnvironmentResponse reports what the wipe truncated
type ResetEnvironmentResponse struct {
	TruncatedTables int
	Tables          []string
}

// ResetEnvironment wipes all data in the environment inside a single
// all-or-nothing transaction. Only the dev override authorizes it.
func (s *AuthService) ResetEnvironment(ctx context.Context, req ResetEnvironmentRequest) (*ResetEnvironmentResponse, error) {
	if !s.devGuard.HasDevOverride(req.DevSecret) {
		return nil, &domain.ForbiddenError{Message: "dev override required"}
	}

	result, err := s.maintenanceRepo.WipeData(ctx)
	if err != nil {
		return nil, err
	}

	return &ResetEnvironmentResponse{
		TruncatedTables: result.TruncatedTables,
		Tables:          result.Tables,
	}, nil
}

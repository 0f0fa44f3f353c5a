package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codedjade003/photobook-server/internal/domain"
)

const testSecret = "issuer-test-secret-0123456789abcdef"

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	accountID := uuid.New()

	tok, err := issuer.Issue(accountID, domain.RolePhotographer)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)

	gotID, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, accountID, gotID)
	assert.Equal(t, domain.RolePhotographer, claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestIssuer_Expiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewIssuer(testSecret, time.Hour)
	issuer.Now = func() time.Time { return issued }

	tok, err := issuer.Issue(uuid.New(), domain.RoleClient)
	require.NoError(t, err)

	// still valid just inside the window
	issuer.Now = func() time.Time { return issued.Add(time.Hour - time.Second) }
	_, err = issuer.Verify(tok)
	require.NoError(t, err)

	// expired past the window
	issuer.Now = func() time.Time { return issued.Add(time.Hour + time.Second) }
	_, err = issuer.Verify(tok)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidCredentials(err))
}

func TestIssuer_Verify_Errors(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "empty token",
			token: func(t *testing.T) string { return "" },
		},
		{
			name:  "malformed token",
			token: func(t *testing.T) string { return "not.a.jwt" },
		},
		{
			name: "token signed with a different secret",
			token: func(t *testing.T) string {
				other := NewIssuer("some-other-secret-0123456789abcdef", time.Hour)
				tok, err := other.Issue(uuid.New(), domain.RoleClient)
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "unsigned token",
			token: func(t *testing.T) string {
				// alg=none with an empty signature segment
				return "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ4In0."
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Verify(tt.token(t))
			require.Error(t, err)
			assert.True(t, domain.IsInvalidCredentials(err))
		})
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewIssuer(testSecret, 0)
	issuer.Now = func() time.Time { return issued }

	tok, err := issuer.Issue(uuid.New(), domain.RoleClient)
	require.NoError(t, err)

	claims, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(time.Hour), claims.ExpiresAt.Time)
}

func TestClaims_AccountID_Invalid(t *testing.T) {
	claims := &Claims{}
	claims.Subject = "not-a-uuid"
	_, err := claims.AccountID()
	assert.Error(t, err)
}

package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkozyar/catalog-service/internal/auth"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims auth.Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseToken(t *testing.T) {
	claims := auth.Claims{
		Role:   auth.RoleManager,
		Tenant: "tenant-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	parsed, err := auth.ParseToken(signToken(t, claims, testSecret), testSecret)

	require.NoError(t, err)
	assert.Equal(t, auth.RoleManager, parsed.Role)
	assert.Equal(t, "tenant-1", parsed.Tenant)
}

func TestParseTokenWrongSecret(t *testing.T) {
	claims := auth.Claims{Role: auth.RoleManager, Tenant: "tenant-1"}

	_, err := auth.ParseToken(signToken(t, claims, "other-secret"), testSecret)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	claims := auth.Claims{
		Role: auth.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	_, err := auth.ParseToken(signToken(t, claims, testSecret), testSecret)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := auth.ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestCanModify(t *testing.T) {
	tests := []struct {
		name           string
		caller         auth.Caller
		resourceTenant string
		wantErr        error
	}{
		{
			name:           "admin can modify any tenant",
			caller:         auth.Caller{Role: auth.RoleAdmin, Tenant: "tenant-1"},
			resourceTenant: "tenant-2",
		},
		{
			name:           "manager can modify own tenant",
			caller:         auth.Caller{Role: auth.RoleManager, Tenant: "tenant-1"},
			resourceTenant: "tenant-1",
		},
		{
			name:           "manager cannot modify other tenant",
			caller:         auth.Caller{Role: auth.RoleManager, Tenant: "tenant-1"},
			resourceTenant: "tenant-2",
			wantErr:        auth.ErrForbidden,
		},
		{
			name:           "empty caller tenant is never a match",
			caller:         auth.Caller{Role: auth.RoleManager},
			resourceTenant: "",
			wantErr:        auth.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.CanModify(tt.caller, tt.resourceTenant)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package jwt

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/quanamco/payroll-edi/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAccessToken(t *testing.T) {
	svc := NewJWTService("secret", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "company-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	companyID, ok := decoded.Get("company_id")
	require.True(t, ok)
	assert.Equal(t, "company-1", companyID)
}

func TestJWTService_GenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("secret", "soon")

	_, _, err := svc.GenerateAccessToken("user-1", "company-1")
	assert.Error(t, err)
}

func TestClaimsFromContext(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("secret"), nil)

	ctx, err := NewContext(context.Background(), ja, "user-1", "company-1")
	require.NoError(t, err)

	claims, err := ClaimsFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: "user-1", CompanyID: "company-1"}, claims)
}

func TestClaimsFromContext_MissingCompany(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("secret"), nil)

	ctx, err := NewContext(context.Background(), ja, "user-1", "")
	require.NoError(t, err)

	_, err = ClaimsFromContext(ctx)
	assert.ErrorIs(t, err, auth.ErrCompanyIDRequired)
}

func TestClaimsFromContext_NoToken(t *testing.T) {
	_, err := ClaimsFromContext(context.Background())
	assert.ErrorIs(t, err, auth.ErrCompanyIDRequired)
}

func TestClaimsFromContext_VerifierError(t *testing.T) {
	ctx := jwtauth.NewContext(context.Background(), nil, jwtauth.ErrExpired)

	_, err := ClaimsFromContext(ctx)
	assert.ErrorIs(t, err, auth.ErrInvalidTokenClaims)
}

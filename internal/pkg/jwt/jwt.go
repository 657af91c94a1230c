package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/quanamco/payroll-edi/internal/domain/auth"
)

// Claims are the identity claims the API relies on.
type Claims struct {
	UserID    string
	CompanyID string
}

type Service interface {
	GenerateAccessToken(userID string, companyID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(userID string, companyID string) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":    userID,
		"company_id": companyID,
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ClaimsFromContext reads the verified token claims stored by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidTokenClaims, err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return Claims{}, auth.ErrCompanyIDRequired
	}

	userID, _ := claims["user_id"].(string)

	return Claims{UserID: userID, CompanyID: companyID}, nil
}

// NewContext returns ctx carrying an access token for the given identity.
// Used by background callers and tests that bypass the HTTP verifier.
func NewContext(ctx context.Context, ja *jwtauth.JWTAuth, userID string, companyID string) (context.Context, error) {
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    userID,
		"company_id": companyID,
		"type":       "access",
	})
	if err != nil {
		return nil, err
	}
	return jwtauth.NewContext(ctx, token, nil), nil
}

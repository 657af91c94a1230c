package auth

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrCompanyIDRequired  = errors.New("company_id claim is missing or invalid")
	ErrInvalidTokenClaims = errors.New("failed to extract claims from context")
)

package company

import "errors"

var (
	ErrCompanyNotFound  = errors.New("company not found")
	ErrNoFieldsToUpdate = errors.New("no updatable fields provided")
)

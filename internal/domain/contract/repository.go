package contract

import "context"

type ContractRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Contract, error)
}

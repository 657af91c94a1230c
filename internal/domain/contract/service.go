package contract

import "context"

type ContractService interface {
	GetPayrollPeriod(ctx context.Context, id string) (PayrollPeriodResponse, error)
}

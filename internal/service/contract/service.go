package contract

import (
	"context"

	"github.com/quanamco/payroll-edi/internal/domain/contract"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
)

type ContractServiceImpl struct {
	contractRepo contract.ContractRepository
}

func NewContractService(contractRepo contract.ContractRepository) contract.ContractService {
	return &ContractServiceImpl{contractRepo: contractRepo}
}

// GetPayrollPeriod resolves the payroll period of the contract's pay schedule.
// A contract without schedule has no period.
func (s *ContractServiceImpl) GetPayrollPeriod(ctx context.Context, id string) (contract.PayrollPeriodResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return contract.PayrollPeriodResponse{}, err
	}

	c, err := s.contractRepo.GetByID(ctx, id, claims.CompanyID)
	if err != nil {
		return contract.PayrollPeriodResponse{}, err
	}

	period, err := c.PayrollPeriodID()
	if err != nil {
		return contract.PayrollPeriodResponse{}, err
	}

	resp := contract.PayrollPeriodResponse{ContractID: c.ID}
	if c.SchedulePay != "" {
		schedule := string(c.SchedulePay)
		resp.SchedulePay = &schedule
	}
	if period != contract.PayrollPeriodUnset {
		id := int(period)
		resp.PayrollPeriodID = &id
	}
	return resp, nil
}

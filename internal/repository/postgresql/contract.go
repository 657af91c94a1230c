package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/quanamco/payroll-edi/internal/domain/contract"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

// GetByID implements contract.ContractRepository.
func (r *contractRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, name, wage, date_start, date_end,
			   COALESCE(schedule_pay, ''), type_worker_id, subtype_worker_id, type_contract_id,
			   integral_salary, high_risk_pension, created_at, updated_at
		FROM contracts
		WHERE id = $1 AND company_id = $2
	`

	var (
		c           contract.Contract
		schedulePay string
	)
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&c.ID, &c.CompanyID, &c.EmployeeID, &c.Name, &c.Wage, &c.DateStart, &c.DateEnd,
		&schedulePay, &c.TypeWorkerID, &c.SubtypeWorkerID, &c.TypeContractID,
		&c.IntegralSalary, &c.HighRiskPension, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("failed to get contract with id %s: %w", id, err)
	}
	c.SchedulePay = contract.SchedulePay(schedulePay)

	return c, nil
}

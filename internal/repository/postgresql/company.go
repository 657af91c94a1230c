package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, type_document_identification_id, vat, postal_municipality_id, street,
			   edi_payroll_enable, edi_payroll_consolidated_enable,
			   edi_payroll_enable_validate_state, edi_payroll_is_not_test,
			   created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var found company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Name, &found.TypeDocumentIdentificationID, &found.Vat,
		&found.PostalMunicipalityID, &found.Street,
		&found.EdiPayrollEnable, &found.EdiPayrollConsolidatedEnable,
		&found.EdiPayrollEnableValidateState, &found.EdiPayrollIsNotTest,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company with id %s: %w", id, err)
	}

	return found, nil
}

// UpdateEdiSettings implements company.CompanyRepository.
func (c *companyRepositoryImpl) UpdateEdiSettings(ctx context.Context, id string, req company.UpdateEdiSettingsRequest) error {
	q := GetQuerier(ctx, c.db)

	updates := make(map[string]interface{})

	if req.EdiPayrollEnable != nil {
		updates["edi_payroll_enable"] = *req.EdiPayrollEnable
	}
	if req.EdiPayrollConsolidatedEnable != nil {
		updates["edi_payroll_consolidated_enable"] = *req.EdiPayrollConsolidatedEnable
	}
	if req.EdiPayrollEnableValidateState != nil {
		updates["edi_payroll_enable_validate_state"] = *req.EdiPayrollEnableValidateState
	}
	if req.EdiPayrollIsNotTest != nil {
		updates["edi_payroll_is_not_test"] = *req.EdiPayrollIsNotTest
	}

	if len(updates) == 0 {
		return company.ErrNoFieldsToUpdate
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE companies SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql+" RETURNING id", args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to update company with id %s: %w", id, err)
	}
	return nil
}

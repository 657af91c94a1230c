package company

import (
	"context"
	"log/slog"

	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
)

type CompanyServiceImpl struct {
	transactor database.Transactor
	company.CompanyRepository
	logger *slog.Logger
}

func NewCompanyService(transactor database.Transactor, companyRepository company.CompanyRepository, logger *slog.Logger) company.CompanyService {
	return &CompanyServiceImpl{
		transactor:        transactor,
		CompanyRepository: companyRepository,
		logger:            logger,
	}
}

// GetMy returns the company of the caller.
func (c *CompanyServiceImpl) GetMy(ctx context.Context) (company.CompanyResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	companyData, err := c.CompanyRepository.GetByID(ctx, claims.CompanyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.NewCompanyResponse(companyData), nil
}

// UpdateEdiSettings implements company.CompanyService.
func (c *CompanyServiceImpl) UpdateEdiSettings(ctx context.Context, req company.UpdateEdiSettingsRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	var updated company.Company
	err = c.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := c.CompanyRepository.UpdateEdiSettings(ctx, claims.CompanyID, req); err != nil {
			return err
		}
		updated, err = c.CompanyRepository.GetByID(ctx, claims.CompanyID)
		return err
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	c.logger.Info("electronic payroll settings updated",
		"company_id", updated.ID,
		"user_id", claims.UserID,
		"enable", updated.EdiPayrollEnable,
		"consolidated", updated.EdiPayrollConsolidatedEnable,
		"validate_state", updated.EdiPayrollEnableValidateState,
		"is_not_test", updated.EdiPayrollIsNotTest,
	)
	return company.NewCompanyResponse(updated), nil
}

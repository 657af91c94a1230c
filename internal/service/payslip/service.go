package payslip

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/domain/contract"
	"github.com/quanamco/payroll-edi/internal/domain/employee"
	"github.com/quanamco/payroll-edi/internal/domain/payslip"
	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
)

type PayslipServiceImpl struct {
	transactor    database.Transactor
	payslipRepo   payslip.PayslipRepository
	ruleInputRepo ruleinput.RuleInputRepository
	contractRepo  contract.ContractRepository
	employeeRepo  employee.EmployeeRepository
	companyRepo   company.CompanyRepository
	logger        *slog.Logger
}

func NewPayslipService(
	transactor database.Transactor,
	payslipRepo payslip.PayslipRepository,
	ruleInputRepo ruleinput.RuleInputRepository,
	contractRepo contract.ContractRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	logger *slog.Logger,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		transactor:    transactor,
		payslipRepo:   payslipRepo,
		ruleInputRepo: ruleInputRepo,
		contractRepo:  contractRepo,
		employeeRepo:  employeeRepo,
		companyRepo:   companyRepo,
		logger:        logger,
	}
}

func (s *PayslipServiceImpl) GetByID(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	p, err := s.payslipRepo.GetByID(ctx, id, claims.CompanyID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return payslip.NewPayslipResponse(p), nil
}

// ComputePayload rebuilds the electronic payroll document of the payslip from its lines.
func (s *PayslipServiceImpl) ComputePayload(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	var p payslip.Payslip
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err = s.payslipRepo.GetByID(ctx, id, claims.CompanyID)
		if err != nil {
			return err
		}
		c, err := s.contractRepo.GetByID(ctx, p.ContractID, claims.CompanyID)
		if err != nil {
			return err
		}
		e, err := s.employeeRepo.GetByID(ctx, p.EmployeeID, claims.CompanyID)
		if err != nil {
			return err
		}
		co, err := s.companyRepo.GetByID(ctx, claims.CompanyID)
		if err != nil {
			return err
		}

		out, err := payslip.BuildPayload(p, c, e, co)
		if err != nil {
			return err
		}
		if err := s.payslipRepo.UpdatePayload(ctx, p.ID, claims.CompanyID, out); err != nil {
			return err
		}
		p.EdiPayload = out
		return nil
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	s.logger.Info("payslip payload computed", "id", p.ID, "number", p.Number, "total", p.EdiPayload.Total.String())
	return payslip.NewPayslipResponse(p), nil
}

// ========== EARN LINES ==========

func (s *PayslipServiceImpl) AddEarnLine(ctx context.Context, payslipID string, req payslip.CreateEarnLineRequest) (payslip.EarnLineResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.EarnLineResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslip.EarnLineResponse{}, err
	}

	line := payslip.EarnLine{
		PayslipID: payslipID,
		Sequence:  payslip.DefaultLineSequence,
		Amount:    req.Amount,
		TimeStart: req.TimeStart,
		TimeEnd:   req.TimeEnd,
	}
	if req.Sequence != nil {
		line.Sequence = *req.Sequence
	}
	if line.DateStart, err = payslip.ParseDate(req.DateStart); err != nil {
		return payslip.EarnLineResponse{}, fmt.Errorf("invalid date_start: %w", err)
	}
	if line.DateEnd, err = payslip.ParseDate(req.DateEnd); err != nil {
		return payslip.EarnLineResponse{}, fmt.Errorf("invalid date_end: %w", err)
	}

	var created payslip.EarnLine
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireDraft(ctx, payslipID, claims.CompanyID); err != nil {
			return err
		}
		ri, err := s.ruleInputRepo.GetByID(ctx, req.RuleInputID, claims.CompanyID)
		if err != nil {
			return err
		}
		if err := line.ApplyRuleInput(ri); err != nil {
			return err
		}
		line.Recompute()
		if err := line.Validate(); err != nil {
			return err
		}
		created, err = s.payslipRepo.CreateEarnLine(ctx, line)
		return err
	})
	if err != nil {
		return payslip.EarnLineResponse{}, err
	}

	return payslip.NewEarnLineResponse(created), nil
}

func (s *PayslipServiceImpl) UpdateEarnLine(ctx context.Context, payslipID string, lineID string, req payslip.UpdateEarnLineRequest) (payslip.EarnLineResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.EarnLineResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslip.EarnLineResponse{}, err
	}

	var line payslip.EarnLine
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireDraft(ctx, payslipID, claims.CompanyID); err != nil {
			return err
		}
		line, err = s.payslipRepo.GetEarnLine(ctx, payslipID, lineID)
		if err != nil {
			return err
		}

		if req.RuleInputID != nil && *req.RuleInputID != line.RuleInputID {
			ri, err := s.ruleInputRepo.GetByID(ctx, *req.RuleInputID, claims.CompanyID)
			if err != nil {
				return err
			}
			if err := line.ApplyRuleInput(ri); err != nil {
				return err
			}
		}
		if req.Sequence != nil {
			line.Sequence = *req.Sequence
		}
		if req.Amount != nil {
			line.Amount = *req.Amount
		}
		if req.DateStart != nil {
			if line.DateStart, err = payslip.ParseDate(req.DateStart); err != nil {
				return fmt.Errorf("invalid date_start: %w", err)
			}
		}
		if req.DateEnd != nil {
			if line.DateEnd, err = payslip.ParseDate(req.DateEnd); err != nil {
				return fmt.Errorf("invalid date_end: %w", err)
			}
		}
		if req.TimeStart != nil {
			line.TimeStart = req.TimeStart
		}
		if req.TimeEnd != nil {
			line.TimeEnd = req.TimeEnd
		}

		line.Recompute()
		if err := line.Validate(); err != nil {
			return err
		}
		return s.payslipRepo.UpdateEarnLine(ctx, line)
	})
	if err != nil {
		return payslip.EarnLineResponse{}, err
	}

	return payslip.NewEarnLineResponse(line), nil
}

func (s *PayslipServiceImpl) DeleteEarnLine(ctx context.Context, payslipID string, lineID string) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireDraft(ctx, payslipID, claims.CompanyID); err != nil {
			return err
		}
		return s.payslipRepo.DeleteEarnLine(ctx, payslipID, lineID)
	})
}

// ========== DEDUCTION LINES ==========

func (s *PayslipServiceImpl) AddDeductionLine(ctx context.Context, payslipID string, req payslip.CreateDeductionLineRequest) (payslip.DeductionLineResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.DeductionLineResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslip.DeductionLineResponse{}, err
	}

	line := payslip.DeductionLine{
		PayslipID: payslipID,
		Sequence:  payslip.DefaultLineSequence,
		Amount:    req.Amount,
	}
	if req.Sequence != nil {
		line.Sequence = *req.Sequence
	}

	var created payslip.DeductionLine
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireDraft(ctx, payslipID, claims.CompanyID); err != nil {
			return err
		}
		ri, err := s.ruleInputRepo.GetByID(ctx, req.RuleInputID, claims.CompanyID)
		if err != nil {
			return err
		}
		if err := line.ApplyRuleInput(ri); err != nil {
			return err
		}
		if err := line.Validate(); err != nil {
			return err
		}
		created, err = s.payslipRepo.CreateDeductionLine(ctx, line)
		return err
	})
	if err != nil {
		return payslip.DeductionLineResponse{}, err
	}

	return payslip.NewDeductionLineResponse(created), nil
}

func (s *PayslipServiceImpl) UpdateDeductionLine(ctx context.Context, payslipID string, lineID string, req payslip.UpdateDeductionLineRequest) (payslip.DeductionLineResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.DeductionLineResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslip.DeductionLineResponse{}, err
	}

	var line payslip.DeductionLine
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireDraft(ctx, payslipID, claims.CompanyID); err != nil {
			return err
		}
		line, err = s.payslipRepo.GetDeductionLine(ctx, payslipID, lineID)
		if err != nil {
			return err
		}

		if req.RuleInputID != nil && *req.RuleInputID != line.RuleInputID {
			ri, err := s.ruleInputRepo.GetByID(ctx, *req.RuleInputID, claims.CompanyID)
			if err != nil {
				return err
			}
			if err := line.ApplyRuleInput(ri); err != nil {
				return err
			}
		}
		if req.Sequence != nil {
			line.Sequence = *req.Sequence
		}
		if req.Amount != nil {
			line.Amount = *req.Amount
		}

		if err := line.Validate(); err != nil {
			return err
		}
		return s.payslipRepo.UpdateDeductionLine(ctx, line)
	})
	if err != nil {
		return payslip.DeductionLineResponse{}, err
	}

	return payslip.NewDeductionLineResponse(line), nil
}

func (s *PayslipServiceImpl) DeleteDeductionLine(ctx context.Context, payslipID string, lineID string) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireDraft(ctx, payslipID, claims.CompanyID); err != nil {
			return err
		}
		return s.payslipRepo.DeleteDeductionLine(ctx, payslipID, lineID)
	})
}

// requireDraft loads the payslip of the company and refuses line changes once it is settled.
func (s *PayslipServiceImpl) requireDraft(ctx context.Context, payslipID string, companyID string) error {
	p, err := s.payslipRepo.GetByID(ctx, payslipID, companyID)
	if err != nil {
		return err
	}
	if p.State != payslip.PayslipStateDraft {
		return payslip.ErrPayslipNotDraft
	}
	return nil
}

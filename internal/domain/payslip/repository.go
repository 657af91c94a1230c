package payslip

import (
	"context"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
)

// PayslipRepository loads payslips together with their lines.
// All methods include companyID to keep data scoped to one company.
type PayslipRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Payslip, error)
	UpdatePayload(ctx context.Context, id string, companyID string, p *payload.Payload) error

	// Earn lines
	GetEarnLine(ctx context.Context, payslipID string, lineID string) (EarnLine, error)
	CreateEarnLine(ctx context.Context, line EarnLine) (EarnLine, error)
	UpdateEarnLine(ctx context.Context, line EarnLine) error
	DeleteEarnLine(ctx context.Context, payslipID string, lineID string) error

	// Deduction lines
	GetDeductionLine(ctx context.Context, payslipID string, lineID string) (DeductionLine, error)
	CreateDeductionLine(ctx context.Context, line DeductionLine) (DeductionLine, error)
	UpdateDeductionLine(ctx context.Context, line DeductionLine) error
	DeleteDeductionLine(ctx context.Context, payslipID string, lineID string) error
}

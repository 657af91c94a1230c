package payslip

import "context"

type PayslipService interface {
	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	ComputePayload(ctx context.Context, id string) (PayslipResponse, error)

	AddEarnLine(ctx context.Context, payslipID string, req CreateEarnLineRequest) (EarnLineResponse, error)
	UpdateEarnLine(ctx context.Context, payslipID string, lineID string, req UpdateEarnLineRequest) (EarnLineResponse, error)
	DeleteEarnLine(ctx context.Context, payslipID string, lineID string) error

	AddDeductionLine(ctx context.Context, payslipID string, req CreateDeductionLineRequest) (DeductionLineResponse, error)
	UpdateDeductionLine(ctx context.Context, payslipID string, lineID string, req UpdateDeductionLineRequest) (DeductionLineResponse, error)
	DeleteDeductionLine(ctx context.Context, payslipID string, lineID string) error
}

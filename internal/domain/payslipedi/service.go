package payslipedi

import (
	"context"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
)

type PayslipEdiService interface {
	List(ctx context.Context, filter ListFilter) ([]PayslipEdiResponse, error)
	GetByID(ctx context.Context, id string) (PayslipEdiResponse, error)
	Create(ctx context.Context, req CreatePayslipEdiRequest) (PayslipEdiResponse, error)
	Update(ctx context.Context, id string, req UpdatePayslipEdiRequest) (PayslipEdiResponse, error)
	Delete(ctx context.Context, ids []string) error

	// GetJSONRequest assembles the document payload and stores the totals derived from it.
	GetJSONRequest(ctx context.Context, id string) (*payload.Payload, error)
	// PreviewJSONRequest assembles the document payload without storing anything.
	PreviewJSONRequest(ctx context.Context, id string) (*payload.Payload, error)

	ComputeSheet(ctx context.Context, ids []string) ([]PayslipEdiResponse, error)
	Done(ctx context.Context, ids []string) ([]PayslipEdiResponse, error)
	Cancel(ctx context.Context, ids []string) ([]PayslipEdiResponse, error)
	Draft(ctx context.Context, ids []string) ([]PayslipEdiResponse, error)
	Refund(ctx context.Context, ids []string) (RefundResponse, error)

	ValidateDian(ctx context.Context, ids []string) ([]PayslipEdiResponse, error)
	StatusZip(ctx context.Context, ids []string) ([]PayslipEdiResponse, error)
	StatusDocumentLog(ctx context.Context, ids []string) ([]PayslipEdiResponse, error)
}

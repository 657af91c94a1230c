package payslipedi

import "context"

// PayslipEdiRepository persists documents together with their ordered payslip links.
type PayslipEdiRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (PayslipEdi, error)
	// GetByIDs returns the documents in the order of ids and fails when any is missing.
	GetByIDs(ctx context.Context, ids []string, companyID string) ([]PayslipEdi, error)
	List(ctx context.Context, companyID string, filter ListFilter) ([]PayslipEdi, error)
	Create(ctx context.Context, doc PayslipEdi) (PayslipEdi, error)
	Update(ctx context.Context, doc PayslipEdi) error
	Delete(ctx context.Context, ids []string, companyID string) error
}

package payslipedi

import (
	"context"
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
)

// Merger folds the payload of a further payslip into the accumulated document.
type Merger interface {
	Merge(acc *payload.Payload, next *payload.Payload, date time.Time) *payload.Payload
}

// Reverser turns an assembled payload into its adjustment note form.
type Reverser interface {
	DeleteRequest(p *payload.Payload) *payload.Payload
}

// Result is the answer of the tax authority gateway.
type Result struct {
	IsValid           bool
	UUID              string
	Number            string
	IssueDate         *time.Time
	ZipKey            string
	StatusCode        string
	StatusDescription string
	Errors            []string
}

// Gateway submits documents to the tax authority.
type Gateway interface {
	Validate(ctx context.Context, p *payload.Payload, isNotTest bool) (Result, error)
	StatusZip(ctx context.Context, p *payload.Payload, isNotTest bool) (Result, error)
	StatusDocumentLog(ctx context.Context, p *payload.Payload, isNotTest bool) (Result, error)
}

// SequenceGenerator hands out the next number of a named counter of the company.
type SequenceGenerator interface {
	NextByCode(ctx context.Context, companyID string, code string) (string, error)
}

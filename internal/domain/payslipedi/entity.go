package payslipedi

import (
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/shopspring/decimal"
)

// PlaceholderNumber marks a document whose number has not been assigned yet.
const PlaceholderNumber = "New"

// Sequence codes
const (
	SequenceCodeSlip = "salary.slip.edi"
	SequenceCodeNote = "salary.slip.edi.note"
)

// State enum
type State string

const (
	StateDraft  State = "draft"
	StateVerify State = "verify"
	StateDone   State = "done"
	StateCancel State = "cancel"
)

// PayslipEdi - Electronic payroll document consolidating one or more payslips
type PayslipEdi struct {
	ID              string
	CompanyID       string
	Name            string
	Number          string
	Note            string
	ContractID      string
	EmployeeID      string
	CreditNote      bool
	OriginPayslipID *string
	State           State
	Date            time.Time
	Month           int
	Year            int
	PayslipIDs      []string

	// Cached from the assembled payload
	PaymentFormID         *int
	PaymentMethodID       *int
	AccruedTotalAmount    decimal.Decimal
	DeductionsTotalAmount decimal.Decimal
	TotalAmount           decimal.Decimal
	WorkedDaysTotal       int

	EdiPayload   *payload.Payload
	EdiSync      bool
	EdiIsNotTest bool

	// Gateway results
	EdiIsValid           bool
	EdiUUID              string
	EdiNumber            string
	EdiIssueDate         *time.Time
	EdiZipKey            string
	EdiStatusCode        string
	EdiStatusDescription string
	EdiErrors            []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPlaceholderNumber reports whether a definitive number still has to be assigned.
func (p PayslipEdi) HasPlaceholderNumber() bool {
	return p.Number == "" || p.Number == PlaceholderNumber
}

// Deletable reports whether the document may be removed.
func (p PayslipEdi) Deletable() bool {
	return p.State == StateDraft || p.State == StateCancel
}

// SequenceCode returns the counter numbering this kind of document.
func (p PayslipEdi) SequenceCode() string {
	if p.CreditNote {
		return SequenceCodeNote
	}
	return SequenceCodeSlip
}

// ApplyResult stores a gateway answer on the document.
func (p *PayslipEdi) ApplyResult(r Result) {
	p.EdiIsValid = r.IsValid
	if r.UUID != "" {
		p.EdiUUID = r.UUID
	}
	if r.Number != "" {
		p.EdiNumber = r.Number
	}
	if r.IssueDate != nil {
		p.EdiIssueDate = r.IssueDate
	}
	if r.ZipKey != "" {
		p.EdiZipKey = r.ZipKey
	}
	p.EdiStatusCode = r.StatusCode
	p.EdiStatusDescription = r.StatusDescription
	p.EdiErrors = r.Errors
}

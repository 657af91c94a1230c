package payslip

import (
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/shopspring/decimal"
)

// DefaultLineSequence orders lines created without an explicit sequence.
const DefaultLineSequence = 10

// PayslipState enum
type PayslipState string

const (
	PayslipStateDraft  PayslipState = "draft"
	PayslipStateDone   PayslipState = "done"
	PayslipStateCancel PayslipState = "cancel"
)

// Payslip - Settled pay period of one employee
type Payslip struct {
	ID              string
	CompanyID       string
	EmployeeID      string
	ContractID      string
	Number          string
	DateFrom        time.Time
	DateTo          time.Time
	PaymentDate     *time.Time
	State           PayslipState
	PaymentFormID   *int
	PaymentMethodID *int
	WorkedDays      int
	EarnLines       []EarnLine
	DeductionLines  []DeductionLine
	EdiPayload      *payload.Payload
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EarnLine - Accrued concept on a payslip
type EarnLine struct {
	ID          string
	PayslipID   string
	Name        string
	Sequence    int
	RuleInputID string
	Code        string
	Category    ruleinput.EarnCategory
	Amount      decimal.Decimal
	DateStart   *time.Time
	DateEnd     *time.Time
	TimeStart   *float64
	TimeEnd     *float64
	Quantity    decimal.Decimal
	Total       decimal.Decimal
}

// DeductionLine - Deducted concept on a payslip
type DeductionLine struct {
	ID          string
	PayslipID   string
	Name        string
	Sequence    int
	RuleInputID string
	Code        string
	Category    ruleinput.DeductionCategory
	Amount      decimal.Decimal
}

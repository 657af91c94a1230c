// Package payload holds the typed electronic payroll document exchanged with the tax authority gateway.
package payload

import (
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the date format used across the document.
const DateLayout = "2006-01-02"

// Adjustment note types
const (
	TypeNoteReplace = 1
	TypeNoteDelete  = 2
)

type Payload struct {
	Sequence         *Sequence         `json:"sequence,omitempty"`
	PayrollPeriodID  int               `json:"payroll_period_id,omitempty"`
	Period           *Period           `json:"period,omitempty"`
	Employer         *Employer         `json:"employer,omitempty"`
	Employee         *Employee         `json:"employee,omitempty"`
	Payment          *Payment          `json:"payment,omitempty"`
	PaymentDates     []PaymentDate     `json:"payment_dates,omitempty"`
	Earn             *Earn             `json:"earn,omitempty"`
	Deductions       *Deductions       `json:"deductions,omitempty"`
	AccruedTotal     decimal.Decimal   `json:"accrued_total"`
	DeductionsTotal  decimal.Decimal   `json:"deductions_total"`
	Total            decimal.Decimal   `json:"total"`
	Notes            []Note            `json:"notes,omitempty"`
	PayrollReference *PayrollReference `json:"payroll_reference,omitempty"`
	TypeNote         int               `json:"type_note,omitempty"`
}

type Sequence struct {
	Prefix string `json:"prefix"`
	Number int    `json:"number"`
}

type Period struct {
	AdmissionDate       string          `json:"admission_date"`
	SettlementStartDate string          `json:"settlement_start_date"`
	SettlementEndDate   string          `json:"settlement_end_date"`
	AmountTime          decimal.Decimal `json:"amount_time"`
	IssueDate           string          `json:"issue_date"`
}

type Employer struct {
	Name                         string `json:"name"`
	TypeDocumentIdentificationID int    `json:"type_document_identification_id"`
	IdentificationNumber         string `json:"identification_number"`
	MunicipalityID               int    `json:"municipality_id"`
	Address                      string `json:"address"`
}

type Employee struct {
	TypeWorkerID                 int             `json:"type_worker_id"`
	SubtypeWorkerID              int             `json:"subtype_worker_id"`
	HighRiskPension              bool            `json:"high_risk_pension"`
	IntegralSalary               bool            `json:"integral_salary"`
	TypeContractID               int             `json:"type_contract_id"`
	TypeDocumentIdentificationID int             `json:"type_document_identification_id"`
	IdentificationNumber         string          `json:"identification_number"`
	Surname                      string          `json:"surname"`
	SecondSurname                string          `json:"second_surname,omitempty"`
	FirstName                    string          `json:"first_name"`
	OtherNames                   string          `json:"other_names,omitempty"`
	MunicipalityID               int             `json:"municipality_id"`
	Address                      string          `json:"address"`
	Salary                       decimal.Decimal `json:"salary"`
}

type Payment struct {
	Code       int `json:"code"`
	MethodCode int `json:"method_code"`
}

type PaymentDate struct {
	Date string `json:"date"`
}

type Earn struct {
	Basic Basic      `json:"basic"`
	Items []EarnItem `json:"items,omitempty"`
}

type Basic struct {
	WorkedDays   int             `json:"worked_days"`
	WorkerSalary decimal.Decimal `json:"worker_salary"`
}

type EarnItem struct {
	Category  string          `json:"category"`
	Code      string          `json:"code,omitempty"`
	Name      string          `json:"name,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	Total     decimal.Decimal `json:"total"`
	DateStart string          `json:"date_start,omitempty"`
	DateEnd   string          `json:"date_end,omitempty"`
}

type Deductions struct {
	Items []DeductionItem `json:"items,omitempty"`
}

type DeductionItem struct {
	Category string          `json:"category"`
	Code     string          `json:"code,omitempty"`
	Name     string          `json:"name,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

type Note struct {
	Text string `json:"text"`
}

type PayrollReference struct {
	Number    string `json:"number"`
	UUID      string `json:"uuid,omitempty"`
	IssueDate string `json:"issue_date"`
}

// WorkedDays returns the basic worked days, zero when the document carries no earnings.
func (p *Payload) WorkedDays() int {
	if p == nil || p.Earn == nil {
		return 0
	}
	return p.Earn.Basic.WorkedDays
}

// Clone returns a deep copy of the document.
func (p *Payload) Clone() *Payload {
	if p == nil {
		return nil
	}
	c := *p
	if p.Sequence != nil {
		s := *p.Sequence
		c.Sequence = &s
	}
	if p.Period != nil {
		v := *p.Period
		c.Period = &v
	}
	if p.Employer != nil {
		v := *p.Employer
		c.Employer = &v
	}
	if p.Employee != nil {
		v := *p.Employee
		c.Employee = &v
	}
	if p.Payment != nil {
		v := *p.Payment
		c.Payment = &v
	}
	c.PaymentDates = append([]PaymentDate(nil), p.PaymentDates...)
	if p.Earn != nil {
		e := Earn{Basic: p.Earn.Basic, Items: append([]EarnItem(nil), p.Earn.Items...)}
		c.Earn = &e
	}
	if p.Deductions != nil {
		d := Deductions{Items: append([]DeductionItem(nil), p.Deductions.Items...)}
		c.Deductions = &d
	}
	c.Notes = append([]Note(nil), p.Notes...)
	if p.PayrollReference != nil {
		v := *p.PayrollReference
		c.PayrollReference = &v
	}
	return &c
}

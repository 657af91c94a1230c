package payslip

import (
	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/domain/contract"
	"github.com/quanamco/payroll-edi/internal/domain/employee"
	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DaysPerMonth is the commercial month used to prorate the wage.
const DaysPerMonth = 30

// BuildPayload assembles the electronic payroll document of a single payslip.
// Lines are recomputed before being serialized.
func BuildPayload(p Payslip, c contract.Contract, e employee.Employee, co company.Company) (*payload.Payload, error) {
	var errs validator.ValidationErrors
	if p.PaymentFormID == nil {
		errs = append(errs, validator.ValidationError{Field: "payment_form_id", Message: "payment_form_id is required"})
	}
	if p.PaymentMethodID == nil {
		errs = append(errs, validator.ValidationError{Field: "payment_method_id", Message: "payment_method_id is required"})
	}
	period, err := c.PayrollPeriodID()
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "schedule_pay", Message: err.Error()})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	basicSalary := c.Wage.Mul(decimal.NewFromInt(int64(p.WorkedDays))).
		Div(decimal.NewFromInt(DaysPerMonth)).
		Round(2)

	earn := &payload.Earn{Basic: payload.Basic{WorkedDays: p.WorkedDays, WorkerSalary: basicSalary}}
	accrued := basicSalary
	for _, line := range p.EarnLines {
		line.Recompute()
		item := payload.EarnItem{
			Category: string(line.Category),
			Code:     line.Code,
			Name:     line.Name,
			Quantity: line.Quantity,
			Amount:   line.Amount,
			Total:    line.Total.Round(2),
		}
		if line.DateStart != nil {
			item.DateStart = line.DateStart.Format(payload.DateLayout)
		}
		if line.DateEnd != nil {
			item.DateEnd = line.DateEnd.Format(payload.DateLayout)
		}
		earn.Items = append(earn.Items, item)
		accrued = accrued.Add(item.Total)
	}

	deductions := &payload.Deductions{}
	deducted := decimal.Zero
	for _, line := range p.DeductionLines {
		deductions.Items = append(deductions.Items, payload.DeductionItem{
			Category: string(line.Category),
			Code:     line.Code,
			Name:     line.Name,
			Amount:   line.Amount.Round(2),
		})
		deducted = deducted.Add(line.Amount.Round(2))
	}

	issueDate := p.DateTo
	if p.PaymentDate != nil {
		issueDate = *p.PaymentDate
	}

	out := &payload.Payload{
		PayrollPeriodID: int(period),
		Period: &payload.Period{
			SettlementStartDate: p.DateFrom.Format(payload.DateLayout),
			SettlementEndDate:   p.DateTo.Format(payload.DateLayout),
			AmountTime:          decimal.NewFromInt(int64(p.WorkedDays)),
			IssueDate:           issueDate.Format(payload.DateLayout),
		},
		Employer: &payload.Employer{
			Name:                         co.Name,
			TypeDocumentIdentificationID: intOrZero(co.TypeDocumentIdentificationID),
			IdentificationNumber:         co.Vat,
			MunicipalityID:               intOrZero(co.PostalMunicipalityID),
			Address:                      co.Street,
		},
		Employee:        newEmployeeBlock(c, e),
		Payment:         &payload.Payment{Code: *p.PaymentFormID, MethodCode: *p.PaymentMethodID},
		PaymentDates:    []payload.PaymentDate{{Date: issueDate.Format(payload.DateLayout)}},
		Earn:            earn,
		Deductions:      deductions,
		AccruedTotal:    accrued.Round(2),
		DeductionsTotal: deducted.Round(2),
		Total:           accrued.Sub(deducted).Round(2),
	}
	if c.DateStart != nil {
		out.Period.AdmissionDate = c.DateStart.Format(payload.DateLayout)
		out.Period.AmountTime = decimal.NewFromInt(int64(daysBetween(*c.DateStart, p.DateTo)) + 1)
	}
	return out, nil
}

func newEmployeeBlock(c contract.Contract, e employee.Employee) *payload.Employee {
	block := &payload.Employee{
		TypeWorkerID:    intOrZero(c.TypeWorkerID),
		SubtypeWorkerID: intOrZero(c.SubtypeWorkerID),
		HighRiskPension: c.HighRiskPension,
		IntegralSalary:  c.IntegralSalary,
		TypeContractID:  intOrZero(c.TypeContractID),
		Salary:          c.Wage,
	}
	if a := e.HomeAddress; a != nil {
		block.TypeDocumentIdentificationID = intOrZero(a.TypeDocumentIdentificationID)
		block.IdentificationNumber = a.Vat
		block.Surname = a.Surname
		block.SecondSurname = a.SecondSurname
		block.FirstName = a.FirstName
		block.OtherNames = a.OtherNames
		block.MunicipalityID = intOrZero(a.PostalMunicipalityID)
		block.Address = a.Street
	}
	return block
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

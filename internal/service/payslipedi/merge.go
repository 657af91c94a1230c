package payslipedi

import (
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
)

// Merger folds the payloads of several payslips of one month into a single document.
// Amounts and worked days are added up, items are concatenated in order and the
// settlement period is widened to cover both documents.
type Merger struct{}

func (Merger) Merge(acc *payload.Payload, next *payload.Payload, date time.Time) *payload.Payload {
	out := acc.Clone()
	if out == nil {
		return next.Clone()
	}
	if next == nil {
		return out
	}

	out.AccruedTotal = out.AccruedTotal.Add(next.AccruedTotal)
	out.DeductionsTotal = out.DeductionsTotal.Add(next.DeductionsTotal)
	out.Total = out.Total.Add(next.Total)
	out.PaymentDates = append(out.PaymentDates, next.PaymentDates...)

	if out.Payment == nil && next.Payment != nil {
		p := *next.Payment
		out.Payment = &p
	}
	if out.Employer == nil && next.Employer != nil {
		e := *next.Employer
		out.Employer = &e
	}
	if out.Employee == nil && next.Employee != nil {
		e := *next.Employee
		out.Employee = &e
	}
	if out.PayrollPeriodID == 0 {
		out.PayrollPeriodID = next.PayrollPeriodID
	}

	out.Period = mergePeriod(out.Period, next.Period)
	if out.Period != nil {
		out.Period.IssueDate = date.Format(payload.DateLayout)
	}

	if next.Earn != nil {
		if out.Earn == nil {
			out.Earn = &payload.Earn{}
		}
		out.Earn.Basic.WorkedDays += next.Earn.Basic.WorkedDays
		out.Earn.Basic.WorkerSalary = out.Earn.Basic.WorkerSalary.Add(next.Earn.Basic.WorkerSalary)
		out.Earn.Items = append(out.Earn.Items, next.Earn.Items...)
	}
	if next.Deductions != nil {
		if out.Deductions == nil {
			out.Deductions = &payload.Deductions{}
		}
		out.Deductions.Items = append(out.Deductions.Items, next.Deductions.Items...)
	}
	return out
}

// mergePeriod keeps the earliest start and the latest end. Dates are yyyy-mm-dd so they compare as strings.
func mergePeriod(a, b *payload.Period) *payload.Period {
	if a == nil {
		if b == nil {
			return nil
		}
		v := *b
		return &v
	}
	if b == nil {
		return a
	}
	if b.SettlementStartDate != "" && (a.SettlementStartDate == "" || b.SettlementStartDate < a.SettlementStartDate) {
		a.SettlementStartDate = b.SettlementStartDate
	}
	if b.SettlementEndDate > a.SettlementEndDate {
		a.SettlementEndDate = b.SettlementEndDate
	}
	if b.AmountTime.GreaterThan(a.AmountTime) {
		a.AmountTime = b.AmountTime
	}
	if a.AdmissionDate == "" {
		a.AdmissionDate = b.AdmissionDate
	}
	return a
}

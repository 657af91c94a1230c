package payslip

import (
	"fmt"
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ApplyRuleInput copies name, code and category from the referenced rule input.
func (l *EarnLine) ApplyRuleInput(ri ruleinput.RuleInput) error {
	if ri.Input.TypeConcept != ruleinput.TypeConceptEarn {
		return ErrRuleInputConceptMismatch
	}
	l.RuleInputID = ri.ID
	l.Name = ri.Name
	l.Code = ri.Code
	l.Category = ri.Input.EarnCategory
	return nil
}

// Recompute refreshes the derived quantity and total.
func (l *EarnLine) Recompute() {
	l.Quantity = l.ComputeQuantity()
	l.Total = l.ComputeTotal()
}

func (l EarnLine) ComputeQuantity() decimal.Decimal {
	switch {
	case l.Category.CountsDays():
		if l.DateStart == nil || l.DateEnd == nil {
			return decimal.Zero
		}
		return decimal.NewFromInt(int64(daysBetween(*l.DateStart, *l.DateEnd)) + 1)
	case l.Category.CountsHours():
		// zero hours count as unset
		if l.DateStart == nil || l.DateEnd == nil || isUnsetHour(l.TimeStart) || isUnsetHour(l.TimeEnd) {
			return decimal.Zero
		}
		days := decimal.NewFromInt(int64(daysBetween(*l.DateStart, *l.DateEnd)))
		return days.Mul(decimal.NewFromInt(24)).
			Add(decimal.NewFromFloat(*l.TimeEnd)).
			Sub(decimal.NewFromFloat(*l.TimeStart))
	default:
		return decimal.NewFromInt(1)
	}
}

func (l EarnLine) ComputeTotal() decimal.Decimal {
	return l.ComputeQuantity().Mul(l.Amount)
}

// Validate checks the line constraints
func (l EarnLine) Validate() error {
	var errs validator.ValidationErrors

	if !l.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: fmt.Sprintf("The earn amount must always be greater than 0 for: %s", l.Name),
		})
	}
	if l.DateStart != nil && l.DateEnd != nil && l.DateEnd.Before(*l.DateStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_end",
			Message: fmt.Sprintf("The end date must always be greater than the start date for: %s", l.Name),
		})
	}
	if l.TimeStart != nil && !validHour(*l.TimeStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_start",
			Message: fmt.Sprintf("Invalid start time: %v", *l.TimeStart),
		})
	}
	if l.TimeEnd != nil && !validHour(*l.TimeEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_end",
			Message: fmt.Sprintf("Invalid end time: %v", *l.TimeEnd),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyRuleInput copies name, code and category from the referenced rule input.
func (l *DeductionLine) ApplyRuleInput(ri ruleinput.RuleInput) error {
	if ri.Input.TypeConcept != ruleinput.TypeConceptDeduction {
		return ErrRuleInputConceptMismatch
	}
	l.RuleInputID = ri.ID
	l.Name = ri.Name
	l.Code = ri.Code
	l.Category = ri.Input.DeductionCategory
	return nil
}

func (l DeductionLine) Validate() error {
	if !l.Amount.IsPositive() {
		return validator.ValidationErrors{{
			Field:   "amount",
			Message: fmt.Sprintf("The deduction amount must always be greater than 0 for: %s", l.Name),
		}}
	}
	return nil
}

func validHour(h float64) bool {
	return h >= 0 && h < 24
}

func isUnsetHour(h *float64) bool {
	return h == nil || *h == 0
}

// daysBetween counts calendar days, ignoring the time of day.
func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}

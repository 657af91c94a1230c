package payslip

import (
	"testing"
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func hour(h float64) *float64 {
	return &h
}

func TestEarnLine_ComputeQuantity(t *testing.T) {
	tests := []struct {
		name string
		line EarnLine
		want string
	}{
		{
			name: "day category with both dates counts inclusive days",
			line: EarnLine{Category: ruleinput.EarnVacationCommon, DateStart: date(2024, 3, 1), DateEnd: date(2024, 3, 5)},
			want: "5",
		},
		{
			name: "day category same day is one",
			line: EarnLine{Category: ruleinput.EarnIncapacitiesCommon, DateStart: date(2024, 3, 1), DateEnd: date(2024, 3, 1)},
			want: "1",
		},
		{
			name: "day category missing end date",
			line: EarnLine{Category: ruleinput.EarnLegalStrikes, DateStart: date(2024, 3, 1)},
			want: "0",
		},
		{
			name: "hour category across days",
			line: EarnLine{
				Category:  ruleinput.EarnDailyOvertime,
				DateStart: date(2024, 3, 1), DateEnd: date(2024, 3, 2),
				TimeStart: hour(18), TimeEnd: hour(2),
			},
			want: "8",
		},
		{
			name: "hour category same day",
			line: EarnLine{
				Category:  ruleinput.EarnHoursNightSurcharge,
				DateStart: date(2024, 3, 1), DateEnd: date(2024, 3, 1),
				TimeStart: hour(20), TimeEnd: hour(23.5),
			},
			want: "3.5",
		},
		{
			name: "hour category with zero start hour counts as unset",
			line: EarnLine{
				Category:  ruleinput.EarnDailyOvertime,
				DateStart: date(2024, 3, 1), DateEnd: date(2024, 3, 1),
				TimeStart: hour(0), TimeEnd: hour(4),
			},
			want: "0",
		},
		{
			name: "hour category missing dates",
			line: EarnLine{Category: ruleinput.EarnOvertimeNightHours, TimeStart: hour(1), TimeEnd: hour(4)},
			want: "0",
		},
		{
			name: "other category is one",
			line: EarnLine{Category: ruleinput.EarnBonuses, DateStart: date(2024, 3, 1), DateEnd: date(2024, 3, 9)},
			want: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.line.ComputeQuantity()
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestEarnLine_ComputeTotal(t *testing.T) {
	line := EarnLine{
		Category:  ruleinput.EarnVacationCommon,
		DateStart: date(2024, 3, 1),
		DateEnd:   date(2024, 3, 3),
		Amount:    decimal.NewFromInt(50000),
	}

	line.Recompute()

	assert.True(t, decimal.NewFromInt(3).Equal(line.Quantity))
	assert.True(t, decimal.NewFromInt(150000).Equal(line.Total))
}

func TestEarnLine_Validate(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		line := EarnLine{Name: "Bonus", Amount: decimal.NewFromInt(1), TimeStart: hour(0), TimeEnd: hour(23.99)}
		assert.NoError(t, line.Validate())
	})

	t.Run("non positive amount", func(t *testing.T) {
		line := EarnLine{Name: "Bonus", Amount: decimal.Zero}
		err := line.Validate()

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "The earn amount must always be greater than 0 for: Bonus", errs.ToMap()["amount"])
	})

	t.Run("end before start", func(t *testing.T) {
		line := EarnLine{Name: "Leave", Amount: decimal.NewFromInt(1), DateStart: date(2024, 3, 5), DateEnd: date(2024, 3, 1)}
		err := line.Validate()

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Contains(t, errs.ToMap(), "date_end")
	})

	t.Run("hours out of range", func(t *testing.T) {
		line := EarnLine{Name: "Overtime", Amount: decimal.NewFromInt(1), TimeStart: hour(-1), TimeEnd: hour(24)}
		err := line.Validate()

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "Invalid start time: -1", errs.ToMap()["time_start"])
		assert.Equal(t, "Invalid end time: 24", errs.ToMap()["time_end"])
	})
}

func TestEarnLine_ApplyRuleInput(t *testing.T) {
	ri := ruleinput.RuleInput{
		ID:    "ri-1",
		Name:  "Night overtime",
		Code:  "HEN",
		Input: ruleinput.Input{TypeConcept: ruleinput.TypeConceptEarn, EarnCategory: ruleinput.EarnOvertimeNightHours},
	}

	line := EarnLine{Code: "user-code", Category: ruleinput.EarnBonuses}
	require.NoError(t, line.ApplyRuleInput(ri))

	assert.Equal(t, "ri-1", line.RuleInputID)
	assert.Equal(t, "Night overtime", line.Name)
	assert.Equal(t, "HEN", line.Code)
	assert.Equal(t, ruleinput.EarnOvertimeNightHours, line.Category)

	ri.Input.TypeConcept = ruleinput.TypeConceptDeduction
	assert.ErrorIs(t, line.ApplyRuleInput(ri), ErrRuleInputConceptMismatch)
}

func TestDeductionLine_ApplyRuleInputAndValidate(t *testing.T) {
	ri := ruleinput.RuleInput{
		ID:    "ri-2",
		Name:  "Health",
		Code:  "SAL",
		Input: ruleinput.Input{TypeConcept: ruleinput.TypeConceptDeduction, DeductionCategory: ruleinput.DeductionHealth},
	}

	line := DeductionLine{Amount: decimal.NewFromInt(-5)}
	require.NoError(t, line.ApplyRuleInput(ri))
	assert.Equal(t, ruleinput.DeductionHealth, line.Category)

	var errs validator.ValidationErrors
	require.ErrorAs(t, line.Validate(), &errs)
	assert.Equal(t, "The deduction amount must always be greater than 0 for: Health", errs.ToMap()["amount"])

	ri.Input.TypeConcept = ruleinput.TypeConceptEarn
	assert.ErrorIs(t, line.ApplyRuleInput(ri), ErrRuleInputConceptMismatch)
}

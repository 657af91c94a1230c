package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type SchedulePay string

const (
	SchedulePayMonthly      SchedulePay = "monthly"
	SchedulePayQuarterly    SchedulePay = "quarterly"
	SchedulePaySemiAnnually SchedulePay = "semi-annually"
	SchedulePayAnnually     SchedulePay = "annually"
	SchedulePayWeekly       SchedulePay = "weekly"
	SchedulePayBiWeekly     SchedulePay = "bi-weekly"
	SchedulePayBiMonthly    SchedulePay = "bi-monthly"
)

// PayrollPeriodID is the tax authority code of a payroll period. Zero means unset.
type PayrollPeriodID int

const (
	PayrollPeriodUnset     PayrollPeriodID = 0
	PayrollPeriodWeekly    PayrollPeriodID = 1
	PayrollPeriodBiWeekly  PayrollPeriodID = 4
	PayrollPeriodMonthly   PayrollPeriodID = 5
	PayrollPeriodOtherwise PayrollPeriodID = 6
)

var schedulePayPeriods = map[SchedulePay]PayrollPeriodID{
	SchedulePayMonthly:      PayrollPeriodMonthly,
	SchedulePayQuarterly:    PayrollPeriodOtherwise,
	SchedulePaySemiAnnually: PayrollPeriodOtherwise,
	SchedulePayAnnually:     PayrollPeriodOtherwise,
	SchedulePayWeekly:       PayrollPeriodWeekly,
	SchedulePayBiWeekly:     PayrollPeriodBiWeekly,
	SchedulePayBiMonthly:    PayrollPeriodOtherwise,
}

// PayrollPeriod maps the pay schedule to its payroll period.
func (s SchedulePay) PayrollPeriod() (PayrollPeriodID, error) {
	if s == "" {
		return PayrollPeriodUnset, nil
	}
	period, ok := schedulePayPeriods[s]
	if !ok {
		return PayrollPeriodUnset, ErrUnknownSchedulePay
	}
	return period, nil
}

type Contract struct {
	ID              string
	CompanyID       string
	EmployeeID      string
	Name            string
	Wage            decimal.Decimal
	DateStart       *time.Time
	DateEnd         *time.Time
	SchedulePay     SchedulePay
	TypeWorkerID    *int
	SubtypeWorkerID *int
	TypeContractID  *int
	IntegralSalary  bool
	HighRiskPension bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PayrollPeriodID is the derived period of the contract's schedule.
func (c Contract) PayrollPeriodID() (PayrollPeriodID, error) {
	return c.SchedulePay.PayrollPeriod()
}

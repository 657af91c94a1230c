package contract

type PayrollPeriodResponse struct {
	ContractID      string  `json:"contract_id"`
	SchedulePay     *string `json:"schedule_pay"`
	PayrollPeriodID *int    `json:"payroll_period_id"`
}

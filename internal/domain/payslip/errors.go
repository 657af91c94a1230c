package payslip

import "errors"

var (
	ErrPayslipNotFound          = errors.New("payslip not found")
	ErrLineNotFound             = errors.New("payslip line not found")
	ErrPayslipNotDraft          = errors.New("payslip is not in draft state, lines cannot be modified")
	ErrRuleInputConceptMismatch = errors.New("rule input concept does not match the line type")
	ErrPayslipHasNoPayload      = errors.New("payslip has no electronic payroll payload")
)

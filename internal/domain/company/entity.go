package company

import "time"

type Company struct {
	ID                           string
	Name                         string
	TypeDocumentIdentificationID *int
	Vat                          string
	PostalMunicipalityID         *int
	Street                       string

	// Electronic payroll settings
	EdiPayrollEnable              bool
	EdiPayrollConsolidatedEnable  bool
	EdiPayrollEnableValidateState bool
	EdiPayrollIsNotTest           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AutoValidates reports whether finalized payroll documents are submitted right away.
func (c Company) AutoValidates() bool {
	return c.EdiPayrollEnable && c.EdiPayrollConsolidatedEnable && !c.EdiPayrollEnableValidateState
}

// PayrollGatewayEnabled reports whether the company submits consolidated payroll documents.
func (c Company) PayrollGatewayEnabled() bool {
	return c.EdiPayrollEnable && c.EdiPayrollConsolidatedEnable
}

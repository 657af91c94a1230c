package company

import (
	"time"

	"github.com/quanamco/payroll-edi/internal/pkg/validator"
)

type CompanyResponse struct {
	ID                            string    `json:"id"`
	Name                          string    `json:"company_name"`
	TypeDocumentIdentificationID  *int      `json:"type_document_identification_id,omitempty"`
	Vat                           string    `json:"vat"`
	PostalMunicipalityID          *int      `json:"postal_municipality_id,omitempty"`
	Street                        string    `json:"street"`
	EdiPayrollEnable              bool      `json:"edi_payroll_enable"`
	EdiPayrollConsolidatedEnable  bool      `json:"edi_payroll_consolidated_enable"`
	EdiPayrollEnableValidateState bool      `json:"edi_payroll_enable_validate_state"`
	EdiPayrollIsNotTest           bool      `json:"edi_payroll_is_not_test"`
	CreatedAt                     time.Time `json:"created_at"`
	UpdatedAt                     time.Time `json:"updated_at"`
}

func NewCompanyResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:                            c.ID,
		Name:                          c.Name,
		TypeDocumentIdentificationID:  c.TypeDocumentIdentificationID,
		Vat:                           c.Vat,
		PostalMunicipalityID:          c.PostalMunicipalityID,
		Street:                        c.Street,
		EdiPayrollEnable:              c.EdiPayrollEnable,
		EdiPayrollConsolidatedEnable:  c.EdiPayrollConsolidatedEnable,
		EdiPayrollEnableValidateState: c.EdiPayrollEnableValidateState,
		EdiPayrollIsNotTest:           c.EdiPayrollIsNotTest,
		CreatedAt:                     c.CreatedAt,
		UpdatedAt:                     c.UpdatedAt,
	}
}

type UpdateEdiSettingsRequest struct {
	EdiPayrollEnable              *bool `json:"edi_payroll_enable,omitempty"`
	EdiPayrollConsolidatedEnable  *bool `json:"edi_payroll_consolidated_enable,omitempty"`
	EdiPayrollEnableValidateState *bool `json:"edi_payroll_enable_validate_state,omitempty"`
	EdiPayrollIsNotTest           *bool `json:"edi_payroll_is_not_test,omitempty"`
}

func (r *UpdateEdiSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EdiPayrollEnable == nil && r.EdiPayrollConsolidatedEnable == nil &&
		r.EdiPayrollEnableValidateState == nil && r.EdiPayrollIsNotTest == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one setting must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

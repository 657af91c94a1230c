package payslipedi

import (
	"strconv"
	"strings"

	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/domain/contract"
	"github.com/quanamco/payroll-edi/internal/domain/employee"
	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
)

// CheckPreconditions returns the first missing piece of master data needed to assemble the document.
// The order of the checks is part of the contract with the client.
func CheckPreconditions(doc PayslipEdi, c contract.Contract, e employee.Employee, co company.Company) error {
	if doc.Number == "" {
		return missing("number", "The payroll must have a consecutive number, 'Reference' field")
	}
	if period, err := c.PayrollPeriodID(); err != nil || period == contract.PayrollPeriodUnset {
		return missing("schedule_pay", "The contract must have the 'Scheduled Pay' field configured")
	}

	if validator.IsEmpty(co.Name) {
		return missing("company.name", "Your company does not have a name")
	}
	if co.TypeDocumentIdentificationID == nil {
		return missing("company.type_document_identification_id", "Your company does not have an identification type")
	}
	if validator.IsEmpty(co.Vat) {
		return missing("company.vat", "Your company does not have a document number")
	}
	if co.PostalMunicipalityID == nil {
		return missing("company.postal_municipality_id", "Your company does not have a postal municipality")
	}
	if validator.IsEmpty(co.Street) {
		return missing("company.street", "Your company does not have an address")
	}

	if c.TypeWorkerID == nil {
		return missing("contract.type_worker_id", "The contract must have the 'Type worker' field configured")
	}
	if c.SubtypeWorkerID == nil {
		return missing("contract.subtype_worker_id", "The contract must have the 'Subtype worker' field configured")
	}

	home := e.HomeAddress
	if home == nil {
		home = &employee.HomeAddress{}
	}
	if validator.IsEmpty(home.FirstName) {
		return missing("employee.first_name", "Employee does not have a first name")
	}
	if validator.IsEmpty(home.Surname) {
		return missing("employee.surname", "Employee does not have a surname")
	}
	if home.TypeDocumentIdentificationID == nil {
		return missing("employee.type_document_identification_id", "Employee does not have an identification type")
	}
	if *home.TypeDocumentIdentificationID == employee.DocumentTypeNIT {
		return missing("employee.type_document_identification_id", "The employee's document type cannot be NIT")
	}
	if validator.IsEmpty(home.Vat) {
		return missing("employee.vat", "Employee does not have an document number")
	}
	if home.PostalMunicipalityID == nil {
		return missing("employee.postal_municipality_id", "Employee does not have a postal municipality")
	}
	if validator.IsEmpty(home.Street) {
		return missing("employee.street", "Employee does not have an address.")
	}

	if validator.IsEmpty(c.Name) {
		return missing("contract.name", "Contract does not have a name")
	}
	if !c.Wage.IsPositive() {
		return missing("contract.wage", "The contract must have the 'Wage' field configured")
	}
	if c.TypeContractID == nil {
		return missing("contract.type_contract_id", "The contract must have the 'Type contract' field configured")
	}
	if c.DateStart == nil {
		return missing("contract.date_start", "The contract must have the 'Start Date' field configured")
	}

	if doc.PaymentFormID == nil {
		return missing("payment_form_id", "The payroll must have a payment form")
	}
	if doc.PaymentMethodID == nil {
		return missing("payment_method_id", "The payroll must have a payment method")
	}
	if doc.Month == 0 {
		return missing("month", "The payroll must have a month")
	}
	if doc.Year == 0 {
		return missing("year", "The payroll must have a year")
	}
	return nil
}

// ParseSequence splits a number such as "NE0042" into prefix "NE" and number 42.
// The placeholder number yields no sequence.
func ParseSequence(number string) (*payload.Sequence, error) {
	if number == "" || number == PlaceholderNumber {
		return nil, nil
	}
	cut := strings.LastIndexFunc(number, func(r rune) bool { return r < '0' || r > '9' }) + 1
	digits := number[cut:]
	if digits == "" {
		return nil, ErrSequenceNumberMissing
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return nil, ErrSequenceNumberInvalid
	}
	return &payload.Sequence{Prefix: number[:cut], Number: n}, nil
}

// PayrollReference identifies the origin document of an adjustment note.
func PayrollReference(origin PayslipEdi) *payload.PayrollReference {
	if origin.EdiIsValid {
		ref := &payload.PayrollReference{Number: origin.EdiNumber, UUID: origin.EdiUUID}
		if origin.EdiIssueDate != nil {
			ref.IssueDate = origin.EdiIssueDate.Format(payload.DateLayout)
		}
		return ref
	}
	return &payload.PayrollReference{
		Number:    origin.Number,
		IssueDate: origin.Date.Format(payload.DateLayout),
	}
}

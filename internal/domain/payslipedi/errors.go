package payslipedi

import (
	"errors"
	"fmt"
)

var (
	ErrPayslipEdiNotFound    = errors.New("payslip edi not found")
	ErrMissingField          = errors.New("required field is missing")
	ErrSequenceNumberMissing = errors.New("the payroll number must contain a numeric sequence")
	ErrSequenceNumberInvalid = errors.New("the payroll number sequence is out of range")
	ErrOriginRequired        = errors.New("origin payslip is required for adjustment notes")
	ErrAlreadyValidated      = errors.New("cannot cancel an electronic payroll already validated by DIAN")
	ErrCannotDelete          = errors.New("cannot delete a payslip edi which is not draft or cancelled")
	ErrRefundOfCreditNote    = errors.New("an adjustment note cannot be refunded")
	ErrNotDraft              = errors.New("payslip edi can only be modified in draft state")
	ErrNoPayslips            = errors.New("the payroll must include at least one payslip with a computed payload")
	ErrIncompletePayload     = errors.New("the assembled payload lacks payment or earn data")
	ErrEmptyIDs              = errors.New("at least one id is required")
)

// FieldError names the first missing or invalid precondition found while assembling a payload.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

func missing(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quanamco/payroll-edi/internal/domain/auth"
	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/domain/contract"
	"github.com/quanamco/payroll-edi/internal/domain/employee"
	"github.com/quanamco/payroll-edi/internal/domain/payslip"
	"github.com/quanamco/payroll-edi/internal/domain/payslipedi"
	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/quanamco/payroll-edi/internal/pkg/dian"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
)

// PostgreSQL error codes
const (
	pgCodeInvalidText         = "22P02"
	pgCodeForeignKeyViolation = "23503"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var pgErr *pgconn.PgError

	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Missing master data while assembling the electronic document
	var fieldErr *payslipedi.FieldError
	if errors.As(err, &fieldErr) {
		ValidationError(w, map[string]string{fieldErr.Field: fieldErr.Message})
		return
	}

	if errors.Is(err, dian.ErrNotConfigured) || errors.Is(err, dian.ErrResponseTooLarge) {
		BadGateway(w, err.Error(), nil)
		return
	}

	// Tax authority gateway failures
	var apiErr *dian.APIError
	if errors.As(err, &apiErr) {
		details := map[string]string{"status_code": strconv.Itoa(apiErr.StatusCode)}
		if apiErr.ErrorCode != "" {
			details["error_code"] = apiErr.ErrorCode
		}
		BadGateway(w, apiErr.Message, details)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrInvalidTokenClaims):
		Unauthorized(w, "Invalid token claims")
	case errors.Is(err, auth.ErrCompanyIDRequired):
		Forbidden(w, "A company is required for this operation")

	// Master data
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrNoFieldsToUpdate):
		BadRequest(w, "No fields to update", nil)
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrUnknownSchedulePay):
		BadRequest(w, "The contract has an unknown pay schedule", nil)

	// Rule inputs
	case errors.Is(err, ruleinput.ErrRuleInputNotFound):
		NotFound(w, "Rule input not found")
	case errors.Is(err, ruleinput.ErrRuleInputCodeExists):
		Conflict(w, "Rule input code already exists")
	case errors.Is(err, ruleinput.ErrInvalidTypeConcept), errors.Is(err, ruleinput.ErrInvalidCategory):
		BadRequest(w, err.Error(), nil)

	// Payslips
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrLineNotFound):
		NotFound(w, "Payslip line not found")
	case errors.Is(err, payslip.ErrPayslipNotDraft):
		Conflict(w, "Payslip is not in draft state")
	case errors.Is(err, payslip.ErrRuleInputConceptMismatch), errors.Is(err, payslip.ErrPayslipHasNoPayload):
		BadRequest(w, err.Error(), nil)

	// Electronic payroll documents
	case errors.Is(err, payslipedi.ErrPayslipEdiNotFound):
		NotFound(w, "Payslip edi not found")
	case errors.Is(err, payslipedi.ErrAlreadyValidated),
		errors.Is(err, payslipedi.ErrCannotDelete),
		errors.Is(err, payslipedi.ErrNotDraft):
		Conflict(w, err.Error())
	case errors.Is(err, payslipedi.ErrSequenceNumberMissing),
		errors.Is(err, payslipedi.ErrSequenceNumberInvalid),
		errors.Is(err, payslipedi.ErrOriginRequired),
		errors.Is(err, payslipedi.ErrRefundOfCreditNote),
		errors.Is(err, payslipedi.ErrNoPayslips),
		errors.Is(err, payslipedi.ErrIncompletePayload),
		errors.Is(err, payslipedi.ErrEmptyIDs):
		BadRequest(w, err.Error(), nil)

	// Database rejections that reach the API
	case errors.As(err, &pgErr) && pgErr.Code == pgCodeInvalidText:
		BadRequest(w, "Invalid identifier", nil)
	case errors.As(err, &pgErr) && pgErr.Code == pgCodeForeignKeyViolation:
		Conflict(w, "The record is referenced by another record")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quanamco/payroll-edi/internal/domain/auth"
	"github.com/quanamco/payroll-edi/internal/domain/payslip"
	"github.com/quanamco/payroll-edi/internal/domain/payslipedi"
	"github.com/quanamco/payroll-edi/internal/pkg/dian"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantDetail map[string]string
	}{
		{
			name:       "validation errors",
			err:        validator.ValidationErrors{{Field: "amount", Message: "must be positive"}},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
			wantDetail: map[string]string{"amount": "must be positive"},
		},
		{
			name:       "missing master data",
			err:        &payslipedi.FieldError{Field: "company.street", Message: "Your company does not have an address"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "VALIDATION_ERROR",
			wantDetail: map[string]string{"company.street": "Your company does not have an address"},
		},
		{
			name:       "gateway failure",
			err:        fmt.Errorf("submit: %w", &dian.APIError{StatusCode: 500, ErrorCode: "E1", Message: "down"}),
			wantStatus: http.StatusBadGateway,
			wantCode:   "BAD_GATEWAY",
			wantDetail: map[string]string{"status_code": "500", "error_code": "E1"},
		},
		{
			name:       "gateway response too large",
			err:        fmt.Errorf("submit: %w", dian.ErrResponseTooLarge),
			wantStatus: http.StatusBadGateway,
			wantCode:   "BAD_GATEWAY",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("load: %w", payslipedi.ErrPayslipEdiNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "validated document",
			err:        payslipedi.ErrAlreadyValidated,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "settled payslip",
			err:        payslip.ErrPayslipNotDraft,
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "origin required",
			err:        payslipedi.ErrOriginRequired,
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "sequence out of range",
			err:        fmt.Errorf("failed to assemble: %w", payslipedi.ErrSequenceNumberInvalid),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "missing company claim",
			err:        auth.ErrCompanyIDRequired,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "gateway not configured",
			err:        fmt.Errorf("failed to submit payslip edi NE1: %w", dian.ErrNotConfigured),
			wantStatus: http.StatusBadGateway,
			wantCode:   "BAD_GATEWAY",
		},
		{
			name:       "malformed uuid",
			err:        fmt.Errorf("failed to get payslip edis: %w", &pgconn.PgError{Code: "22P02"}),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "referenced record",
			err:        fmt.Errorf("failed to delete payslip edis: %w", &pgconn.PgError{Code: "23503"}),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
		},
		{
			name:       "other database error",
			err:        &pgconn.PgError{Code: "57014"},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			if tt.wantDetail != nil {
				assert.Equal(t, tt.wantDetail, body.Error.Details)
			}
		})
	}
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "Payslip edi created successfully", map[string]string{"id": "edi-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"Payslip edi created successfully","data":{"id":"edi-1"}}`, rec.Body.String())
}

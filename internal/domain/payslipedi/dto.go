package payslipedi

import (
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayslipEdiRequest struct {
	ContractID      string   `json:"contract_id" validate:"required"`
	EmployeeID      string   `json:"employee_id" validate:"required"`
	Note            string   `json:"note,omitempty"`
	Number          string   `json:"number,omitempty"`
	CreditNote      bool     `json:"credit_note,omitempty"`
	OriginPayslipID *string  `json:"origin_payslip_id,omitempty"`
	Date            *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Month           *int     `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Year            *int     `json:"year,omitempty" validate:"omitempty,min=1900,max=9999"`
	PayslipIDs      []string `json:"payslip_ids" validate:"dive,required"`
	PaymentFormID   *int     `json:"payment_form_id,omitempty"`
	PaymentMethodID *int     `json:"payment_method_id,omitempty"`
}

func (r *CreatePayslipEdiRequest) Validate() error {
	return validator.Struct(r)
}

type UpdatePayslipEdiRequest struct {
	Note            *string  `json:"note,omitempty"`
	Number          *string  `json:"number,omitempty"`
	CreditNote      *bool    `json:"credit_note,omitempty"`
	OriginPayslipID *string  `json:"origin_payslip_id,omitempty"`
	Date            *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Month           *int     `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Year            *int     `json:"year,omitempty" validate:"omitempty,min=1900,max=9999"`
	PayslipIDs      []string `json:"payslip_ids,omitempty" validate:"omitempty,dive,required"`
	PaymentFormID   *int     `json:"payment_form_id,omitempty"`
	PaymentMethodID *int     `json:"payment_method_id,omitempty"`
}

func (r *UpdatePayslipEdiRequest) Validate() error {
	return validator.Struct(r)
}

// BatchRequest carries the ids of a batch action.
type BatchRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,unique,dive,required,uuid"`
}

func (r *BatchRequest) Validate() error {
	return validator.Struct(r)
}

type ListFilter struct {
	State      *State
	CreditNote *bool
	EmployeeID *string
}

type PayslipEdiResponse struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	Number                string           `json:"number"`
	Note                  string           `json:"note,omitempty"`
	ContractID            string           `json:"contract_id"`
	EmployeeID            string           `json:"employee_id"`
	CreditNote            bool             `json:"credit_note"`
	OriginPayslipID       *string          `json:"origin_payslip_id,omitempty"`
	State                 string           `json:"state"`
	Date                  string           `json:"date"`
	Month                 int              `json:"month"`
	Year                  int              `json:"year"`
	PayslipIDs            []string         `json:"payslip_ids"`
	PaymentFormID         *int             `json:"payment_form_id,omitempty"`
	PaymentMethodID       *int             `json:"payment_method_id,omitempty"`
	AccruedTotalAmount    decimal.Decimal  `json:"accrued_total_amount"`
	DeductionsTotalAmount decimal.Decimal  `json:"deductions_total_amount"`
	TotalAmount           decimal.Decimal  `json:"total_amount"`
	WorkedDaysTotal       int              `json:"worked_days_total"`
	EdiPayload            *payload.Payload `json:"edi_payload,omitempty"`
	EdiSync               bool             `json:"edi_sync"`
	EdiIsNotTest          bool             `json:"edi_is_not_test"`
	EdiIsValid            bool             `json:"edi_is_valid"`
	EdiUUID               string           `json:"edi_uuid,omitempty"`
	EdiNumber             string           `json:"edi_number,omitempty"`
	EdiIssueDate          *string          `json:"edi_issue_date,omitempty"`
	EdiZipKey             string           `json:"edi_zip_key,omitempty"`
	EdiStatusCode         string           `json:"edi_status_code,omitempty"`
	EdiStatusDescription  string           `json:"edi_status_description,omitempty"`
	EdiErrors             []string         `json:"edi_errors,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

func NewPayslipEdiResponse(p PayslipEdi) PayslipEdiResponse {
	resp := PayslipEdiResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Number:                p.Number,
		Note:                  p.Note,
		ContractID:            p.ContractID,
		EmployeeID:            p.EmployeeID,
		CreditNote:            p.CreditNote,
		OriginPayslipID:       p.OriginPayslipID,
		State:                 string(p.State),
		Date:                  p.Date.Format(payload.DateLayout),
		Month:                 p.Month,
		Year:                  p.Year,
		PayslipIDs:            p.PayslipIDs,
		PaymentFormID:         p.PaymentFormID,
		PaymentMethodID:       p.PaymentMethodID,
		AccruedTotalAmount:    p.AccruedTotalAmount,
		DeductionsTotalAmount: p.DeductionsTotalAmount,
		TotalAmount:           p.TotalAmount,
		WorkedDaysTotal:       p.WorkedDaysTotal,
		EdiPayload:            p.EdiPayload,
		EdiSync:               p.EdiSync,
		EdiIsNotTest:          p.EdiIsNotTest,
		EdiIsValid:            p.EdiIsValid,
		EdiUUID:               p.EdiUUID,
		EdiNumber:             p.EdiNumber,
		EdiZipKey:             p.EdiZipKey,
		EdiStatusCode:         p.EdiStatusCode,
		EdiStatusDescription:  p.EdiStatusDescription,
		EdiErrors:             p.EdiErrors,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
	if resp.PayslipIDs == nil {
		resp.PayslipIDs = []string{}
	}
	if p.EdiIssueDate != nil {
		s := p.EdiIssueDate.Format(payload.DateLayout)
		resp.EdiIssueDate = &s
	}
	return resp
}

func NewPayslipEdiResponses(docs []PayslipEdi) []PayslipEdiResponse {
	out := make([]PayslipEdiResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, NewPayslipEdiResponse(d))
	}
	return out
}

// RefundAction tells the client where to look at the created adjustment notes.
type RefundAction struct {
	Name     string       `json:"name"`
	ResModel string       `json:"res_model"`
	Domain   RefundDomain `json:"domain"`
}

// RefundDomain filters by the created ids, or by credit_note when none were created.
type RefundDomain struct {
	IDs        []string `json:"ids,omitempty"`
	CreditNote bool     `json:"credit_note,omitempty"`
}

type RefundResponse struct {
	IDs    []string     `json:"ids"`
	Action RefundAction `json:"action"`
}

func NewRefundResponse(ids []string) RefundResponse {
	resp := RefundResponse{
		IDs: ids,
		Action: RefundAction{
			Name:     "Refund Edi Payslip",
			ResModel: "hr.payslip.edi",
		},
	}
	if len(ids) > 0 {
		resp.Action.Domain.IDs = ids
	} else {
		resp.IDs = []string{}
		resp.Action.Domain.CreditNote = true
	}
	return resp
}

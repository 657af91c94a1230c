package payslip

import (
	"time"

	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== LINE DTOs ==========

type CreateEarnLineRequest struct {
	RuleInputID string          `json:"rule_input_id" validate:"required"`
	Sequence    *int            `json:"sequence,omitempty" validate:"omitempty,gte=0"`
	Amount      decimal.Decimal `json:"amount"`
	DateStart   *string         `json:"date_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateEnd     *string         `json:"date_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeStart   *float64        `json:"time_start,omitempty"`
	TimeEnd     *float64        `json:"time_end,omitempty"`
}

func (r *CreateEarnLineRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateEarnLineRequest struct {
	RuleInputID *string          `json:"rule_input_id,omitempty" validate:"omitempty,min=1"`
	Sequence    *int             `json:"sequence,omitempty" validate:"omitempty,gte=0"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	DateStart   *string          `json:"date_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateEnd     *string          `json:"date_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeStart   *float64         `json:"time_start,omitempty"`
	TimeEnd     *float64         `json:"time_end,omitempty"`
}

func (r *UpdateEarnLineRequest) Validate() error {
	return validator.Struct(r)
}

type CreateDeductionLineRequest struct {
	RuleInputID string          `json:"rule_input_id" validate:"required"`
	Sequence    *int            `json:"sequence,omitempty" validate:"omitempty,gte=0"`
	Amount      decimal.Decimal `json:"amount"`
}

func (r *CreateDeductionLineRequest) Validate() error {
	return validator.Struct(r)
}

type UpdateDeductionLineRequest struct {
	RuleInputID *string          `json:"rule_input_id,omitempty" validate:"omitempty,min=1"`
	Sequence    *int             `json:"sequence,omitempty" validate:"omitempty,gte=0"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

func (r *UpdateDeductionLineRequest) Validate() error {
	return validator.Struct(r)
}

type EarnLineResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Sequence    int             `json:"sequence"`
	RuleInputID string          `json:"rule_input_id"`
	Code        string          `json:"code"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	DateStart   *string         `json:"date_start,omitempty"`
	DateEnd     *string         `json:"date_end,omitempty"`
	TimeStart   *float64        `json:"time_start,omitempty"`
	TimeEnd     *float64        `json:"time_end,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

type DeductionLineResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Sequence    int             `json:"sequence"`
	RuleInputID string          `json:"rule_input_id"`
	Code        string          `json:"code"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// ========== PAYSLIP DTOs ==========

type PayslipResponse struct {
	ID              string                  `json:"id"`
	EmployeeID      string                  `json:"employee_id"`
	ContractID      string                  `json:"contract_id"`
	Number          string                  `json:"number"`
	DateFrom        string                  `json:"date_from"`
	DateTo          string                  `json:"date_to"`
	State           string                  `json:"state"`
	PaymentFormID   *int                    `json:"payment_form_id,omitempty"`
	PaymentMethodID *int                    `json:"payment_method_id,omitempty"`
	WorkedDays      int                     `json:"worked_days"`
	EarnLines       []EarnLineResponse      `json:"earn_lines"`
	DeductionLines  []DeductionLineResponse `json:"deduction_lines"`
	EdiPayload      *payload.Payload        `json:"edi_payload,omitempty"`
}

func NewEarnLineResponse(l EarnLine) EarnLineResponse {
	return EarnLineResponse{
		ID:          l.ID,
		Name:        l.Name,
		Sequence:    l.Sequence,
		RuleInputID: l.RuleInputID,
		Code:        l.Code,
		Category:    string(l.Category),
		Amount:      l.Amount,
		DateStart:   formatDate(l.DateStart),
		DateEnd:     formatDate(l.DateEnd),
		TimeStart:   l.TimeStart,
		TimeEnd:     l.TimeEnd,
		Quantity:    l.Quantity,
		Total:       l.Total,
	}
}

func NewDeductionLineResponse(l DeductionLine) DeductionLineResponse {
	return DeductionLineResponse{
		ID:          l.ID,
		Name:        l.Name,
		Sequence:    l.Sequence,
		RuleInputID: l.RuleInputID,
		Code:        l.Code,
		Category:    string(l.Category),
		Amount:      l.Amount,
	}
}

func NewPayslipResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		ContractID:      p.ContractID,
		Number:          p.Number,
		DateFrom:        p.DateFrom.Format(payload.DateLayout),
		DateTo:          p.DateTo.Format(payload.DateLayout),
		State:           string(p.State),
		PaymentFormID:   p.PaymentFormID,
		PaymentMethodID: p.PaymentMethodID,
		WorkedDays:      p.WorkedDays,
		EarnLines:       make([]EarnLineResponse, 0, len(p.EarnLines)),
		DeductionLines:  make([]DeductionLineResponse, 0, len(p.DeductionLines)),
		EdiPayload:      p.EdiPayload,
	}
	for _, l := range p.EarnLines {
		resp.EarnLines = append(resp.EarnLines, NewEarnLineResponse(l))
	}
	for _, l := range p.DeductionLines {
		resp.DeductionLines = append(resp.DeductionLines, NewDeductionLineResponse(l))
	}
	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(payload.DateLayout)
	return &s
}

// ParseDate parses an optional yyyy-mm-dd value.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(payload.DateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

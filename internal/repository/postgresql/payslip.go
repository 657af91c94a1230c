package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/domain/payslip"
	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

// ========== PAYSLIPS ==========

func (r *payslipRepository) GetByID(ctx context.Context, id string, companyID string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, contract_id, number, date_from, date_to, payment_date,
			   state, payment_form_id, payment_method_id, worked_days, edi_payload,
			   created_at, updated_at
		FROM payslips
		WHERE id = $1 AND company_id = $2
	`

	var (
		p          payslip.Payslip
		state      string
		payloadRaw []byte
	)
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.EmployeeID, &p.ContractID, &p.Number, &p.DateFrom, &p.DateTo, &p.PaymentDate,
		&state, &p.PaymentFormID, &p.PaymentMethodID, &p.WorkedDays, &payloadRaw,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip with id %s: %w", id, err)
	}
	p.State = payslip.PayslipState(state)
	if len(payloadRaw) > 0 {
		var doc payload.Payload
		if err := json.Unmarshal(payloadRaw, &doc); err != nil {
			return payslip.Payslip{}, fmt.Errorf("failed to decode payload of payslip %s: %w", id, err)
		}
		p.EdiPayload = &doc
	}

	if p.EarnLines, err = r.listEarnLines(ctx, q, id); err != nil {
		return payslip.Payslip{}, err
	}
	if p.DeductionLines, err = r.listDeductionLines(ctx, q, id); err != nil {
		return payslip.Payslip{}, err
	}

	return p, nil
}

func (r *payslipRepository) UpdatePayload(ctx context.Context, id string, companyID string, p *payload.Payload) error {
	q := GetQuerier(ctx, r.db)

	var raw []byte
	if p != nil {
		var err error
		if raw, err = json.Marshal(p); err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
	}

	tag, err := q.Exec(ctx, `
		UPDATE payslips SET edi_payload = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3
	`, raw, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to update payload of payslip %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}
	return nil
}

// ========== EARN LINES ==========

const earnLineColumns = `
	id, payslip_id, name, sequence, rule_input_id, code, category, amount,
	date_start, date_end, time_start, time_end, quantity, total
`

func scanEarnLine(row pgx.Row) (payslip.EarnLine, error) {
	var (
		l        payslip.EarnLine
		category string
	)
	err := row.Scan(
		&l.ID, &l.PayslipID, &l.Name, &l.Sequence, &l.RuleInputID, &l.Code, &category, &l.Amount,
		&l.DateStart, &l.DateEnd, &l.TimeStart, &l.TimeEnd, &l.Quantity, &l.Total,
	)
	l.Category = ruleinput.EarnCategory(category)
	return l, err
}

func (r *payslipRepository) listEarnLines(ctx context.Context, q database.Querier, payslipID string) ([]payslip.EarnLine, error) {
	rows, err := q.Query(ctx, `SELECT `+earnLineColumns+`
		FROM payslip_earn_lines
		WHERE payslip_id = $1
		ORDER BY sequence, id
	`, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list earn lines: %w", err)
	}
	defer rows.Close()

	var lines []payslip.EarnLine
	for rows.Next() {
		l, err := scanEarnLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan earn line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *payslipRepository) GetEarnLine(ctx context.Context, payslipID string, lineID string) (payslip.EarnLine, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanEarnLine(q.QueryRow(ctx, `SELECT `+earnLineColumns+`
		FROM payslip_earn_lines
		WHERE id = $1 AND payslip_id = $2
	`, lineID, payslipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.EarnLine{}, payslip.ErrLineNotFound
		}
		return payslip.EarnLine{}, fmt.Errorf("failed to get earn line: %w", err)
	}
	return l, nil
}

func (r *payslipRepository) CreateEarnLine(ctx context.Context, line payslip.EarnLine) (payslip.EarnLine, error) {
	q := GetQuerier(ctx, r.db)

	created, err := scanEarnLine(q.QueryRow(ctx, `
		INSERT INTO payslip_earn_lines (
			payslip_id, name, sequence, rule_input_id, code, category, amount,
			date_start, date_end, time_start, time_end, quantity, total
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+earnLineColumns,
		line.PayslipID, line.Name, line.Sequence, line.RuleInputID, line.Code, string(line.Category), line.Amount,
		line.DateStart, line.DateEnd, line.TimeStart, line.TimeEnd, line.Quantity, line.Total,
	))
	if err != nil {
		return payslip.EarnLine{}, fmt.Errorf("failed to create earn line: %w", err)
	}
	return created, nil
}

func (r *payslipRepository) UpdateEarnLine(ctx context.Context, line payslip.EarnLine) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payslip_earn_lines SET
			name = $1, sequence = $2, rule_input_id = $3, code = $4, category = $5, amount = $6,
			date_start = $7, date_end = $8, time_start = $9, time_end = $10, quantity = $11, total = $12
		WHERE id = $13 AND payslip_id = $14
	`,
		line.Name, line.Sequence, line.RuleInputID, line.Code, string(line.Category), line.Amount,
		line.DateStart, line.DateEnd, line.TimeStart, line.TimeEnd, line.Quantity, line.Total,
		line.ID, line.PayslipID,
	)
	if err != nil {
		return fmt.Errorf("failed to update earn line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrLineNotFound
	}
	return nil
}

func (r *payslipRepository) DeleteEarnLine(ctx context.Context, payslipID string, lineID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslip_earn_lines WHERE id = $1 AND payslip_id = $2`, lineID, payslipID)
	if err != nil {
		return fmt.Errorf("failed to delete earn line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrLineNotFound
	}
	return nil
}

// ========== DEDUCTION LINES ==========

const deductionLineColumns = `id, payslip_id, name, sequence, rule_input_id, code, category, amount`

func scanDeductionLine(row pgx.Row) (payslip.DeductionLine, error) {
	var (
		l        payslip.DeductionLine
		category string
	)
	err := row.Scan(&l.ID, &l.PayslipID, &l.Name, &l.Sequence, &l.RuleInputID, &l.Code, &category, &l.Amount)
	l.Category = ruleinput.DeductionCategory(category)
	return l, err
}

func (r *payslipRepository) listDeductionLines(ctx context.Context, q database.Querier, payslipID string) ([]payslip.DeductionLine, error) {
	rows, err := q.Query(ctx, `SELECT `+deductionLineColumns+`
		FROM payslip_deduction_lines
		WHERE payslip_id = $1
		ORDER BY sequence, id
	`, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deduction lines: %w", err)
	}
	defer rows.Close()

	var lines []payslip.DeductionLine
	for rows.Next() {
		l, err := scanDeductionLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deduction line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *payslipRepository) GetDeductionLine(ctx context.Context, payslipID string, lineID string) (payslip.DeductionLine, error) {
	q := GetQuerier(ctx, r.db)

	l, err := scanDeductionLine(q.QueryRow(ctx, `SELECT `+deductionLineColumns+`
		FROM payslip_deduction_lines
		WHERE id = $1 AND payslip_id = $2
	`, lineID, payslipID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.DeductionLine{}, payslip.ErrLineNotFound
		}
		return payslip.DeductionLine{}, fmt.Errorf("failed to get deduction line: %w", err)
	}
	return l, nil
}

func (r *payslipRepository) CreateDeductionLine(ctx context.Context, line payslip.DeductionLine) (payslip.DeductionLine, error) {
	q := GetQuerier(ctx, r.db)

	created, err := scanDeductionLine(q.QueryRow(ctx, `
		INSERT INTO payslip_deduction_lines (payslip_id, name, sequence, rule_input_id, code, category, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+deductionLineColumns,
		line.PayslipID, line.Name, line.Sequence, line.RuleInputID, line.Code, string(line.Category), line.Amount,
	))
	if err != nil {
		return payslip.DeductionLine{}, fmt.Errorf("failed to create deduction line: %w", err)
	}
	return created, nil
}

func (r *payslipRepository) UpdateDeductionLine(ctx context.Context, line payslip.DeductionLine) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE payslip_deduction_lines SET
			name = $1, sequence = $2, rule_input_id = $3, code = $4, category = $5, amount = $6
		WHERE id = $7 AND payslip_id = $8
	`, line.Name, line.Sequence, line.RuleInputID, line.Code, string(line.Category), line.Amount, line.ID, line.PayslipID)
	if err != nil {
		return fmt.Errorf("failed to update deduction line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrLineNotFound
	}
	return nil
}

func (r *payslipRepository) DeleteDeductionLine(ctx context.Context, payslipID string, lineID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslip_deduction_lines WHERE id = $1 AND payslip_id = $2`, lineID, payslipID)
	if err != nil {
		return fmt.Errorf("failed to delete deduction line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrLineNotFound
	}
	return nil
}

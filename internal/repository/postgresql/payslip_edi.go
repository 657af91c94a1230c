package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/domain/payslipedi"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
)

type payslipEdiRepository struct {
	db *database.DB
}

func NewPayslipEdiRepository(db *database.DB) payslipedi.PayslipEdiRepository {
	return &payslipEdiRepository{db: db}
}

const payslipEdiColumns = `
	id, company_id, name, number, note, contract_id, employee_id, credit_note, origin_payslip_id,
	state, date, month, year, payment_form_id, payment_method_id,
	accrued_total_amount, deductions_total_amount, total_amount, worked_days_total,
	edi_payload, edi_sync, edi_is_not_test, edi_is_valid, edi_uuid, edi_number, edi_issue_date,
	edi_zip_key, edi_status_code, edi_status_description, edi_errors, created_at, updated_at
`

func scanPayslipEdi(row pgx.Row) (payslipedi.PayslipEdi, error) {
	var (
		d          payslipedi.PayslipEdi
		state      string
		payloadRaw []byte
		errorsRaw  []byte
	)
	err := row.Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.Number, &d.Note, &d.ContractID, &d.EmployeeID, &d.CreditNote, &d.OriginPayslipID,
		&state, &d.Date, &d.Month, &d.Year, &d.PaymentFormID, &d.PaymentMethodID,
		&d.AccruedTotalAmount, &d.DeductionsTotalAmount, &d.TotalAmount, &d.WorkedDaysTotal,
		&payloadRaw, &d.EdiSync, &d.EdiIsNotTest, &d.EdiIsValid, &d.EdiUUID, &d.EdiNumber, &d.EdiIssueDate,
		&d.EdiZipKey, &d.EdiStatusCode, &d.EdiStatusDescription, &errorsRaw, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return payslipedi.PayslipEdi{}, err
	}
	d.State = payslipedi.State(state)
	if len(payloadRaw) > 0 {
		var doc payload.Payload
		if err := json.Unmarshal(payloadRaw, &doc); err != nil {
			return payslipedi.PayslipEdi{}, fmt.Errorf("failed to decode payload: %w", err)
		}
		d.EdiPayload = &doc
	}
	if len(errorsRaw) > 0 {
		if err := json.Unmarshal(errorsRaw, &d.EdiErrors); err != nil {
			return payslipedi.PayslipEdi{}, fmt.Errorf("failed to decode gateway errors: %w", err)
		}
	}
	return d, nil
}

func (r *payslipEdiRepository) loadPayslipIDs(ctx context.Context, q database.Querier, docs []payslipedi.PayslipEdi) error {
	if len(docs) == 0 {
		return nil
	}
	index := make(map[string]int, len(docs))
	ids := make([]string, 0, len(docs))
	for i, d := range docs {
		index[d.ID] = i
		ids = append(ids, d.ID)
	}

	rows, err := q.Query(ctx, `
		SELECT payslip_edi_id, payslip_id
		FROM payslip_edi_payslips
		WHERE payslip_edi_id = ANY($1)
		ORDER BY payslip_edi_id, position
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to load payslip links: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var docID, payslipID string
		if err := rows.Scan(&docID, &payslipID); err != nil {
			return fmt.Errorf("failed to scan payslip link: %w", err)
		}
		i := index[docID]
		docs[i].PayslipIDs = append(docs[i].PayslipIDs, payslipID)
	}
	return rows.Err()
}

func (r *payslipEdiRepository) GetByID(ctx context.Context, id string, companyID string) (payslipedi.PayslipEdi, error) {
	docs, err := r.GetByIDs(ctx, []string{id}, companyID)
	if err != nil {
		return payslipedi.PayslipEdi{}, err
	}
	return docs[0], nil
}

func (r *payslipEdiRepository) GetByIDs(ctx context.Context, ids []string, companyID string) ([]payslipedi.PayslipEdi, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+payslipEdiColumns+`
		FROM payslip_edis
		WHERE id = ANY($1) AND company_id = $2
	`, ids, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payslip edis: %w", err)
	}
	byID := make(map[string]payslipedi.PayslipEdi, len(ids))
	for rows.Next() {
		d, err := scanPayslipEdi(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan payslip edi: %w", err)
		}
		byID[d.ID] = d
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslip edis: %w", err)
	}

	docs := make([]payslipedi.PayslipEdi, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", payslipedi.ErrPayslipEdiNotFound, id)
		}
		docs = append(docs, d)
	}

	if err := r.loadPayslipIDs(ctx, q, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *payslipEdiRepository) List(ctx context.Context, companyID string, filter payslipedi.ListFilter) ([]payslipedi.PayslipEdi, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"company_id = $1"}
	args := []interface{}{companyID}
	if filter.State != nil {
		args = append(args, string(*filter.State))
		conditions = append(conditions, fmt.Sprintf("state = $%d", len(args)))
	}
	if filter.CreditNote != nil {
		args = append(args, *filter.CreditNote)
		conditions = append(conditions, fmt.Sprintf("credit_note = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}

	query := `SELECT ` + payslipEdiColumns + `
		FROM payslip_edis
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY year DESC, month DESC, number DESC, id
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip edis: %w", err)
	}
	var docs []payslipedi.PayslipEdi
	for rows.Next() {
		d, err := scanPayslipEdi(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan payslip edi: %w", err)
		}
		docs = append(docs, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payslip edis: %w", err)
	}

	if err := r.loadPayslipIDs(ctx, q, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *payslipEdiRepository) Create(ctx context.Context, doc payslipedi.PayslipEdi) (payslipedi.PayslipEdi, error) {
	q := GetQuerier(ctx, r.db)

	payloadRaw, errorsRaw, err := encodeDocumentJSON(doc)
	if err != nil {
		return payslipedi.PayslipEdi{}, err
	}

	created, err := scanPayslipEdi(q.QueryRow(ctx, `
		INSERT INTO payslip_edis (
			id, company_id, name, number, note, contract_id, employee_id, credit_note, origin_payslip_id,
			state, date, month, year, payment_form_id, payment_method_id,
			accrued_total_amount, deductions_total_amount, total_amount, worked_days_total,
			edi_payload, edi_sync, edi_is_not_test, edi_is_valid, edi_uuid, edi_number, edi_issue_date,
			edi_zip_key, edi_status_code, edi_status_description, edi_errors
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30
		)
		RETURNING `+payslipEdiColumns,
		doc.ID, doc.CompanyID, doc.Name, doc.Number, doc.Note, doc.ContractID, doc.EmployeeID, doc.CreditNote, doc.OriginPayslipID,
		string(doc.State), doc.Date, doc.Month, doc.Year, doc.PaymentFormID, doc.PaymentMethodID,
		doc.AccruedTotalAmount, doc.DeductionsTotalAmount, doc.TotalAmount, doc.WorkedDaysTotal,
		payloadRaw, doc.EdiSync, doc.EdiIsNotTest, doc.EdiIsValid, doc.EdiUUID, doc.EdiNumber, doc.EdiIssueDate,
		doc.EdiZipKey, doc.EdiStatusCode, doc.EdiStatusDescription, errorsRaw,
	))
	if err != nil {
		return payslipedi.PayslipEdi{}, fmt.Errorf("failed to create payslip edi: %w", err)
	}

	if err := r.replacePayslipLinks(ctx, q, created.ID, doc.PayslipIDs); err != nil {
		return payslipedi.PayslipEdi{}, err
	}
	created.PayslipIDs = append([]string(nil), doc.PayslipIDs...)
	return created, nil
}

func (r *payslipEdiRepository) Update(ctx context.Context, doc payslipedi.PayslipEdi) error {
	q := GetQuerier(ctx, r.db)

	payloadRaw, errorsRaw, err := encodeDocumentJSON(doc)
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx, `
		UPDATE payslip_edis SET
			name = $1, number = $2, note = $3, credit_note = $4, origin_payslip_id = $5,
			state = $6, date = $7, month = $8, year = $9, payment_form_id = $10, payment_method_id = $11,
			accrued_total_amount = $12, deductions_total_amount = $13, total_amount = $14, worked_days_total = $15,
			edi_payload = $16, edi_sync = $17, edi_is_not_test = $18, edi_is_valid = $19, edi_uuid = $20,
			edi_number = $21, edi_issue_date = $22, edi_zip_key = $23, edi_status_code = $24,
			edi_status_description = $25, edi_errors = $26, updated_at = NOW()
		WHERE id = $27 AND company_id = $28
	`,
		doc.Name, doc.Number, doc.Note, doc.CreditNote, doc.OriginPayslipID,
		string(doc.State), doc.Date, doc.Month, doc.Year, doc.PaymentFormID, doc.PaymentMethodID,
		doc.AccruedTotalAmount, doc.DeductionsTotalAmount, doc.TotalAmount, doc.WorkedDaysTotal,
		payloadRaw, doc.EdiSync, doc.EdiIsNotTest, doc.EdiIsValid, doc.EdiUUID,
		doc.EdiNumber, doc.EdiIssueDate, doc.EdiZipKey, doc.EdiStatusCode,
		doc.EdiStatusDescription, errorsRaw,
		doc.ID, doc.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payslip edi %s: %w", doc.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return payslipedi.ErrPayslipEdiNotFound
	}

	return r.replacePayslipLinks(ctx, q, doc.ID, doc.PayslipIDs)
}

func (r *payslipEdiRepository) Delete(ctx context.Context, ids []string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslip_edis WHERE id = ANY($1) AND company_id = $2`, ids, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payslip edis: %w", err)
	}
	if int(tag.RowsAffected()) != len(ids) {
		return payslipedi.ErrPayslipEdiNotFound
	}
	return nil
}

func (r *payslipEdiRepository) replacePayslipLinks(ctx context.Context, q database.Querier, docID string, payslipIDs []string) error {
	if _, err := q.Exec(ctx, `DELETE FROM payslip_edi_payslips WHERE payslip_edi_id = $1`, docID); err != nil {
		return fmt.Errorf("failed to clear payslip links: %w", err)
	}
	for position, payslipID := range payslipIDs {
		_, err := q.Exec(ctx, `
			INSERT INTO payslip_edi_payslips (payslip_edi_id, payslip_id, position)
			VALUES ($1, $2, $3)
		`, docID, payslipID, position)
		if err != nil {
			return fmt.Errorf("failed to link payslip %s: %w", payslipID, err)
		}
	}
	return nil
}

func encodeDocumentJSON(doc payslipedi.PayslipEdi) (payloadRaw []byte, errorsRaw []byte, err error) {
	if doc.EdiPayload != nil {
		if payloadRaw, err = json.Marshal(doc.EdiPayload); err != nil {
			return nil, nil, fmt.Errorf("failed to encode payload: %w", err)
		}
	}
	gatewayErrors := doc.EdiErrors
	if gatewayErrors == nil {
		gatewayErrors = []string{}
	}
	if errorsRaw, err = json.Marshal(gatewayErrors); err != nil {
		return nil, nil, fmt.Errorf("failed to encode gateway errors: %w", err)
	}
	return payloadRaw, errorsRaw, nil
}


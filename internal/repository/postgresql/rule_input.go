package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
)

type ruleInputRepositoryImpl struct {
	db *database.DB
}

func NewRuleInputRepository(db *database.DB) ruleinput.RuleInputRepository {
	return &ruleInputRepositoryImpl{db: db}
}

const ruleInputColumns = `
	ri.id, ri.company_id, ri.name, ri.code, ri.created_at, ri.updated_at,
	pi.id, pi.name, pi.type_concept, COALESCE(pi.earn_category, ''), COALESCE(pi.deduction_category, '')
`

func scanRuleInput(row pgx.Row) (ruleinput.RuleInput, error) {
	var (
		ri                ruleinput.RuleInput
		typeConcept       string
		earnCategory      string
		deductionCategory string
	)
	err := row.Scan(
		&ri.ID, &ri.CompanyID, &ri.Name, &ri.Code, &ri.CreatedAt, &ri.UpdatedAt,
		&ri.Input.ID, &ri.Input.Name, &typeConcept, &earnCategory, &deductionCategory,
	)
	if err != nil {
		return ruleinput.RuleInput{}, err
	}
	ri.Input.TypeConcept = ruleinput.TypeConcept(typeConcept)
	ri.Input.EarnCategory = ruleinput.EarnCategory(earnCategory)
	ri.Input.DeductionCategory = ruleinput.DeductionCategory(deductionCategory)
	return ri, nil
}

// GetByID implements ruleinput.RuleInputRepository.
func (r *ruleInputRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (ruleinput.RuleInput, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ruleInputColumns + `
		FROM rule_inputs ri
		JOIN payroll_inputs pi ON pi.id = ri.input_id
		WHERE ri.id = $1 AND ri.company_id = $2
	`

	ri, err := scanRuleInput(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ruleinput.RuleInput{}, ruleinput.ErrRuleInputNotFound
		}
		return ruleinput.RuleInput{}, fmt.Errorf("failed to get rule input with id %s: %w", id, err)
	}
	return ri, nil
}

// List implements ruleinput.RuleInputRepository.
func (r *ruleInputRepositoryImpl) List(ctx context.Context, companyID string, concept *ruleinput.TypeConcept) ([]ruleinput.RuleInput, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + ruleInputColumns + `
		FROM rule_inputs ri
		JOIN payroll_inputs pi ON pi.id = ri.input_id
		WHERE ri.company_id = $1
	`
	args := []interface{}{companyID}
	if concept != nil {
		query += ` AND pi.type_concept = $2`
		args = append(args, string(*concept))
	}
	query += ` ORDER BY ri.code`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rule inputs: %w", err)
	}
	defer rows.Close()

	var out []ruleinput.RuleInput
	for rows.Next() {
		ri, err := scanRuleInput(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule input: %w", err)
		}
		out = append(out, ri)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rule inputs: %w", err)
	}
	return out, nil
}

// Upsert implements ruleinput.RuleInputRepository.
// The payroll input is shared across companies and keyed by the rule input code.
func (r *ruleInputRepositoryImpl) Upsert(ctx context.Context, input ruleinput.RuleInput) (ruleinput.RuleInput, error) {
	q := GetQuerier(ctx, r.db)

	var earnCategory, deductionCategory *string
	if input.Input.TypeConcept == ruleinput.TypeConceptEarn {
		v := string(input.Input.EarnCategory)
		earnCategory = &v
	} else {
		v := string(input.Input.DeductionCategory)
		deductionCategory = &v
	}

	var inputID string
	err := q.QueryRow(ctx, `
		INSERT INTO payroll_inputs (code, name, type_concept, earn_category, deduction_category)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			type_concept = EXCLUDED.type_concept,
			earn_category = EXCLUDED.earn_category,
			deduction_category = EXCLUDED.deduction_category
		RETURNING id
	`, input.Code, input.Input.Name, string(input.Input.TypeConcept), earnCategory, deductionCategory).Scan(&inputID)
	if err != nil {
		return ruleinput.RuleInput{}, fmt.Errorf("failed to upsert payroll input %s: %w", input.Code, err)
	}

	var id string
	err = q.QueryRow(ctx, `
		INSERT INTO rule_inputs (company_id, input_id, name, code)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, code) DO UPDATE SET
			input_id = EXCLUDED.input_id,
			name = EXCLUDED.name,
			updated_at = NOW()
		RETURNING id
	`, input.CompanyID, inputID, input.Name, input.Code).Scan(&id)
	if err != nil {
		return ruleinput.RuleInput{}, fmt.Errorf("failed to upsert rule input %s: %w", input.Code, err)
	}

	return r.GetByID(ctx, id, input.CompanyID)
}

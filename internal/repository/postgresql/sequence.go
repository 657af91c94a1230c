package postgresql

import (
	"context"
	"fmt"

	"github.com/quanamco/payroll-edi/internal/domain/payslipedi"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
)

type sequenceDefaults struct {
	prefix  string
	padding int
}

// defaultSequences seed a company counter the first time it is used.
var defaultSequences = map[string]sequenceDefaults{
	payslipedi.SequenceCodeSlip: {prefix: "NE", padding: 0},
	payslipedi.SequenceCodeNote: {prefix: "NAE", padding: 0},
}

type sequenceRepository struct {
	db *database.DB
}

func NewSequenceRepository(db *database.DB) payslipedi.SequenceGenerator {
	return &sequenceRepository{db: db}
}

// NextByCode implements payslipedi.SequenceGenerator.
// The increment is a single UPSERT so concurrent callers never share a number.
func (r *sequenceRepository) NextByCode(ctx context.Context, companyID string, code string) (string, error) {
	q := GetQuerier(ctx, r.db)

	defaults, ok := defaultSequences[code]
	if !ok {
		return "", fmt.Errorf("unknown sequence code %q", code)
	}

	var (
		prefix  string
		padding int
		value   int64
	)
	err := q.QueryRow(ctx, `
		INSERT INTO edi_sequences (company_id, code, prefix, padding, last_value, updated_at)
		VALUES ($1, $2, $3, $4, 1, NOW())
		ON CONFLICT (company_id, code) DO UPDATE
		SET last_value = edi_sequences.last_value + 1, updated_at = NOW()
		RETURNING prefix, padding, last_value
	`, companyID, code, defaults.prefix, defaults.padding).Scan(&prefix, &padding, &value)
	if err != nil {
		return "", fmt.Errorf("failed to get next value of sequence %s: %w", code, err)
	}

	return FormatSequence(prefix, padding, value), nil
}

// FormatSequence renders a counter value with its prefix and zero padding.
func FormatSequence(prefix string, padding int, value int64) string {
	return fmt.Sprintf("%s%0*d", prefix, padding, value)
}

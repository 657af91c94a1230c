package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/quanamco/payroll-edi/internal/pkg/database"
	"github.com/quanamco/payroll-edi/migrations"
	"github.com/stretchr/testify/require"
)

// TestDatabaseSetup holds the connection of the integration tests
type TestDatabaseSetup struct {
	DB *database.DB
}

// NewTestDatabase connects to TEST_DATABASE_URL and applies the schema.
// Tests are skipped when the variable is not set.
func NewTestDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	require.NoError(t, migrations.Apply(ctx, db))

	setup := &TestDatabaseSetup{DB: db}
	require.NoError(t, setup.TruncateAllTables(ctx))
	return setup
}

// TruncateAllTables removes all rows from the schema tables
func (t *TestDatabaseSetup) TruncateAllTables(ctx context.Context) error {
	tx, err := t.DB.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tables := []string{
		"payslip_edi_payslips",
		"payslip_edis",
		"edi_sequences",
		"payslip_deduction_lines",
		"payslip_earn_lines",
		"payslips",
		"rule_inputs",
		"payroll_inputs",
		"contracts",
		"employee_home_addresses",
		"employees",
		"companies",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit(ctx)
}

type fixture struct {
	CompanyID  string
	EmployeeID string
	ContractID string
	PayslipID  string
}

// seedFixture inserts one company with an employee, a monthly contract and a payslip.
func (t *TestDatabaseSetup) seedFixture(tb testing.TB, ctx context.Context) fixture {
	tb.Helper()
	var f fixture

	err := t.DB.QueryRow(ctx, `
		INSERT INTO companies (name, type_document_identification_id, vat, postal_municipality_id, street)
		VALUES ('Acme SAS', 6, '900123456', 149, 'Calle 1')
		RETURNING id
	`).Scan(&f.CompanyID)
	require.NoError(tb, err)

	err = t.DB.QueryRow(ctx, `
		INSERT INTO employees (company_id, name) VALUES ($1, 'Ana Gomez') RETURNING id
	`, f.CompanyID).Scan(&f.EmployeeID)
	require.NoError(tb, err)

	_, err = t.DB.Exec(ctx, `
		INSERT INTO employee_home_addresses (employee_id, first_name, surname, type_document_identification_id, vat, postal_municipality_id, street)
		VALUES ($1, 'Ana', 'Gomez', 3, '1010', 149, 'Carrera 2')
	`, f.EmployeeID)
	require.NoError(tb, err)

	err = t.DB.QueryRow(ctx, `
		INSERT INTO contracts (company_id, employee_id, name, wage, date_start, schedule_pay, type_worker_id, subtype_worker_id, type_contract_id)
		VALUES ($1, $2, 'Contract Ana', 1300000, '2024-01-01', 'monthly', 1, 1, 1)
		RETURNING id
	`, f.CompanyID, f.EmployeeID).Scan(&f.ContractID)
	require.NoError(tb, err)

	err = t.DB.QueryRow(ctx, `
		INSERT INTO payslips (company_id, employee_id, contract_id, number, date_from, date_to, payment_form_id, payment_method_id, worked_days)
		VALUES ($1, $2, $3, 'SLIP/001', '2024-03-01', '2024-03-30', 1, 10, 30)
		RETURNING id
	`, f.CompanyID, f.EmployeeID, f.ContractID).Scan(&f.PayslipID)
	require.NoError(tb, err)

	return f
}

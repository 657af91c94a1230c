package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/quanamco/payroll-edi/internal/domain/employee"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.company_id, e.name, e.created_at, e.updated_at,
			   a.employee_id IS NOT NULL,
			   COALESCE(a.first_name, ''), COALESCE(a.other_names, ''),
			   COALESCE(a.surname, ''), COALESCE(a.second_surname, ''),
			   a.type_document_identification_id, COALESCE(a.vat, ''),
			   a.postal_municipality_id, COALESCE(a.street, '')
		FROM employees e
		LEFT JOIN employee_home_addresses a ON a.employee_id = e.id
		WHERE e.id = $1 AND e.company_id = $2
	`

	var (
		found      employee.Employee
		hasAddress bool
		addr       employee.HomeAddress
	)
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&found.ID, &found.CompanyID, &found.Name, &found.CreatedAt, &found.UpdatedAt,
		&hasAddress,
		&addr.FirstName, &addr.OtherNames, &addr.Surname, &addr.SecondSurname,
		&addr.TypeDocumentIdentificationID, &addr.Vat,
		&addr.PostalMunicipalityID, &addr.Street,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	if hasAddress {
		found.HomeAddress = &addr
	}

	return found, nil
}

package employee

import "time"

// DocumentTypeNIT is the tax identification number document type. Employees cannot use it.
const DocumentTypeNIT = 6

type Employee struct {
	ID          string
	CompanyID   string
	Name        string
	HomeAddress *HomeAddress
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HomeAddress - Private contact of the employee
type HomeAddress struct {
	FirstName                    string
	OtherNames                   string
	Surname                      string
	SecondSurname                string
	TypeDocumentIdentificationID *int
	Vat                          string
	PostalMunicipalityID         *int
	Street                       string
}

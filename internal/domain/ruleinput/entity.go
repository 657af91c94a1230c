package ruleinput

import "time"

// TypeConcept tells whether an input feeds earn or deduction lines
type TypeConcept string

const (
	TypeConceptEarn      TypeConcept = "earn"
	TypeConceptDeduction TypeConcept = "deduction"
)

func (t TypeConcept) Valid() bool {
	return t == TypeConceptEarn || t == TypeConceptDeduction
}

// Input - Payroll concept as reported to the tax authority
type Input struct {
	ID                string
	Name              string
	TypeConcept       TypeConcept
	EarnCategory      EarnCategory
	DeductionCategory DeductionCategory
}

// RuleInput - Company level rule input referencing a concept
type RuleInput struct {
	ID        string
	CompanyID string
	Name      string
	Code      string
	Input     Input
	CreatedAt time.Time
	UpdatedAt time.Time
}

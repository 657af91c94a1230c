package ruleinput

import "context"

type RuleInputRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (RuleInput, error)
	List(ctx context.Context, companyID string, concept *TypeConcept) ([]RuleInput, error)
	// Upsert inserts the rule input or refreshes it when the code already exists for the company.
	Upsert(ctx context.Context, input RuleInput) (RuleInput, error)
}

package ruleinput

type RuleInputResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	InputID     string `json:"input_id"`
	InputName   string `json:"input_name"`
	TypeConcept string `json:"type_concept"`
	Category    string `json:"category"`
}

type SeedResponse struct {
	Seeded int `json:"seeded"`
}

func NewRuleInputResponse(r RuleInput) RuleInputResponse {
	category := string(r.Input.EarnCategory)
	if r.Input.TypeConcept == TypeConceptDeduction {
		category = string(r.Input.DeductionCategory)
	}
	return RuleInputResponse{
		ID:          r.ID,
		Name:        r.Name,
		Code:        r.Code,
		InputID:     r.Input.ID,
		InputName:   r.Input.Name,
		TypeConcept: string(r.Input.TypeConcept),
		Category:    category,
	}
}

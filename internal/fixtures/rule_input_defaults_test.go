package fixtures

import (
	"testing"

	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/stretchr/testify/assert"
)

func TestDefaultRuleInputs(t *testing.T) {
	all := DefaultRuleInputs("company-1")

	seen := make(map[string]bool)
	for _, ri := range all {
		assert.False(t, seen[ri.Code], "duplicate code %s", ri.Code)
		seen[ri.Code] = true
		assert.Equal(t, "company-1", ri.CompanyID)

		switch ri.Input.TypeConcept {
		case ruleinput.TypeConceptEarn:
			assert.True(t, ri.Input.EarnCategory.Valid(), ri.Code)
		case ruleinput.TypeConceptDeduction:
			assert.True(t, ri.Input.DeductionCategory.Valid(), ri.Code)
		default:
			t.Errorf("unexpected concept %q for %s", ri.Input.TypeConcept, ri.Code)
		}
	}
	assert.Len(t, all, len(DefaultEarnRuleInputs())+len(DefaultDeductionRuleInputs()))
}

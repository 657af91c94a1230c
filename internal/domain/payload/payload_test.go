package payload

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_MarshalNumbersWithoutQuotes(t *testing.T) {
	p := Payload{
		Payment:         &Payment{Code: 1, MethodCode: 10},
		Earn:            &Earn{Basic: Basic{WorkedDays: 30, WorkerSalary: decimal.NewFromInt(1000000)}},
		AccruedTotal:    decimal.RequireFromString("1000000.50"),
		DeductionsTotal: decimal.NewFromInt(80000),
		Total:           decimal.RequireFromString("920000.50"),
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var generic map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Equal(t, 1000000.5, generic["accrued_total"])
	assert.Equal(t, 920000.5, generic["total"])
	assert.NotContains(t, generic, "sequence")
	assert.NotContains(t, generic, "payroll_reference")
}

func TestPayload_CloneDoesNotAlias(t *testing.T) {
	p := &Payload{
		Earn:  &Earn{Items: []EarnItem{{Category: "bonuses"}}},
		Notes: []Note{{Text: "a"}},
	}

	c := p.Clone()
	c.Earn.Items[0].Category = "commissions"
	c.Notes[0].Text = "b"

	assert.Equal(t, "bonuses", p.Earn.Items[0].Category)
	assert.Equal(t, "a", p.Notes[0].Text)
}

func TestPayload_WorkedDays(t *testing.T) {
	var p *Payload
	assert.Equal(t, 0, p.WorkedDays())
	assert.Equal(t, 15, (&Payload{Earn: &Earn{Basic: Basic{WorkedDays: 15}}}).WorkedDays())
}

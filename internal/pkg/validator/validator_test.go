package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestUniqueStrings(t *testing.T) {
	assert.True(t, UniqueStrings([]string{"a", "b"}))
	assert.False(t, UniqueStrings([]string{"a", "b", "a"}))
	assert.True(t, UniqueStrings(nil))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "invalid"},
		{Field: "rule_input_id", Message: "required"},
	}
	got := errs.Error()
	want := "amount: invalid; rule_input_id: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "invalid"},
		{Field: "rule_input_id", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"amount": "invalid", "rule_input_id": "required"}
	assert.Equal(t, want, got)
}

type sampleRequest struct {
	IDs   []string `json:"ids" validate:"required,min=1,dive,required"`
	Month *int     `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Date  *string  `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func TestStruct(t *testing.T) {
	month := 3
	date := "2024-03-01"
	require.NoError(t, Struct(&sampleRequest{IDs: []string{"a"}, Month: &month, Date: &date}))

	badMonth := 13
	badDate := "01/03/2024"
	err := Struct(&sampleRequest{Month: &badMonth, Date: &badDate})

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Equal(t, "ids is required", m["ids"])
	assert.Equal(t, "month must be at most 12", m["month"])
	assert.Equal(t, "date must be a date in YYYY-MM-DD format", m["date"])
}

func TestStruct_DiveReportsIndex(t *testing.T) {
	err := Struct(&sampleRequest{IDs: []string{"a", ""}})

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "ids[1] is required", errs.ToMap()["ids[1]"])
}

type batchSample struct {
	IDs []string `json:"ids" validate:"required,min=1,unique,dive,required,uuid"`
}

func TestStruct_UniqueAndUUID(t *testing.T) {
	id := "6f1c0b9e-2d4e-4a52-9d0e-3a1c6f0b2d4e"
	require.NoError(t, Struct(&batchSample{IDs: []string{id}}))

	var errs ValidationErrors
	require.ErrorAs(t, Struct(&batchSample{IDs: []string{id, id}}), &errs)
	assert.Equal(t, "ids must not contain repeated values", errs.ToMap()["ids"])

	require.ErrorAs(t, Struct(&batchSample{IDs: []string{"edi-1"}}), &errs)
	assert.Equal(t, "ids[0] must be a valid UUID", errs.ToMap()["ids[0]"])
}

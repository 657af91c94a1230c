package payslipedi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDisplayName(t *testing.T) {
	name, ok := DisplayName("Ana Gomez", 3, 2024, language.English)
	assert.True(t, ok)
	assert.Equal(t, "Salary Slip of Ana Gomez for March-2024", name)

	name, ok = DisplayName("Ana Gomez", 12, 2023, language.Spanish)
	assert.True(t, ok)
	assert.Equal(t, "Nómina de Ana Gomez para diciembre-2023", name)
}

func TestDisplayName_MissingParts(t *testing.T) {
	_, ok := DisplayName("", 3, 2024, language.English)
	assert.False(t, ok)

	_, ok = DisplayName("Ana", 0, 2024, language.English)
	assert.False(t, ok)

	_, ok = DisplayName("Ana", 3, 0, language.English)
	assert.False(t, ok)
}

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, language.Spanish, MatchLanguage("es_CO"))
	assert.Equal(t, language.English, MatchLanguage("en-US"))
	assert.Equal(t, language.English, MatchLanguage("fr"))
}

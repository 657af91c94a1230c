package payslipedi

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.Spanish,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

var monthNames = map[language.Tag][12]string{
	language.English: {"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	language.Spanish: {"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
}

var nameTemplates = map[language.Tag]string{
	language.English: "Salary Slip of %s for %s",
	language.Spanish: "Nómina de %s para %s",
}

// MatchLanguage resolves a locale such as "es_CO" or "en-US" to a supported language.
// Unknown values fall back to English.
func MatchLanguage(locale string) language.Tag {
	_, idx := language.MatchStrings(languageMatcher, locale)
	return supportedLanguages[idx]
}

// DisplayName builds the document title, e.g. "Salary Slip of Ana for March-2024".
// ok is false when the employee, month or year are missing.
func DisplayName(employeeName string, month, year int, lang language.Tag) (name string, ok bool) {
	if employeeName == "" || month < 1 || month > 12 || year == 0 {
		return "", false
	}
	names, found := monthNames[lang]
	if !found {
		names = monthNames[language.English]
		lang = language.English
	}
	period := fmt.Sprintf("%s-%d", names[time.Month(month)-1], year)
	return fmt.Sprintf(nameTemplates[lang], employeeName, period), true
}

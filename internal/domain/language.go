package domain

// DefaultLanguage is used when a language name is not known.
const DefaultLanguage = "French"

var languages = []string{
	"English",
	"French",
	"German",
	"Spanish",
	"Italian",
	"Simplified Chinese",
	"Japanese",
	"Portuguese",
	"Russian",
	"Korean",
	"Traditional Chinese",
}

// LanguageID maps a language name to the marketplace id. The second value is
// false when the name is unknown and the default language id was returned.
func LanguageID(name string) (int, bool) {
	for i, l := range languages {
		if l == name {
			return i + 1, true
		}
	}
	id, _ := LanguageID(DefaultLanguage)
	return id, false
}

// LanguageName returns the name for a marketplace language id.
func LanguageName(id int) string {
	if id < 1 || id > len(languages) {
		return ""
	}
	return languages[id-1]
}

package prefs

// Theme is the colour scheme chosen by the visitor.
type Theme string

// Language is one of the two supported site languages.
type Language string

const (
	Dark  Theme = "dark"
	Light Theme = "light"

	Persian Language = "fa"
	English Language = "en"
)

// Keys under which the two preference entries are persisted.
const (
	ThemeKey    = "theme"
	LanguageKey = "language"
)

// LightThemeClass is applied to the document body while the light theme is active.
const LightThemeClass = "light-theme"

// Preference is the visitor's persisted theme and language.
type Preference struct {
	Theme    Theme
	Language Language
}

// Default is the preference of a visitor with nothing stored.
var Default = Preference{Theme: Dark, Language: Persian}

// ParseTheme maps a stored value to a Theme. Anything but "light" is dark.
func ParseTheme(v string) Theme {
	if v == string(Light) {
		return Light
	}
	return Dark
}

// ParseLanguage maps a stored value to a Language. Anything but "en" is Persian.
func ParseLanguage(v string) Language {
	if v == string(English) {
		return English
	}
	return Persian
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == Persian {
		return English
	}
	return Persian
}

// LookupLanguage accepts only the exact codes "fa" and "en".
func LookupLanguage(v string) (Language, bool) {
	switch Language(v) {
	case Persian, English:
		return Language(v), true
	}
	return "", false
}

// Dir returns the text direction for the language.
func (l Language) Dir() string {
	if l == Persian {
		return "rtl"
	}
	return "ltr"
}

// Effect is the document-level state derived from a Preference.
type Effect struct {
	Lang      string
	Dir       string
	BodyClass string
}

// Effect computes the document attributes for p. It has no side effects;
// the renderer applies the result to <html> and <body>.
func (p Preference) Effect() Effect {
	e := Effect{Lang: string(p.Language), Dir: p.Language.Dir()}
	if p.Theme == Light {
		e.BodyClass = LightThemeClass
	}
	return e
}

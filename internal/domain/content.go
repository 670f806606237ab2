package domain

// Language selects which side of a bilingual text to render. The wedding
// site serves Estonian and Ukrainian guests.
type Language string

const (
	LanguageEstonian  Language = "et"
	LanguageUkrainian Language = "ua"
)

// LocalizedText is a tagged union: either a single plain string used for
// every language, or an explicit Estonian/Ukrainian pair. Exactly one form
// is populated.
type LocalizedText struct {
	Plain string `yaml:"plain,omitempty" json:"plain,omitempty"`
	Et    string `yaml:"et,omitempty" json:"et,omitempty"`
	Ua    string `yaml:"ua,omitempty" json:"ua,omitempty"`
}

// PlainText builds the single-string form.
func PlainText(s string) LocalizedText {
	return LocalizedText{Plain: s}
}

// BilingualText builds the explicit pair form.
func BilingualText(et, ua string) LocalizedText {
	return LocalizedText{Et: et, Ua: ua}
}

// Resolve returns the text for lang. A plain value wins outright; otherwise
// the requested side is returned, falling back to the other side when the
// requested one is empty.
func (t LocalizedText) Resolve(lang Language) string {
	if t.Plain != "" {
		return t.Plain
	}
	switch lang {
	case LanguageUkrainian:
		if t.Ua != "" {
			return t.Ua
		}
		return t.Et
	default:
		if t.Et != "" {
			return t.Et
		}
		return t.Ua
	}
}

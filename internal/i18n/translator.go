package i18n

import (
	"fmt"
	"html"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the bundled languages; the first entry is the fallback
var Supported = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Spanish,
	language.BrazilianPortuguese,
}

var (
	bundle  = buildCatalog()
	matcher = language.NewMatcher(Supported)
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, msgs := range translations {
		tag := language.MustParse(lang)
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: message %q for %s: %v", key, lang, err))
			}
		}
	}
	return b
}

// Translator resolves labels for one language. It is immutable and safe for
// concurrent use.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
	escape  bool
}

// NewTranslator creates a translator for lang. An empty or unparseable lang
// is detected from the process locale; unsupported languages fall back to
// English.
func NewTranslator(lang string, escapeHTML bool) *Translator {
	requested := DetectLanguage()
	if lang != "" {
		if tag, err := language.Parse(normalizeLocale(lang)); err == nil {
			requested = tag
		}
	}

	tag := Match(requested)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(bundle)),
		escape:  escapeHTML,
	}
}

// Match returns the supported language closest to tag
func Match(tag language.Tag) language.Tag {
	if tag == language.Und {
		return Supported[0]
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// Language returns the resolved language
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T translates key and formats it with args, HTML-escaping the result when
// the translator was built with escaping on.
func (t *Translator) T(key string, args ...interface{}) string {
	s := t.printer.Sprintf(key, args...)
	if t.escape {
		return html.EscapeString(s)
	}
	return s
}

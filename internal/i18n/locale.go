package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DateFormat describes how users of a region type dates. Hint is shown to
// users whose input could not be parsed.
type DateFormat struct {
	Hint    string
	Layouts []string
}

// DetectLanguage reads the message locale from the environment
func DetectLanguage() language.Tag {
	return detectLocaleTag("LC_ALL", "LC_MESSAGES", "LANG")
}

// DetectDateFormat derives the date format from the time locale
func DetectDateFormat() DateFormat {
	return DateFormatFor(detectLocaleTag("LC_ALL", "LC_TIME", "LANG"))
}

// DateFormatFor returns the date format used in the region of tag
func DateFormatFor(tag language.Tag) DateFormat {
	if tag == language.Und {
		return dateFormatDMY()
	}

	region, _ := tag.Region()
	switch region.String() {
	case "US":
		return dateFormatMDY()
	case "CA", "CN", "JP", "KR", "HU", "LT":
		return dateFormatYMD()
	default:
		return dateFormatDMY()
	}
}

func detectLocaleTag(keys ...string) language.Tag {
	for _, key := range keys {
		raw := normalizeLocale(os.Getenv(key))
		if raw == "" {
			continue
		}
		if tag, err := language.Parse(raw); err == nil {
			return tag
		}
	}
	return language.Und
}

// normalizeLocale turns a POSIX locale such as fr_FR.UTF-8@euro into a BCP 47 tag
func normalizeLocale(raw string) string {
	locale := strings.TrimSpace(raw)
	if idx := strings.Index(locale, "."); idx >= 0 {
		locale = locale[:idx]
	}
	if idx := strings.Index(locale, "@"); idx >= 0 {
		locale = locale[:idx]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	return strings.TrimSpace(locale)
}

func dateFormatMDY() DateFormat {
	return DateFormat{
		Hint:    "MM/DD/YYYY",
		Layouts: []string{"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006"},
	}
}

func dateFormatDMY() DateFormat {
	return DateFormat{
		Hint:    "DD/MM/YYYY",
		Layouts: []string{"2/1/2006", "02/01/2006", "2-1-2006", "02-01-2006", "2.1.2006", "02.01.2006"},
	}
}

func dateFormatYMD() DateFormat {
	return DateFormat{
		Hint:    "YYYY-MM-DD",
		Layouts: []string{"2006-1-2", "2006-01-02", "2006/1/2", "2006/01/02", "2006.1.2", "2006.01.02"},
	}
}

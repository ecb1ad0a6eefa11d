package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func clearLocaleEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LC_TIME", "LANG"} {
		t.Setenv(key, "")
	}
}

func TestNewTranslator_Language(t *testing.T) {
	clearLocaleEnv(t)

	tests := []struct {
		name     string
		lang     string
		expected language.Tag
	}{
		{"empty falls back to english", "", language.English},
		{"french", "fr", language.French},
		{"posix locale", "de_DE.UTF-8", language.German},
		{"regional variant", "es-MX", language.Spanish},
		{"brazilian portuguese", "pt_BR", language.BrazilianPortuguese},
		{"unsupported", "ja", language.English},
		{"garbage", "not a locale!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTranslator(tt.lang, false)
			assert.Equal(t, tt.expected, tr.Language())
		})
	}
}

func TestNewTranslator_DetectsFromEnvironment(t *testing.T) {
	clearLocaleEnv(t)
	t.Setenv("LANG", "fr_FR.UTF-8")

	tr := NewTranslator("", false)
	assert.Equal(t, language.French, tr.Language())
	assert.Equal(t, "Projet", tr.T(LabelProject))
}

func TestTranslator_T(t *testing.T) {
	clearLocaleEnv(t)

	en := NewTranslator("en", false)
	assert.Equal(t, "Task Id", en.T(LabelTaskID))
	assert.Equal(t, "Open", en.T(StatusOpen))
	assert.Equal(t, "Assigned to alice", en.T(MsgAssignedTo, "alice"))
	assert.Equal(t, "View task #42", en.T(MsgViewTask, 42))

	fr := NewTranslator("fr", false)
	assert.Equal(t, "Fermé", fr.T(StatusClosed))
	assert.Equal(t, "Assigné à alice", fr.T(MsgAssignedTo, "alice"))
	assert.Equal(t, "Jaune", fr.T("Yellow"))

	de := NewTranslator("de", false)
	assert.Equal(t, "Fälligkeitsdatum", de.T(LabelDueDate))

	// unknown keys render as given
	assert.Equal(t, "Something else", fr.T("Something else"))
}

func TestTranslator_Escape(t *testing.T) {
	clearLocaleEnv(t)

	fr := NewTranslator("fr", true)
	assert.Equal(t, "Date d&#39;échéance", fr.T(LabelDueDate))

	plain := NewTranslator("fr", false)
	assert.Equal(t, "Date d'échéance", plain.T(LabelDueDate))
}

func TestTranslations_Complete(t *testing.T) {
	english := translations["fr"]
	for lang, msgs := range translations {
		for key := range english {
			assert.Contains(t, msgs, key, "%s is missing %q", lang, key)
		}
	}
}

func TestMatch(t *testing.T) {
	assert.Equal(t, language.English, Match(language.Und))
	assert.Equal(t, language.French, Match(language.MustParse("fr-CA")))
}

func TestBuildCatalog_AcceptsEveryMessage(t *testing.T) {
	assert.NotPanics(t, func() { buildCatalog() })
}

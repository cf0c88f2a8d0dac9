package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wiktparse/internal/domain"
)

func TestPOSByHeading(t *testing.T) {
	tests := []struct {
		title   string
		wantPOS domain.PartOfSpeech
		warn    bool
		found   bool
	}{
		{"Noun", domain.POSNoun, false, true},
		{"  Proper noun ", domain.POSName, false, true},
		{"Initialism", domain.POSAbbreviation, true, true},
		{"Etymology", "", false, false},
	}
	for _, tt := range tests {
		info, ok := POSByHeading(tt.title)
		assert.Equal(t, tt.found, ok, tt.title)
		if !ok {
			continue
		}
		assert.Equal(t, tt.wantPOS, info.POS, tt.title)
		assert.Equal(t, tt.warn, info.Warning != "", tt.title)
	}
}

func TestTemplateAllowsPOS(t *testing.T) {
	assert.True(t, TemplateAllowsPOS("noun", domain.POSNoun))
	assert.True(t, TemplateAllowsPOS("noun", domain.POSName))
	assert.False(t, TemplateAllowsPOS("adj", domain.POSNoun))
	// no allow entry: falls back to the exact head part-of-speech
	assert.True(t, TemplateAllowsPOS("numeral", domain.POSNumeral))
	assert.False(t, TemplateAllowsPOS("numeral", domain.POSNoun))
	// unknown components never flag
	assert.True(t, TemplateAllowsPOS("whatever", domain.POSNoun))
}

func TestHeadPOS(t *testing.T) {
	p, ok := HeadPOS(" Proper Noun ")
	require.True(t, ok)
	assert.Equal(t, domain.POSName, p)

	_, ok = HeadPOS("whatever")
	assert.False(t, ok)
}

func TestLanguages(t *testing.T) {
	langs := DefaultLanguages()

	l, ok := langs.ByName("Finnish")
	require.True(t, ok)
	assert.Equal(t, "fi", l.Code)

	l, ok = langs.ByCode("de")
	require.True(t, ok)
	assert.Equal(t, "German", l.Name)

	_, ok = langs.ByName("Klingon")
	assert.False(t, ok)
}

func TestStripCodePrefix(t *testing.T) {
	langs := DefaultLanguages()

	s, stripped := langs.StripCodePrefix("de:Hund")
	assert.True(t, stripped)
	assert.Equal(t, "Hund", s)

	s, stripped = langs.StripCodePrefix("plain")
	assert.False(t, stripped)
	assert.Equal(t, "plain", s)

	// unknown code prefixes are kept verbatim
	s, stripped = langs.StripCodePrefix("zz:word")
	assert.False(t, stripped)
	assert.Equal(t, "zz:word", s)
}

func TestVerbFormTemplate(t *testing.T) {
	m, ok := VerbFormTemplate("de-verb form of")
	require.True(t, ok)

	tags, ok := m.Resolve("k2")
	require.True(t, ok)
	assert.Equal(t, []string{"subjunctive", "subjunctive-ii"}, tags)

	_, ok = m.Resolve("nonsense")
	assert.False(t, ok)
}

func TestSplitPlaceArg(t *testing.T) {
	kind, name, ok := SplitPlaceArg("c/Finland")
	require.True(t, ok)
	assert.Equal(t, "country", kind)
	assert.Equal(t, "Finland", name)

	_, _, ok = SplitPlaceArg("Finland")
	assert.False(t, ok)

	_, _, ok = SplitPlaceArg("zz/Nowhere")
	assert.False(t, ok)
}

func TestResolveTitle(t *testing.T) {
	assert.Equal(t, "&", ResolveTitle("Unsupported titles/Ampersand"))
	assert.Equal(t, "dog", ResolveTitle("dog"))
}

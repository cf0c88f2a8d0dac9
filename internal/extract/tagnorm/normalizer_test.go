package tagnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wiktparse/internal/diag"
	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/lookup"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

func newTestNormalizer() (*Normalizer, *diag.Collector) {
	dc := diag.New(nil)
	return New(lookup.DefaultLanguages(), dc), dc
}

func inv(name string, pos ...string) wikinode.Invocation {
	return wikinode.Invocation{Name: name, Pos: pos}
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FFAA00", "#ffaa00"},
		{"fa0", "#ffaa00"},
		{"#FA0", "#ffaa00"},
		{"#ffaa00", "#ffaa00"},
		{"red", "red"},
	}
	for _, tt := range tests {
		got := NormalizeColor(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		// applying twice must not change the value
		assert.Equal(t, got, NormalizeColor(got), tt.in)
	}
}

func TestApplyLabelTags(t *testing.T) {
	n, _ := newTestNormalizer()
	var rec domain.Record

	ok := n.Apply(&rec, inv("lb", "en", "slang", "_", "dated"), "inside gloss")
	require.True(t, ok)
	assert.Equal(t, []string{"slang", "dated"}, rec.Tags)
}

func TestApplyAltOf(t *testing.T) {
	n, _ := newTestNormalizer()
	var rec domain.Record

	ok := n.Apply(&rec, inv("obsolete spelling of", "en", "colour"), "inside gloss")
	require.True(t, ok)
	assert.Equal(t, []string{"colour"}, rec.AltOf)
	assert.ElementsMatch(t, []string{"archaic", "obsolete"}, rec.Tags)
}

func TestApplyAbbreviation(t *testing.T) {
	n, _ := newTestNormalizer()
	var rec domain.Record

	n.Apply(&rec, inv("abbreviation of", "en", "w:World Health Organization"), "inside gloss")
	assert.Equal(t, []string{"World Health Organization"}, rec.Wikipedia)
	assert.Equal(t, []string{"World Health Organization"}, rec.AltOf)
	assert.Contains(t, rec.Tags, "abbreviation")
}

func TestApplyColorPanel(t *testing.T) {
	n, _ := newTestNormalizer()
	var rec domain.Record

	n.Apply(&rec, inv("color panel", "FA0", "ffaa00"), "inside gloss")
	assert.Equal(t, []string{"#ffaa00", "#ffaa00"}, rec.Color)
}

func TestApplyPlace(t *testing.T) {
	n, _ := newTestNormalizer()
	var rec domain.Record

	n.Apply(&rec, inv("place", "en", "city", "r/Lapland", "c/Finland"), "inside gloss")
	assert.Contains(t, rec.Tags, "place")
	assert.Contains(t, rec.Tags, "city")
	require.Len(t, rec.Holonyms, 2)
	assert.Equal(t, domain.LinkageEdge{Word: "Lapland", Type: "region"}, rec.Holonyms[0])
	assert.Equal(t, domain.LinkageEdge{Word: "Finland", Type: "country"}, rec.Holonyms[1])
}

func TestApplyPlaceUnknownKind(t *testing.T) {
	n, dc := newTestNormalizer()
	var rec domain.Record

	n.Apply(&rec, inv("place", "en", "city/and/blob", "c/Finland"), "inside gloss")
	assert.Contains(t, rec.Tags, "city")
	assert.NotContains(t, rec.Tags, "blob")
	assert.NotContains(t, rec.Tags, "and")
	assert.Equal(t, 1, dc.CountBySeverity(diag.SeverityWarning))
	require.Len(t, rec.Holonyms, 1)
	assert.Equal(t, "Finland", rec.Holonyms[0].Word)
}

func TestApplyVerbFormMap(t *testing.T) {
	n, dc := newTestNormalizer()
	var rec domain.Record

	n.Apply(&rec, inv("de-verb form of", "de", "sehen", "1", "s", "k2"), "inside gloss")
	assert.Equal(t, []string{"sehen"}, rec.InflectionOf)
	assert.ElementsMatch(t,
		[]string{"first-person", "singular", "subjunctive", "subjunctive-ii"},
		rec.Tags)
	assert.Equal(t, 0, dc.CountBySeverity(diag.SeverityWarning))
}

func TestApplyKeyedFormMap(t *testing.T) {
	n, dc := newTestNormalizer()
	var rec domain.Record

	// The Dutch map names its leading arguments: person, then the base form.
	n.Apply(&rec, inv("nl-verb form of", "nl", "2", "zien", "pres"), "inside gloss")
	assert.Equal(t, []string{"zien"}, rec.InflectionOf)
	assert.ElementsMatch(t, []string{"second-person", "present"}, rec.Tags)
	assert.Equal(t, 0, dc.CountBySeverity(diag.SeverityWarning))
}

func TestApplyUnknownFormValue(t *testing.T) {
	n, dc := newTestNormalizer()
	var rec domain.Record

	n.Apply(&rec, inv("de-verb form of", "de", "sehen", "zz"), "inside gloss")
	assert.Equal(t, 1, dc.CountBySeverity(diag.SeverityWarning))
	assert.Empty(t, rec.Tags)
}

func TestApplyUnrecognizedTemplate(t *testing.T) {
	n, dc := newTestNormalizer()
	var rec domain.Record

	ok := n.Apply(&rec, inv("no-such-template-xyz", "en", "foo"), "inside gloss")
	assert.False(t, ok)
	// the raw template name must never leak into tags
	assert.Empty(t, rec.Tags)
	assert.Equal(t, 1, dc.UnrecognizedTemplates["no-such-template-xyz (inside gloss)"])
}

func TestApplyIgnoredTemplate(t *testing.T) {
	n, dc := newTestNormalizer()
	var rec domain.Record

	ok := n.Apply(&rec, inv("ISBN", "978-0"), "inside gloss")
	assert.True(t, ok)
	assert.True(t, rec.IsEmpty())
	assert.Empty(t, dc.UnrecognizedTemplates)
}

func TestApplyFamilies(t *testing.T) {
	n, _ := newTestNormalizer()

	var rec domain.Record
	n.Apply(&rec, inv("Armenian-letter"), "inside gloss")
	assert.Contains(t, rec.Tags, "character")

	rec = domain.Record{}
	n.Apply(&rec, inv("table:chess pieces"), "inside gloss")
	require.Len(t, rec.Topics, 1)
	assert.Equal(t, "chess pieces", rec.Topics[0].Word)

	rec = domain.Record{}
	n.Apply(&rec, inv("fi-decl-valo", "valo"), "inside gloss")
	require.Len(t, rec.Conjugation, 1)
	assert.Equal(t, "fi-decl-valo", rec.Conjugation[0]["template_name"])

	rec = domain.Record{}
	ok := n.Apply(&rec, inv("RQ:Shakespeare Hamlet"), "inside gloss")
	assert.True(t, ok)
	assert.True(t, rec.IsEmpty())
}

func TestApplyLinkageShorthand(t *testing.T) {
	n, _ := newTestNormalizer()
	var rec domain.Record

	n.Apply(&rec, inv("ant", "en", "cold", "chilly"), "inside gloss")
	require.Len(t, rec.Antonyms, 2)
	assert.Equal(t, "cold", rec.Antonyms[0].Word)
	assert.Equal(t, "chilly", rec.Antonyms[1].Word)
}

func TestCleanQualifiers(t *testing.T) {
	got := CleanQualifiers([]string{"slang", "", "and", "_", "dated", "or"})
	assert.Equal(t, []string{"slang", "dated"}, got)
}

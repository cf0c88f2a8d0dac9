package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wiktparse/internal/diag"
	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/lookup"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

func newTestExtractor() (*Extractor, *diag.Collector) {
	dc := diag.New(nil)
	return New(lookup.DefaultLanguages(), nil, dc, DefaultOptions()), dc
}

func root(children ...*wikinode.Node) *wikinode.Node {
	return &wikinode.Node{Kind: wikinode.KindRoot, Children: children}
}

func section(level int, heading string, children ...*wikinode.Node) *wikinode.Node {
	return &wikinode.Node{Kind: wikinode.KindSection, Level: level, Heading: heading, Children: children}
}

func list(items ...*wikinode.Node) *wikinode.Node {
	return &wikinode.Node{Kind: wikinode.KindList, Children: items}
}

func item(marker string, children ...*wikinode.Node) *wikinode.Node {
	return &wikinode.Node{Kind: wikinode.KindListItem, Marker: marker, Children: children}
}

func text(s string) *wikinode.Node {
	return &wikinode.Node{Kind: wikinode.KindText, Text: s}
}

func tmpl(name string, args ...string) *wikinode.Node {
	n := &wikinode.Node{Kind: wikinode.KindTemplate, Name: name}
	for _, a := range args {
		n.Args = append(n.Args, text(a))
	}
	return n
}

func link(target string) *wikinode.Node {
	return &wikinode.Node{Kind: wikinode.KindLink, Target: target}
}

func senseList(glosses ...string) *wikinode.Node {
	var items []*wikinode.Node
	for _, g := range glosses {
		items = append(items, item("#", text(g)))
	}
	return list(items...)
}

func TestMinimalEntry(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun",
				tmpl("en-noun"),
				senseList("a small dog", "a contemptible person"),
			),
		),
	)

	recs := e.ExtractPage("cur", page)
	require.Len(t, recs, 2)
	for _, r := range recs {
		assert.Equal(t, "cur", r.Word)
		assert.Equal(t, "English", r.Lang)
		assert.Equal(t, "en", r.LangCode)
		assert.Equal(t, "noun", r.POS)
		require.Len(t, r.Glosses, 1)
		require.Len(t, r.Heads, 1)
		assert.Equal(t, "en-noun", r.Heads[0]["template_name"])
	}
	assert.Equal(t, "a small dog", recs[0].Glosses[0])
	assert.Equal(t, "a contemptible person", recs[1].Glosses[0])
}

func TestMergeDistribution(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Etymology 1",
				tmpl("alter", "en", "olde"),
				section(4, "Noun", senseList("first noun sense", "second noun sense")),
				section(4, "Verb", senseList("first verb sense", "second verb sense")),
			),
		),
	)

	recs := e.ExtractPage("old", page)
	require.Len(t, recs, 4)
	assert.Equal(t, "noun", recs[0].POS)
	assert.Equal(t, "noun", recs[1].POS)
	assert.Equal(t, "verb", recs[2].POS)
	assert.Equal(t, "verb", recs[3].POS)
	for _, r := range recs {
		// Etymology-level and base-level fields repeat in every record.
		require.Len(t, r.Alternative, 1)
		assert.Equal(t, "olde", r.Alternative[0].Word)
		assert.Equal(t, "old", r.Word)
		require.Len(t, r.Glosses, 1)
	}
}

func TestSenseQualifierPrefix(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun",
				list(item("#", text("(informal, Britain) a cup of tea"))),
			),
		),
	)

	recs := e.ExtractPage("cuppa", page)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"a cup of tea"}, recs[0].Glosses)
	assert.ElementsMatch(t, []string{"informal", "Britain"}, recs[0].Tags)
}

func TestSenseSublistIsNotASense(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun",
				list(
					item("#",
						text("a gloss"),
						list(item("#:", tmpl("ux", "en", "an example sentence"))),
					),
				),
			),
		),
	)

	recs := e.ExtractPage("word", page)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"a gloss"}, recs[0].Glosses)
	assert.Equal(t, []string{"an example sentence"}, recs[0].Examples)
}

func TestEmptyGlossDiagnostic(t *testing.T) {
	e, dc := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun",
				list(item("#", tmpl("lb", "en", "obsolete"))),
			),
		),
	)

	recs := e.ExtractPage("word", page)
	// The sense is still recorded with its structured data.
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Glosses)
	assert.Contains(t, recs[0].Tags, "obsolete")
	assert.GreaterOrEqual(t, dc.CountBySeverity(diag.SeverityWarning), 1)
}

func TestUnknownLanguageSkipped(t *testing.T) {
	e, dc := newTestExtractor()
	page := root(
		section(2, "Klingon",
			section(3, "Noun", senseList("a gloss")),
		),
	)

	recs := e.ExtractPage("word", page)
	assert.Empty(t, recs)
	assert.Equal(t, 1, dc.CountBySeverity(diag.SeverityError))
}

func TestLanguageFilter(t *testing.T) {
	dc := diag.New(nil)
	opts := DefaultOptions()
	opts.Languages = []string{"Finnish"}
	e := New(lookup.DefaultLanguages(), nil, dc, opts)

	page := root(
		section(2, "English", section(3, "Noun", senseList("english sense"))),
		section(2, "Finnish", section(3, "Noun", senseList("finnish sense"))),
	)

	recs := e.ExtractPage("word", page)
	require.Len(t, recs, 1)
	assert.Equal(t, "Finnish", recs[0].Lang)
}

func TestPronunciationVariantDiscard(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Pronunciation",
				list(
					item("*", tmpl("a", "UK")),
					item("*", tmpl("a", "US"), tmpl("IPA", "en", "/tɛst/")),
				),
			),
			section(3, "Noun", senseList("a gloss")),
		),
	)

	recs := e.ExtractPage("test", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Sounds, 1)
	assert.Equal(t, []string{"/tɛst/"}, recs[0].Sounds[0].IPA)
	assert.Equal(t, []string{"US"}, recs[0].Sounds[0].Accent)
}

func TestPronunciationOnlyPage(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Pronunciation", tmpl("IPA", "en", "/foo/")),
		),
	)

	recs := e.ExtractPage("foo", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Sounds, 1)
}

func TestLinkageDedup(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Synonyms",
				list(
					item("*", tmpl("l", "en", "foo")),
					item("*", tmpl("l", "en", "foo")),
				),
			),
		),
	)

	recs := e.ExtractPage("word", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Synonyms, 1)
	assert.Equal(t, "foo", recs[0].Synonyms[0].Word)
}

func TestLinkageSenseTemplate(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Antonyms",
				list(item("*", tmpl("sense", "large"), tmpl("l", "en", "small"))),
			),
		),
	)

	recs := e.ExtractPage("big", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Antonyms, 1)
	assert.Equal(t, "small", recs[0].Antonyms[0].Word)
	assert.Equal(t, "large", recs[0].Antonyms[0].Sense)
}

func TestLinkageFreeText(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Related terms",
				text("(of clothing) jacket, trousers"),
			),
		),
	)

	recs := e.ExtractPage("suit", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Related, 2)
	assert.Equal(t, "jacket", recs[0].Related[0].Word)
	assert.Equal(t, "of clothing", recs[0].Related[0].Sense)
	assert.Equal(t, "trousers", recs[0].Related[1].Word)
}

func TestTranslationScoping(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Translations",
				tmpl("trans-top", "sense A"),
				list(item("*", text("German: "), tmpl("t+", "de", "Wörterbuch"))),
				tmpl("trans-bottom"),
				list(item("*", text("German: "), tmpl("t", "de", "Buch"))),
			),
		),
	)

	recs := e.ExtractPage("dictionary", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Translations, 2)
	first, second := recs[0].Translations[0], recs[0].Translations[1]
	assert.Equal(t, "Wörterbuch", first.Word)
	assert.Equal(t, "sense A", first.Sense)
	assert.Equal(t, "German", first.Lang)
	assert.Equal(t, "de", first.Code)
	assert.Equal(t, "Buch", second.Word)
	assert.Empty(t, second.Sense)
}

func TestTranslationBadItem(t *testing.T) {
	e, dc := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Translations",
				list(item("*", text("no language prefix here"))),
			),
		),
	)

	e.ExtractPage("word", page)
	assert.GreaterOrEqual(t, dc.CountBySeverity(diag.SeverityError), 1)
}

func TestTranslationSublistVariants(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Translations",
				list(
					item("*", text("Chinese:"),
						list(item("*:", text("Mandarin: "), tmpl("t+", "cmn", "詞典"))),
					),
				),
			),
		),
	)

	recs := e.ExtractPage("dictionary", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Translations, 1)
	tr := recs[0].Translations[0]
	assert.Equal(t, "Chinese", tr.Lang)
	assert.Equal(t, "詞典", tr.Word)
	assert.Contains(t, tr.Tags, "Mandarin")
}

func TestConjugationSharing(t *testing.T) {
	recs := []domain.Record{
		{Word: "w", Lang: "Finnish", POS: "noun"},
		{Word: "w", Lang: "Finnish", POS: "adj", Conjugation: []map[string]string{{"template_name": "fi-decl-valo"}}},
	}
	postprocess(recs)
	require.Len(t, recs[0].Conjugation, 1)
	assert.Equal(t, "fi-decl-valo", recs[0].Conjugation[0]["template_name"])
}

func TestConjugationSharingParticiple(t *testing.T) {
	recs := []domain.Record{
		{POS: "adj", Tags: []string{"participle"}},
		{POS: "verb", Conjugation: []map[string]string{{"1": "x"}}},
	}
	postprocess(recs)
	assert.Len(t, recs[0].Conjugation, 1)

	noShare := []domain.Record{
		{POS: "adv"},
		{POS: "verb", Conjugation: []map[string]string{{"1": "x"}}},
	}
	postprocess(noShare)
	assert.Empty(t, noShare[0].Conjugation)
}

func TestTopicPropagation(t *testing.T) {
	recs := []domain.Record{
		{POS: "noun"},
		{POS: "verb", Topics: []domain.Topic{{Word: "mathematics"}}},
	}
	postprocess(recs)
	require.Len(t, recs[0].Topics, 1)
	assert.Equal(t, "mathematics", recs[0].Topics[0].Word)
	assert.True(t, recs[0].Topics[0].Inaccurate)
	// The source record's own topics lose sense granularity too.
	assert.True(t, recs[1].Topics[0].Inaccurate)
}

func TestMergeConflictFirstWins(t *testing.T) {
	dc := diag.New(nil)
	sc := newScopes("word", "English", "en")
	sc.sense.POS = "verb"
	sc.sense.AppendString("glosses", "g")
	sc.pos.POS = "noun"
	sc.posOpen = true

	recs := sc.finalize(dc)
	require.Len(t, recs, 1)
	assert.Equal(t, "verb", recs[0].POS)
	assert.Equal(t, 1, dc.CountBySeverity(diag.SeverityWarning))
}

func TestPassthroughSectionCounted(t *testing.T) {
	e, dc := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(3, "Usage notes", text("prose")),
		),
	)

	e.ExtractPage("word", page)
	assert.Equal(t, 1, dc.SectionCounts["Usage notes"])
}

func TestAlternativeFormsCapture(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Alternative forms",
				tmpl("alter", "en", "colour", "", "British"),
			),
			section(3, "Noun", senseList("a hue")),
		),
	)

	recs := e.ExtractPage("color", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Alternative, 1)
	assert.Equal(t, "colour", recs[0].Alternative[0].Word)
	assert.Equal(t, "British", recs[0].Alternative[0].Dialect)
}

func TestCategoryLinkTopics(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(3, "Usage notes", link("Category:en:Mathematics")),
		),
	)

	recs := e.ExtractPage("word", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Topics, 1)
	assert.Equal(t, "Mathematics", recs[0].Topics[0].Word)
}

func TestEtymologyCompoundCapture(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Etymology",
				tmpl("compound", "en", "rain", "bow"),
				section(4, "Noun", senseList("an arc of color")),
			),
		),
	)

	recs := e.ExtractPage("rainbow", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Compound, 1)
	assert.Equal(t, "rain", recs[0].Compound[0]["2"])
	assert.Equal(t, "bow", recs[0].Compound[0]["3"])
}

func TestDeclensionSectionCapture(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "Finnish",
			section(3, "Noun", senseList("light")),
			section(4, "Declension", tmpl("fi-decl-valo", "val", "o")),
		),
	)

	recs := e.ExtractPage("valo", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Conjugation, 1)
	assert.Equal(t, "fi-decl-valo", recs[0].Conjugation[0]["template_name"])
}

func TestUnsupportedTitle(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Symbol", senseList("and")),
		),
	)

	recs := e.ExtractPage("Unsupported titles/Ampersand", page)
	require.Len(t, recs, 1)
	assert.Equal(t, "&", recs[0].Word)
}

func TestLinkageRangeScoping(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Related terms",
				tmpl("rel-top", "clothing"),
				list(item("*", tmpl("l", "en", "jacket"))),
				tmpl("rel-bottom"),
				list(item("*", tmpl("l", "en", "shoe"))),
			),
		),
	)

	recs := e.ExtractPage("suit", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Related, 2)
	assert.Equal(t, "jacket", recs[0].Related[0].Word)
	assert.Equal(t, "clothing", recs[0].Related[0].Sense)
	assert.Equal(t, "shoe", recs[0].Related[1].Word)
	assert.Empty(t, recs[0].Related[1].Sense)
}

func TestLinkageNumberedGroups(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Derived terms",
				tmpl("syn2", "en", "garb", "attire"),
				tmpl("col2", "en", "suitcase"),
			),
		),
	)

	recs := e.ExtractPage("suit", page)
	require.Len(t, recs, 1)
	// A numbered family template overrides the section kind.
	require.Len(t, recs[0].Synonyms, 2)
	assert.Equal(t, "garb", recs[0].Synonyms[0].Word)
	assert.Equal(t, "attire", recs[0].Synonyms[1].Word)
	// The generic column template keeps it.
	require.Len(t, recs[0].Derived, 1)
	assert.Equal(t, "suitcase", recs[0].Derived[0].Word)
}

func TestHyphenationCapture(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Pronunciation",
				list(item("*", tmpl("hyph", "en", "dic", "tion", "ary"))),
			),
			section(3, "Noun",
				tmpl("hyphenation", "en", "dic", "tio", "na", "ry"),
				senseList("a reference work"),
			),
		),
	)

	recs := e.ExtractPage("dictionary", page)
	require.Len(t, recs, 1)
	assert.ElementsMatch(t, []string{"dic-tion-ary", "dic-tio-na-ry"}, recs[0].Hyphenation)
	// A hyphenation-only list item is not a pronunciation variant.
	assert.Empty(t, recs[0].Sounds)
}

func TestTranslationCheckSection(t *testing.T) {
	e, _ := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Translations",
				tmpl("checktrans-top"),
				list(item("*", text("German: "), tmpl("t-check", "de", "Buch"))),
				tmpl("checktrans-bottom"),
				list(item("*", text("German: "), tmpl("t", "de", "Heft"))),
			),
		),
	)

	recs := e.ExtractPage("book", page)
	require.Len(t, recs, 1)
	require.Len(t, recs[0].Translations, 2)
	assert.Equal(t, "Buch", recs[0].Translations[0].Word)
	assert.Contains(t, recs[0].Translations[0].Tags, "to-check")
	assert.Equal(t, "Heft", recs[0].Translations[1].Word)
	assert.NotContains(t, recs[0].Translations[1].Tags, "to-check")
}

func TestCompoundsHeadingGate(t *testing.T) {
	dc := diag.New(nil)
	opts := DefaultOptions()
	opts.CaptureCompounds = false
	e := New(lookup.DefaultLanguages(), nil, dc, opts)

	page := root(
		section(2, "English",
			section(3, "Noun", senseList("a gloss")),
			section(4, "Compounds",
				list(item("*", tmpl("l", "en", "rainstorm"))),
			),
			section(4, "Synonyms",
				list(item("*", tmpl("l", "en", "precipitation"))),
			),
		),
	)

	recs := e.ExtractPage("rain", page)
	require.Len(t, recs, 1)
	assert.Empty(t, recs[0].Compounds)
	// Other linkage headings stay on the linkage flag.
	require.Len(t, recs[0].Synonyms, 1)
}

func TestHeadClassMismatchWarning(t *testing.T) {
	e, dc := newTestExtractor()
	page := root(
		section(2, "English",
			section(3, "Noun",
				tmpl("head", "en", "numeral"),
				senseList("a gloss"),
			),
		),
	)

	e.ExtractPage("dozen", page)
	assert.GreaterOrEqual(t, dc.CountBySeverity(diag.SeverityWarning), 1)
}

func TestResolveHeading(t *testing.T) {
	tests := []struct {
		title string
		kind  headingKind
	}{
		{"Etymology", headingEtymology},
		{"Etymology 2", headingEtymology},
		{"Pronunciation", headingPronunciation},
		{"Translations", headingTranslations},
		{"Declension", headingDeclension},
		{"Conjugation", headingDeclension},
		{"Synonyms", headingLinkage},
		{"Derived terms", headingLinkage},
		{"Noun", headingPOS},
		{"Anagrams", headingIgnored},
		{"Usage notes", headingPassthrough},
	}
	for _, tc := range tests {
		info := resolveHeading(tc.title)
		assert.Equal(t, tc.kind, info.kind, tc.title)
	}
}

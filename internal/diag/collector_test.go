package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorEntries(t *testing.T) {
	c := New(nil)
	c.Debugf("tmpl", "detail %d", 1)
	c.Warningf("section", "odd heading")
	c.Errorf("page", "unknown language %q", "Klingon")

	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, SeverityDebug, entries[0].Severity)
	assert.Equal(t, "detail 1", entries[0].Message)
	assert.Equal(t, "tmpl", entries[0].Context)

	assert.Equal(t, 1, c.CountBySeverity(SeverityWarning))
	assert.Equal(t, 1, c.CountBySeverity(SeverityError))
}

func TestUnrecognizedTemplateKey(t *testing.T) {
	c := New(nil)
	c.UnrecognizedTemplate("foo", "inside gloss")
	c.UnrecognizedTemplate("foo", "inside gloss")
	c.UnrecognizedTemplate("foo", "linkage")

	assert.Equal(t, 2, c.UnrecognizedTemplates["foo (inside gloss)"])
	assert.Equal(t, 1, c.UnrecognizedTemplates["foo (linkage)"])
}

func TestUnknownValueIsWarning(t *testing.T) {
	c := New(nil)
	c.UnknownValue("de-verb form of", "zz")
	assert.Equal(t, 1, c.CountBySeverity(SeverityWarning))
}

func TestMergeCombinesCounters(t *testing.T) {
	a := New(nil)
	a.Warningf("x", "w")
	a.UnrecognizedTemplate("foo", "linkage")
	a.CountSection("Usage notes")

	b := New(nil)
	b.Errorf("y", "e")
	b.UnrecognizedTemplate("foo", "linkage")
	b.CountSection("Usage notes")
	b.CountSection("Trivia")

	a.Merge(b)
	a.Merge(nil)

	assert.Len(t, a.Entries(), 2)
	assert.Equal(t, 2, a.UnrecognizedTemplates["foo (linkage)"])
	assert.Equal(t, 2, a.SectionCounts["Usage notes"])
	assert.Equal(t, 1, a.SectionCounts["Trivia"])
}

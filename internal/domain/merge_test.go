package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFromScalarsFirstWriteWins(t *testing.T) {
	var conflicts []string
	onConflict := func(field, kept, dropped string) {
		conflicts = append(conflicts, field+":"+kept+"/"+dropped)
	}

	dst := &Record{Word: "cat", POS: "noun"}
	src := &Record{Word: "cat", Lang: "English", POS: "verb"}
	dst.MergeFrom(src, onConflict)

	assert.Equal(t, "noun", dst.POS)
	assert.Equal(t, "English", dst.Lang)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "pos:noun/verb", conflicts[0])
}

func TestMergeFromListsConcatenate(t *testing.T) {
	dst := &Record{
		Glosses:  []string{"first"},
		Tags:     []string{"informal"},
		Synonyms: []LinkageEdge{{Word: "a"}},
	}
	src := &Record{
		Glosses:     []string{"second"},
		Tags:        []string{"informal", "rare"},
		Synonyms:    []LinkageEdge{{Word: "b"}},
		Alternative: []AltForm{{Word: "alt"}},
		Enum:        []EnumLink{{Prev: "a", Next: "c"}},
	}
	dst.MergeFrom(src, nil)

	assert.Equal(t, []string{"first", "second"}, dst.Glosses)
	// Tags are a set, not a list.
	assert.Equal(t, []string{"informal", "rare"}, dst.Tags)
	require.Len(t, dst.Synonyms, 2)
	assert.Len(t, dst.Alternative, 1)
	assert.Len(t, dst.Enum, 1)
}

func TestMergeFromDoesNotModifySource(t *testing.T) {
	src := &Record{Glosses: []string{"g"}, Tags: []string{"t"}}
	dst := &Record{}
	dst.MergeFrom(src, nil)

	assert.Equal(t, []string{"g"}, src.Glosses)
	assert.Equal(t, []string{"t"}, src.Tags)
}

func TestAddTagsDeduplicates(t *testing.T) {
	r := &Record{}
	r.AddTags("plural", "", "plural", "archaic")
	assert.Equal(t, []string{"plural", "archaic"}, r.Tags)
	assert.True(t, r.HasTag("archaic"))
	assert.False(t, r.HasTag("modern"))
}

func TestAppendStringUnknownField(t *testing.T) {
	r := &Record{}
	assert.False(t, r.AppendString("no_such_field", "v"))
	assert.True(t, r.AppendString("glosses", "v"))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, (&Record{Word: "w", Lang: "English", LangCode: "en"}).IsEmpty())
	assert.False(t, (&Record{POS: "noun"}).IsEmpty())
	assert.False(t, (&Record{Glosses: []string{"g"}}).IsEmpty())
	assert.False(t, (&Record{Sounds: []Pronunciation{{IPA: []string{"/a/"}}}}).IsEmpty())
	assert.False(t, (&Record{Related: []LinkageEdge{{Word: "x"}}}).IsEmpty())
}

func TestPronunciationHasContent(t *testing.T) {
	assert.False(t, Pronunciation{Sense: "s", Tags: []string{"t"}, Accent: []string{"UK"}}.HasContent())
	assert.True(t, Pronunciation{IPA: []string{"/a/"}}.HasContent())
	assert.True(t, Pronunciation{Rhymes: "-ing"}.HasContent())
	assert.True(t, Pronunciation{Audio: []string{"f.ogg"}}.HasContent())
}

func TestLinkageListCoversAllKinds(t *testing.T) {
	r := &Record{}
	for _, kind := range AllLinkageKinds {
		lst := r.LinkageList(kind)
		require.NotNil(t, lst, kind)
		*lst = append(*lst, LinkageEdge{Word: "w"})
	}
	assert.Nil(t, r.LinkageList("bogus"))
}

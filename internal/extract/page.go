// Package extract walks parsed page trees and aggregates hierarchical
// dictionary entries into flat records, one per word sense. The walk is
// synchronous and owns all of its staging state; pages are independent
// units of work.
package extract

import (
	"github.com/heartmarshall/wiktparse/internal/diag"
	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/extract/tagnorm"
	"github.com/heartmarshall/wiktparse/internal/lookup"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

// Options selects which optional field groups the extractor captures
// and which languages it keeps.
type Options struct {
	CapturePronunciation bool
	CaptureTranslations  bool
	CaptureLinkage       bool
	CaptureCompounds     bool
	// Languages restricts extraction to the named languages. Empty
	// keeps every recognized language.
	Languages []string
}

// DefaultOptions captures everything for all languages.
func DefaultOptions() Options {
	return Options{
		CapturePronunciation: true,
		CaptureTranslations:  true,
		CaptureLinkage:       true,
		CaptureCompounds:     true,
	}
}

// Extractor turns one page tree at a time into records. It is not safe
// for concurrent use: each worker gets its own Extractor and Collector,
// sharing only the immutable lookup tables.
type Extractor struct {
	langs  *lookup.Languages
	norm   *tagnorm.Normalizer
	render wikinode.Renderer
	diag   *diag.Collector
	opts   Options

	capture map[string]bool
}

// New creates an Extractor. render may be nil, in which case the plain
// text renderer is used.
func New(langs *lookup.Languages, render wikinode.Renderer, dc *diag.Collector, opts Options) *Extractor {
	if render == nil {
		render = wikinode.TextRenderer{}
	}
	e := &Extractor{
		langs:  langs,
		norm:   tagnorm.New(langs, dc),
		render: render,
		diag:   dc,
		opts:   opts,
	}
	if len(opts.Languages) > 0 {
		e.capture = make(map[string]bool, len(opts.Languages))
		for _, l := range opts.Languages {
			e.capture[l] = true
		}
	}
	return e
}

// ExtractPage walks one page tree and returns its records in document
// order. Level-2 sections are language sections; a section whose
// heading is not a recognized language is reported and skipped. An
// empty tree yields no records.
func (e *Extractor) ExtractPage(title string, root *wikinode.Node) []domain.Record {
	if root == nil {
		e.diag.Errorf(title, "page has no parsed tree")
		return nil
	}
	word := lookup.ResolveTitle(title)

	var out []domain.Record
	for _, sect := range root.ChildSections() {
		if sect.Level != 2 {
			continue
		}
		langName := wikinode.CleanText(sect.Heading)
		lang, ok := e.langs.ByName(langName)
		if !ok {
			e.diag.Errorf(title, "unrecognized language heading %q", langName)
			continue
		}
		if e.capture != nil && !e.capture[lang.Name] {
			continue
		}
		recs := e.extractLanguage(word, lang, sect)
		postprocess(recs)
		out = append(out, recs...)
	}
	return out
}

// extractLanguage runs the aggregation state machine over one language
// section.
func (e *Extractor) extractLanguage(word string, lang lookup.Language, sect *wikinode.Node) []domain.Record {
	sc := newScopes(word, lang.Name, lang.Code)
	// Content above the first subsection: head boxes, stray links.
	e.parseAny(nonSectionChildren(sect), &sc.base)
	e.processChildren(sc, sect)
	return sc.finalize(e.diag)
}

func nonSectionChildren(n *wikinode.Node) []*wikinode.Node {
	var out []*wikinode.Node
	for _, c := range n.Children {
		if c != nil && !c.IsSection() {
			out = append(out, c)
		}
	}
	return out
}

package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/extract/tagnorm"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

// linkageGroupRe matches the numbered word-list template families,
// e.g. "syn3", "ant2", "der4", "col2", "rel3".
var linkageGroupRe = regexp.MustCompile(`^(syn|ant|hyp|der|rel|col)([1-5])?(-u)?$`)

// linkageRangeRe matches the range-delimiting templates that open or
// close a qualified run of list items, e.g. "rel-top", "der-bottom".
var linkageRangeRe = regexp.MustCompile(`^(rel|hyp|der|col)-(top|bottom)$`)

var linkageGroupKinds = map[string]domain.LinkageKind{
	"syn": domain.LinkageSynonyms,
	"ant": domain.LinkageAntonyms,
	"hyp": domain.LinkageHyponyms,
	"der": domain.LinkageDerived,
	"rel": domain.LinkageRelated,
}

var compassDirections = map[string]bool{
	"n": true, "s": true, "e": true, "w": true,
	"ne": true, "nw": true, "se": true, "sw": true,
}

// linkageState carries the active relation kind, sense and qualifiers
// across one linkage section, plus the dedup set.
type linkageState struct {
	kind  domain.LinkageKind
	sense string
	tags  []string
	seen  map[string]bool
}

// parseLinkage extracts typed cross-reference edges from a linkage
// section. Three shapes are supported: structured list items, range
// templates that qualify a run of items, and free-text paragraphs.
func (e *Extractor) parseLinkage(sect *wikinode.Node, kind domain.LinkageKind, target *domain.Record) {
	st := &linkageState{kind: kind, seen: make(map[string]bool)}
	for _, c := range sect.Children {
		if c == nil || c.IsSection() {
			continue
		}
		switch c.Kind {
		case wikinode.KindList:
			for _, item := range c.Children {
				if item != nil && item.Kind == wikinode.KindListItem {
					e.parseLinkageItem(st, item, target)
				}
			}
		case wikinode.KindTemplate:
			inv := wikinode.Resolve(c, e.render)
			e.applyLinkageTemplate(st, inv, target)
		case wikinode.KindText:
			e.parseLinkageText(st, c.Text, target)
		case wikinode.KindTable:
			// Tables of edges reduce to their lists.
			for _, list := range collectLists(c) {
				for _, item := range list.Children {
					if item != nil && item.Kind == wikinode.KindListItem {
						e.parseLinkageItem(st, item, target)
					}
				}
			}
		}
	}
}

// parseLinkageItem extracts the edges of one list item. Templates are
// consumed first; if none yielded a word, the rendered text is split as
// free text.
func (e *Extractor) parseLinkageItem(st *linkageState, item *wikinode.Node, target *domain.Record) {
	sense := st.sense
	var tags []string
	var words []string

	for _, t := range item.Templates() {
		inv := wikinode.Resolve(t, e.render)
		switch inv.Name {
		case "sense", "s":
			sense = inv.Arg(1)
		case "q", "qual", "qualifier", "i":
			tags = append(tags, tagnorm.CleanQualifiers(inv.Vec())...)
		case "g", "g2":
			tags = append(tags, tagnorm.CleanQualifiers(inv.Vec())...)
		case "l", "link", "ll":
			if w := e.linkWord(inv); w != "" {
				words = append(words, w)
			}
		case "ja-r", "zh-l", "vern", "w":
			if w := inv.Arg(1); w != "" {
				words = append(words, w)
			}
		default:
			e.norm.Apply(target, inv, "linkage")
		}
	}

	for _, link := range item.Links() {
		if w, ok := linkageLinkWord(link.Target); ok {
			words = append(words, w)
		}
	}

	if len(words) == 0 {
		text := e.render.Render(item.Children, func(string, wikinode.Invocation) (string, bool) {
			return "", true
		})
		e.emitLinkageText(st, text, sense, tags, target)
		return
	}
	for _, w := range words {
		e.emitEdge(st, target, w, sense, append(append([]string{}, st.tags...), tags...))
	}
}

// applyLinkageTemplate handles section-level templates: numbered word
// groups, range delimiters and the compass rose.
func (e *Extractor) applyLinkageTemplate(st *linkageState, inv wikinode.Invocation, target *domain.Record) {
	if m := linkageGroupRe.FindStringSubmatch(inv.Name); m != nil {
		kind := st.kind
		if k, ok := linkageGroupKinds[m[1]]; ok && m[1] != "col" {
			kind = k
		}
		sense := inv.NamedArg("title")
		for _, w := range e.dropLangCode(inv.Vec()) {
			if w != "" {
				e.emitEdgeKind(st, target, kind, w, sense, nil)
			}
		}
		return
	}
	if m := linkageRangeRe.FindStringSubmatch(inv.Name); m != nil {
		if m[2] == "bottom" {
			st.sense = ""
			st.tags = nil
			return
		}
		st.sense = inv.Arg(1)
		return
	}
	switch inv.Name {
	case "sense", "s":
		st.sense = inv.Arg(1)
	case "q", "qual", "qualifier", "i":
		st.tags = append(st.tags, tagnorm.CleanQualifiers(inv.Vec())...)
	case "compass":
		for k, v := range inv.Named {
			if compassDirections[k] && v != "" {
				e.emitEdgeKind(st, target, domain.LinkageCoordinateTerms, v, st.sense, nil)
			}
		}
	default:
		e.norm.Apply(target, inv, "linkage")
	}
}

// parseLinkageText handles a free-text paragraph: an optional leading
// parenthesized sense, then comma/semicolon/dash separated words.
func (e *Extractor) parseLinkageText(st *linkageState, text string, target *domain.Record) {
	text = wikinode.CleanText(text)
	if text == "" {
		return
	}
	e.emitLinkageText(st, text, st.sense, nil, target)
}

func (e *Extractor) emitLinkageText(st *linkageState, text, sense string, tags []string, target *domain.Record) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if strings.HasPrefix(text, "(") {
		if end := strings.IndexByte(text, ')'); end > 0 {
			if sense == "" {
				sense = strings.TrimSpace(text[1:end])
			}
			text = strings.TrimSpace(text[end+1:])
		}
	}
	// A trailing parenthetical is commentary, not a word.
	if i := strings.LastIndexByte(text, '('); i > 0 && strings.HasSuffix(text, ")") {
		text = strings.TrimSpace(text[:i])
	}
	text = strings.TrimSuffix(text, ":")

	var segments []string
	switch {
	case strings.Contains(text, "; "):
		segments = strings.Split(text, "; ")
	case strings.Contains(text, ", "):
		segments = strings.Split(text, ", ")
	case strings.Contains(text, " - "):
		segments = strings.Split(text, " - ")
	default:
		segments = []string{text}
	}
	for _, seg := range segments {
		seg = strings.TrimSpace(strings.Trim(seg, `"'`))
		if seg == "" || strings.HasPrefix(seg, "See ") || strings.HasPrefix(seg, "see ") {
			continue
		}
		e.emitEdge(st, target, seg, sense, append(append([]string{}, st.tags...), tags...))
	}
}

func (e *Extractor) emitEdge(st *linkageState, target *domain.Record, word, sense string, tags []string) {
	e.emitEdgeKind(st, target, st.kind, word, sense, tags)
}

// emitEdgeKind appends one edge, deduplicating on the identity
// (kind, word, sense, sorted tags).
func (e *Extractor) emitEdgeKind(st *linkageState, target *domain.Record, kind domain.LinkageKind, word, sense string, tags []string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	sorted := append([]string{}, tags...)
	sort.Strings(sorted)
	key := string(kind) + "\x00" + word + "\x00" + sense + "\x00" + strings.Join(sorted, "\x00")
	if st.seen[key] {
		return
	}
	st.seen[key] = true
	lst := target.LinkageList(kind)
	*lst = append(*lst, domain.LinkageEdge{Word: word, Sense: sense, Tags: tags})
}

// linkWord picks the display word of a link template, skipping the
// language-code argument.
func (e *Extractor) linkWord(inv wikinode.Invocation) string {
	if len(inv.Pos) >= 2 && e.langs.HasCode(inv.Pos[0]) {
		if alt := inv.Arg(3); alt != "" {
			return alt
		}
		return inv.Arg(2)
	}
	return inv.Arg(1)
}

// linkageLinkWord filters link targets: thesaurus, category and other
// namespaced targets are navigation, not edges.
func linkageLinkWord(linkTarget string) (string, bool) {
	if strings.Contains(linkTarget, ":") {
		return "", false
	}
	t := strings.TrimSpace(linkTarget)
	if t == "" {
		return "", false
	}
	return t, true
}

// collectLists gathers the list nodes anywhere under n.
func collectLists(n *wikinode.Node) []*wikinode.Node {
	var out []*wikinode.Node
	var walk func(*wikinode.Node)
	walk = func(cur *wikinode.Node) {
		if cur == nil {
			return
		}
		if cur.Kind == wikinode.KindList {
			out = append(out, cur)
			return
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	for _, c := range n.Children {
		walk(c)
	}
	return out
}

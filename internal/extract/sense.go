package extract

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/extract/tagnorm"
	"github.com/heartmarshall/wiktparse/internal/lookup"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

// headTemplateRe matches per-language headword templates such as
// "en-noun" or "fi-proper noun": a language code followed by a
// recognized headword suffix.
var headTemplateRe = regexp.MustCompile(`^([a-z]{2,3}(?:-[a-z]{2,3})?)-(.+)$`)

// glossRenderNames render through to the default expansion inside a
// gloss instead of being consumed by the normalizer: they are inline
// links whose text belongs in the gloss.
var glossRenderNames = map[string]bool{
	"l":       true,
	"link":    true,
	"ll":      true,
	"m":       true,
	"mention": true,
	"m+":      true,
	"w":       true,
	"lang":    true,
}

// parsePartOfSpeech handles one part-of-speech section: the headword
// preamble above the sense list, then each sense list item as one sense
// scope.
func (e *Extractor) parsePartOfSpeech(sc *scopes, sect *wikinode.Node, pos domain.PartOfSpeech) {
	e.parsePreamble(sc, sect, pos)
	for _, list := range sect.Lists() {
		for _, item := range list.Children {
			if item == nil {
				continue
			}
			if item.Kind != wikinode.KindListItem {
				e.diag.Warningf(sect.Heading, "unexpected %s node inside sense list", item.Kind)
				continue
			}
			// Quotation/example items attach to the preceding sense and
			// are reached through its sublists.
			if strings.HasSuffix(item.Marker, ":") || strings.HasSuffix(item.Marker, "*") {
				continue
			}
			e.parseSenseItem(sc, item)
			sc.pushSense()
		}
	}
}

// parsePreamble captures headword templates and other content that sits
// between the part-of-speech heading and its sense list.
func (e *Extractor) parsePreamble(sc *scopes, sect *wikinode.Node, pos domain.PartOfSpeech) {
	for _, c := range sect.Children {
		if c == nil || c.Kind == wikinode.KindSection || c.Kind == wikinode.KindList {
			continue
		}
		for _, t := range c.Templates() {
			inv := wikinode.Resolve(t, e.render)
			if e.capturePreambleTemplate(sc, inv, pos) {
				continue
			}
			e.norm.Apply(&sc.pos, inv, "preamble")
		}
	}
}

func (e *Extractor) capturePreambleTemplate(sc *scopes, inv wikinode.Invocation, pos domain.PartOfSpeech) bool {
	name := inv.Name
	switch name {
	case "head", "head-lite":
		sc.pos.Heads = append(sc.pos.Heads, inv.Dict())
		e.checkHeadPOS(inv.Arg(2), pos)
		return true
	case "hyphenation", "hyph":
		if h := hyphenationArg(inv, e.langs); h != "" {
			sc.pos.AppendString("hyphenation", h)
		}
		return true
	}
	if m := headTemplateRe.FindStringSubmatch(name); m != nil && lookup.IsHeadTemplateSuffix(m[2]) {
		sc.pos.Heads = append(sc.pos.Heads, inv.Dict())
		e.checkHeadPOS(m[2], pos)
		if strings.Contains(name, "plural") {
			sc.pos.AddTags("plural")
		}
		return true
	}
	return false
}

// checkHeadPOS warns when a headword template's word class disagrees
// with the part-of-speech the section heading mapped to.
func (e *Extractor) checkHeadPOS(class string, pos domain.PartOfSpeech) {
	class = strings.TrimSpace(class)
	if class == "" {
		return
	}
	if !lookup.TemplateAllowsPOS(class, pos) {
		e.diag.Warningf(class, "headword class %q is suspect under part-of-speech %q", class, pos)
	}
}

// hyphenationArg joins the syllable arguments of a hyphenation template.
func hyphenationArg(inv wikinode.Invocation, langs *lookup.Languages) string {
	vec := inv.Vec()
	if len(vec) > 0 && langs.HasCode(vec[0]) {
		vec = vec[1:]
	}
	var parts []string
	for _, v := range vec {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "-")
}

// parseSenseItem fills the sense scope from one sense list item: the
// item's templates are consumed into structured fields, the remaining
// rendered text becomes the gloss, and sublists contribute examples and
// qualifying context rather than new senses.
func (e *Extractor) parseSenseItem(sc *scopes, item *wikinode.Node) {
	hook := func(name string, inv wikinode.Invocation) (string, bool) {
		switch name {
		case "syn", "synonyms":
			vec := inv.Vec()
			if len(vec) > 0 && e.langs.HasCode(vec[0]) {
				vec = vec[1:]
			}
			for _, w := range vec {
				if w != "" {
					sc.sense.Synonyms = append(sc.sense.Synonyms, domain.LinkageEdge{Word: w})
				}
			}
			return "", true
		case "LDL":
			return "", true
		}
		if glossRenderNames[name] {
			return "", false
		}
		e.norm.Apply(&sc.sense, inv, "inside gloss")
		return "", true
	}

	var inline []*wikinode.Node
	for _, c := range item.Children {
		if c != nil && c.Kind == wikinode.KindList {
			continue
		}
		inline = append(inline, c)
	}
	gloss := e.render.Render(inline, hook)
	gloss, qualifiers := splitLeadingQualifier(gloss)
	sc.sense.AddTags(tagnorm.CleanQualifiers(qualifiers)...)

	if gloss == "" {
		e.diag.Warningf("inside gloss", "sense item rendered no gloss text")
	} else {
		sc.sense.AppendString("glosses", gloss)
	}

	for _, sub := range item.Children {
		if sub == nil || sub.Kind != wikinode.KindList {
			continue
		}
		for _, subItem := range sub.Children {
			if subItem == nil || subItem.Kind != wikinode.KindListItem {
				continue
			}
			for _, t := range subItem.Templates() {
				inv := wikinode.Resolve(t, e.render)
				e.norm.Apply(&sc.sense, inv, "inside gloss")
			}
		}
	}
}

// splitLeadingQualifier strips a leading parenthesized qualifier from
// the rendered gloss and returns its comma-separated parts.
func splitLeadingQualifier(gloss string) (string, []string) {
	if !strings.HasPrefix(gloss, "(") {
		return gloss, nil
	}
	end := strings.IndexByte(gloss, ')')
	if end < 0 {
		return gloss, nil
	}
	inner := gloss[1:end]
	rest := strings.TrimSpace(gloss[end+1:])
	rest = strings.TrimPrefix(rest, ",")
	rest = strings.TrimSpace(rest)
	var parts []string
	for _, p := range strings.Split(inner, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return rest, parts
}

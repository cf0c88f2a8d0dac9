package extract

import (
	"strings"

	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/lookup"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

// headingKind classifies a section heading once; the walk then matches
// on the closed set instead of re-inspecting the title.
type headingKind int

const (
	headingPassthrough headingKind = iota
	headingIgnored
	headingEtymology
	headingPOS
	headingPronunciation
	headingTranslations
	headingDeclension
	headingLinkage
)

type headingInfo struct {
	kind    headingKind
	pos     lookup.POSInfo     // set for headingPOS
	linkage domain.LinkageKind // set for headingLinkage
}

// linkageHeadings maps section titles to relation kinds. Abbreviation
// and proverb listings have no relation kind of their own and land in
// related.
var linkageHeadings = map[string]domain.LinkageKind{
	"synonyms":           domain.LinkageSynonyms,
	"near synonyms":      domain.LinkageSynonyms,
	"pseudo-synonyms":    domain.LinkageSynonyms,
	"idiomatic synonyms": domain.LinkageSynonyms,
	"ambiguous synonyms": domain.LinkageSynonyms,
	"antonyms":           domain.LinkageAntonyms,
	"near antonyms":      domain.LinkageAntonyms,
	"hypernyms":          domain.LinkageHypernyms,
	"hypernym":           domain.LinkageHypernyms,
	"hyperonyms":         domain.LinkageHypernyms,
	"hyponyms":           domain.LinkageHyponyms,
	"hyponym":            domain.LinkageHyponyms,
	"meronyms":           domain.LinkageMeronyms,
	"holonyms":           domain.LinkageHolonyms,
	"troponyms":          domain.LinkageTroponyms,
	"coordinate terms":   domain.LinkageCoordinateTerms,
	"derived terms":      domain.LinkageDerived,
	"derived characters": domain.LinkageDerived,
	"related terms":      domain.LinkageRelated,
	"related characters": domain.LinkageRelated,
	"related words":      domain.LinkageRelated,
	"compounds":          domain.LinkageCompounds,
	"abbreviations":      domain.LinkageRelated,
	"proverbs":           domain.LinkageRelated,
	"idioms":             domain.LinkageRelated,
}

// ignoredHeadings are walked past entirely: their content never reaches
// an extractor nor the coverage counter.
var ignoredHeadings = map[string]bool{
	"anagrams":        true,
	"further reading": true,
	"references":      true,
	"quotations":      true,
	"descendants":     true,
	"see also":        true,
	"gallery":         true,
}

// resolveHeading maps a section title to its heading kind.
func resolveHeading(title string) headingInfo {
	t := strings.ToLower(strings.TrimSpace(title))
	// "Etymology 2" style numbering carries no meaning of its own.
	t = strings.TrimRight(t, " 0123456789")
	switch {
	case t == "etymology":
		return headingInfo{kind: headingEtymology}
	case t == "pronunciation":
		return headingInfo{kind: headingPronunciation}
	case t == "translations":
		return headingInfo{kind: headingTranslations}
	case t == "declension" || t == "conjugation" || t == "inflection":
		return headingInfo{kind: headingDeclension}
	}
	if kind, ok := linkageHeadings[t]; ok {
		return headingInfo{kind: headingLinkage, linkage: kind}
	}
	if ignoredHeadings[t] {
		return headingInfo{kind: headingIgnored}
	}
	if info, ok := lookup.POSByHeading(t); ok {
		return headingInfo{kind: headingPOS, pos: info}
	}
	return headingInfo{kind: headingPassthrough}
}

// processChildren walks the child sections of node, dispatching each to
// the matching extractor. Section extractors pick their destination
// record through the scope flags: the part-of-speech scope when one is
// open, else the etymology scope, else the page base.
func (e *Extractor) processChildren(sc *scopes, node *wikinode.Node) {
	for _, sect := range node.ChildSections() {
		info := resolveHeading(sect.Heading)
		switch info.kind {
		case headingEtymology:
			sc.pushEtym(e.diag)
			sc.etymOpen = true
			e.parseEtymology(sc, sect)
			e.processChildren(sc, sect)

		case headingPOS:
			sc.pushPOS(e.diag)
			sc.posOpen = true
			sc.pos.POS = info.pos.POS.String()
			sc.pos.AddTags(info.pos.Tags...)
			if info.pos.Warning != "" {
				e.diag.Warningf(sect.Heading, "%s", info.pos.Warning)
			}
			if info.pos.Error != "" {
				e.diag.Errorf(sect.Heading, "%s", info.pos.Error)
			}
			e.parsePartOfSpeech(sc, sect, info.pos.POS)
			e.processChildren(sc, sect)

		case headingPronunciation:
			if e.opts.CapturePronunciation {
				e.parsePronunciation(sc, sect, sc.pronTarget())
			}

		case headingTranslations:
			if e.opts.CaptureTranslations {
				e.parseTranslations(sect, sc.target())
			}

		case headingDeclension:
			e.parseDeclension(sect, sc.target())

		case headingLinkage:
			capture := e.opts.CaptureLinkage
			if info.linkage == domain.LinkageCompounds {
				capture = e.opts.CaptureCompounds
			}
			if capture {
				e.parseLinkage(sect, info.linkage, sc.target())
			}

		case headingIgnored:
			// Nothing beneath these contributes to a record.

		default:
			e.diag.CountSection(sect.Heading)
			e.parseAny(sect.Children, sc.target())
			e.processChildren(sc, sect)
		}
	}
}

// parseDeclension captures inflection tables from a declension or
// conjugation section. The normalizer already recognizes the template
// families and stores their argument dictionaries.
func (e *Extractor) parseDeclension(sect *wikinode.Node, target *domain.Record) {
	for _, t := range sect.Templates() {
		inv := wikinode.Resolve(t, e.render)
		e.norm.Apply(target, inv, "declension")
	}
}

// compoundNames are etymology templates whose arguments describe how
// the word was formed from parts.
var compoundNames = map[string]bool{
	"compound": true,
	"affix":    true,
	"af":       true,
	"prefix":   true,
	"pre":      true,
	"suffix":   true,
	"suf":      true,
	"confix":   true,
}

// parseEtymology captures word-formation templates from an etymology
// section into the etymology scope. Other etymology content is plain
// prose and is left alone, apart from the generic supplement capture.
func (e *Extractor) parseEtymology(sc *scopes, sect *wikinode.Node) {
	if e.opts.CaptureCompounds {
		for _, t := range sect.Templates() {
			if compoundNames[t.Name] {
				inv := wikinode.Resolve(t, e.render)
				sc.etym.Compound = append(sc.etym.Compound, inv.Dict())
			}
		}
	}
	e.parseAny(sect.Children, &sc.etym)
}

// parseAny scans loose content for the handful of templates and links
// that carry data outside a dedicated section: alternative forms,
// sequence links, stray translations, inflection tables and category
// links. Everything else here is prose and is skipped without a
// diagnostic.
func (e *Extractor) parseAny(nodes []*wikinode.Node, target *domain.Record) {
	sense := ""
	var walk func(n *wikinode.Node)
	walk = func(n *wikinode.Node) {
		if n == nil || n.IsSection() {
			return
		}
		switch n.Kind {
		case wikinode.KindTemplate:
			inv := wikinode.Resolve(n, e.render)
			switch inv.Name {
			case "alter":
				e.captureAlter(inv, target)
			case "enum":
				target.Enum = append(target.Enum, domain.EnumLink{
					Lang:  inv.Arg(1),
					Prev:  inv.Arg(2),
					Next:  inv.Arg(3),
					Value: inv.Arg(4),
				})
			case "trans-top":
				sense = inv.Arg(1)
			case "trans-bottom":
				sense = ""
			case "t", "t+", "tt", "tt+", "t-simple":
				if e.opts.CaptureTranslations {
					e.captureTranslation(inv, sense, nil, target)
				}
			default:
				if conjTemplateName(inv.Name) {
					target.Conjugation = append(target.Conjugation, inv.Dict())
				}
			}
			return
		case wikinode.KindLink:
			if topic, ok := categoryTopic(n.Target, e.langs); ok {
				target.Topics = append(target.Topics, domain.Topic{Word: topic})
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
}

// captureAlter records {{alter|lang|form...||dialect...}}: forms run
// until the first empty argument, the rest are dialect qualifiers
// applying to all listed forms.
func (e *Extractor) captureAlter(inv wikinode.Invocation, target *domain.Record) {
	vec := inv.Vec()
	if len(vec) < 2 {
		return
	}
	var words, dialects []string
	rest := vec[1:]
	i := 0
	for ; i < len(rest); i++ {
		if rest[i] == "" {
			i++
			break
		}
		words = append(words, rest[i])
	}
	for ; i < len(rest); i++ {
		if rest[i] != "" {
			dialects = append(dialects, rest[i])
		}
	}
	dialect := strings.Join(dialects, ", ")
	for _, w := range words {
		target.Alternative = append(target.Alternative, domain.AltForm{Word: w, Dialect: dialect})
	}
}

// categoryTopic extracts a topical category name from a Category: link
// target, stripping any language-code prefix.
func categoryTopic(linkTarget string, langs *lookup.Languages) (string, bool) {
	name, ok := strings.CutPrefix(linkTarget, "Category:")
	if !ok {
		return "", false
	}
	name = strings.TrimSpace(name)
	if stripped, had := langs.StripCodePrefix(name); had {
		name = stripped
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// conjTemplateName reports whether the name belongs to a per-language
// inflection-table template family.
func conjTemplateName(name string) bool {
	i := strings.IndexByte(name, '-')
	if i < 2 || i > 3 {
		return false
	}
	rest := name[i+1:]
	for _, p := range []string{"conj", "decl", "ndecl", "adecl", "infl",
		"conjugation", "declension", "inflection"} {
		if rest == p || strings.HasPrefix(rest, p+"-") {
			return true
		}
	}
	return false
}

package extract

import (
	"strings"

	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/extract/tagnorm"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

// transState tracks the active sense opened by trans-top and the tags
// applied to entries in the current run.
type transState struct {
	sense string
	tags  []string
}

// parseTranslations extracts translation entries from a Translations
// section. {{trans-top|sense}} opens an active sense until
// {{trans-bottom}}; items are "Language: ..." list entries whose
// sublists are script or dialect variants of the same language.
func (e *Extractor) parseTranslations(sect *wikinode.Node, target *domain.Record) {
	st := &transState{}
	e.parseTransNodes(sect.Children, st, target)
}

func (e *Extractor) parseTransNodes(nodes []*wikinode.Node, st *transState, target *domain.Record) {
	for _, c := range nodes {
		if c == nil || c.IsSection() {
			continue
		}
		switch c.Kind {
		case wikinode.KindTemplate:
			inv := wikinode.Resolve(c, e.render)
			switch inv.Name {
			case "trans-top", "trans-top-also":
				st.sense = inv.Arg(1)
				st.tags = nil
			case "trans-mid":
				// Column break, no state change.
			case "trans-bottom":
				st.sense = ""
				st.tags = nil
			case "checktrans-top":
				st.sense = ""
				st.tags = []string{"to-check"}
			case "checktrans-bottom":
				st.tags = nil
			case "trans-see":
				e.diag.Debugf(inv.Name, "translations deferred to subpage %q", inv.Arg(2))
			default:
				e.norm.Apply(target, inv, "translation")
			}
		case wikinode.KindText:
			if t := wikinode.CleanText(c.Text); t != "" {
				// A bare text heading inside the section scopes the
				// entries that follow it.
				if t == "Translations to be checked" {
					st.sense = ""
					st.tags = []string{"to-check"}
				} else {
					st.sense = strings.TrimSuffix(t, ":")
				}
			}
		case wikinode.KindList:
			for _, item := range c.Children {
				if item != nil && item.Kind == wikinode.KindListItem {
					e.parseTransItem(item, st, target)
				}
			}
		case wikinode.KindTable:
			e.parseTransNodes(c.Children, st, target)
		case wikinode.KindTableRow, wikinode.KindTableCell, wikinode.KindHTML:
			e.parseTransNodes(c.Children, st, target)
		}
	}
}

// parseTransItem handles one "Language: ..." line plus its variant
// sublists.
func (e *Extractor) parseTransItem(item *wikinode.Node, st *transState, target *domain.Record) {
	var inline, sublists []*wikinode.Node
	for _, c := range item.Children {
		if c != nil && c.Kind == wikinode.KindList {
			sublists = append(sublists, c)
			continue
		}
		inline = append(inline, c)
	}

	text := e.render.Render(inline, nil)
	langName, rest, ok := splitTransLang(text)
	if ok {
		if _, known := e.langs.ByName(langName); !known {
			e.diag.Errorf("translation", "unrecognized translation language %q", langName)
			ok = false
		}
	}

	captured := e.parseTransTemplates(inline, langName, st, nil, target)
	if !ok && !captured {
		e.diag.Errorf("translation", "translation item does not start with a language name: %q", wikinode.CleanText(text))
		return
	}
	if ok && !captured {
		e.captureTransText(langName, rest, st, nil, target)
	}

	for _, sub := range sublists {
		for _, subItem := range sub.Children {
			if subItem == nil || subItem.Kind != wikinode.KindListItem {
				continue
			}
			subText := e.render.Render(subItem.Children, nil)
			variant, subRest, _ := splitTransLang(subText)
			extra := []string{variant}
			if variant == "" {
				extra = nil
			}
			if !e.parseTransTemplates(subItem.Children, langName, st, extra, target) {
				e.captureTransText(langName, subRest, st, extra, target)
			}
		}
	}
}

// parseTransTemplates consumes t-family templates beneath nodes.
// Reports whether at least one entry was captured.
func (e *Extractor) parseTransTemplates(nodes []*wikinode.Node, langName string, st *transState, extraTags []string, target *domain.Record) bool {
	captured := false
	for _, n := range nodes {
		if n == nil {
			continue
		}
		for _, t := range n.Templates() {
			inv := wikinode.Resolve(t, e.render)
			switch inv.Name {
			case "t", "t+", "tt", "tt+", "t-simple", "t-check", "t+check":
				tr := e.translationFromTemplate(inv, langName, st, extraTags)
				if tr.Word != "" {
					target.Translations = append(target.Translations, tr)
					captured = true
				}
			case "t-needed", "trreq", "no equivalent translation", "not used":
				captured = true
			case "q", "qual", "qualifier":
				extraTags = append(extraTags, tagnorm.CleanQualifiers(inv.Vec())...)
			}
		}
	}
	return captured
}

// genderTags are the shorthand values t-templates carry after the word.
var genderTags = map[string]string{
	"m": "masculine", "f": "feminine", "n": "neuter", "c": "common",
	"p": "plural", "s": "singular", "impf": "imperfective", "pf": "perfective",
}

func (e *Extractor) translationFromTemplate(inv wikinode.Invocation, langName string, st *transState, extraTags []string) domain.Translation {
	tr := domain.Translation{
		Lang:   langName,
		Code:   inv.Arg(1),
		Word:   inv.Arg(2),
		Sense:  st.sense,
		Alt:    inv.NamedArg("alt"),
		Roman:  inv.NamedArg("tr"),
		Script: inv.NamedArg("sc"),
	}
	if tr.Lang == "" {
		if lang, ok := e.langs.ByCode(tr.Code); ok {
			tr.Lang = lang.Name
		}
	}
	for _, g := range inv.Vec()[minInt(2, len(inv.Pos)):] {
		if tag, ok := genderTags[g]; ok {
			tr.Tags = append(tr.Tags, tag)
		}
	}
	tr.Tags = append(tr.Tags, st.tags...)
	tr.Tags = append(tr.Tags, extraTags...)
	return tr
}

// captureTranslation is the loose-content variant used outside a
// Translations section.
func (e *Extractor) captureTranslation(inv wikinode.Invocation, sense string, extraTags []string, target *domain.Record) {
	st := &transState{sense: sense}
	tr := e.translationFromTemplate(inv, "", st, extraTags)
	if tr.Word != "" {
		target.Translations = append(target.Translations, tr)
	}
}

// captureTransText splits a bare "word1, word2; word3" entry tail into
// individual translations.
func (e *Extractor) captureTransText(langName, rest string, st *transState, extraTags []string, target *domain.Record) {
	if langName == "" {
		return
	}
	code := ""
	if lang, ok := e.langs.ByName(langName); ok {
		code = lang.Code
	}
	rest = strings.ReplaceAll(rest, ";", ",")
	for _, seg := range strings.Split(rest, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" || strings.ContainsAny(seg, "{}") {
			continue
		}
		tr := domain.Translation{Lang: langName, Code: code, Word: seg, Sense: st.sense}
		tr.Tags = append(tr.Tags, st.tags...)
		tr.Tags = append(tr.Tags, extraTags...)
		target.Translations = append(target.Translations, tr)
	}
}

// splitTransLang splits "Language: words" into its halves.
func splitTransLang(text string) (lang, rest string, ok bool) {
	i := strings.IndexByte(text, ':')
	if i <= 0 {
		return "", "", false
	}
	lang = strings.TrimSpace(text[:i])
	rest = strings.TrimSpace(text[i+1:])
	if lang == "" || strings.ContainsAny(lang, "{}[]") {
		return "", "", false
	}
	return lang, rest, true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

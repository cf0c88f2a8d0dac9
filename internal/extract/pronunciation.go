package extract

import (
	"strings"

	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/extract/tagnorm"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

// pronIgnoredNames are pronunciation-section templates that carry no
// extractable field.
var pronIgnoredNames = map[string]bool{
	"audio-IPA":       true,
	"audio-pron":      true,
	"picdic":          true,
	"picdicimg":       true,
	"picdiclabel":     true,
	"commonscat":      true,
	"PIE root":        true,
	"wikipedia":       true,
	"wp":              true,
	"rfap":            true,
	"rfp":             true,
	"refn":            true,
	"interwiktionary": true,
	"multiple images": true,
}

// parsePronunciation collects pronunciation variants from a section.
// A list yields one variant per item; a listless section is one variant.
// Variants carrying only scope fields (sense, tags, accent) are
// discarded.
func (e *Extractor) parsePronunciation(sc *scopes, sect *wikinode.Node, target *domain.Record) {
	lists := sect.Lists()
	if len(lists) == 0 {
		if v := e.parsePronVariant(sect.Children, target); v.HasContent() {
			target.Sounds = append(target.Sounds, v)
		}
		return
	}
	for _, list := range lists {
		for _, item := range list.Children {
			if item == nil || item.Kind != wikinode.KindListItem {
				continue
			}
			if v := e.parsePronVariant(item.Children, target); v.HasContent() {
				target.Sounds = append(target.Sounds, v)
			}
		}
	}
}

func (e *Extractor) parsePronVariant(nodes []*wikinode.Node, target *domain.Record) domain.Pronunciation {
	var v domain.Pronunciation
	for _, n := range nodes {
		if n == nil || n.IsSection() {
			continue
		}
		for _, t := range n.Templates() {
			inv := wikinode.Resolve(t, e.render)
			e.applyPronTemplate(&v, inv, target)
		}
	}
	return v
}

func (e *Extractor) applyPronTemplate(v *domain.Pronunciation, inv wikinode.Invocation, target *domain.Record) {
	name := inv.Name
	switch name {
	case "a", "accent":
		v.Accent = append(v.Accent, tagnorm.CleanQualifiers(inv.Vec())...)
	case "sense":
		v.Sense = inv.Arg(1)
	case "q", "qual", "qualifier", "i":
		v.Tags = append(v.Tags, tagnorm.CleanQualifiers(inv.Vec())...)
	case "lb", "label", "context":
		v.Tags = append(v.Tags, tagnorm.CleanQualifiers(e.dropLangCode(inv.Vec()))...)
	case "IPA", "IPAchar", "ipa":
		for _, s := range e.dropLangCode(inv.Vec()) {
			if s != "" {
				v.IPA = append(v.IPA, s)
			}
		}
	case "enPR", "AHD":
		v.EnPR = inv.Arg(1)
	case "rhyme", "rhymes":
		args := e.dropLangCode(inv.Vec())
		if len(args) > 0 {
			v.Rhymes = args[0]
		}
	case "it-stress":
		v.Stress = inv.Arg(1)
	case "audio":
		args := e.dropLangCode(inv.Vec())
		if len(args) > 0 && args[0] != "" {
			v.Audio = append(v.Audio, args[0])
		}
	case "homophone", "homophones", "hmp":
		for _, s := range e.dropLangCode(inv.Vec()) {
			if s != "" {
				v.Homophones = append(v.Homophones, s)
			}
		}
	case "hyphenation", "hyph":
		if h := hyphenationArg(inv, e.langs); h != "" {
			target.AppendString("hyphenation", h)
		}
	default:
		if pronIgnoredNames[name] || strings.HasPrefix(name, "IPA") ||
			strings.HasPrefix(name, "R:") || strings.HasPrefix(name, "RQ:") {
			return
		}
		// The general rules still apply here: topical and label
		// templates land on the variant, anything structural on the
		// section's record.
		var scratch domain.Record
		if e.norm.Apply(&scratch, inv, "pronunciation") {
			v.Tags = append(v.Tags, scratch.Tags...)
			scratch.Tags = nil
			target.MergeFrom(&scratch, nil)
		}
	}
}

// dropLangCode removes a leading language-code argument.
func (e *Extractor) dropLangCode(vec []string) []string {
	if len(vec) > 0 && e.langs.HasCode(vec[0]) {
		return vec[1:]
	}
	return vec
}

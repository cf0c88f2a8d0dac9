// Package tagnorm maps template invocations to a bounded vocabulary of
// semantic tags and structured field additions. Dispatch is exact name
// first, then name-family patterns, then an ignore list; anything left
// is reported as an unrecognized template and contributes nothing.
package tagnorm

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/wiktparse/internal/diag"
	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/lookup"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

var (
	letterTemplateRe = regexp.MustCompile(`-letter$`)
	silencedRe       = regexp.MustCompile(`IPA|^(RQ:|Template:RQ:|R:|list:)|-romanization$|-romanji$|romanization of$`)
	topicTableRe     = regexp.MustCompile(`^table:([^/]*)(/[a-z0-9]+)?$`)
	conjTemplateRe   = regexp.MustCompile(`^[a-z]{2,3}-(conj|decl|ndecl|adecl|infl|conjugation|declension|inflection)($|-)`)
	hypernymsNameRe  = regexp.MustCompile(`^([A-Za-z].*?) Hypernyms$`)
	taxonSubspRe     = regexp.MustCompile(`(.*) (subsp\.|f\.)`)
)

// Normalizer turns template invocations into tag and field additions on
// a record. It is stateless apart from its lookup tables and diagnostic
// collector, and safe to reuse across sections of one page walk.
type Normalizer struct {
	langs *lookup.Languages
	diag  *diag.Collector
}

// New creates a Normalizer over the given language table and collector.
func New(langs *lookup.Languages, dc *diag.Collector) *Normalizer {
	return &Normalizer{langs: langs, diag: dc}
}

// Apply processes one template invocation, mutating rec. context names
// the calling extractor for diagnostics ("inside gloss", "linkage",
// "pronunciation", "translation"). Reports whether the invocation
// matched a rule, a family pattern or the ignore list.
func (n *Normalizer) Apply(rec *domain.Record, inv wikinode.Invocation, context string) bool {
	name := strings.TrimSpace(inv.Name)
	if r, ok := exactRules[name]; ok {
		r.apply(n, rec, inv)
		return true
	}
	if m, ok := lookup.VerbFormTemplate(name); ok {
		n.applyFormMap(rec, inv, m)
		return true
	}
	if ignoredNames[name] {
		return true
	}
	switch {
	case letterTemplateRe.MatchString(name):
		rec.AddTags("character")
		return true
	case conjTemplateRe.MatchString(name):
		rec.Conjugation = append(rec.Conjugation, inv.Dict())
		return true
	case silencedRe.MatchString(name):
		return true
	}
	if m := topicTableRe.FindStringSubmatch(name); m != nil {
		rec.Topics = append(rec.Topics, domain.Topic{Word: m[1]})
		return true
	}
	if m := hypernymsNameRe.FindStringSubmatch(name); m != nil {
		rec.Hypernyms = append(rec.Hypernyms, domain.LinkageEdge{Word: m[1]})
		return true
	}
	n.diag.UnrecognizedTemplate(name, context)
	return false
}

// CleanQualifiers drops connectives and placeholder values from a
// qualifier argument list.
func CleanQualifiers(vals []string) []string {
	var out []string
	for _, v := range vals {
		v = strings.TrimSpace(v)
		switch v {
		case "", "_", "and", "or", "&", "also":
			continue
		}
		out = append(out, v)
	}
	return out
}

// termArg selects the target term of a form-of template: the second
// positional argument when the first is a language code, else the
// first.
func (n *Normalizer) termArg(inv wikinode.Invocation) string {
	a1, a2 := inv.Arg(1), inv.Arg(2)
	if a2 != "" && n.langs.HasCode(a1) {
		return a2
	}
	return a1
}

// applyFormMap resolves a language-specific form-of template. The
// map's Keys name the leading positional arguments: "word" and
// "infinitive" slots carry the base form into inflection_of, any other
// key slot is a descriptor in a fixed position. The remaining arguments
// are free descriptors mapped through the form map.
func (n *Normalizer) applyFormMap(rec *domain.Record, inv wikinode.Invocation, m lookup.FormMap) {
	vec := inv.Vec()
	if len(vec) > 0 && n.langs.HasCode(vec[0]) {
		vec = vec[1:]
	}
	for _, key := range m.Keys {
		if len(vec) == 0 {
			return
		}
		v := vec[0]
		vec = vec[1:]
		if v == "" {
			continue
		}
		switch key {
		case "word", "infinitive":
			rec.AppendString("inflection_of", v)
		default:
			n.resolveFormArg(rec, inv.Name, v, m)
		}
	}
	for _, v := range vec {
		if v != "" {
			n.resolveFormArg(rec, inv.Name, v, m)
		}
	}
}

func (n *Normalizer) resolveFormArg(rec *domain.Record, name, v string, m lookup.FormMap) {
	tags, ok := m.Resolve(v)
	if !ok {
		n.diag.UnknownValue(name, v)
		return
	}
	rec.AddTags(tags...)
}

func (n *Normalizer) genderShorthand(rec *domain.Record, inv wikinode.Invocation) {
	switch v := inv.Arg(1); v {
	case "m":
		rec.AddTags("masculine")
	case "f":
		rec.AddTags("feminine")
	case "n":
		rec.AddTags("neuter")
	case "c":
		rec.AddTags("common")
	case "p":
		rec.AddTags("plural")
	case "m-p":
		rec.AddTags("masculine", "plural")
	case "f-p":
		rec.AddTags("feminine", "plural")
	default:
		n.diag.UnknownValue(inv.Name, v)
	}
}

// givenName tags personal names, with gender when specified.
func (n *Normalizer) givenName(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("person", "given_name")
	for k, v := range inv.Dict() {
		switch k {
		case "template_name", "usage", "var", "var2", "meaning", "m", "mt",
			"diminutive", "diminutive2", "dim", "dim2", "dim3", "dim4",
			"dim5", "dim6", "dim7", "dim8", "eq", "eq2", "eq3", "eq4",
			"eq5", "A", "3", "sort", "from", "from2", "from3", "from4",
			"from5", "fromt", "f":
			continue
		}
		if v == "en" || (k == "1" && len(v) <= 3) {
			continue
		}
		switch v {
		case "male_or_female", "unisex":
		case "male":
			rec.AddTags("masculine")
		case "female":
			rec.AddTags("feminine")
		default:
			n.diag.UnknownValue(inv.Name, v)
		}
	}
}

func (n *Normalizer) taxLink(rec *domain.Record, inv wikinode.Invocation) {
	x := inv.Arg(1)
	if m := taxonSubspRe.FindStringSubmatch(x); m != nil {
		x = m[1]
	}
	if x != "" {
		rec.AppendString("taxon", x)
	}
	rec.AddTags("organism")
}

func (n *Normalizer) taxonEntry(rec *domain.Record, inv wikinode.Invocation) {
	if v := inv.Arg(3); v != "" {
		rec.AppendString("taxon", v)
	}
	rec.AddTags("organism")
}

func (n *Normalizer) vernacular(rec *domain.Record, inv wikinode.Invocation) {
	if v := inv.Arg(1); v != "" {
		rec.AppendString("taxon", v)
	}
	rec.AddTags("organism")
}

func (n *Normalizer) colorPanel(rec *domain.Record, inv wikinode.Invocation) {
	for _, v := range inv.Vec() {
		if v == "" {
			continue
		}
		rec.AppendString("color", NormalizeColor(v))
	}
}

func (n *Normalizer) colorBox(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("color_value")
	if v := inv.Arg(1); v != "" {
		rec.AppendString("color", NormalizeColor(v))
	}
}

func (n *Normalizer) numberBox(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("number_value")
	if v := inv.Arg(2); v != "" {
		rec.AppendString("value", v)
	}
}

// spellingOf handles {{spelling of|lang|<kind>|word}} where the kind
// argument describes the spelling variety in free words.
func (n *Normalizer) spellingOf(rec *domain.Record, inv wikinode.Invocation) {
	term := inv.Arg(3)
	if term == "" {
		term = n.termArg(inv)
	}
	if term != "" {
		rec.AppendString("alt_of", term)
	}
	for _, w := range strings.Fields(strings.ToLower(inv.Arg(2))) {
		rec.AddTags(w)
	}
}

// abbreviationOf records the expanded term, routing "w:" targets to
// wikipedia links.
func (n *Normalizer) abbreviationOf(rec *domain.Record, inv wikinode.Invocation) {
	x := n.termArg(inv)
	if strings.HasPrefix(x, "w:") {
		x = x[2:]
		rec.AppendString("wikipedia", x)
	}
	if x != "" {
		rec.AppendString("alt_of", x)
	}
	rec.AddTags("abbreviation")
}

// inflectedFormOf handles {{form of|lang|<form>|word}}: the form
// descriptor is resolved through the noun and verb form tables.
func (n *Normalizer) inflectedFormOf(rec *domain.Record, inv wikinode.Invocation) {
	form := inv.Arg(2)
	term := inv.Arg(3)
	if term == "" {
		form, term = inv.Arg(1), inv.Arg(2)
	}
	if term != "" {
		rec.AppendString("inflection_of", term)
	}
	if form == "" {
		return
	}
	if tags, ok := lookup.NounFormTags(form); ok {
		rec.AddTags(tags...)
		return
	}
	if m, ok := lookup.VerbFormTemplate("verb form of"); ok {
		if tags, ok := m.Resolve(form); ok {
			rec.AddTags(tags...)
			return
		}
	}
	n.diag.UnknownValue(inv.Name, form)
}

func (n *Normalizer) nounFormOf(rec *domain.Record, inv wikinode.Invocation) {
	if term := inv.Arg(2); term != "" {
		rec.AppendString("inflection_of", term)
	}
	vec := inv.Vec()
	if len(vec) < 3 {
		return
	}
	for _, x := range vec[2:] {
		if x == "" {
			continue
		}
		switch x {
		case "acc//dat":
			rec.AddTags("accusative", "dative")
		case "nom//acc":
			rec.AddTags("accusative", "nominative")
		default:
			if tags, ok := lookup.NounFormTags(x); ok {
				rec.AddTags(tags...)
			} else if tags, ok := nounFormWords[x]; ok {
				rec.AddTags(tags...)
			} else {
				n.diag.UnknownValue(inv.Name, x)
			}
		}
	}
}

// nounFormWords accepts spelled-out case names alongside the
// abbreviations in the shared noun-case table.
var nounFormWords = map[string][]string{
	"accusative":   {"accusative"},
	"genitive":     {"genitive"},
	"dative":       {"dative"},
	"nominative":   {"nominative"},
	"singular":     {"singular"},
	"plural":       {"plural"},
	"definite":     {"definite"},
	"indefinite":   {"indefinite"},
	"locative":     {"locative"},
	"vocative":     {"vocative"},
	"instrumental": {"instrumental"},
	"essive":       {"essive"},
	"elative":      {"elative"},
	"adessive":     {"adessive"},
	"inessive":     {"inessive"},
	"partitive":    {"partitive"},
}

// objectConstruction maps object-case markers ({{+obj|...}}) to
// object_* tags.
func (n *Normalizer) objectConstruction(rec *domain.Record, inv wikinode.Invocation) {
	v := inv.Arg(2)
	if inv.NamedArg("lang") != "" {
		v = inv.Arg(1)
	}
	switch v {
	case "dat", "dative":
		rec.AddTags("object_dative")
	case "acc", "accusative":
		rec.AddTags("object_accusative")
	case "ela", "elative":
		rec.AddTags("object_elative")
	case "abl", "ablative":
		rec.AddTags("object_ablative")
	case "gen", "genitive":
		rec.AddTags("object_genitive")
	case "nom", "nominative":
		rec.AddTags("object_nominative")
	case "ins", "instructive":
		rec.AddTags("object_instructive")
	case "obl", "oblique":
		rec.AddTags("object_oblique")
	case "loc", "locative":
		rec.AddTags("object_locative")
	case "participial":
		rec.AddTags("object_participial")
	case "subj", "subjunctive":
		rec.AddTags("object_subjunctive")
	case "with", "avec":
		rec.AddTags("object_preposition")
	case "":
		n.diag.Warningf(inv.Name, "empty object construction argument")
	default:
		n.diag.UnknownValue(inv.Name, v)
	}
}

// adjFormOf handles the Romance adjective/noun form templates whose
// descriptors are single letters.
func (n *Normalizer) adjFormOf(rec *domain.Record, inv wikinode.Invocation) {
	vec := inv.Vec()
	if len(vec) == 0 {
		return
	}
	rec.AppendString("inflection_of", vec[0])
	for _, x := range vec[1:] {
		switch x {
		case "":
		case "f", "female", "feminine", "onlyf":
			rec.AddTags("feminine")
		case "m", "male", "masculine", "onlym":
			rec.AddTags("masculine")
		case "s", "sg", "singular":
			rec.AddTags("singular")
		case "p", "pl", "plural":
			rec.AddTags("plural")
		case "dim", "diminutive":
			rec.AddTags("diminutive")
		case "mf", "m-f", "f-m":
		default:
			n.diag.UnknownValue(inv.Name, x)
		}
	}
}

// esCompoundOf handles Spanish verb+clitic compounds: the infinitive is
// reconstructed from stem and ending, mood and person map to tags.
func (n *Normalizer) esCompoundOf(rec *domain.Record, inv wikinode.Invocation) {
	infinitive := inv.Arg(1) + inv.Arg(2)
	if infinitive != "" {
		rec.AppendString("inflection_of", infinitive)
	}
	rec.AddTags("pron-compound")
	switch mood := inv.NamedArg("mood"); mood {
	case "inf", "infinitive":
		rec.AddTags("infinitive")
	case "part", "participle", "adv", "adverbial", "ger", "gerund",
		"gerundive", "gerundio", "present participle", "present-participle":
		rec.AddTags("participle")
	case "imp", "imperative":
		rec.AddTags("imperative")
	case "pret", "preterite":
		rec.AddTags("preterite")
	case "pres", "present":
		rec.AddTags("present")
	case "refl", "reflexive":
		rec.AddTags("reflexive")
	case "impf", "imperfect":
		rec.AddTags("imperfect")
	case "subjunctive":
		rec.AddTags("subjunctive")
	case "":
	default:
		n.diag.UnknownValue(inv.Name, mood)
	}
	switch person := inv.NamedArg("person"); person {
	case "tú", "tu", "inf":
		rec.AddTags("second-person", "singular", "informal")
	case "vosotros", "v", "inf-pl":
		rec.AddTags("second-person", "plural", "informal")
	case "nosotros":
		rec.AddTags("first-person", "plural")
	case "usted", "ud", "f":
		rec.AddTags("second-person", "singular", "formal")
	case "ustedes", "uds", "uds.", "f-pl":
		rec.AddTags("second-person", "plural", "formal")
	case "vos":
		rec.AddTags("second-person", "singular", "informal")
	case "él":
		rec.AddTags("third-person", "singular", "masculine")
	case "s":
		rec.AddTags("singular")
	case "me":
		rec.AddTags("first-person", "singular", "accusative")
	case "se":
		rec.AddTags("third-person", "reflexive")
	case "le":
		rec.AddTags("third-person", "singular", "dative")
	case "":
	default:
		n.diag.UnknownValue(inv.Name, person)
	}
}

func (n *Normalizer) nlNounFormOf(rec *domain.Record, inv wikinode.Invocation) {
	form, base := inv.Arg(1), inv.Arg(2)
	if base != "" {
		rec.AppendString("inflection_of", base)
	}
	switch form {
	case "sg":
		rec.AddTags("singular")
	case "pl":
		rec.AddTags("plural")
	case "dim":
		rec.AddTags("diminutive")
	case "gen":
		rec.AddTags("genitive")
	case "dat":
		rec.AddTags("dative")
	case "acc":
		rec.AddTags("accusative")
	default:
		n.diag.UnknownValue(inv.Name, form)
	}
}

func (n *Normalizer) nlAdjFormOf(rec *domain.Record, inv wikinode.Invocation) {
	form, base := inv.Arg(1), inv.Arg(2)
	if base != "" {
		rec.AppendString("inflection_of", base)
	}
	switch form {
	case "part":
		rec.AddTags("partitive")
	case "comp":
		rec.AddTags("comparative")
	case "sup":
		rec.AddTags("superlative")
	case "infl":
	default:
		n.diag.UnknownValue(inv.Name, form)
	}
}

func (n *Normalizer) zhShort(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("abbreviation")
	for _, x := range inv.Vec() {
		if x != "" {
			rec.AppendString("alt_of", x)
		}
	}
}

func (n *Normalizer) zhDivision(rec *domain.Record, inv wikinode.Invocation) {
	if v := inv.Arg(1); v != "" {
		rec.Hypernyms = append(rec.Hypernyms, domain.LinkageEdge{Word: v})
	}
}

func (n *Normalizer) fiInfinitiveOf(rec *domain.Record, inv wikinode.Invocation) {
	if term := n.termArg(inv); term != "" {
		rec.AppendString("inflection_of", term)
	}
	rec.AddTags("infinitive")
	if t := inv.NamedArg("t"); t != "" {
		rec.AddTags("infinitive-" + t)
	}
}

func (n *Normalizer) fiParticipleOf(rec *domain.Record, inv wikinode.Invocation) {
	if term := n.termArg(inv); term != "" {
		rec.AppendString("inflection_of", term)
	}
	rec.AddTags("participle")
	if t := inv.NamedArg("t"); t != "" {
		rec.AddTags("participle-" + t)
	}
}

// placeEntry handles {{place|lang|kind|holonym...}}: the kind argument
// yields tags and hypernym edges; later "prefix/Name" arguments become
// typed holonym edges.
func (n *Normalizer) placeEntry(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("place")
	if transl := inv.NamedArg("t"); transl != "" {
		rec.AppendString("alt_of", transl)
	}
	vec := inv.Vec()
	if len(vec) < 2 {
		n.diag.UnknownValue(inv.Name, "too few arguments")
		return
	}
	for _, x := range strings.Split(vec[1], "/") {
		switch x {
		case "", "and", "or":
			continue
		}
		if !lookup.IsPlaceKind(x) {
			n.diag.UnknownValue(inv.Name, x)
			continue
		}
		rec.AddTags(x)
		rec.Hypernyms = append(rec.Hypernyms, domain.LinkageEdge{Word: x})
	}
	for _, x := range vec[2:] {
		if x == "" {
			continue
		}
		i := strings.IndexByte(x, '/')
		if i < 0 {
			rec.Holonyms = append(rec.Holonyms, domain.LinkageEdge{Word: x})
			continue
		}
		prefix := x[:i]
		if j := strings.IndexByte(prefix, ':'); j >= 0 {
			prefix = prefix[:j]
		}
		kind, name, ok := lookup.SplitPlaceArg(prefix + "/" + x[i+1:])
		if !ok {
			n.diag.UnknownValue(inv.Name, x)
			continue
		}
		name, _ = n.langs.StripCodePrefix(name)
		if strings.Contains(name, ":") {
			n.diag.UnknownValue(inv.Name, x)
			continue
		}
		rec.Holonyms = append(rec.Holonyms, domain.LinkageEdge{Word: name, Type: kind})
	}
}

func (n *Normalizer) usState(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("place", "state")
	rec.Holonyms = append(rec.Holonyms, domain.LinkageEdge{Word: "United States", Type: "country"})
}

func (n *Normalizer) brazilState(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("place", "province")
	if capital := inv.NamedArg("capital"); capital != "" {
		rec.Meronyms = append(rec.Meronyms, domain.LinkageEdge{Word: capital, Type: "city"})
	}
	rec.Holonyms = append(rec.Holonyms, domain.LinkageEdge{Word: "Brazil", Type: "country"})
}

func (n *Normalizer) brazilCapital(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("place", "city")
	rec.Holonyms = append(rec.Holonyms, domain.LinkageEdge{Word: "Brazil", Type: "country"})
}

func (n *Normalizer) brazilStateCapital(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("place", "city")
	if state := inv.NamedArg("state"); state != "" {
		rec.Holonyms = append(rec.Holonyms, domain.LinkageEdge{Word: state, Type: "province"})
	}
	rec.Holonyms = append(rec.Holonyms, domain.LinkageEdge{Word: "Brazil", Type: "country"})
}

func (n *Normalizer) brazilMunicipality(rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags("place", "municipality")
	if state := inv.NamedArg("state"); state != "" {
		rec.Holonyms = append(rec.Holonyms, domain.LinkageEdge{Word: state, Type: "province"})
	}
	rec.Holonyms = append(rec.Holonyms, domain.LinkageEdge{Word: "Brazil", Type: "country"})
}

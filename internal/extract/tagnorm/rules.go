package tagnorm

import (
	"github.com/heartmarshall/wiktparse/internal/domain"
	"github.com/heartmarshall/wiktparse/internal/wikinode"
)

// rule is one entry of the exact-name dispatch table. Rules mutate the
// active record directly; they never fail.
type rule interface {
	apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation)
}

// tagRule adds fixed tags.
type tagRule []string

func (r tagRule) apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation) {
	rec.AddTags(r...)
}

// qualRule adds cleaned qualifier tags from positional arguments
// starting at the given 1-based index.
type qualRule int

func (r qualRule) apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation) {
	vec := inv.Vec()
	if int(r) > 1 && len(vec) >= int(r)-1 {
		vec = vec[int(r)-1:]
	} else if int(r) > 1 {
		vec = nil
	}
	rec.AddTags(CleanQualifiers(vec)...)
}

// fieldRule appends one positional argument to a string-list field.
type fieldRule struct {
	Field string
	Arg   int
}

func (r fieldRule) apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation) {
	v := inv.Arg(r.Arg)
	if v != "" {
		rec.AppendString(r.Field, v)
	}
}

// altOfRule records the target term under alt_of plus fixed tags. The
// term is the first positional argument, or the second when the first
// is a language code.
type altOfRule []string

func (r altOfRule) apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation) {
	term := n.termArg(inv)
	if term != "" {
		rec.AppendString("alt_of", term)
	}
	rec.AddTags(r...)
}

// inflectionOfRule records the base form under inflection_of plus fixed
// tags, with the same language-aware term selection as altOfRule.
type inflectionOfRule []string

func (r inflectionOfRule) apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation) {
	term := n.termArg(inv)
	if term != "" {
		rec.AppendString("inflection_of", term)
	}
	rec.AddTags(r...)
}

// linkageRule appends one edge per positional argument after the
// leading language code.
type linkageRule domain.LinkageKind

func (r linkageRule) apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation) {
	lst := rec.LinkageList(domain.LinkageKind(r))
	if lst == nil {
		return
	}
	vec := inv.Vec()
	if len(vec) < 2 {
		return
	}
	for _, w := range vec[1:] {
		if w != "" {
			*lst = append(*lst, domain.LinkageEdge{Word: w})
		}
	}
}

// exampleRule stores a usage example. The text argument follows the
// leading language code.
type exampleRule struct{}

func (exampleRule) apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation) {
	text := inv.Arg(2)
	if text == "" {
		text = inv.Arg(1)
	}
	if text != "" {
		rec.AppendString("examples", text)
	}
}

// dictRule stores the full argument dictionary into a map-list field.
type dictRule struct {
	Field string
	Tags  []string
}

func (r dictRule) apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation) {
	d := inv.Dict()
	switch r.Field {
	case "unit":
		rec.Unit = append(rec.Unit, d)
	case "heads":
		rec.Heads = append(rec.Heads, d)
	case "conjugation":
		rec.Conjugation = append(rec.Conjugation, d)
	case "compound":
		rec.Compound = append(rec.Compound, d)
	}
	rec.AddTags(r.Tags...)
}

// funcRule escapes to a handler for shapes the declarative rules cannot
// express.
type funcRule func(n *Normalizer, rec *domain.Record, inv wikinode.Invocation)

func (r funcRule) apply(n *Normalizer, rec *domain.Record, inv wikinode.Invocation) {
	r(n, rec, inv)
}

// exactRules is the exact-name dispatch table consulted before any
// family pattern. Grouped by the kind of data the templates carry.
var exactRules = map[string]rule{
	// Labels and context qualifiers. The first argument is a language
	// code and is skipped.
	"lb":           qualRule(2),
	"label":        qualRule(2),
	"context":      qualRule(2),
	"term-context": qualRule(2),
	"term-label":   qualRule(2),
	"lbl":          qualRule(2),
	"tlb":          qualRule(2),
	"tcx":          qualRule(2),

	// Bare qualifiers carry no language argument.
	"qual":      qualRule(1),
	"qualifier": qualRule(1),
	"q":         qualRule(1),
	"qf":        qualRule(1),
	"i":         qualRule(1),
	"a":         qualRule(1),
	"accent":    qualRule(1),

	"g2": funcRule((*Normalizer).genderShorthand),

	// Usage examples.
	"ux":             exampleRule{},
	"uxi":            exampleRule{},
	"usex":           exampleRule{},
	"afex":           exampleRule{},
	"zh-x":           exampleRule{},
	"prefixusex":     exampleRule{},
	"ko-usex":        exampleRule{},
	"ko-x":           exampleRule{},
	"hi-x":           exampleRule{},
	"ja-usex-inline": exampleRule{},
	"ja-x":           exampleRule{},
	"quotei":         exampleRule{},

	// Non-gloss definitions.
	"non-gloss definition":     fieldRule{"nonglosses", 1},
	"n-g":                      fieldRule{"nonglosses", 1},
	"ngd":                      fieldRule{"nonglosses", 1},
	"non-gloss":                fieldRule{"nonglosses", 1},
	"non gloss definition":     fieldRule{"nonglosses", 1},

	"sense": fieldRule{"tags", 1},
	"Sense": fieldRule{"tags", 1},
	"&lit":  tagRule{"literal"},
	"&oth":  tagRule{"literal"},

	"given name":            funcRule((*Normalizer).givenName),
	"forename":              funcRule((*Normalizer).givenName),
	"historical given name": funcRule((*Normalizer).givenName),
	"surname":               tagRule{"surname", "person"},

	// Taxonomic names.
	"taxlink":     funcRule((*Normalizer).taxLink),
	"taxlinkwiki": funcRule((*Normalizer).taxLink),
	"taxon":       funcRule((*Normalizer).taxonEntry),
	"vern":        funcRule((*Normalizer).vernacular),

	// Colors, numbers, units.
	"color panel":  funcRule((*Normalizer).colorPanel),
	"colour panel": funcRule((*Normalizer).colorPanel),
	"colorbox":     funcRule((*Normalizer).colorBox),
	"colourbox":    funcRule((*Normalizer).colorBox),
	"number box":   funcRule((*Normalizer).numberBox),
	"SI-unit":      dictRule{"unit", []string{"unit-of-measurement"}},
	"SI-unit-2":    dictRule{"unit", []string{"unit-of-measurement"}},
	"SI-unit-np":   dictRule{"unit", []string{"unit-of-measurement"}},
	"SI-unit-abb":  dictRule{"unit", []string{"unit-of-measurement"}},
	"SI-unit-abbnp": dictRule{"unit", []string{"unit-of-measurement"}},
	"SI-unit-abb2": dictRule{"unit", []string{"unit-of-measurement"}},

	// Links to sister projects.
	"slim-wikipedia": fieldRule{"wikipedia", 1},
	"wikipedia":      fieldRule{"wikipedia", 1},
	"Wikipedia":      fieldRule{"wikipedia", 1},
	"wikispecies":    fieldRule{"wikipedia", 1},
	"w":              fieldRule{"wikipedia", 1},
	"W":              fieldRule{"wikipedia", 1},
	"swp":            fieldRule{"wikipedia", 1},
	"pedlink":        fieldRule{"wikipedia", 1},
	"specieslink":    fieldRule{"wikipedia", 1},
	"comcatlite":     fieldRule{"wikipedia", 1},
	"taxlinknew":     fieldRule{"wikipedia", 1},
	"wtorw":          fieldRule{"wikipedia", 1},
	"wj":             fieldRule{"wikipedia", 1},
	"w2":             fieldRule{"wikipedia", 2},

	// Morse code sequences from the Translingual section.
	"morse code for":          fieldRule{"morse_code", 1},
	"morse code of":           fieldRule{"morse_code", 1},
	"morse code abbreviation": fieldRule{"morse_code", 1},
	"morse code prosign":      fieldRule{"morse_code", 1},

	"Latn-def":        tagRule{"character"},
	"translation hub": tagRule{"translation_hub"},
	"translation only": tagRule{"translation_hub"},
	"hot sense":       tagRule{"hot_sense"},

	// Alternative forms and spellings.
	"alternative form of":           altOfRule{"alternative_spelling"},
	"alt form":                      altOfRule{"alternative_spelling"},
	"alt form of":                   altOfRule{"alternative_spelling"},
	"alternative_form_of":           altOfRule{"alternative_spelling"},
	"alternative spelling of":       altOfRule{"alternative_spelling"},
	"aspirate mutation of":          altOfRule{"alternative_spelling"},
	"alternate spelling of":         altOfRule{"alternative_spelling"},
	"altspelling":                   altOfRule{"alternative_spelling"},
	"soft mutation of":              altOfRule{"alternative_spelling"},
	"hard mutation of":              altOfRule{"alternative_spelling"},
	"mixed mutation of":             altOfRule{"alternative_spelling"},
	"altform":                       altOfRule{"alternative_spelling"},
	"alt-form":                      altOfRule{"alternative_spelling"},
	"apocopic form of":              altOfRule{"alternative_spelling"},
	"altcaps":                       altOfRule{"alternative_spelling"},
	"alternative name of":           altOfRule{"alternative_spelling"},
	"alternative capitalisation of": altOfRule{"alternative_spelling"},
	"alt case":                      altOfRule{"alternative_spelling"},
	"alternative capitalization of": altOfRule{"alternative_spelling"},
	"alternate form of":             altOfRule{"alternative_spelling"},
	"alternative case form of":      altOfRule{"alternative_spelling"},
	"alt-sp":                        altOfRule{"alternative_spelling"},
	"alt sp":                        altOfRule{"alternative_spelling"},
	"alternative typography of":     altOfRule{"alternative_spelling"},
	"elongated form of":             altOfRule{"alternative_spelling"},
	"city nickname":                 altOfRule{"alternative_spelling"},
	"Nom form of":                   altOfRule{"alternative_spelling"},
	"han tu form of":                altOfRule{"alternative_spelling"},
	"han form of":                   altOfRule{"alternative_spelling"},
	"caret notation of":             altOfRule{"alternative_spelling"},
	"syncopic form of":              altOfRule{"alternative_spelling"},
	"alternative term for":          altOfRule{"alternative_spelling"},
	"altspell":                      altOfRule{"alternative_spelling"},
	"alter":                         altOfRule{"alternative_spelling"},
	"pt-apocopic-verb":              altOfRule{"alternative_spelling"},
	"lenition of":                   altOfRule{"lenition"},
	"ga-lenition of":                altOfRule{"lenition"},
	"combining form of":             altOfRule{"combining_form"},
	"honoraltcaps":                  altOfRule{"honorific"},
	"honor alt case":                altOfRule{"honorific"},
	"standspell":                    altOfRule{"standard_spelling"},
	"standard spelling of":          altOfRule{"standard_spelling"},
	"stand sp":                      altOfRule{"standard_spelling"},
	"standard form of":              altOfRule{"standard_spelling"},
	"synonyms":                      altOfRule{"synonym"},
	"synonym of":                    altOfRule{"synonym"},
	"syonyms":                       altOfRule{"synonym"},
	"syn of":                        altOfRule{"synonym"},
	"altname":                       altOfRule{"synonym"},
	"synonym":                       altOfRule{"synonym"},
	"Br. English form of":           altOfRule{"UK"},
	"eye dialect of":                altOfRule{"spoken"},
	"eye dialect":                   altOfRule{"spoken"},
	"eye-dialect of":                altOfRule{"spoken"},
	"pronunciation spelling":        altOfRule{"spoken"},
	"pronunciation respelling of":   altOfRule{"spoken"},
	"pronunciation spelling of":     altOfRule{"spoken"},
	"obsolete spelling of":          altOfRule{"archaic", "obsolete"},
	"obsolete form of":              altOfRule{"archaic", "obsolete"},
	"obs sp":                        altOfRule{"archaic", "obsolete"},
	"obs form":                      altOfRule{"archaic", "obsolete"},
	"obsolete typography of":        altOfRule{"archaic", "obsolete"},
	"obsolete sp":                   altOfRule{"archaic", "obsolete"},
	"medieval spelling of":          altOfRule{"archaic", "obsolete"},
	"superseded spelling of":        altOfRule{"archaic"},
	"former name of":                altOfRule{"archaic"},
	"sup sp":                        altOfRule{"archaic"},
	"archaic spelling of":           altOfRule{"archaic"},
	"dated spelling of":             altOfRule{"archaic"},
	"archaic form of":               altOfRule{"archaic"},
	"dated form of":                 altOfRule{"archaic"},
	"informal spelling of":          altOfRule{"informal"},
	"informal form of":              altOfRule{"informal"},
	"euphemistic form of":           altOfRule{"euphemism"},
	"euphemistic spelling of":       altOfRule{"euphemism"},
	"eclipsis of":                   altOfRule{"eclipsis"},
	"singulative of":                altOfRule{"singulative"},
	"t-prothesis of":                altOfRule{"prothesis"},
	"h-prothesis of":                altOfRule{"prothesis"},
	"deliberate misspelling of":     altOfRule{"misspelling"},
	"misconstruction of":            altOfRule{"misspelling"},
	"misspelling of":                altOfRule{"misspelling"},
	"common misspelling of":         altOfRule{"misspelling"},
	"misspelling form of":           altOfRule{"misspelling"},
	"missp":                         altOfRule{"misspelling"},
	"de-umlautless spelling of":     altOfRule{"misspelling"},
	"nonstandard form of":           altOfRule{"nonstandard"},
	"nonstandard spelling of":       altOfRule{"nonstandard"},
	"rare form of":                  altOfRule{"rare"},
	"rare spelling of":              altOfRule{"rare"},
	"rareform":                      altOfRule{"rare"},
	"uncommon spelling of":          altOfRule{"rare"},
	"uncommon form of":              altOfRule{"rare"},
	"rare sp":                       altOfRule{"rare"},
	"spelling of":                   funcRule((*Normalizer).spellingOf),

	// Abbreviations.
	"initialism of":   funcRule((*Normalizer).abbreviationOf),
	"init of":         funcRule((*Normalizer).abbreviationOf),
	"abbreviation of": funcRule((*Normalizer).abbreviationOf),
	"abbr of":         funcRule((*Normalizer).abbreviationOf),
	"short for":       funcRule((*Normalizer).abbreviationOf),
	"acronym of":      funcRule((*Normalizer).abbreviationOf),
	"clipping of":     funcRule((*Normalizer).abbreviationOf),
	"clip":            funcRule((*Normalizer).abbreviationOf),
	"clipping":        funcRule((*Normalizer).abbreviationOf),
	"clip of":         funcRule((*Normalizer).abbreviationOf),
	"aphetic form of":  funcRule((*Normalizer).abbreviationOf),
	"short form of":   funcRule((*Normalizer).abbreviationOf),
	"ellipsis of":     funcRule((*Normalizer).abbreviationOf),
	"ellipse of":      funcRule((*Normalizer).abbreviationOf),
	"short of":        funcRule((*Normalizer).abbreviationOf),
	"abbreviation":    funcRule((*Normalizer).abbreviationOf),
	"abb":             funcRule((*Normalizer).abbreviationOf),
	"contraction of":  funcRule((*Normalizer).abbreviationOf),

	"only used in": fieldRule{"only_in", 2},
	"only in":      fieldRule{"only_in", 2},

	// Inflected forms.
	"inflected form of":          funcRule((*Normalizer).inflectedFormOf),
	"form of":                    funcRule((*Normalizer).inflectedFormOf),
	"native or resident of":      inflectionOfRule{"person"},
	"agent noun of":              inflectionOfRule{"agent"},
	"nominalization of":          inflectionOfRule{"nominalization"},
	"feminine plural of":         inflectionOfRule{"feminine", "plural"},
	"feminine singular of":       inflectionOfRule{"feminine", "singular"},
	"masculine plural of":        inflectionOfRule{"masculine", "plural"},
	"neuter plural of":           inflectionOfRule{"neuter", "plural"},
	"feminine noun of":           inflectionOfRule{"feminine"},
	"feminine equivalent of":     inflectionOfRule{"feminine"},
	"female equivalent of":       inflectionOfRule{"feminine"},
	"verbal noun of":             inflectionOfRule{"verbal noun"},
	"ar-verbal noun of":          inflectionOfRule{"verbal noun"},
	"abstract noun of":           inflectionOfRule{"abstract noun"},
	"masculine singular of":      inflectionOfRule{"masculine", "singular"},
	"neuter singular of":         inflectionOfRule{"neuter", "singular"},
	"feminine of":                inflectionOfRule{"feminine"},
	"masculine of":               inflectionOfRule{"masculine"},
	"masculine noun of":          inflectionOfRule{"masculine"},
	"participle of":              inflectionOfRule{"participle"},
	"present participle of":      inflectionOfRule{"participle", "present"},
	"gerund of":                  inflectionOfRule{"participle", "present"},
	"en-ing form of":             inflectionOfRule{"participle", "present"},
	"present tense of":           inflectionOfRule{"present"},
	"present of":                 inflectionOfRule{"present"},
	"past of":                    inflectionOfRule{"past"},
	"past sense of":              inflectionOfRule{"past"},
	"en-past of":                 inflectionOfRule{"past"},
	"past tense of":              inflectionOfRule{"past"},
	"en-simple past of":          inflectionOfRule{"past"},
	"passive of":                 inflectionOfRule{"passive"},
	"past participle of":         inflectionOfRule{"past", "participle"},
	"feminine plural past participle of":  inflectionOfRule{"feminine", "plural", "past", "participle"},
	"feminine singular past participle of": inflectionOfRule{"feminine", "singular", "past", "participle"},
	"masculine plural past participle of": inflectionOfRule{"masculine", "plural", "past", "participle"},
	"masculine singular past participle of": inflectionOfRule{"masculine", "singular", "past", "participle"},
	"perfective form of":         inflectionOfRule{"perfective"},
	"imperfective form of":       inflectionOfRule{"imperfective"},
	"en-third-person singular of": inflectionOfRule{"present", "singular", "third-person"},
	"en-third person singular of": inflectionOfRule{"present", "singular", "third-person"},
	"imperative of":              inflectionOfRule{"imperative"},
	"nominative plural of":       inflectionOfRule{"plural", "nominative"},
	"alternative plural of":      inflectionOfRule{"plural"},
	"plural of":                  inflectionOfRule{"plural"},
	"en-plural noun":             inflectionOfRule{"plural"},
	"plural form of":             inflectionOfRule{"plural"},
	"singular of":                inflectionOfRule{"singular"},
	"singular form of":           inflectionOfRule{"singular"},
	"diminutive of":              inflectionOfRule{"diminutive"},
	"dim of":                     inflectionOfRule{"diminutive"},
	"endearing form of":          inflectionOfRule{"endearing"},
	"vocative plural of":         inflectionOfRule{"vocative", "plural"},
	"vocative singular of":       inflectionOfRule{"vocative", "singular"},
	"comparative of":             inflectionOfRule{"comparative"},
	"en-comparative of":          inflectionOfRule{"comparative"},
	"superlative of":             inflectionOfRule{"superlative"},
	"en-superlative of":          inflectionOfRule{"superlative"},
	"attributive of":             inflectionOfRule{"attributive"},
	"attributive form of":        inflectionOfRule{"attributive"},
	"accusative singular of":     inflectionOfRule{"accusative", "singular"},
	"accusative plural of":       inflectionOfRule{"accusative", "plural"},
	"genitive of":                inflectionOfRule{"genitive"},
	"genitive singular of":       inflectionOfRule{"genitive", "singular"},
	"genitive plural of":         inflectionOfRule{"genitive", "plural"},
	"dative of":                  inflectionOfRule{"dative"},
	"dative singular of":         inflectionOfRule{"dative", "singular"},
	"dative plural of":           inflectionOfRule{"dative", "plural"},
	"augmentative of":            inflectionOfRule{"augmentative"},
	"reflexive of":               inflectionOfRule{"reflexive"},
	"en-irregular plural of":     inflectionOfRule{"plural", "irregular"},
	"en-archaic second-person singular of": inflectionOfRule{"archaic", "singular", "present", "second-person"},
	"en-archaic second-person singular past of": inflectionOfRule{"archaic", "singular", "past", "second-person"},
	"second-person singular of":  inflectionOfRule{"singular", "present", "second-person"},
	"en-second-person singular past of":  inflectionOfRule{"singular", "past", "second-person"},
	"en-second person singular past of":  inflectionOfRule{"singular", "past", "second-person"},
	"second-person singular past of":     inflectionOfRule{"singular", "past", "second-person"},
	"second person singular past of":     inflectionOfRule{"singular", "past", "second-person"},
	"en-archaic third-person singular of": inflectionOfRule{"archaic", "singular", "third-person"},
	"topic form":                 inflectionOfRule{"topic"},
	"pejorative of":              inflectionOfRule{"pejorative"},
	"noun form of":               funcRule((*Normalizer).nounFormOf),

	// Object construction markers.
	"+preo":          funcRule((*Normalizer).objectConstruction),
	"+obj":           funcRule((*Normalizer).objectConstruction),
	"+OBJ":           funcRule((*Normalizer).objectConstruction),
	"construed with": funcRule((*Normalizer).objectConstruction),

	// Language-specific form templates with letter descriptors.
	"es-adj form of": funcRule((*Normalizer).adjFormOf),
	"it-adj form of": funcRule((*Normalizer).adjFormOf),
	"pt-adj form of": funcRule((*Normalizer).adjFormOf),
	"pt-adj-form-of": funcRule((*Normalizer).adjFormOf),
	"pt-noun form of": funcRule((*Normalizer).adjFormOf),
	"es-compound of": funcRule((*Normalizer).esCompoundOf),
	"es-demonstrative-accent-usage": tagRule{"demonstrative-accent"},
	"nl-noun form of": funcRule((*Normalizer).nlNounFormOf),
	"nl-adj form of":  funcRule((*Normalizer).nlAdjFormOf),
	"nl-pronadv of":   tagRule{"pronadv"},

	// Swedish noun/adjective/verb form templates.
	"sv-noun-form-def":         inflectionOfRule{"definite"},
	"definite singular of":     inflectionOfRule{"definite", "singular"},
	"definite plural of":       inflectionOfRule{"definite", "plural"},
	"indefinite plural of":     inflectionOfRule{"indefinite", "plural"},
	"sv-noun-form-def-pl":      inflectionOfRule{"definite", "plural"},
	"sv-noun-form-indef-pl":    inflectionOfRule{"plural", "indefinite"},
	"sv-noun-form-indef-gen":   inflectionOfRule{"genitive", "indefinite"},
	"sv-noun-form-indef-gen-pl": inflectionOfRule{"genitive", "indefinite", "plural"},
	"sv-noun-form-def-gen-pl":  inflectionOfRule{"genitive", "definite", "plural"},
	"sv-proper-noun-gen":       inflectionOfRule{"genitive"},
	"sv-noun-form-def-gen":     inflectionOfRule{"genitive", "definite"},
	"sv-noun-form-abs-def+pl":  inflectionOfRule{"absolute", "definite", "plural"},
	"sv-noun-form-abs-pl":      inflectionOfRule{"absolute", "plural"},
	"sv-adj-form-abs-def-m":    inflectionOfRule{"absolute", "definite", "masculine"},
	"sv-adj-form-abs-indef-n":  inflectionOfRule{"absolute", "indefinite", "neuter"},
	"sv-adj-form-abs-def+pl":   inflectionOfRule{"absolute", "definite", "plural"},
	"sv-adj-form-abs-pl":       inflectionOfRule{"absolute", "plural"},
	"sv-adj-form-abs-def":      inflectionOfRule{"absolute", "definite"},
	"sv-adj-form-comp":         inflectionOfRule{"comparative"},
	"sv-adv-form-comp":         inflectionOfRule{"comparative"},
	"sv-adj-form-sup":          inflectionOfRule{"superlative"},
	"sv-adv-form-sup":          inflectionOfRule{"superlative"},
	"sv-adj-form-sup-attr":     inflectionOfRule{"superlative", "attributive"},
	"sv-adj-form-sup-attr-m":   inflectionOfRule{"superlative", "attributive", "masculine"},
	"sv-adj-form-sup-pred":     inflectionOfRule{"superlative", "predicative"},
	"superlative predicative of": inflectionOfRule{"superlative", "predicative"},
	"sv-verb-form-pre":         inflectionOfRule{"present"},
	"sv-verb-form-imp":         inflectionOfRule{"imperative"},
	"sv-verb-form-past":        inflectionOfRule{"past"},
	"supine of":                inflectionOfRule{"supine"},
	"sv-verb-form-sup":         inflectionOfRule{"supine"},
	"sv-verb-form-sup-pass":    inflectionOfRule{"supine", "passive"},
	"sv-verb-form-subjunctive": inflectionOfRule{"subjunctive"},
	"sv-verb-form-inf-pass":    inflectionOfRule{"infinitive", "passive"},
	"sv-verb-form-pre-pass":    inflectionOfRule{"present", "passive"},
	"sv-verb-form-past-pass":   inflectionOfRule{"past", "passive"},
	"sv-verb-form-prepart":     inflectionOfRule{"participle", "present"},
	"sv-verb-form-pastpart":    inflectionOfRule{"participle", "past"},

	// German.
	"de-zu-infinitive of":       inflectionOfRule{"infinitive"},
	"de-superseded spelling of": altOfRule{"archaic"},

	// Portuguese.
	"pt-obsolete-hellenism":         altOfRule{"archaic", "obsolete", "hellenism"},
	"pt-obsolete hellenism":         altOfRule{"archaic", "obsolete", "hellenism"},
	"pt-superseded-silent-letter-1990": altOfRule{"archaic"},
	"pt-superseded-hyphen":          altOfRule{"archaic"},
	"pt-superseded-paroxytone":      altOfRule{"archaic"},
	"pt-obsolete-éia":               altOfRule{"archaic", "obsolete"},
	"pt-obsolete-ü":                 altOfRule{"archaic", "obsolete"},
	"pt-obsolete-ôo":                altOfRule{"archaic", "obsolete"},
	"pt-obsolete-secondary-stress":  altOfRule{"archaic", "obsolete"},
	"pt-obsolete-differential-accent": altOfRule{"archaic", "obsolete"},
	"pt-obsolete-silent-letter-1911": altOfRule{"archaic", "obsolete"},

	// Japanese and Chinese.
	"ja-past of verb": inflectionOfRule{"past"},
	"zh-old-name":     tagRule{"archaic"},
	"18th c.":         tagRule{"archaic"},
	"zh-alt-form":     altOfRule{},
	"zh-altname":      altOfRule{},
	"zh-alt-name":     altOfRule{},
	"zh-alt-term":     altOfRule{},
	"zh-altterm":      altOfRule{},
	"zh-short":        funcRule((*Normalizer).zhShort),
	"zh-abbrev":       funcRule((*Normalizer).zhShort),
	"zh-short-comp":   funcRule((*Normalizer).zhShort),
	"mfe-short of":    funcRule((*Normalizer).zhShort),
	"zh-misspelling":  altOfRule{"misspelling"},
	"zh-synonym":      altOfRule{"synonym"},
	"zh-synonym of":   altOfRule{"synonym"},
	"zh-syn-saurus":   altOfRule{"synonym"},
	"zh-dial":         altOfRule{"dialectical"},
	"zh-erhua form of": altOfRule{"dialectical"},
	"zh-classifier":   tagRule{"classifier"},
	"†":               tagRule{"archaic", "obsolete"},
	"zh-obsolete":     tagRule{"archaic", "obsolete"},

	// Linkage shorthands usable inside glosses.
	"ant":              linkageRule(domain.LinkageAntonyms),
	"antonym":          linkageRule(domain.LinkageAntonyms),
	"antonyms":         linkageRule(domain.LinkageAntonyms),
	"hypo":             linkageRule(domain.LinkageHyponyms),
	"hyponym":          linkageRule(domain.LinkageHyponyms),
	"hyponyms":         linkageRule(domain.LinkageHyponyms),
	"coordinate terms": linkageRule(domain.LinkageCoordinateTerms),
	"hyper":            linkageRule(domain.LinkageHypernyms),
	"hypernym":         linkageRule(domain.LinkageHypernyms),
	"hypernyms":        linkageRule(domain.LinkageHypernyms),
	"mer":              linkageRule(domain.LinkageMeronyms),
	"meronym":          linkageRule(domain.LinkageMeronyms),
	"meronyms":         linkageRule(domain.LinkageMeronyms),
	"holonym":          linkageRule(domain.LinkageHolonyms),
	"holonyms":         linkageRule(domain.LinkageHolonyms),
	"troponym":         linkageRule(domain.LinkageTroponyms),
	"troponyms":        linkageRule(domain.LinkageTroponyms),
	"derived":          linkageRule(domain.LinkageDerived),
	"derived terms":    linkageRule(domain.LinkageDerived),
	"zh-div":           funcRule((*Normalizer).zhDivision),

	// Finnish.
	"fi-infinitive of": funcRule((*Normalizer).fiInfinitiveOf),
	"fi-participle of": funcRule((*Normalizer).fiParticipleOf),

	// Places.
	"place":   funcRule((*Normalizer).placeEntry),
	"USstate": funcRule((*Normalizer).usState),
	"place:Brazil/state":            funcRule((*Normalizer).brazilState),
	"place:Brazil/capital":          funcRule((*Normalizer).brazilCapital),
	"place:Brazil/state capital":    funcRule((*Normalizer).brazilStateCapital),
	"place:state capital of Brazil": funcRule((*Normalizer).brazilStateCapital),
	"place:Brazil/municipality":     funcRule((*Normalizer).brazilMunicipality),
	"place:municipality of Brazil":  funcRule((*Normalizer).brazilMunicipality),
}

// ignoredNames lists formatting, citation and reference templates that
// carry no semantic content for extraction. Matching invocations are
// accepted silently.
var ignoredNames = map[string]bool{
	"audio": true, "audio-pron": true, "IPA": true, "ipa": true,
	"l": true, "link": true, "l-self": true, "m": true, "m+": true,
	"zh-m": true, "zh-l": true, "ja-l": true, "ja-def": true,
	"sumti": true, "ko-l": true, "vi-l": true,
	"ISBN": true, "syn": true, "ISSN": true, "gbooks": true, "OCLC": true,
	"hyph": true, "hyphenation": true, "ja-r": true, "l/ja": true,
	"l-ja": true, "ja-r/args": true, "th-l": true, "ja-r/multi": true,
	"lj": true, "c.": true, "ca.": true, "a.": true,
	"CURRENTDAY": true, "CURRENTMONTHNAME": true, "CURRENTYEAR": true,
	"...": true, "…": true, "mdash": true, "SIC": true, "LCC": true,
	"homophones": true, "wsource": true, "nobr": true, "NNBS": true,
	"@": true, "CE": true, "BC": true, "pinyin reading of": true,
	"enPR": true, "J2G": true, "C.E.": true, "BCE": true, "A.D.": true,
	"B.C.E.": true, "B.C.": true, "AD": true, "C.": true, "S": true,
	"nb...": true, "..": true, "sic": true,
	"mul-kangxi radical-def": true, "speciesabbrev": true, "'": true,
	"smc": true, "mul-shuowen radical-def": true, "mul-kanadef": true,
	"mul-domino def": true, "mul-cjk stroke-def": true, "ryu-def": true,
	"ja-kanjitab": true, "ja-kana-def": true, "ja-see": true,
	"Han char": true, "zh-only": true, "sqbrace": true, "Brai-def": true,
	"abbreviated": true, "ruby": true, "hanja form of": true,
	"transterm": true, "phrasal verb": true, "compound": true,
	"quote": true, "quote-booken": true, "quote-jounalen": true,
	"quotebook": true, "quote-hansard": true, "quote-video game": true,
	"quote-us-patent": true, "quote-wikipedia": true, "quote web": true,
	"quote-web": true, "quote-webpage": true, "quote-article": true,
	"cite-av": true, "glossary": true, "tpi-cite-bible": true,
	"small": true, "bottom5": true, "source": true, "glink": true,
	"projectlink": true, "maintenance line": true, "JSTOR": true,
	"gloss": true, "gl": true, "clear": true, "abbr": true, "nc": true,
	"upright": true, "tea room sense": true, "1": true, "0": true,
	"blockquote": true, "comment": true, "senseid": true,
	"mul-semaphore-for": true, "mul-semaphore for": true,
	"ja-semaphore for": true, "ja-usex": true, "ja-verb": true,
	"ja-kyujitai spelling of": true, "ja-kyu sp": true,
	"zh-mw": true, "defn": true, "w:": true, "checksense": true,
	"attention": true, "rfc": true, "rfd": true, "rfe": true,
	"rfquote": true, "rfdef": true, "rfdate": true, "rfclarify": true,
	"rfex": true, "t-needed": true, "section link": true,
}

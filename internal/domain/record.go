// Package domain defines the flattened lexical record produced by the
// extractor and the merge rules that combine staging scopes into records.
package domain

// LinkageEdge is a typed cross-reference to another word.
type LinkageEdge struct {
	Word  string   `json:"word"`
	Type  string   `json:"type,omitempty"` // holonym place kind ("country", "province", ...)
	Sense string   `json:"sense,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// Translation is one translation entry for a word sense.
type Translation struct {
	Lang   string   `json:"lang"`
	Code   string   `json:"code,omitempty"`
	Word   string   `json:"word"`
	Sense  string   `json:"sense,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Alt    string   `json:"alt,omitempty"`
	Roman  string   `json:"roman,omitempty"`
	Script string   `json:"script,omitempty"`
}

// Pronunciation is one pronunciation variant. A variant carrying only
// Sense/Tags/Accent is scope-only and is never stored on a record.
type Pronunciation struct {
	IPA        []string `json:"ipa,omitempty"`
	EnPR       string   `json:"enpr,omitempty"`
	Rhymes     string   `json:"rhymes,omitempty"`
	Stress     string   `json:"stress,omitempty"`
	Audio      []string `json:"audio,omitempty"`
	Homophones []string `json:"homophones,omitempty"`
	Sense      string   `json:"sense,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Accent     []string `json:"accent,omitempty"`
}

// HasContent reports whether the variant carries at least one phonetic,
// audio, rhyme or stress field.
func (p Pronunciation) HasContent() bool {
	return len(p.IPA) > 0 || p.EnPR != "" || p.Rhymes != "" ||
		p.Stress != "" || len(p.Audio) > 0 || len(p.Homophones) > 0
}

// Topic is a topical category attached to a record. Inaccurate marks
// topics propagated from article granularity rather than observed on
// the sense itself.
type Topic struct {
	Word       string `json:"word"`
	Inaccurate bool   `json:"inaccurate,omitempty"`
}

// AltForm is an alternative form with an optional dialect qualifier.
type AltForm struct {
	Word    string `json:"word"`
	Dialect string `json:"dialect,omitempty"`
}

// EnumLink places the word in a sequence (letters, numerals, weekdays)
// with links to its neighbors.
type EnumLink struct {
	Lang  string `json:"lang,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Value string `json:"value,omitempty"`
}

// Record is one finalized output unit: word + language + part-of-speech
// plus every field merged down from the sense, part-of-speech and
// etymology scopes and the page base.
type Record struct {
	Word     string `json:"word"`
	Lang     string `json:"lang"`
	LangCode string `json:"lang_code"`
	POS      string `json:"pos,omitempty"`

	Heads        []map[string]string `json:"heads,omitempty"`
	Glosses      []string            `json:"glosses,omitempty"`
	Nonglosses   []string            `json:"nonglosses,omitempty"`
	Tags         []string            `json:"tags,omitempty"`
	Examples     []string            `json:"examples,omitempty"`
	AltOf        []string            `json:"alt_of,omitempty"`
	InflectionOf []string            `json:"inflection_of,omitempty"`
	Taxon        []string            `json:"taxon,omitempty"`
	Color        []string            `json:"color,omitempty"`
	Value        []string            `json:"value,omitempty"`
	Unit         []map[string]string `json:"unit,omitempty"`
	MorseCode    []string            `json:"morse_code,omitempty"`
	OnlyIn       []string            `json:"only_in,omitempty"`
	Wikipedia    []string            `json:"wikipedia,omitempty"`
	Hyphenation  []string            `json:"hyphenation,omitempty"`
	Compound     []map[string]string `json:"compound,omitempty"`
	Alternative  []AltForm           `json:"alternative,omitempty"`
	Enum         []EnumLink          `json:"enum,omitempty"`
	Conjugation  []map[string]string `json:"conjugation,omitempty"`

	Sounds       []Pronunciation `json:"sounds,omitempty"`
	Translations []Translation   `json:"translations,omitempty"`
	Topics       []Topic         `json:"topics,omitempty"`

	Synonyms        []LinkageEdge `json:"synonyms,omitempty"`
	Antonyms        []LinkageEdge `json:"antonyms,omitempty"`
	Hypernyms       []LinkageEdge `json:"hypernyms,omitempty"`
	Hyponyms        []LinkageEdge `json:"hyponyms,omitempty"`
	Meronyms        []LinkageEdge `json:"meronyms,omitempty"`
	Holonyms        []LinkageEdge `json:"holonyms,omitempty"`
	Derived         []LinkageEdge `json:"derived,omitempty"`
	Related         []LinkageEdge `json:"related,omitempty"`
	CoordinateTerms []LinkageEdge `json:"coordinate_terms,omitempty"`
	Troponyms       []LinkageEdge `json:"troponyms,omitempty"`
	Compounds       []LinkageEdge `json:"compounds,omitempty"`
}

// LinkageList returns a pointer to the edge slice for the given relation
// kind, or nil when the kind is unknown.
func (r *Record) LinkageList(kind LinkageKind) *[]LinkageEdge {
	switch kind {
	case LinkageSynonyms:
		return &r.Synonyms
	case LinkageAntonyms:
		return &r.Antonyms
	case LinkageHypernyms:
		return &r.Hypernyms
	case LinkageHyponyms:
		return &r.Hyponyms
	case LinkageMeronyms:
		return &r.Meronyms
	case LinkageHolonyms:
		return &r.Holonyms
	case LinkageDerived:
		return &r.Derived
	case LinkageRelated:
		return &r.Related
	case LinkageCoordinateTerms:
		return &r.CoordinateTerms
	case LinkageTroponyms:
		return &r.Troponyms
	case LinkageCompounds:
		return &r.Compounds
	}
	return nil
}

// stringListField resolves a field name to its string-list slice.
// Returns nil for unknown names so callers can report coverage gaps.
func (r *Record) stringListField(field string) *[]string {
	switch field {
	case "glosses":
		return &r.Glosses
	case "nonglosses":
		return &r.Nonglosses
	case "tags":
		return &r.Tags
	case "examples":
		return &r.Examples
	case "alt_of":
		return &r.AltOf
	case "inflection_of":
		return &r.InflectionOf
	case "taxon":
		return &r.Taxon
	case "color":
		return &r.Color
	case "value":
		return &r.Value
	case "morse_code":
		return &r.MorseCode
	case "only_in":
		return &r.OnlyIn
	case "wikipedia":
		return &r.Wikipedia
	case "hyphenation":
		return &r.Hyphenation
	}
	return nil
}

// AppendString appends value to the named string-list field, skipping
// exact duplicates on the tags field. Reports whether the field exists.
func (r *Record) AppendString(field, value string) bool {
	lst := r.stringListField(field)
	if lst == nil {
		return false
	}
	if field == "tags" {
		for _, v := range *lst {
			if v == value {
				return true
			}
		}
	}
	*lst = append(*lst, value)
	return true
}

// AddTags appends each tag, deduplicating.
func (r *Record) AddTags(tags ...string) {
	for _, t := range tags {
		if t != "" {
			r.AppendString("tags", t)
		}
	}
}

// HasTag reports whether the record carries the tag.
func (r *Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsEmpty reports whether nothing was accumulated in this record.
// Scalar base fields are ignored: an empty sense scope must not emit.
func (r *Record) IsEmpty() bool {
	return len(r.Heads) == 0 && len(r.Glosses) == 0 && len(r.Nonglosses) == 0 &&
		len(r.Tags) == 0 && len(r.Examples) == 0 && len(r.AltOf) == 0 &&
		len(r.InflectionOf) == 0 && len(r.Taxon) == 0 && len(r.Color) == 0 &&
		len(r.Value) == 0 && len(r.Unit) == 0 && len(r.MorseCode) == 0 &&
		len(r.OnlyIn) == 0 && len(r.Wikipedia) == 0 && len(r.Hyphenation) == 0 &&
		len(r.Compound) == 0 && len(r.Alternative) == 0 && len(r.Enum) == 0 &&
		len(r.Conjugation) == 0 &&
		len(r.Sounds) == 0 && len(r.Translations) == 0 && len(r.Topics) == 0 &&
		!r.hasLinkage() && r.POS == ""
}

func (r *Record) hasLinkage() bool {
	for _, kind := range AllLinkageKinds {
		if len(*r.LinkageList(kind)) > 0 {
			return true
		}
	}
	return false
}

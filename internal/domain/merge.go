package domain

// ConflictFn is called when a scalar field already holds a different
// non-empty value during a merge. The existing value is retained.
type ConflictFn func(field, kept, dropped string)

// MergeFrom merges src into r. List fields are concatenated (tags are
// unioned), scalar fields are first-write-wins: an existing non-empty
// value is kept and a differing incoming value is reported through
// onConflict. src is not modified.
func (r *Record) MergeFrom(src *Record, onConflict ConflictFn) {
	mergeScalar := func(field string, dst *string, v string) {
		if v == "" {
			return
		}
		if *dst == "" {
			*dst = v
			return
		}
		if *dst != v && onConflict != nil {
			onConflict(field, *dst, v)
		}
	}

	mergeScalar("word", &r.Word, src.Word)
	mergeScalar("lang", &r.Lang, src.Lang)
	mergeScalar("lang_code", &r.LangCode, src.LangCode)
	mergeScalar("pos", &r.POS, src.POS)

	r.Heads = append(r.Heads, src.Heads...)
	r.Glosses = append(r.Glosses, src.Glosses...)
	r.Nonglosses = append(r.Nonglosses, src.Nonglosses...)
	r.AddTags(src.Tags...)
	r.Examples = append(r.Examples, src.Examples...)
	r.AltOf = append(r.AltOf, src.AltOf...)
	r.InflectionOf = append(r.InflectionOf, src.InflectionOf...)
	r.Taxon = append(r.Taxon, src.Taxon...)
	r.Color = append(r.Color, src.Color...)
	r.Value = append(r.Value, src.Value...)
	r.Unit = append(r.Unit, src.Unit...)
	r.MorseCode = append(r.MorseCode, src.MorseCode...)
	r.OnlyIn = append(r.OnlyIn, src.OnlyIn...)
	r.Wikipedia = append(r.Wikipedia, src.Wikipedia...)
	r.Hyphenation = append(r.Hyphenation, src.Hyphenation...)
	r.Compound = append(r.Compound, src.Compound...)
	r.Alternative = append(r.Alternative, src.Alternative...)
	r.Enum = append(r.Enum, src.Enum...)
	r.Conjugation = append(r.Conjugation, src.Conjugation...)
	r.Sounds = append(r.Sounds, src.Sounds...)
	r.Translations = append(r.Translations, src.Translations...)
	r.Topics = append(r.Topics, src.Topics...)

	for _, kind := range AllLinkageKinds {
		dst := r.LinkageList(kind)
		*dst = append(*dst, *src.LinkageList(kind)...)
	}
}

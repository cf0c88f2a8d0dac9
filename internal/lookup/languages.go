// Package lookup bundles the static read-only tables consulted during
// extraction: language names and codes, part-of-speech heading mappings,
// per-language form maps, place-name prefixes and unsupported page titles.
// All tables are immutable after construction and safe to share across
// concurrent page walks.
package lookup

import "strings"

// Language is one entry of the language table.
type Language struct {
	Name string
	Code string
}

// Languages provides name and code lookups over the language table.
type Languages struct {
	byName map[string]Language
	byCode map[string]Language
}

// NewLanguages builds a Languages index from the given table.
func NewLanguages(table []Language) *Languages {
	l := &Languages{
		byName: make(map[string]Language, len(table)),
		byCode: make(map[string]Language, len(table)),
	}
	for _, e := range table {
		l.byName[e.Name] = e
		l.byCode[e.Code] = e
	}
	return l
}

// ByName looks up a language by its English name.
func (l *Languages) ByName(name string) (Language, bool) {
	e, ok := l.byName[name]
	return e, ok
}

// ByCode looks up a language by its code.
func (l *Languages) ByCode(code string) (Language, bool) {
	e, ok := l.byCode[code]
	return e, ok
}

// HasCode reports whether code is a known language code.
func (l *Languages) HasCode(code string) bool {
	_, ok := l.byCode[code]
	return ok
}

// StripCodePrefix removes a leading "xx:" language-code tag from s,
// reporting whether one was removed.
func (l *Languages) StripCodePrefix(s string) (string, bool) {
	idx := strings.Index(s, ":")
	if idx <= 0 {
		return s, false
	}
	if l.HasCode(s[:idx]) {
		return s[idx+1:], true
	}
	return s, false
}

// DefaultLanguages returns the built-in language table.
func DefaultLanguages() *Languages {
	return NewLanguages(defaultLanguages)
}

// defaultLanguages covers the languages exercised by the extraction
// pipeline. The full table is deployment configuration; this default
// mirrors its shape.
var defaultLanguages = []Language{
	{"English", "en"},
	{"Translingual", "mul"},
	{"German", "de"},
	{"French", "fr"},
	{"Spanish", "es"},
	{"Italian", "it"},
	{"Portuguese", "pt"},
	{"Dutch", "nl"},
	{"Swedish", "sv"},
	{"Norwegian Bokmål", "nb"},
	{"Danish", "da"},
	{"Finnish", "fi"},
	{"Estonian", "et"},
	{"Russian", "ru"},
	{"Ukrainian", "uk"},
	{"Polish", "pl"},
	{"Czech", "cs"},
	{"Slovak", "sk"},
	{"Serbo-Croatian", "sh"},
	{"Bulgarian", "bg"},
	{"Greek", "el"},
	{"Latin", "la"},
	{"Ancient Greek", "grc"},
	{"Irish", "ga"},
	{"Welsh", "cy"},
	{"Scottish Gaelic", "gd"},
	{"Icelandic", "is"},
	{"Hungarian", "hu"},
	{"Romanian", "ro"},
	{"Turkish", "tr"},
	{"Arabic", "ar"},
	{"Hebrew", "he"},
	{"Persian", "fa"},
	{"Hindi", "hi"},
	{"Bengali", "bn"},
	{"Tamil", "ta"},
	{"Thai", "th"},
	{"Vietnamese", "vi"},
	{"Chinese", "zh"},
	{"Japanese", "ja"},
	{"Korean", "ko"},
	{"Indonesian", "id"},
	{"Malay", "ms"},
	{"Tagalog", "tl"},
	{"Swahili", "sw"},
	{"Esperanto", "eo"},
	{"Tok Pisin", "tpi"},
	{"Maori", "mi"},
	{"Hawaiian", "haw"},
	{"Catalan", "ca"},
	{"Galician", "gl"},
	{"Basque", "eu"},
	{"Lithuanian", "lt"},
	{"Latvian", "lv"},
	{"Georgian", "ka"},
	{"Armenian", "hy"},
	{"Albanian", "sq"},
	{"Macedonian", "mk"},
	{"Slovene", "sl"},
	{"Belarusian", "be"},
	{"Afrikaans", "af"},
	{"Yiddish", "yi"},
	{"Norwegian Nynorsk", "nn"},
	{"Faroese", "fo"},
	{"Luxembourgish", "lb"},
	{"Old English", "ang"},
	{"Middle English", "enm"},
	{"Old Norse", "non"},
	{"Old French", "fro"},
	{"Sanskrit", "sa"},
	{"Pali", "pi"},
	{"Urdu", "ur"},
	{"Punjabi", "pa"},
	{"Gujarati", "gu"},
	{"Telugu", "te"},
	{"Kannada", "kn"},
	{"Malayalam", "ml"},
	{"Sinhalese", "si"},
	{"Burmese", "my"},
	{"Khmer", "km"},
	{"Lao", "lo"},
	{"Mongolian", "mn"},
	{"Tibetan", "bo"},
	{"Kazakh", "kk"},
	{"Uzbek", "uz"},
	{"Azerbaijani", "az"},
	{"Amharic", "am"},
	{"Somali", "so"},
	{"Hausa", "ha"},
	{"Yoruba", "yo"},
	{"Igbo", "ig"},
	{"Zulu", "zu"},
	{"Xhosa", "xh"},
	{"Quechua", "qu"},
	{"Guaraní", "gn"},
	{"Nahuatl", "nah"},
	{"Cherokee", "chr"},
	{"Navajo", "nv"},
	{"Samoan", "sm"},
	{"Tongan", "to"},
	{"Fijian", "fj"},
	{"Malagasy", "mg"},
}

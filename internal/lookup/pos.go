package lookup

import (
	"strings"

	"github.com/heartmarshall/wiktparse/internal/domain"
)

// POSInfo describes how a section heading maps into the closed
// part-of-speech vocabulary. Warning/Error annotate headings that are
// accepted but flagged as unusual or proscribed in the source wiki.
type POSInfo struct {
	POS     domain.PartOfSpeech
	Tags    []string
	Warning string
	Error   string
}

// posHeadings maps lowercase section titles to part-of-speech info.
var posHeadings = map[string]POSInfo{
	"noun":                 {POS: domain.POSNoun},
	"proper noun":          {POS: domain.POSName},
	"verb":                 {POS: domain.POSVerb},
	"adjective":            {POS: domain.POSAdjective},
	"adverb":               {POS: domain.POSAdverb},
	"pronoun":              {POS: domain.POSPronoun},
	"preposition":          {POS: domain.POSPreposition},
	"postposition":         {POS: domain.POSPostposition},
	"conjunction":          {POS: domain.POSConjunction},
	"interjection":         {POS: domain.POSInterjection},
	"particle":             {POS: domain.POSParticle},
	"determiner":           {POS: domain.POSDeterminer},
	"article":              {POS: domain.POSArticle},
	"numeral":              {POS: domain.POSNumeral},
	"number":               {POS: domain.POSNumeral},
	"cardinal number":      {POS: domain.POSNumeral, Tags: []string{"cardinal"}},
	"ordinal number":       {POS: domain.POSNumeral, Tags: []string{"ordinal"}},
	"phrase":               {POS: domain.POSPhrase},
	"prepositional phrase": {POS: domain.POSPrepPhrase},
	"proverb":              {POS: domain.POSProverb},
	"idiom":                {POS: domain.POSPhrase, Tags: []string{"idiomatic"}},
	"prefix":               {POS: domain.POSPrefix},
	"suffix":               {POS: domain.POSSuffix},
	"infix":                {POS: domain.POSInfix},
	"circumfix":            {POS: domain.POSCircumfix},
	"interfix":             {POS: domain.POSInterfix},
	"affix":                {POS: domain.POSAffix},
	"combining form":       {POS: domain.POSCombiningForm},
	"symbol":               {POS: domain.POSSymbol},
	"letter":               {POS: domain.POSLetter},
	"character":            {POS: domain.POSCharacter},
	"han character":        {POS: domain.POSCharacter, Tags: []string{"han"}},
	"kanji":                {POS: domain.POSCharacter, Tags: []string{"kanji"}},
	"hanja":                {POS: domain.POSCharacter, Tags: []string{"hanja"}},
	"hanzi":                {POS: domain.POSCharacter, Tags: []string{"hanzi"}},
	"syllable":             {POS: domain.POSCharacter, Tags: []string{"syllable"}},
	"punctuation mark":     {POS: domain.POSPunctuation},
	"diacritical mark":     {POS: domain.POSCharacter, Tags: []string{"diacritic"}},
	"clitic":               {POS: domain.POSClitic},
	"counter":              {POS: domain.POSCounter},
	"classifier":           {POS: domain.POSClassifier},
	"romanization":         {POS: domain.POSRomanization},
	"contraction":          {POS: domain.POSAbbreviation, Tags: []string{"contraction"}},

	// Accepted but flagged: these headings are proscribed or unusual
	// in the source wiki and usually indicate miscoded entries.
	"participle":   {POS: domain.POSParticiple, Warning: "part-of-speech Participle is proscribed"},
	"gerund":       {POS: domain.POSGerund, Warning: "part-of-speech Gerund is unusual"},
	"abbreviation": {POS: domain.POSAbbreviation, Warning: "part-of-speech Abbreviation is proscribed"},
	"acronym":      {POS: domain.POSAbbreviation, Warning: "part-of-speech Acronym is proscribed"},
	"initialism":   {POS: domain.POSAbbreviation, Warning: "part-of-speech Initialism is proscribed"},
	"transliteration": {
		POS: domain.POSRomanization, Warning: "part-of-speech Transliteration is unusual",
	},
}

// POSByHeading resolves a section title to part-of-speech info.
// Matching is case-insensitive.
func POSByHeading(title string) (POSInfo, bool) {
	info, ok := posHeadings[strings.ToLower(strings.TrimSpace(title))]
	return info, ok
}

// headTemplateSuffixes are the recognized part-of-speech suffixes of
// language-prefixed head templates ("en-noun", "fi-adj", "de-verb").
var headTemplateSuffixes = map[string]bool{
	"noun": true, "plural noun": true, "plural-noun": true, "verb": true,
	"adj": true, "adv": true, "name": true, "proper-noun": true,
	"proper noun": true, "prop": true, "pron": true, "phrase": true,
	"decl noun": true, "decl-noun": true, "prefix": true, "clitic": true,
	"number": true, "ordinal": true, "syllable": true, "suffix": true,
	"affix": true, "pos": true, "gerund": true, "combining form": true,
	"combining-form": true, "converb": true, "cont": true, "con": true,
	"interj": true, "det": true, "part": true, "part-form": true,
	"postp": true, "prep": true,
}

// IsHeadTemplateSuffix reports whether s is a recognized head-template
// part-of-speech component.
func IsHeadTemplateSuffix(s string) bool { return headTemplateSuffixes[s] }

// headPOSMap maps the second argument of a generic {{head|xx|...}}
// template to the canonical part-of-speech.
var headPOSMap = map[string]domain.PartOfSpeech{
	"noun": domain.POSNoun, "nouns": domain.POSNoun,
	"noun form": domain.POSNoun, "noun forms": domain.POSNoun,
	"proper noun": domain.POSName, "proper nouns": domain.POSName,
	"verb": domain.POSVerb, "verbs": domain.POSVerb,
	"verb form": domain.POSVerb, "verb forms": domain.POSVerb,
	"adjective": domain.POSAdjective, "adjectives": domain.POSAdjective,
	"adjective form": domain.POSAdjective,
	"adverb":         domain.POSAdverb, "adverbs": domain.POSAdverb,
	"pronoun": domain.POSPronoun, "pronouns": domain.POSPronoun,
	"preposition": domain.POSPreposition, "prepositions": domain.POSPreposition,
	"postposition": domain.POSPostposition,
	"conjunction":  domain.POSConjunction, "conjunctions": domain.POSConjunction,
	"interjection": domain.POSInterjection, "interjections": domain.POSInterjection,
	"particle": domain.POSParticle, "particles": domain.POSParticle,
	"determiner": domain.POSDeterminer, "determiners": domain.POSDeterminer,
	"article": domain.POSArticle, "articles": domain.POSArticle,
	"numeral": domain.POSNumeral, "numerals": domain.POSNumeral,
	"phrase": domain.POSPhrase, "phrases": domain.POSPhrase,
	"prefix": domain.POSPrefix, "prefixes": domain.POSPrefix,
	"suffix": domain.POSSuffix, "suffixes": domain.POSSuffix,
	"letter": domain.POSLetter, "letters": domain.POSLetter,
	"symbol": domain.POSSymbol, "symbols": domain.POSSymbol,
	"particle form": domain.POSParticle,
	"romanization":  domain.POSRomanization,
}

// HeadPOS resolves the part-of-speech argument of a {{head|...}}
// template invocation.
func HeadPOS(arg string) (domain.PartOfSpeech, bool) {
	p, ok := headPOSMap[strings.ToLower(strings.TrimSpace(arg))]
	return p, ok
}

// templateAllowedPOS maps a head-template part-of-speech component to
// the section parts-of-speech it may validly occur under. Used only to
// flag probable miscodings; never blocks extraction.
var templateAllowedPOS = map[string][]domain.PartOfSpeech{
	"noun":        {domain.POSNoun, domain.POSAbbreviation, domain.POSPronoun, domain.POSName, domain.POSNumeral},
	"plural noun": {domain.POSNoun, domain.POSName},
	"plural-noun": {domain.POSNoun, domain.POSName},
	"proper noun": {domain.POSNoun, domain.POSName},
	"proper-noun": {domain.POSName, domain.POSNoun},
	"prop":        {domain.POSName, domain.POSNoun},
	"verb":        {domain.POSVerb, domain.POSPhrase},
	"gerund":      {domain.POSVerb},
	"adj":         {domain.POSAdjective},
	"adv":         {domain.POSAdverb, domain.POSInterjection, domain.POSConjunction, domain.POSParticle},
	"pron":        {domain.POSPronoun, domain.POSNoun},
	"name":        {domain.POSName, domain.POSNoun},
	"phrase":      {domain.POSPhrase, domain.POSPrepPhrase},
	"ordinal":     {domain.POSNumeral},
	"number":      {domain.POSNumeral},
	"pos":         {domain.POSAffix, domain.POSName, domain.POSNumeral},
	"suffix":      {domain.POSSuffix, domain.POSAffix},
	"character":   {domain.POSCharacter},
	"letter":      {domain.POSLetter},
	"cont":        {domain.POSAbbreviation},
	"interj":      {domain.POSInterjection},
	"con":         {domain.POSConjunction},
	"part":        {domain.POSParticle},
	"part-form":   {domain.POSParticiple, domain.POSVerb, domain.POSAdverb},
	"prep":        {domain.POSPreposition, domain.POSPostposition},
	"postp":       {domain.POSPostposition},
}

// TemplateAllowsPOS reports whether a head-template component is
// compatible with the section part-of-speech. Components without an
// explicit allow entry fall back to an exact HeadPOS match; components
// unknown to both tables are treated as compatible.
func TemplateAllowsPOS(component string, pos domain.PartOfSpeech) bool {
	if allowed, ok := templateAllowedPOS[component]; ok {
		for _, p := range allowed {
			if p == pos {
				return true
			}
		}
		return false
	}
	if p, ok := HeadPOS(component); ok {
		return p == pos
	}
	return true
}

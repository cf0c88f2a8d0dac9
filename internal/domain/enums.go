package domain

// PartOfSpeech is the canonical part-of-speech identifier attached to a
// record. Values form a closed vocabulary; section headings are mapped
// into it through the lookup tables and never stored raw.
type PartOfSpeech string

const (
	POSNoun          PartOfSpeech = "noun"
	POSVerb          PartOfSpeech = "verb"
	POSAdjective     PartOfSpeech = "adj"
	POSAdverb        PartOfSpeech = "adv"
	POSName          PartOfSpeech = "name"
	POSPronoun       PartOfSpeech = "pron"
	POSPreposition   PartOfSpeech = "prep"
	POSPostposition  PartOfSpeech = "postp"
	POSConjunction   PartOfSpeech = "conj"
	POSInterjection  PartOfSpeech = "intj"
	POSDeterminer    PartOfSpeech = "det"
	POSNumeral       PartOfSpeech = "num"
	POSParticle      PartOfSpeech = "particle"
	POSPhrase        PartOfSpeech = "phrase"
	POSPrepPhrase    PartOfSpeech = "prep_phrase"
	POSProverb       PartOfSpeech = "proverb"
	POSAbbreviation  PartOfSpeech = "abbrev"
	POSAffix         PartOfSpeech = "affix"
	POSPrefix        PartOfSpeech = "prefix"
	POSSuffix        PartOfSpeech = "suffix"
	POSInfix         PartOfSpeech = "infix"
	POSArticle       PartOfSpeech = "article"
	POSCharacter     PartOfSpeech = "character"
	POSLetter        PartOfSpeech = "letter"
	POSSymbol        PartOfSpeech = "symbol"
	POSPunctuation   PartOfSpeech = "punct"
	POSClitic        PartOfSpeech = "clitic"
	POSParticiple    PartOfSpeech = "participle"
	POSGerund        PartOfSpeech = "gerund"
	POSRomanization  PartOfSpeech = "romanization"
	POSCounter       PartOfSpeech = "counter"
	POSClassifier    PartOfSpeech = "classifier"
	POSCircumfix     PartOfSpeech = "circumfix"
	POSInterfix      PartOfSpeech = "interfix"
	POSCombiningForm PartOfSpeech = "combining_form"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case POSNoun, POSVerb, POSAdjective, POSAdverb, POSName, POSPronoun,
		POSPreposition, POSPostposition, POSConjunction, POSInterjection,
		POSDeterminer, POSNumeral, POSParticle, POSPhrase, POSPrepPhrase,
		POSProverb, POSAbbreviation, POSAffix, POSPrefix, POSSuffix,
		POSInfix, POSArticle, POSCharacter, POSLetter, POSSymbol,
		POSPunctuation, POSClitic, POSParticiple, POSGerund,
		POSRomanization, POSCounter, POSClassifier, POSCircumfix,
		POSInterfix, POSCombiningForm:
		return true
	}
	return false
}

// LinkageKind identifies a cross-reference relation between words.
type LinkageKind string

const (
	LinkageSynonyms        LinkageKind = "synonyms"
	LinkageAntonyms        LinkageKind = "antonyms"
	LinkageHypernyms       LinkageKind = "hypernyms"
	LinkageHyponyms        LinkageKind = "hyponyms"
	LinkageMeronyms        LinkageKind = "meronyms"
	LinkageHolonyms        LinkageKind = "holonyms"
	LinkageDerived         LinkageKind = "derived"
	LinkageRelated         LinkageKind = "related"
	LinkageCoordinateTerms LinkageKind = "coordinate_terms"
	LinkageTroponyms       LinkageKind = "troponyms"
	LinkageCompounds       LinkageKind = "compounds"
)

func (k LinkageKind) String() string { return string(k) }

func (k LinkageKind) IsValid() bool {
	switch k {
	case LinkageSynonyms, LinkageAntonyms, LinkageHypernyms,
		LinkageHyponyms, LinkageMeronyms, LinkageHolonyms, LinkageDerived,
		LinkageRelated, LinkageCoordinateTerms, LinkageTroponyms,
		LinkageCompounds:
		return true
	}
	return false
}

// AllLinkageKinds lists every relation kind in a stable order.
var AllLinkageKinds = []LinkageKind{
	LinkageSynonyms, LinkageAntonyms, LinkageHypernyms, LinkageHyponyms,
	LinkageMeronyms, LinkageHolonyms, LinkageDerived, LinkageRelated,
	LinkageCoordinateTerms, LinkageTroponyms, LinkageCompounds,
}

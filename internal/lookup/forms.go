package lookup

// FormMap drives tag extraction for inflection templates whose
// positional arguments carry grammatical descriptors. Keys names the
// leading arguments consumed verbatim as lookup keys; the remaining
// arguments are resolved through the map.
type FormMap struct {
	// Keys lists tag names whose values are taken from the leading
	// positional arguments in order.
	Keys []string
	// Tags resolves a descriptor argument to canonical tags.
	Tags map[string][]string
}

// Resolve maps a single descriptor to tags. Unknown descriptors return
// ok=false so the caller can record a diagnostic.
func (m FormMap) Resolve(arg string) ([]string, bool) {
	tags, ok := m.Tags[arg]
	return tags, ok
}

// genericVerbForm handles {{verb form of}} style descriptor arguments
// shared across languages.
var genericVerbForm = FormMap{
	Keys: []string{"word"},
	Tags: map[string][]string{
		"1":           {"first-person"},
		"2":           {"second-person"},
		"3":           {"third-person"},
		"s":           {"singular"},
		"p":           {"plural"},
		"pres":        {"present"},
		"past":        {"past"},
		"fut":         {"future"},
		"futr":        {"future"},
		"imperf":      {"imperfect"},
		"perf":        {"perfect"},
		"plup":        {"pluperfect"},
		"ind":         {"indicative"},
		"indc":        {"indicative"},
		"sub":         {"subjunctive"},
		"subj":        {"subjunctive"},
		"cond":        {"conditional"},
		"imp":         {"imperative"},
		"impr":        {"imperative"},
		"aux":         {"auxiliary"},
		"part":        {"participle"},
		"ger":         {"gerund"},
		"inf":         {"infinitive"},
		"act":         {"active"},
		"actv":        {"active"},
		"pass":        {"passive"},
		"pasv":        {"passive"},
		"refl":        {"reflexive"},
		"impers":      {"impersonal"},
		"dep":         {"deponent"},
		"m":           {"masculine"},
		"f":           {"feminine"},
		"n":           {"neuter"},
		"c":           {"common"},
		"nom":         {"nominative"},
		"gen":         {"genitive"},
		"dat":         {"dative"},
		"acc":         {"accusative"},
		"voc":         {"vocative"},
		"abl":         {"ablative"},
		"loc":         {"locative"},
		"ins":         {"instrumental"},
		"connegative": {"connegative"},
		"conn":        {"connegative"},
	},
}

// German {{de-verb form of}} descriptors.
var deVerbForm = FormMap{
	Keys: []string{"word"},
	Tags: map[string][]string{
		"1":    {"first-person"},
		"2":    {"second-person"},
		"3":    {"third-person"},
		"pr":   {"present"},
		"pres": {"present"},
		"past": {"past"},
		"perf": {"perfect"},
		"i":    {"indicative"},
		"ind":  {"indicative"},
		"k1":   {"subjunctive", "subjunctive-i"},
		"k2":   {"subjunctive", "subjunctive-ii"},
		"s":    {"singular"},
		"p":    {"plural"},
		"imp":  {"imperative"},
		"a":    {"auxiliary"},
		"d":    {"dependent"},
	},
}

// Spanish {{es-verb form of}} descriptors. The template uses named
// arguments resolved positionally by the caller.
var esVerbForm = FormMap{
	Keys: []string{"infinitive"},
	Tags: map[string][]string{
		"1":         {"first-person"},
		"2":         {"second-person"},
		"3":         {"third-person"},
		"s":         {"singular"},
		"sg":        {"singular"},
		"p":         {"plural"},
		"pl":        {"plural"},
		"pres":      {"present"},
		"pret":      {"preterite"},
		"imp":       {"imperfect"},
		"fut":       {"future"},
		"cond":      {"conditional"},
		"ind":       {"indicative"},
		"sub":       {"subjunctive"},
		"impv":      {"imperative"},
		"aff":       {"affirmative"},
		"neg":       {"negative"},
		"se":        {"reflexive"},
		"ra":        {"subjunctive", "subjunctive-ra"},
		"tu":        {"informal"},
		"usted":     {"formal"},
		"ustedes":   {"formal"},
		"vos":       {"informal", "vos-form"},
		"vosotros":  {"informal"},
		"nosotros":  {"first-person", "plural"},
		"gerund":    {"gerund"},
		"ger":       {"gerund"},
		"part":      {"participle", "past"},
		"adv":       {"adverbial"},
		"formal":    {"formal"},
		"informal":  {"informal"},
		"reflexive": {"reflexive"},
	},
}

// Dutch {{nl-verb form of}} descriptors.
var nlVerbForm = FormMap{
	Keys: []string{"person", "word"},
	Tags: map[string][]string{
		"1":      {"first-person"},
		"2":      {"second-person"},
		"3":      {"third-person"},
		"12":     {"first-person", "second-person"},
		"13":     {"first-person", "third-person"},
		"23":     {"second-person", "third-person"},
		"123":    {"first-person", "second-person", "third-person"},
		"mod":    {"modal"},
		"pres":   {"present"},
		"past":   {"past"},
		"imp":    {"imperative"},
		"subj":   {"subjunctive"},
		"sg":     {"singular"},
		"pl":     {"plural"},
		"dep":    {"dependent"},
		"arch":   {"archaic"},
		"formal": {"formal"},
		"gmq":    {"colloquial"},
	},
}

// Finnish {{fi-verb form of}} descriptors (named arguments).
var fiVerbForm = FormMap{
	Keys: []string{"word"},
	Tags: map[string][]string{
		"1s":    {"first-person", "singular"},
		"2s":    {"second-person", "singular"},
		"3s":    {"third-person", "singular"},
		"1p":    {"first-person", "plural"},
		"2p":    {"second-person", "plural"},
		"3p":    {"third-person", "plural"},
		"p":     {"plural"},
		"plural": {"plural"},
		"pass":  {"passive"},
		"pres":  {"present"},
		"past":  {"past"},
		"impr":  {"imperative"},
		"cond":  {"conditional"},
		"potn":  {"potential"},
		"indc":  {"indicative"},
		"pos":   {"affirmative"},
		"neg":   {"negative"},
	},
}

// verbFormTemplates maps form-of template names to their descriptor
// maps.
var verbFormTemplates = map[string]FormMap{
	"verb form of":      genericVerbForm,
	"verb-form of":      genericVerbForm,
	"de-verb form of":   deVerbForm,
	"es-verb form of":   esVerbForm,
	"nl-verb form of":   nlVerbForm,
	"fi-verb form of":   fiVerbForm,
	"fi-form of":        fiVerbForm,
	"ca-verb form of":   genericVerbForm,
	"sv-verb-form-pre":  genericVerbForm,
	"pt-verb form of":   genericVerbForm,
	"inflection of":     genericVerbForm,
	"conjugation of":    genericVerbForm,
}

// VerbFormTemplate returns the descriptor map for a form-of template
// name.
func VerbFormTemplate(name string) (FormMap, bool) {
	m, ok := verbFormTemplates[name]
	return m, ok
}

// nounFormCases maps case descriptors of noun form-of templates to
// tags.
var nounFormCases = map[string][]string{
	"nom": {"nominative"},
	"gen": {"genitive"},
	"dat": {"dative"},
	"acc": {"accusative"},
	"voc": {"vocative"},
	"abl": {"ablative"},
	"loc": {"locative"},
	"ins": {"instrumental"},
	"ess": {"essive"},
	"par": {"partitive"},
	"ill": {"illative"},
	"ine": {"inessive"},
	"ela": {"elative"},
	"ade": {"adessive"},
	"all": {"allative"},
	"abe": {"abessive"},
	"tra": {"translative"},
	"com": {"comitative"},
	"s":   {"singular"},
	"sg":  {"singular"},
	"p":   {"plural"},
	"pl":  {"plural"},
	"d":   {"dual"},
	"du":  {"dual"},
	"m":   {"masculine"},
	"f":   {"feminine"},
	"n":   {"neuter"},
	"def": {"definite"},
	"indef": {"indefinite"},
	"dim": {"diminutive"},
	"aug": {"augmentative"},
}

// NounFormTags resolves a noun form-of descriptor to tags.
func NounFormTags(arg string) ([]string, bool) {
	tags, ok := nounFormCases[arg]
	return tags, ok
}
